package services

import (
	"context"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	pkgcache "github.com/ralungei/fusion-procurement/pkg/cache"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/repositories"
)

// fakeERP implements every backend gateway with overridable functions.
// Unset functions return empty results.
type fakeERP struct {
	mu    sync.Mutex
	calls map[string]int

	findWorker    func(models.ID) (*models.Worker, error)
	searchItems   func(prefix string, limit int) ([]models.Item, error)
	itemSuppliers func(self string) ([]models.SupplierAssociation, error)
	orgsForBU     func(bu models.ID) ([]models.InventoryOrganization, error)
	orgDetail     func(org models.ID) (*models.InventoryOrganizationDetail, error)
	resolve       func(party models.ID) (*models.SupplierRecord, error)
	supplier      func(id models.ID) (*models.SupplierRecord, error)
	sites         func(id models.ID) ([]models.SupplierSite, error)
	addresses     func(id models.ID) ([]models.SupplierAddress, error)
	contacts      func(id models.ID) ([]models.SupplierContact, error)
	createHeader  func(models.RequisitionHeaderPayload) (*models.RequisitionHeader, error)
	createLine    func(models.ID, models.RequisitionLinePayload) (*models.RequisitionLine, error)
}

func (f *fakeERP) count(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
}

func (f *fakeERP) called(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeERP) FindWorker(_ context.Context, id models.ID) (*models.Worker, error) {
	f.count("FindWorker")
	if f.findWorker == nil {
		return nil, nil
	}
	return f.findWorker(id)
}

func (f *fakeERP) SearchItems(_ context.Context, prefix string, limit int) ([]models.Item, error) {
	f.count("SearchItems")
	if f.searchItems == nil {
		return nil, nil
	}
	return f.searchItems(prefix, limit)
}

func (f *fakeERP) ItemSuppliers(_ context.Context, self string) ([]models.SupplierAssociation, error) {
	f.count("ItemSuppliers")
	if f.itemSuppliers == nil {
		return nil, nil
	}
	return f.itemSuppliers(self)
}

func (f *fakeERP) OrganizationsForBusinessUnit(_ context.Context, bu models.ID) ([]models.InventoryOrganization, error) {
	f.count("OrganizationsForBusinessUnit")
	if f.orgsForBU == nil {
		return nil, nil
	}
	return f.orgsForBU(bu)
}

func (f *fakeERP) OrganizationDetail(_ context.Context, org models.ID) (*models.InventoryOrganizationDetail, error) {
	f.count("OrganizationDetail")
	if f.orgDetail == nil {
		return nil, nil
	}
	return f.orgDetail(org)
}

func (f *fakeERP) ResolveSupplier(_ context.Context, party models.ID) (*models.SupplierRecord, error) {
	f.count("ResolveSupplier")
	if f.resolve == nil {
		return nil, nil
	}
	return f.resolve(party)
}

func (f *fakeERP) Supplier(_ context.Context, id models.ID) (*models.SupplierRecord, error) {
	f.count("Supplier")
	if f.supplier == nil {
		return nil, nil
	}
	return f.supplier(id)
}

func (f *fakeERP) Sites(_ context.Context, id models.ID) ([]models.SupplierSite, error) {
	f.count("Sites")
	if f.sites == nil {
		return nil, nil
	}
	return f.sites(id)
}

func (f *fakeERP) Addresses(_ context.Context, id models.ID) ([]models.SupplierAddress, error) {
	f.count("Addresses")
	if f.addresses == nil {
		return nil, nil
	}
	return f.addresses(id)
}

func (f *fakeERP) Contacts(_ context.Context, id models.ID) ([]models.SupplierContact, error) {
	f.count("Contacts")
	if f.contacts == nil {
		return nil, nil
	}
	return f.contacts(id)
}

func (f *fakeERP) CreateHeader(_ context.Context, p models.RequisitionHeaderPayload) (*models.RequisitionHeader, error) {
	f.count("CreateHeader")
	return f.createHeader(p)
}

func (f *fakeERP) CreateLine(_ context.Context, hdr models.ID, p models.RequisitionLinePayload) (*models.RequisitionLine, error) {
	f.count("CreateLine")
	return f.createLine(hdr, p)
}

// worker returns a worker assigned to the given business units.
func worker(bus ...models.ID) *models.Worker {
	assignments := make([]models.Assignment, len(bus))
	for i, bu := range bus {
		assignments[i] = models.Assignment{BusinessUnitID: bu}
	}
	return &models.Worker{PersonID: 42, WorkRelationships: []models.WorkRelationship{{Assignments: assignments}}}
}

type fakeKeys struct {
	mu        sync.Mutex
	held      map[string]string
	reserveFn func(key string) (bool, error)
	released  []string
}

func newFakeKeys() *fakeKeys { return &fakeKeys{held: map[string]string{}} }

func (k *fakeKeys) Reserve(_ context.Context, key string) (bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.reserveFn != nil {
		return k.reserveFn(key)
	}
	if _, ok := k.held[key]; ok {
		return false, nil
	}
	k.held[key] = "pending"
	return true, nil
}

func (k *fakeKeys) Complete(_ context.Context, key string, headerID int64) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if _, ok := k.held[key]; ok {
		k.held[key] = models.ID(headerID).String()
	}
	return nil
}

func (k *fakeKeys) Release(_ context.Context, key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.held, key)
	k.released = append(k.released, key)
	return nil
}

type publishedMsg struct {
	topic string
	msg   *message.Message
}

type fakePublisher struct {
	mu   sync.Mutex
	msgs []publishedMsg
	err  error
}

func (p *fakePublisher) Publish(_ context.Context, topic string, msgs ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	for _, m := range msgs {
		p.msgs = append(p.msgs, publishedMsg{topic: topic, msg: m})
	}
	return nil
}

type fakeRatings struct {
	saved     []*models.Rating
	saveErr   error
	summary   *models.RatingSummary
	summaries int
	onSummary func()
}

func (r *fakeRatings) Save(_ context.Context, rating *models.Rating) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, rating)
	return nil
}

func (r *fakeRatings) Summary(_ context.Context, id models.ID, _ int) (*models.RatingSummary, error) {
	r.summaries++
	if r.onSummary != nil {
		r.onSummary()
	}
	if r.summary == nil {
		return &models.RatingSummary{SupplierPartyID: id, Recent: []models.RatingView{}}, nil
	}
	return r.summary, nil
}

type fakeSummaryCache struct {
	mu      sync.Mutex
	entries map[int64]*pkgcache.CachedRatingSummary
	gens    map[int64]int64
	getErr  error
	genErr  error
	writes  int
	deleted []int64
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{entries: map[int64]*pkgcache.CachedRatingSummary{}, gens: map[int64]int64{}}
}

func (c *fakeSummaryCache) Get(_ context.Context, id int64) (*pkgcache.CachedRatingSummary, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	s, ok := c.entries[id]
	if !ok {
		return nil, errCacheMiss
	}
	return s, nil
}

func (c *fakeSummaryCache) Generation(_ context.Context, id int64) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.genErr != nil {
		return 0, c.genErr
	}
	return c.gens[id], nil
}

func (c *fakeSummaryCache) SetIfCurrent(_ context.Context, s *pkgcache.CachedRatingSummary, gen int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes++
	if c.gens[s.SupplierPartyID] != gen {
		return pkgcache.ErrStaleSummary
	}
	c.entries[s.SupplierPartyID] = s
	return nil
}

func (c *fakeSummaryCache) Delete(_ context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	c.gens[id]++
	c.deleted = append(c.deleted, id)
	return nil
}

func (c *fakeSummaryCache) writeAttempts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writes
}

func (c *fakeSummaryCache) has(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[id]
	return ok
}

type fakeOrphans struct {
	recorded map[string]*models.OrphanedRequisition
	listOpts repositories.QueryOpts
}

func (o *fakeOrphans) Record(_ context.Context, orphan *models.OrphanedRequisition) (bool, error) {
	if o.recorded == nil {
		o.recorded = map[string]*models.OrphanedRequisition{}
	}
	key := orphan.EventID.String()
	if _, ok := o.recorded[key]; ok {
		return false, nil
	}
	o.recorded[key] = orphan
	return true, nil
}

func (o *fakeOrphans) List(_ context.Context, opts repositories.QueryOpts) ([]*models.OrphanedRequisition, int, error) {
	o.listOpts = opts
	out := make([]*models.OrphanedRequisition, 0, len(o.recorded))
	for _, v := range o.recorded {
		out = append(out, v)
	}
	return out, len(out), nil
}

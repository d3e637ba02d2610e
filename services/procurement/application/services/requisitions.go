package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ralungei/fusion-procurement/pkg/events"
	"github.com/ralungei/fusion-procurement/pkg/fusion"
	"github.com/ralungei/fusion-procurement/pkg/logger"
	"github.com/ralungei/fusion-procurement/services/procurement/domain"
	domainevents "github.com/ralungei/fusion-procurement/services/procurement/domain/events"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/repositories"
)

// IdempotencyKeys reserves client submission keys.
type IdempotencyKeys interface {
	Reserve(ctx context.Context, key string) (bool, error)
	Complete(ctx context.Context, key string, headerID int64) error
	Release(ctx context.Context, key string) error
}

// ErrorReporter sends an error to crash reporting.
type ErrorReporter func(ctx context.Context, err error, tags map[string]string)

// RequisitionWriter submits a requisition as a header followed by one line.
// The header is never rolled back: when the line fails the outcome reports
// the header so it can be remediated.
type RequisitionWriter struct {
	gateway   repositories.RequisitionGateway
	keys      IdempotencyKeys
	publisher events.Publisher
	report    ErrorReporter
	now       func() time.Time
	log       logger.Logger
}

// RequisitionOption customizes a RequisitionWriter.
type RequisitionOption func(*RequisitionWriter)

// WithIdempotencyKeys enables Idempotency-Key handling.
func WithIdempotencyKeys(k IdempotencyKeys) RequisitionOption {
	return func(w *RequisitionWriter) { w.keys = k }
}

// WithPublisher publishes submitted and line-failed events.
func WithPublisher(p events.Publisher) RequisitionOption {
	return func(w *RequisitionWriter) { w.publisher = p }
}

// WithErrorReporter reports orphaned headers.
func WithErrorReporter(r ErrorReporter) RequisitionOption {
	return func(w *RequisitionWriter) { w.report = r }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) RequisitionOption {
	return func(w *RequisitionWriter) { w.now = now }
}

// NewRequisitionWriter returns a RequisitionWriter over gateway.
func NewRequisitionWriter(gateway repositories.RequisitionGateway, log logger.Logger, opts ...RequisitionOption) *RequisitionWriter {
	w := &RequisitionWriter{gateway: gateway, now: time.Now, log: log}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Submit creates the header and then the line. A failed header create, or
// one that returns no header id, fails the submission with
// ErrRequisitionHeaderFailed and no line is attempted. A failed line create
// is not an error: the outcome is RequisitionLineFailed and carries the
// header and the backend's failure detail.
func (w *RequisitionWriter) Submit(ctx context.Context, req models.RequisitionRequest) (*models.RequisitionOutcome, error) {
	if err := validateRequisition(req); err != nil {
		return nil, err
	}
	if req.RequestedDeliveryDate == "" {
		req.RequestedDeliveryDate = models.DefaultDeliveryDate(w.now())
	}

	if req.IdempotencyKey != "" && w.keys != nil {
		reserved, err := w.keys.Reserve(ctx, req.IdempotencyKey)
		if err != nil {
			return nil, fmt.Errorf("reserve idempotency key: %w", err)
		}
		if !reserved {
			return nil, domain.ErrDuplicateSubmission
		}
	}

	header, err := w.gateway.CreateHeader(ctx, models.RequisitionHeaderPayload{
		PreparerID:            req.PreparerID,
		RequisitioningBUID:    req.BusinessUnitID,
		Description:           fmt.Sprintf("Purchase requisition for item %d", req.ItemID),
		ExternallyManagedFlag: false,
	})
	if err == nil && (header == nil || !header.RequisitionHeaderID.Valid()) {
		err = errors.New("response carries no RequisitionHeaderId")
	}
	if err != nil {
		w.releaseKey(ctx, req.IdempotencyKey)
		w.log.ErrorContext(ctx, "requisition header create failed", "item_id", req.ItemID, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrRequisitionHeaderFailed, err)
	}

	line, err := w.gateway.CreateLine(ctx, header.RequisitionHeaderID, models.RequisitionLinePayload{
		LineNumber:                models.RequisitionLineNumber,
		LineTypeID:                models.RequisitionLineTypeID,
		ItemID:                    req.ItemID,
		Quantity:                  req.Quantity,
		UOM:                       models.RequisitionUOM,
		DestinationOrganizationID: req.DestinationOrganizationID,
		DeliverToLocationID:       req.DeliverToLocationID,
		RequestedDeliveryDate:     req.RequestedDeliveryDate,
		DestinationTypeCode:       models.RequisitionDestinationType,
		RequesterID:               req.PreparerID,
	})
	w.completeKey(ctx, req.IdempotencyKey, header.RequisitionHeaderID)

	if err != nil {
		outcome := &models.RequisitionOutcome{
			State:     models.RequisitionLineFailed,
			Header:    *header,
			LineError: backendError(err),
		}
		w.log.ErrorContext(ctx, "requisition line create failed; header left without line",
			"requisition_header_id", header.RequisitionHeaderID,
			"item_id", req.ItemID,
			"error", err,
		)
		if w.report != nil {
			w.report(ctx, fmt.Errorf("requisition %d has no line: %w", header.RequisitionHeaderID, err), map[string]string{
				"requisition_header_id": header.RequisitionHeaderID.String(),
				"item_id":               req.ItemID.String(),
			})
		}
		w.publishLineFailed(ctx, req, outcome)
		return outcome, nil
	}

	outcome := &models.RequisitionOutcome{
		State:  models.RequisitionLineCreated,
		Header: *header,
		Line:   line,
	}
	w.log.InfoContext(ctx, "requisition submitted",
		"requisition_header_id", header.RequisitionHeaderID,
		"item_id", req.ItemID,
	)
	w.publishSubmitted(ctx, req, outcome)
	return outcome, nil
}

func validateRequisition(req models.RequisitionRequest) error {
	switch {
	case !req.ItemID.Valid():
		return fmt.Errorf("%w: item id must be positive", domain.ErrInvalidInput)
	case req.Quantity <= 0:
		return fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	case !req.BusinessUnitID.Valid():
		return fmt.Errorf("%w: business unit id must be positive", domain.ErrInvalidInput)
	case !req.DestinationOrganizationID.Valid():
		return fmt.Errorf("%w: destination organization id must be positive", domain.ErrInvalidInput)
	case !req.DeliverToLocationID.Valid():
		return fmt.Errorf("%w: deliver-to location id must be positive", domain.ErrInvalidInput)
	case !req.PreparerID.Valid():
		return fmt.Errorf("%w: preparer id must be positive", domain.ErrInvalidInput)
	}
	if req.RequestedDeliveryDate != "" {
		if _, err := time.Parse(models.RequisitionDateLayout, req.RequestedDeliveryDate); err != nil {
			return fmt.Errorf("%w: requested delivery date must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
	}
	return nil
}

// backendError converts a gateway error into the caller-facing detail.
func backendError(err error) *models.BackendError {
	if f, ok := fusion.AsFailure(err); ok {
		return &models.BackendError{
			StatusCode: f.StatusCode,
			Message:    f.Message,
			Payload:    f.Payload,
		}
	}
	return &models.BackendError{Message: err.Error()}
}

func (w *RequisitionWriter) releaseKey(ctx context.Context, key string) {
	if key == "" || w.keys == nil {
		return
	}
	if err := w.keys.Release(ctx, key); err != nil {
		w.log.WarnContext(ctx, "idempotency key release failed", "error", err)
	}
}

func (w *RequisitionWriter) completeKey(ctx context.Context, key string, headerID models.ID) {
	if key == "" || w.keys == nil {
		return
	}
	if err := w.keys.Complete(ctx, key, int64(headerID)); err != nil {
		w.log.WarnContext(ctx, "idempotency key completion failed", "error", err)
	}
}

func (w *RequisitionWriter) publishSubmitted(ctx context.Context, req models.RequisitionRequest, o *models.RequisitionOutcome) {
	if w.publisher == nil {
		return
	}
	evt := domainevents.RequisitionSubmittedEvent{
		EventID:             uuid.New(),
		Version:             1,
		RequisitionHeaderID: int64(o.Header.RequisitionHeaderID),
		ItemID:              int64(req.ItemID),
		Quantity:            req.Quantity,
		BusinessUnitID:      int64(req.BusinessUnitID),
		PreparerID:          int64(req.PreparerID),
		OccurredAt:          w.now().UTC(),
	}
	if o.Line != nil {
		evt.RequisitionLineID = int64(o.Line.RequisitionLineID)
	}
	w.publish(ctx, domainevents.TopicRequisitionSubmitted, evt.EventID, evt)
}

func (w *RequisitionWriter) publishLineFailed(ctx context.Context, req models.RequisitionRequest, o *models.RequisitionOutcome) {
	if w.publisher == nil {
		return
	}
	evt := domainevents.RequisitionLineFailedEvent{
		EventID:             uuid.New(),
		Version:             1,
		RequisitionHeaderID: int64(o.Header.RequisitionHeaderID),
		ItemID:              int64(req.ItemID),
		Quantity:            req.Quantity,
		BusinessUnitID:      int64(req.BusinessUnitID),
		PreparerID:          int64(req.PreparerID),
		OccurredAt:          w.now().UTC(),
	}
	if o.LineError != nil {
		evt.FailureStatus = o.LineError.StatusCode
		evt.FailureDetail = o.LineError.Payload
		if len(evt.FailureDetail) == 0 {
			evt.FailureDetail = []byte(strconv.Quote(o.LineError.Message))
		}
	}
	w.publish(ctx, domainevents.TopicRequisitionLineFailed, evt.EventID, evt)
}

// publish never changes the outcome; failures are logged.
func (w *RequisitionWriter) publish(ctx context.Context, topic string, id uuid.UUID, payload any) {
	msg, err := events.NewMessage(id.String(), 1, payload)
	if err == nil {
		err = w.publisher.Publish(ctx, topic, msg)
	}
	if err != nil {
		w.log.WarnContext(ctx, "event publish failed", "topic", topic, "error", err)
	}
}

package models

// InventoryOrganization is a stocking organization owned by a business unit.
// Only organizations with InventoryFlag set take part in projection.
type InventoryOrganization struct {
	OrganizationID           ID     `json:"OrganizationId"`
	OrganizationCode         string `json:"OrganizationCode"`
	OrganizationName         string `json:"OrganizationName"`
	InventoryFlag            bool   `json:"InventoryFlag"`
	ManagementBusinessUnitID ID     `json:"ManagementBusinessUnitId"`
}

// InventoryOrganizationDetail carries the organization's default
// deliver-to location. LocationID is 0 when none is configured.
type InventoryOrganizationDetail struct {
	OrganizationID ID `json:"OrganizationId"`
	LocationID     ID `json:"LocationId"`
}

// LocationIndex maps an inventory organization to its deliver-to location.
// Organizations without a location are absent.
type LocationIndex map[ID]ID

// Lookup returns the location for org, if any.
func (l LocationIndex) Lookup(org ID) (ID, bool) {
	loc, ok := l[org]
	return loc, ok && loc.Valid()
}

// Worker is the part of an HCM worker record used to derive access scope.
type Worker struct {
	PersonID          ID                 `json:"PersonId"`
	WorkRelationships []WorkRelationship `json:"workRelationships"`
}

// WorkRelationship groups a worker's assignments.
type WorkRelationship struct {
	Assignments []Assignment `json:"assignments"`
}

// Assignment is a work assignment in one business unit.
type Assignment struct {
	BusinessUnitID ID `json:"BusinessUnitId"`
}

// BusinessUnits returns the distinct business units across all assignments.
func (w Worker) BusinessUnits() []ID {
	seen := map[ID]bool{}
	var out []ID
	for _, rel := range w.WorkRelationships {
		for _, a := range rel.Assignments {
			if a.BusinessUnitID.Valid() && !seen[a.BusinessUnitID] {
				seen[a.BusinessUnitID] = true
				out = append(out, a.BusinessUnitID)
			}
		}
	}
	return out
}

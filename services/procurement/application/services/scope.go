package services

import (
	"context"

	"github.com/ralungei/fusion-procurement/pkg/logger"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/models"
	"github.com/ralungei/fusion-procurement/services/procurement/domain/repositories"
)

// AccessScope resolves the business units a person may operate in.
type AccessScope struct {
	workers repositories.WorkerDirectory
	log     logger.Logger
}

// NewAccessScope returns an AccessScope reading worker assignments.
func NewAccessScope(workers repositories.WorkerDirectory, log logger.Logger) *AccessScope {
	return &AccessScope{workers: workers, log: log}
}

// Resolve returns the distinct business units of the person's assignments.
// It fails closed: a failed or empty lookup yields the empty scope, never an error.
func (s *AccessScope) Resolve(ctx context.Context, personID models.ID) models.BusinessUnitSet {
	worker, err := s.workers.FindWorker(ctx, personID)
	if err != nil {
		s.log.WarnContext(ctx, "access scope lookup failed; scope is empty", "person_id", personID, "error", err)
		return models.NewBusinessUnitSet()
	}
	if worker == nil {
		s.log.WarnContext(ctx, "no worker record; scope is empty", "person_id", personID)
		return models.NewBusinessUnitSet()
	}
	return models.NewBusinessUnitSet(worker.BusinessUnits()...)
}

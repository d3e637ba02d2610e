package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the procurement domain. Use errors.Is() to check these.
var (
	// ErrInvalidInput indicates a request argument violates domain constraints.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSearchFailed indicates at least one catalog query failed; see SearchFailure.
	ErrSearchFailed = errors.New("catalog search failed")

	// ErrSupplierNotFound indicates a supplier party id resolved to no supplier.
	ErrSupplierNotFound = errors.New("supplier not found")

	// ErrBackendUnavailable indicates a required backend read failed.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrRequisitionHeaderFailed indicates the header create failed; no line was attempted.
	ErrRequisitionHeaderFailed = errors.New("requisition header creation failed")

	// ErrDuplicateSubmission indicates the idempotency key was already used.
	ErrDuplicateSubmission = errors.New("duplicate requisition submission")

	// ErrInvalidRating indicates the score or comment is out of bounds.
	ErrInvalidRating = errors.New("invalid rating")

	// ErrRatingAlreadyExists indicates the acting user already rated the supplier.
	ErrRatingAlreadyExists = errors.New("rating already exists")
)

// QueryFailure is one failed catalog query.
type QueryFailure struct {
	Index   int    `json:"index"`
	Variant string `json:"variant"`
	Message string `json:"message"`
}

// SearchFailure lists every catalog query that failed in one search.
type SearchFailure struct {
	Queries []QueryFailure
}

func (f *SearchFailure) Error() string {
	parts := make([]string, len(f.Queries))
	for i, q := range f.Queries {
		parts[i] = fmt.Sprintf("Query %d: %s", q.Index, q.Message)
	}
	return "search failed: " + strings.Join(parts, "; ")
}

func (f *SearchFailure) Unwrap() error {
	return ErrSearchFailed
}

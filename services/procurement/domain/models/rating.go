package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rating bounds.
const (
	MinRatingScore      = 1
	MaxRatingScore      = 5
	MaxRatingComment    = 1000
	RecentRatingsInView = 20
)

// Rating is a buyer's score for a supplier. Each person rates a supplier once.
type Rating struct {
	ID              uuid.UUID
	SupplierPartyID ID
	RatedBy         ID
	Score           int
	Comment         string
	CreatedAt       time.Time
}

// NewRating validates the input and stamps id and time.
func NewRating(supplierPartyID, ratedBy ID, score int, comment string, now time.Time) (*Rating, error) {
	if !supplierPartyID.Valid() {
		return nil, fmt.Errorf("supplier party id must be positive")
	}
	if !ratedBy.Valid() {
		return nil, fmt.Errorf("rater person id must be positive")
	}
	if score < MinRatingScore || score > MaxRatingScore {
		return nil, fmt.Errorf("score must be between %d and %d", MinRatingScore, MaxRatingScore)
	}
	comment = strings.TrimSpace(comment)
	if utf8.RuneCountInString(comment) > MaxRatingComment {
		return nil, fmt.Errorf("comment exceeds %d characters", MaxRatingComment)
	}
	return &Rating{
		ID:              uuid.New(),
		SupplierPartyID: supplierPartyID,
		RatedBy:         ratedBy,
		Score:           score,
		Comment:         comment,
		CreatedAt:       now.UTC(),
	}, nil
}

// RatingSummary aggregates a supplier's ratings.
type RatingSummary struct {
	SupplierPartyID ID              `json:"supplier_party_id"`
	Count           int64           `json:"count"`
	Average         decimal.Decimal `json:"average"`
	Recent          []RatingView    `json:"recent"`
}

// RatingView is one rating as shown to callers.
type RatingView struct {
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	RatedBy   ID        `json:"rated_by"`
	CreatedAt time.Time `json:"created_at"`
}

// AverageOf returns sum/count rounded to two places, or zero for no ratings.
func AverageOf(sum, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(sum).DivRound(decimal.NewFromInt(count), 2)
}

package domain

import (
	"errors"
	"time"
)

// Condition represents the physical state of a donated toy.
type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionLikeNew Condition = "like-new"
	ConditionGood    Condition = "good"
	ConditionFair    Condition = "fair"
	ConditionPoor    Condition = "poor"
)

// validConditions enumerates every accepted condition value.
var validConditions = map[Condition]struct{}{
	ConditionNew:     {},
	ConditionLikeNew: {},
	ConditionGood:    {},
	ConditionFair:    {},
	ConditionPoor:    {},
}

var ErrListingNotFound = errors.New("listing not found")
var ErrInvalidCondition = errors.New("invalid condition")
var ErrNoImages = errors.New("at least one image is required")
var ErrForbidden = errors.New("access forbidden")

// IsValid reports whether c is one of the enumerated condition values.
func (c Condition) IsValid() bool {
	_, ok := validConditions[c]
	return ok
}

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Listing is the core aggregate root: a single toy-donation ad.
//
// Price is a display string, conventionally the literal "Free".
// Images are ordered; the first entry is the primary image.
// Coordinates are optional and only set when the poster used the
// device-location flow.
type Listing struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Price       string       `json:"price"`
	Condition   Condition    `json:"condition"`
	Category    string       `json:"category"`
	Images      []string     `json:"images"`
	Location    string       `json:"location"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	UserID      string       `json:"user_id"`
}

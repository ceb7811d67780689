package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type coordinatesRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type createListingRequest struct {
	Title       string              `json:"title"       validate:"required"`
	Description string              `json:"description" validate:"required"`
	Price       string              `json:"price"`
	Condition   string              `json:"condition"   validate:"required,oneof=new like-new good fair poor"`
	Category    string              `json:"category"    validate:"required"`
	Images      []string            `json:"images"      validate:"required,min=1"`
	Location    string              `json:"location"    validate:"required"`
	Coordinates *coordinatesRequest `json:"coordinates,omitempty"`
}

// updateListingRequest is an explicit partial update: absent fields leave the
// stored value untouched.
type updateListingRequest struct {
	Title       *string             `json:"title,omitempty"`
	Description *string             `json:"description,omitempty"`
	Price       *string             `json:"price,omitempty"`
	Condition   *string             `json:"condition,omitempty"   validate:"omitempty,oneof=new like-new good fair poor"`
	Category    *string             `json:"category,omitempty"`
	Images      *[]string           `json:"images,omitempty"`
	Location    *string             `json:"location,omitempty"`
	Coordinates *coordinatesRequest `json:"coordinates,omitempty"`
}

// --- Response types ---
// Response-only types owned by the transport layer. These are intentionally
// separate from ports/domain types so the JSON contract is not coupled to
// internal service changes.

type coordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type listingResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Price       string               `json:"price"`
	Condition   string               `json:"condition"`
	Category    string               `json:"category"`
	Images      []string             `json:"images"`
	Location    string               `json:"location"`
	Coordinates *coordinatesResponse `json:"coordinates,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	UserID      string               `json:"user_id"`
}

type listingCollectionResponse struct {
	Data  []listingResponse `json:"data"`
	Total int               `json:"total"`
}

package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/toyshare/toyshare-api/internal/core/domain"
)

// timeLayout is the serialized form of listing timestamps. RFC3339Nano keeps
// the encode/decode round trip lossless at the precision the store uses.
const timeLayout = time.RFC3339Nano

// listingRecord is the wire form of a listing. Timestamps are serialized to
// strings and reconstructed to true time values on load.
type listingRecord struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Price       string              `json:"price"`
	Condition   string              `json:"condition"`
	Category    string              `json:"category"`
	Images      []string            `json:"images"`
	Location    string              `json:"location"`
	Coordinates *domain.Coordinates `json:"coordinates,omitempty"`
	CreatedAt   string              `json:"createdAt"`
	UpdatedAt   string              `json:"updatedAt"`
	UserID      string              `json:"userId"`
}

// EncodeListings serialises the full collection.
func EncodeListings(listings []domain.Listing) ([]byte, error) {
	records := make([]listingRecord, len(listings))
	for i, l := range listings {
		records[i] = listingRecord{
			ID:          l.ID,
			Title:       l.Title,
			Description: l.Description,
			Price:       l.Price,
			Condition:   string(l.Condition),
			Category:    l.Category,
			Images:      l.Images,
			Location:    l.Location,
			Coordinates: l.Coordinates,
			CreatedAt:   l.CreatedAt.Format(timeLayout),
			UpdatedAt:   l.UpdatedAt.Format(timeLayout),
			UserID:      l.UserID,
		}
	}
	return json.Marshal(records)
}

// DecodeListings deserialises a collection blob, reconstructing timestamps
// from their string form.
func DecodeListings(data []byte) ([]domain.Listing, error) {
	var records []listingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}

	listings := make([]domain.Listing, len(records))
	for i, r := range records {
		createdAt, err := time.Parse(timeLayout, r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("decode listing %s createdAt: %w", r.ID, err)
		}
		updatedAt, err := time.Parse(timeLayout, r.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("decode listing %s updatedAt: %w", r.ID, err)
		}
		listings[i] = domain.Listing{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Price:       r.Price,
			Condition:   domain.Condition(r.Condition),
			Category:    r.Category,
			Images:      r.Images,
			Location:    r.Location,
			Coordinates: r.Coordinates,
			CreatedAt:   createdAt,
			UpdatedAt:   updatedAt,
			UserID:      r.UserID,
		}
	}
	return listings, nil
}

// EncodeUser serialises the current user. User has no date fields, so the
// domain type is marshalled directly.
func EncodeUser(user *domain.User) ([]byte, error) {
	return json.Marshal(user)
}

// DecodeUser deserialises a current-user blob.
func DecodeUser(data []byte) (*domain.User, error) {
	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &user, nil
}

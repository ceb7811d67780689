package handler

import (
	"github.com/toyshare/toyshare-api/internal/core/domain"
	"github.com/toyshare/toyshare-api/internal/core/ports"
)

// defaultPrice is the conventional price for every ToyShare listing.
const defaultPrice = "Free"

// --- Request → Service input ---

func toCreateInput(req createListingRequest, userID string) ports.CreateListingInput {
	price := req.Price
	if price == "" {
		price = defaultPrice
	}

	in := ports.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       price,
		Condition:   req.Condition,
		CategoryID:  req.Category,
		Images:      req.Images,
		Location:    req.Location,
		UserID:      userID,
	}
	if req.Coordinates != nil {
		in.Coordinates = &ports.CoordinatesInput{Lat: req.Coordinates.Lat, Lng: req.Coordinates.Lng}
	}
	return in
}

func toPatch(req updateListingRequest) ports.ListingPatch {
	patch := ports.ListingPatch{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Condition:   req.Condition,
		Category:    req.Category,
		Images:      req.Images,
		Location:    req.Location,
	}
	if req.Coordinates != nil {
		patch.Coordinates = &ports.CoordinatesInput{Lat: req.Coordinates.Lat, Lng: req.Coordinates.Lng}
	}
	return patch
}

// --- Domain → HTTP response ---

func toListingResponse(l domain.Listing) listingResponse {
	resp := listingResponse{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		Condition:   string(l.Condition),
		Category:    l.Category,
		Images:      l.Images,
		Location:    l.Location,
		CreatedAt:   l.CreatedAt.UTC(),
		UpdatedAt:   l.UpdatedAt.UTC(),
		UserID:      l.UserID,
	}
	if l.Coordinates != nil {
		resp.Coordinates = &coordinatesResponse{Lat: l.Coordinates.Lat, Lng: l.Coordinates.Lng}
	}
	return resp
}

func toCollectionResponse(listings []domain.Listing) listingCollectionResponse {
	data := make([]listingResponse, len(listings))
	for i, l := range listings {
		data[i] = toListingResponse(l)
	}
	return listingCollectionResponse{Data: data, Total: len(data)}
}

package domain

import "errors"

var (
	MessageSuccessCreateLocation = "location resolved successfully"
	MessageSuccessGetLocations   = "locations retrieved successfully"
	MessageFailedCreateLocation  = "failed to resolve location"
	MessageFailedGetLocations    = "failed to retrieve locations"

	ErrLatitudeOutOfRange  = errors.New("latitude must be between -90 and 90")
	ErrLongitudeOutOfRange = errors.New("longitude must be between -180 and 180")
	ErrEmptyLocationName   = errors.New("location name must not be empty")
)

type (
	ResolveLocationRequest struct {
		Name        string  `json:"name" validate:"required"`
		Description string  `json:"description"`
		Latitude    float64 `json:"latitude" validate:"gte=-90,lte=90"`
		Longitude   float64 `json:"longitude" validate:"gte=-180,lte=180"`
	}

	LocationResponse struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description,omitempty"`
		Latitude    float64 `json:"latitude"`
		Longitude   float64 `json:"longitude"`
	}

	// NearbyLocationResponse is a LocationResponse plus the exact great-circle
	// distance from the query point, in kilometers.
	NearbyLocationResponse struct {
		LocationResponse
		DistanceKm float64 `json:"distance_km"`
	}
)

package domain

import (
	"encoding/json"
	"errors"
)

var (
	MessageSuccessIngestMenu   = "menu ingested successfully"
	MessageSuccessGetMenus     = "menus retrieved successfully"
	MessageSuccessMenuExists   = "menu existence checked successfully"
	MessageFailedIngestMenu    = "failed to ingest menu"
	MessageFailedGetMenus      = "failed to retrieve menus"
	MessageFailedInvalidWindow = "invalid time window"

	ErrEndBeforeStart = errors.New("end_time must not be before start_time")
)

type (
	// MenuLocation accepts the two upstream shapes: a full embedded location
	// object (new-location path) or a bare location name string (lookup-only
	// path, which requires the location to already exist).
	MenuLocation struct {
		Name        string  `json:"name"`
		Description string  `json:"description,omitempty"`
		Latitude    float64 `json:"latitude,omitempty"`
		Longitude   float64 `json:"longitude,omitempty"`

		// Embedded is true when the full object form was supplied.
		Embedded bool `json:"-"`
	}

	ServingUnitPayload struct {
		Name  string  `json:"name"`
		Grams float64 `json:"grams"`
	}

	FoodPayload struct {
		Name                         string               `json:"name"`
		Brand                        string               `json:"brand"`
		ServingSize                  float64              `json:"serving_size"` // grams
		ServingUnits                 []ServingUnitPayload `json:"serving_units"`
		MacroPercentageErrorEstimate float64              `json:"macro_percentage_error_estimate"`
		MacroInformationSource       string               `json:"macro_information_source"`
		Macros                       Macros               `json:"macros"`
	}

	IngestMenuRequest struct {
		Name      string        `json:"name" validate:"required"`
		Location  MenuLocation  `json:"location"`
		StartTime string        `json:"start_time" validate:"required"` // RFC 3339
		EndTime   string        `json:"end_time" validate:"required"`   // RFC 3339
		Foods     []FoodPayload `json:"foods" validate:"required"`
	}

	MenuSummaryResponse struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		LocationName string `json:"location_name"`
		StartTime    string `json:"start_time"`
		EndTime      string `json:"end_time"`
	}

	FoodResponse struct {
		ID                           string               `json:"id"`
		Name                         string               `json:"name"`
		Brand                        string               `json:"brand"`
		ServingSize                  float64              `json:"serving_size"`
		ServingUnits                 []ServingUnitPayload `json:"serving_units"`
		MacroPercentageErrorEstimate float64              `json:"macro_percentage_error_estimate"`
		MacroInformationSource       string               `json:"macro_information_source"`
		Macros                       Macros               `json:"macros"`
	}

	MenuWithFoodsResponse struct {
		MenuSummaryResponse
		Foods []FoodResponse `json:"foods"`
	}

	MenuNearbyResponse struct {
		MenuWithFoodsResponse
		DistanceKm float64 `json:"distance_km"`
	}
)

func (l *MenuLocation) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*l = MenuLocation{Name: name}
		return nil
	}

	type embedded MenuLocation
	var full embedded
	if err := json.Unmarshal(data, &full); err != nil {
		return err
	}
	*l = MenuLocation(full)
	l.Embedded = true
	return nil
}

func (l MenuLocation) MarshalJSON() ([]byte, error) {
	if !l.Embedded {
		return json.Marshal(l.Name)
	}
	type embedded MenuLocation
	return json.Marshal(embedded(l))
}

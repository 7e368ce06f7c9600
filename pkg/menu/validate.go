package menu

import (
	"Dining-Menu-Backend/domain"
	"Dining-Menu-Backend/pkg/location"
	"Dining-Menu-Backend/pkg/nutrition"
	"fmt"
	"time"
)

func parseWindow(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("start_time", "must be a valid RFC 3339 timestamp")
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("end_time", "must be a valid RFC 3339 timestamp")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, domain.NewValidationError("end_time", domain.ErrEndBeforeStart.Error())
	}
	return start, end, nil
}

// validateMenuRecord checks every precondition before any storage access.
// The first violation rejects the whole record.
func validateMenuRecord(req domain.IngestMenuRequest) (time.Time, time.Time, error) {
	if req.Location.Name == "" {
		return time.Time{}, time.Time{}, domain.NewValidationError("location.name", domain.ErrEmptyLocationName.Error())
	}
	if req.Location.Embedded {
		if err := location.ValidateCoordinates(req.Location.Latitude, req.Location.Longitude); err != nil {
			return time.Time{}, time.Time{}, domain.NewValidationError("location", err.Error())
		}
	}

	start, end, err := parseWindow(req.StartTime, req.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	for i, f := range req.Foods {
		if err := validateFood(i, f); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return start, end, nil
}

func validateFood(i int, f domain.FoodPayload) error {
	field := func(name string) string { return fmt.Sprintf("foods[%d].%s", i, name) }

	if f.Name == "" {
		return domain.NewValidationError(field("name"), "must not be empty")
	}
	if f.Brand == "" {
		return domain.NewValidationError(field("brand"), "must not be empty")
	}
	if f.ServingSize <= 0 {
		return domain.NewValidationError(field("serving_size"), "must be positive")
	}
	if f.MacroPercentageErrorEstimate < 0 || f.MacroPercentageErrorEstimate > 100 {
		return domain.NewValidationError(field("macro_percentage_error_estimate"), "must be between 0 and 100")
	}
	if f.MacroInformationSource == "" {
		return domain.NewValidationError(field("macro_information_source"), "must not be empty")
	}

	seen := make(map[string]bool, len(f.ServingUnits))
	for j, u := range f.ServingUnits {
		unitField := func(name string) string { return fmt.Sprintf("foods[%d].serving_units[%d].%s", i, j, name) }
		if u.Name == "" {
			return domain.NewValidationError(unitField("name"), "must not be empty")
		}
		if u.Grams <= 0 {
			return domain.NewValidationError(unitField("grams"), "must be positive")
		}
		if seen[u.Name] {
			return domain.NewValidationError(unitField("name"), "duplicate unit name within food")
		}
		seen[u.Name] = true
	}

	return validateMacros(i, f.Macros)
}

func validateMacros(i int, m domain.Macros) error {
	values := nutrition.Flatten(m)
	for idx, name := range nutrition.Fields() {
		if values[idx] < 0 {
			return domain.NewValidationError(
				fmt.Sprintf("foods[%d].macros.%s", i, name),
				"must be non-negative",
			)
		}
	}
	return nil
}

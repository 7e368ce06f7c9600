package handlers

import (
	"Dining-Menu-Backend/domain"
	"Dining-Menu-Backend/pkg/location"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	LocationHandler interface {
		ResolveLocation(c *fiber.Ctx) error
		GetLocations(c *fiber.Ctx) error
		GetNearestLocationsByName(c *fiber.Ctx) error
		GetLocationsNearby(c *fiber.Ctx) error
	}

	locationHandler struct {
		locationService location.LocationService
		validator       *validator.Validate
	}
)

func NewLocationHandler(locationService location.LocationService, validator *validator.Validate) LocationHandler {
	return &locationHandler{
		locationService: locationService,
		validator:       validator,
	}
}

func (h *locationHandler) ResolveLocation(c *fiber.Ctx) error {
	req := new(domain.ResolveLocationRequest)

	if err := c.BodyParser(req); err != nil {
		return presentError(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presentError(c, fiber.StatusBadRequest, domain.MessageFailedCreateLocation, err)
	}

	id, err := h.locationService.ResolveLocation(c.Context(), *req)
	if err != nil {
		return presentServiceError(c, domain.MessageFailedCreateLocation, err)
	}

	return presentSuccess(c, fiber.Map{"id": id.String()}, fiber.StatusCreated, domain.MessageSuccessCreateLocation)
}

func (h *locationHandler) GetLocations(c *fiber.Ctx) error {
	if name := c.Query("name"); name != "" {
		loc, err := h.locationService.GetLocationByName(c.Context(), name)
		if err != nil {
			return presentServiceError(c, domain.MessageFailedGetLocations, err)
		}
		return presentSuccess(c, loc, fiber.StatusOK, domain.MessageSuccessGetLocations)
	}

	locations, err := h.locationService.GetAllLocations(c.Context())
	if err != nil {
		return presentServiceError(c, domain.MessageFailedGetLocations, err)
	}
	return presentSuccess(c, locations, fiber.StatusOK, domain.MessageSuccessGetLocations)
}

func (h *locationHandler) GetNearestLocationsByName(c *fiber.Ctx) error {
	name := c.Query("name")
	lat, lng, err := queryCoordinates(c)
	if err != nil {
		return presentError(c, fiber.StatusBadRequest, domain.MessageFailedGetLocations, err)
	}
	maxKm := queryFloat(c, "max_distance_km", 50)

	locations, err := h.locationService.FindNearestLocationsByName(c.Context(), name, lat, lng, maxKm)
	if err != nil {
		return presentServiceError(c, domain.MessageFailedGetLocations, err)
	}
	return presentSuccess(c, locations, fiber.StatusOK, domain.MessageSuccessGetLocations)
}

func (h *locationHandler) GetLocationsNearby(c *fiber.Ctx) error {
	lat, lng, err := queryCoordinates(c)
	if err != nil {
		return presentError(c, fiber.StatusBadRequest, domain.MessageFailedGetLocations, err)
	}
	maxKm := queryFloat(c, "max_distance_km", 10)

	locations, err := h.locationService.FindAllLocationsNear(c.Context(), lat, lng, maxKm)
	if err != nil {
		return presentServiceError(c, domain.MessageFailedGetLocations, err)
	}
	return presentSuccess(c, locations, fiber.StatusOK, domain.MessageSuccessGetLocations)
}

func queryCoordinates(c *fiber.Ctx) (float64, float64, error) {
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		return 0, 0, domain.NewValidationError("latitude", "must be a number")
	}
	lng, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		return 0, 0, domain.NewValidationError("longitude", "must be a number")
	}
	return lat, lng, nil
}

func queryFloat(c *fiber.Ctx, key string, fallback float64) float64 {
	value, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

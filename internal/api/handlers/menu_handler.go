package handlers

import (
	"Dining-Menu-Backend/domain"
	"Dining-Menu-Backend/pkg/menu"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MenuHandler interface {
		IngestMenu(c *fiber.Ctx) error
		CheckMenuExists(c *fiber.Ctx) error
		GetMenus(c *fiber.Ctx) error
		GetMenusWithFoods(c *fiber.Ctx) error
		GetMenusNearby(c *fiber.Ctx) error
		GetInformationSources(c *fiber.Ctx) error
	}

	menuHandler struct {
		menuService menu.MenuService
		validator   *validator.Validate
	}
)

func NewMenuHandler(menuService menu.MenuService, validator *validator.Validate) MenuHandler {
	return &menuHandler{
		menuService: menuService,
		validator:   validator,
	}
}

func (h *menuHandler) IngestMenu(c *fiber.Ctx) error {
	req := new(domain.IngestMenuRequest)

	if err := c.BodyParser(req); err != nil {
		return presentError(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presentError(c, fiber.StatusBadRequest, domain.MessageFailedIngestMenu, err)
	}

	menuID, err := h.menuService.IngestMenu(c.Context(), *req)
	if err != nil {
		return presentServiceError(c, domain.MessageFailedIngestMenu, err)
	}

	return presentSuccess(c, fiber.Map{"id": menuID}, fiber.StatusCreated, domain.MessageSuccessIngestMenu)
}

func (h *menuHandler) CheckMenuExists(c *fiber.Ctx) error {
	locationName := c.Query("location")
	start, end, err := queryWindow(c)
	if err != nil {
		return presentError(c, fiber.StatusBadRequest, domain.MessageFailedInvalidWindow, err)
	}

	exists, err := h.menuService.MenuExists(c.Context(), locationName, start, end)
	if err != nil {
		return presentServiceError(c, domain.MessageFailedGetMenus, err)
	}
	return presentSuccess(c, fiber.Map{"exists": exists}, fiber.StatusOK, domain.MessageSuccessMenuExists)
}

func (h *menuHandler) GetMenus(c *fiber.Ctx) error {
	locationName := c.Query("location")
	start, end, err := queryWindow(c)
	if err != nil {
		return presentError(c, fiber.StatusBadRequest, domain.MessageFailedInvalidWindow, err)
	}

	menus, err := h.menuService.GetMenusByLocationAndWindow(c.Context(), locationName, start, end)
	if err != nil {
		return presentServiceError(c, domain.MessageFailedGetMenus, err)
	}
	return presentSuccess(c, menus, fiber.StatusOK, domain.MessageSuccessGetMenus)
}

func (h *menuHandler) GetMenusWithFoods(c *fiber.Ctx) error {
	locationName := c.Query("location")
	start, end, err := queryWindow(c)
	if err != nil {
		return presentError(c, fiber.StatusBadRequest, domain.MessageFailedInvalidWindow, err)
	}

	menus, err := h.menuService.GetMenusWithFoods(c.Context(), locationName, start, end)
	if err != nil {
		return presentServiceError(c, domain.MessageFailedGetMenus, err)
	}
	return presentSuccess(c, menus, fiber.StatusOK, domain.MessageSuccessGetMenus)
}

func (h *menuHandler) GetMenusNearby(c *fiber.Ctx) error {
	lat, lng, err := queryCoordinates(c)
	if err != nil {
		return presentError(c, fiber.StatusBadRequest, domain.MessageFailedGetMenus, err)
	}
	start, end, err := queryWindow(c)
	if err != nil {
		return presentError(c, fiber.StatusBadRequest, domain.MessageFailedInvalidWindow, err)
	}
	maxKm := queryFloat(c, "max_distance_km", 10)

	menus, err := h.menuService.GetMenusNear(c.Context(), lat, lng, start, end, maxKm)
	if err != nil {
		return presentServiceError(c, domain.MessageFailedGetMenus, err)
	}
	return presentSuccess(c, menus, fiber.StatusOK, domain.MessageSuccessGetMenus)
}

func (h *menuHandler) GetInformationSources(c *fiber.Ctx) error {
	if name := c.Query("name"); name != "" {
		source, err := h.menuService.GetInformationSourceByName(c.Context(), name)
		if err != nil {
			return presentServiceError(c, domain.MessageFailedProcessRequest, err)
		}
		return presentSuccess(c, source, fiber.StatusOK, domain.MessageSuccessGetMenus)
	}

	sources, err := h.menuService.GetAllInformationSources(c.Context())
	if err != nil {
		return presentServiceError(c, domain.MessageFailedProcessRequest, err)
	}
	return presentSuccess(c, sources, fiber.StatusOK, domain.MessageSuccessGetMenus)
}

func queryWindow(c *fiber.Ctx) (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, c.Query("start_time"))
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("start_time", "must be a valid RFC 3339 timestamp")
	}
	end, err := time.Parse(time.RFC3339, c.Query("end_time"))
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("end_time", "must be a valid RFC 3339 timestamp")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, domain.NewValidationError("end_time", domain.ErrEndBeforeStart.Error())
	}
	return start, end, nil
}

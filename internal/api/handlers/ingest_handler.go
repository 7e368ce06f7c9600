package handlers

import (
	"Dining-Menu-Backend/domain"
	"Dining-Menu-Backend/pkg/ingest"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	IngestHandler interface {
		IngestBatch(c *fiber.Ctx) error
	}

	ingestHandler struct {
		ingestService ingest.IngestService
		validator     *validator.Validate
	}
)

func NewIngestHandler(ingestService ingest.IngestService, validator *validator.Validate) IngestHandler {
	return &ingestHandler{
		ingestService: ingestService,
		validator:     validator,
	}
}

func (h *ingestHandler) IngestBatch(c *fiber.Ctx) error {
	req := new(domain.IngestBatchRequest)

	if err := c.BodyParser(req); err != nil {
		return presentError(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presentError(c, fiber.StatusBadRequest, domain.MessageFailedIngestBatch, err)
	}

	result, err := h.ingestService.IngestBatch(c.Context(), *req)
	if err != nil {
		return presentServiceError(c, domain.MessageFailedIngestBatch, err)
	}

	return presentSuccess(c, result, fiber.StatusOK, domain.MessageSuccessIngestBatch)
}

package reconciliation

import (
	"errors"

	"record-reconciler/core/logger"
	"record-reconciler/core/reconcile"
	"record-reconciler/core/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CompareRequest carries two snapshots by content.
type CompareRequest struct {
	Old string `json:"old"`
	New string `json:"new"`
}

// Handler handles HTTP requests for reconciliations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reconcile")
	group.Get("/", h.HandleRun)
	group.Post("/", h.HandleCompare)
}

// HandleRun reconciles the snapshots named by the old and new query parameters,
// falling back to the configured locations. Only configured or allowlisted
// locations are accepted.
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	oldLocation := c.Query("old")
	newLocation := c.Query("new")
	l.Info("Reconciliation requested", zap.String("old", oldLocation), zap.String("new", newLocation))

	for _, location := range []string{oldLocation, newLocation} {
		if err := h.service.CheckLocation(location); err != nil {
			l.Warn("Rejected snapshot location", zap.String("location", location))
			return c.Status(StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
		}
	}

	res, err := h.service.Run(c.Context(), oldLocation, newLocation)
	if err != nil {
		l.Error("Reconciliation failed", zap.Error(err))
		return c.Status(StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(res)
}

// HandleCompare reconciles two snapshots posted as content.
func (h *Handler) HandleCompare(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CompareRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body: " + err.Error()})
	}

	res, err := h.service.Compare(c.Context(), req.Old, req.New)
	if err != nil {
		l.Error("Reconciliation failed", zap.Error(err))
		return c.Status(StatusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(res)
}

// StatusFor maps a reconciliation error to an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, source.ErrReadFailure):
		return fiber.StatusBadGateway
	case errors.Is(err, reconcile.ErrEmptyNew):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, reconcile.ErrMalformedRow), errors.Is(err, ErrLocationNotAllowed):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

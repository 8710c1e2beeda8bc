package simulator

import (
	"errors"

	"cached-inventory/core/logger"
	"cached-inventory/core/warehouse"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the simulated warehouse.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the simulator routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	group := app.Group("/warehouse/stock", h.injectFaults)
	group.Get("/", h.HandleList)
	group.Get("/:productId", h.HandleGetStock)
	group.Put("/:productId", h.HandleSetStock)
}

func (h *Handler) injectFaults(c *fiber.Ctx) error {
	if err := h.service.delay(c.UserContext()); err != nil {
		return err
	}
	if h.service.shouldFail() {
		logger.WithRayID(h.service.logger, c).Debug("Injected warehouse failure", zap.String("path", c.Path()))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "warehouse unavailable"})
	}
	return c.Next()
}

// HandleGetStock returns the stored quantity of a product.
func (h *Handler) HandleGetStock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("productId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	qty, err := h.service.GetStock(c.UserContext(), id)
	if errors.Is(err, warehouse.ErrProductNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to read stock", zap.Int("product_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(warehouse.StockPayload{ProductID: id, Quantity: qty})
}

// HandleSetStock stores the quantity of a product.
func (h *Handler) HandleSetStock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("productId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}

	var body warehouse.UpdatePayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.service.SetStock(c.UserContext(), id, body.Quantity); err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to store stock", zap.Int("product_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// HandleList returns every stored product.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	rows, err := h.service.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	items := make([]warehouse.StockPayload, 0, len(rows))
	for _, r := range rows {
		items = append(items, warehouse.StockPayload{ProductID: r.ProductID, Quantity: r.Quantity})
	}
	return c.JSON(items)
}

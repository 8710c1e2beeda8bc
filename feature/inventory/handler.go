package inventory

import (
	"errors"

	"cached-inventory/core/logger"
	"cached-inventory/core/stock"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NotEnoughStockMessage is the body of a rejected retrieve.
const NotEnoughStockMessage = "Not enough stock."

// QuantityOverflowMessage is the body of a rejected update that would overflow a quantity.
const QuantityOverflowMessage = "quantity out of range"

// StockRequest is the body of the retrieve and restock endpoints.
type StockRequest struct {
	ProductID int `json:"productId"`
	Amount    int `json:"amount"`
}

// Handler handles HTTP requests for stock.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the stock routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/stock")
	group.Get("/", h.HandleList)
	group.Get("/:productId", h.HandleGetStock)
	group.Post("/retrieve", h.HandleRetrieve)
	group.Post("/restock", h.HandleRestock)
}

// HandleGetStock returns the cached quantity of a product.
// @Summary Get Stock
// @Description Returns the cached quantity of a product. Unknown products report 0.
// @Tags stock
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {integer} int "Quantity"
// @Failure 400 {object} map[string]string "Invalid product id"
// @Router /stock/{productId} [get]
func (h *Handler) HandleGetStock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("productId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	return c.JSON(h.service.Quantity(id))
}

// HandleRetrieve takes stock out of the cache.
// @Summary Retrieve Stock
// @Description Atomically removes amount units of a product. Fails without changes when the cached quantity is too low.
// @Tags stock
// @Accept json
// @Produce plain
// @Param request body StockRequest true "Product and amount"
// @Success 200 "Stock retrieved"
// @Failure 400 {string} string "Not enough stock."
// @Router /stock/retrieve [post]
func (h *Handler) HandleRetrieve(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req StockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	left, err := h.service.Retrieve(req.ProductID, req.Amount)
	if errors.Is(err, stock.ErrInsufficientStock) {
		l.Info("Retrieve rejected",
			zap.Int("product_id", req.ProductID),
			zap.Int("amount", req.Amount),
			zap.Int("available", left),
		)
		return c.Status(fiber.StatusBadRequest).SendString(NotEnoughStockMessage)
	}
	if errors.Is(err, stock.ErrQuantityOverflow) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": QuantityOverflowMessage})
	}
	if err != nil {
		return err
	}

	l.Debug("Stock retrieved", zap.Int("product_id", req.ProductID), zap.Int("amount", req.Amount), zap.Int("quantity", left))
	// 200 with an empty body; SendStatus would write the status text.
	c.Status(fiber.StatusOK)
	return nil
}

// HandleRestock adds stock to the cache.
// @Summary Restock
// @Description Atomically adds amount units of a product.
// @Tags stock
// @Accept json
// @Param request body StockRequest true "Product and amount"
// @Success 200 "Stock added"
// @Failure 400 {object} map[string]string "Invalid request body or quantity out of range"
// @Router /stock/restock [post]
func (h *Handler) HandleRestock(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req StockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	qty, err := h.service.Restock(req.ProductID, req.Amount)
	if errors.Is(err, stock.ErrQuantityOverflow) {
		l.Info("Restock rejected",
			zap.Int("product_id", req.ProductID),
			zap.Int("amount", req.Amount),
			zap.Int("quantity", qty),
		)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": QuantityOverflowMessage})
	}
	if err != nil {
		return err
	}

	l.Debug("Stock restocked", zap.Int("product_id", req.ProductID), zap.Int("amount", req.Amount), zap.Int("quantity", qty))
	c.Status(fiber.StatusOK)
	return nil
}

// HandleList lists the cached stock.
// @Summary List Stock
// @Description Lists every cached product with its quantity, ordered by product id.
// @Tags stock
// @Produce json
// @Success 200 {object} Listing "Stock listing"
// @Router /stock [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

package reconciliation

import (
	"errors"

	"cached-inventory/core/logger"
	"cached-inventory/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/", h.HandleTrigger)
	group.Get("/", h.HandleStatus)
	group.Get("/plan", h.HandlePlan)
}

// HandleTrigger runs a reconciliation pass.
// @Summary Trigger Reconciliation
// @Description Pushes every cached quantity to the warehouse now. Joins the pass already running, if any.
// @Tags sync
// @Produce json
// @Success 200 {object} reconcile.PassReport "Pass report"
// @Failure 503 {object} map[string]string "Scheduler stopped"
// @Router /sync [post]
func (h *Handler) HandleTrigger(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Manual reconciliation requested")

	report, err := h.service.Trigger(c.UserContext())
	if errors.Is(err, reconcile.ErrStopped) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Manual reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleStatus returns the scheduler state.
// @Summary Reconciliation Status
// @Description Returns the scheduler state (idle, running, stopped) and the last pass report.
// @Tags sync
// @Produce json
// @Success 200 {object} Status "Scheduler status"
// @Router /sync [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

// HandlePlan compares cache and warehouse.
// @Summary Plan Reconciliation
// @Description Reads every cached product from the warehouse and reports which ones a pass would change. Nothing is written.
// @Tags sync
// @Produce json
// @Success 200 {object} reconcile.Plan "Plan"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/plan [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	plan, err := h.service.Plan(c.UserContext())
	if err != nil {
		l.Error("Reconciliation plan failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Reconciliation plan built",
		zap.Int("products", plan.Summary.Products),
		zap.Int("updates", plan.Summary.Updates),
		zap.Int("creates", plan.Summary.Creates),
	)
	return c.JSON(plan)
}

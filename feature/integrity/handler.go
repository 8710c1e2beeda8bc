package integrity

import (
	"cached-inventory/core/logger"
	"cached-inventory/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/snapshot", h.HandleSnapshotCheck)
	group.Get("/warehouse", h.HandleWarehouseCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Checks the stored snapshot against the cache, warehouse reachability and, for the database driver, the warehouse table schema.
// @Tags integrity
// @Produce json
// @Success 200 {object} Report "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := h.service.CheckAll(c.UserContext())
	if !report.Healthy() {
		l.Warn("Integrity checks reported problems",
			zap.String("snapshot", report.Snapshot.Status),
			zap.String("warehouse", report.Warehouse.Status),
			zap.String("schema", report.Schema.Status),
		)
	}
	return c.JSON(report)
}

// HandleSnapshotCheck checks and optionally rewrites the snapshot.
// @Summary Check Snapshot
// @Description Loads the stored snapshot and counts products that differ from the live cache. Optionally rewrites it from the cache.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Rewrite the snapshot from the cache"
// @Success 200 {object} checks.SnapshotReport "Snapshot Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/snapshot [get]
func (h *Handler) HandleSnapshotCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	report := h.service.CheckSnapshot(c.UserContext())
	if report.Drift > 0 || report.Status != checks.StatusOK {
		l.Warn("Snapshot differs from cache", zap.String("status", report.Status), zap.Int("drift", report.Drift))

		if fix {
			l.Info("Rewriting snapshot from cache")
			if err := h.service.FixSnapshot(c.UserContext()); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to rewrite snapshot",
					"details": err.Error(),
				})
			}
			report = h.service.CheckSnapshot(c.UserContext())
		}
	}

	return c.JSON(report)
}

// HandleWarehouseCheck pings the warehouse.
// @Summary Check Warehouse
// @Description Checks that the warehouse answers its health endpoint or database ping.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.WarehouseReport "Warehouse Report"
// @Router /integrity/warehouse [get]
func (h *Handler) HandleWarehouseCheck(c *fiber.Ctx) error {
	report := h.service.CheckWarehouse(c.UserContext())
	if report.Error != "" {
		logger.WithRayID(h.service.logger, c).Warn("Warehouse unreachable", zap.String("error", report.Error))
	}
	return c.JSON(report)
}

// HandleSchemaCheck checks the warehouse table.
// @Summary Check Warehouse Schema
// @Description Checks that the warehouse_stock table has the columns the database driver writes. Skipped for the HTTP driver.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckSchema())
}

package reports

import (
	"equipment-tracker/core/apperr"
	"equipment-tracker/core/logger"
	"equipment-tracker/core/middleware/auth"
	"equipment-tracker/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the report routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/admin", auth.RequireRole(server.RoleAdmin))
	group.Get("/dashboard", h.HandleDashboard)
	group.Get("/exports", h.HandleListExports)
	group.Post("/exports/history", h.HandleExportHistory)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	if apperr.KindOf(err) == apperr.KindInternal {
		logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	}
	return apperr.Write(c, err)
}

// HandleDashboard returns inventory statistics.
// @Summary Dashboard
// @Description Inventory and loan statistics.
// @Tags reports
// @Produce json
// @Success 200 {object} reports.Dashboard
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security ApiKeyAuth
// @Router /api/admin/dashboard [get]
func (h *Handler) HandleDashboard(c *fiber.Ctx) error {
	d, err := h.service.Dashboard(c.Context(), auth.RoleFrom(c))
	if err != nil {
		return h.fail(c, "Dashboard failed", err)
	}
	return c.JSON(d)
}

// HandleExportHistory uploads a history snapshot to object storage.
// @Summary Export History
// @Tags reports
// @Produce json
// @Param search query string false "History filter"
// @Success 201 {object} reports.ExportInfo
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/admin/exports/history [post]
func (h *Handler) HandleExportHistory(c *fiber.Ctx) error {
	info, err := h.service.ExportHistory(c.Context(), auth.RoleFrom(c), c.Query("search"))
	if err != nil {
		return h.fail(c, "History export failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(info)
}

// HandleListExports lists stored history snapshots.
// @Summary List Exports
// @Tags reports
// @Produce json
// @Success 200 {array} reports.ExportInfo
// @Security ApiKeyAuth
// @Router /api/admin/exports [get]
func (h *Handler) HandleListExports(c *fiber.Ctx) error {
	out, err := h.service.ListExports(c.Context(), auth.RoleFrom(c))
	if err != nil {
		return h.fail(c, "Export listing failed", err)
	}
	return c.JSON(out)
}

package integrity

import (
	"equipment-tracker/core/apperr"
	"equipment-tracker/core/logger"
	"equipment-tracker/core/middleware/auth"
	"equipment-tracker/core/reconcile"
	"equipment-tracker/core/server"
	"equipment-tracker/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/admin/integrity", auth.RequireRole(server.RoleAdmin))
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/ledger", h.HandleLedgerCheck)
	group.Get("/ledger/:id", h.HandleLedgerItem)
	group.Get("/server", h.HandleServerCheck)
	group.Get("/storage", h.HandleStorageCheck)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	if apperr.KindOf(err) == apperr.KindInternal {
		logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	}
	return apperr.Write(c, err)
}

// failed logs err and returns its client-facing report entry.
func (h *Handler) failed(l *zap.Logger, check string, err error) fiber.Map {
	l.Error("Integrity check failed", zap.String("check", check), zap.Error(err))
	return fiber.Map{"status": "error", "error": apperr.Body(err)["error"]}
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Runs the ledger audit (report only), the schema check and the storage check.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security ApiKeyAuth
// @Router /api/admin/integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	role := auth.RoleFrom(c)
	report := make(map[string]interface{})

	if plan, err := h.service.AuditLedger(ctx, role, reconcile.ReconcileOptions{}); err != nil {
		report["ledger"] = h.failed(l, "ledger", err)
	} else {
		report["ledger"] = plan.Summary
	}

	if schema, err := h.service.CheckSchema(role); err != nil {
		report["server"] = h.failed(l, "server", err)
	} else {
		report["server"] = schema
	}

	if bucket, err := h.service.CheckStorage(ctx, role, false); err != nil {
		report["storage"] = h.failed(l, "storage", err)
	} else {
		report["storage"] = bucket
	}

	return c.JSON(report)
}

// HandleLedgerCheck audits equipment counters against the checkout ledger.
// @Summary Audit Ledger
// @Description Compares every item's counters with its outstanding checkouts. repair=true applies the repairable fixes, purge=true deletes checkouts of deleted items.
// @Tags integrity
// @Produce json
// @Param repair query boolean false "Repair drifted counters"
// @Param purge query boolean false "Purge orphaned checkouts"
// @Success 200 {object} integrity.LedgerReport
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/admin/integrity/ledger [get]
func (h *Handler) HandleLedgerCheck(c *fiber.Ctx) error {
	opts := reconcile.ReconcileOptions{
		DoRepair: c.QueryBool("repair"),
		DoPurge:  c.QueryBool("purge"),
	}
	opts.Confirmed = opts.DoRepair || opts.DoPurge

	report, err := h.service.AuditLedger(c.Context(), auth.RoleFrom(c), opts)
	if err != nil {
		return h.fail(c, "Ledger audit failed", err)
	}
	if report.Summary.Drifted > 0 || report.Summary.Orphans > 0 {
		logger.WithRayID(h.service.logger, c).Warn("Ledger drift detected",
			zap.Int("drifted", report.Summary.Drifted),
			zap.Int("orphans", report.Summary.Orphans),
			zap.Int("executed", report.Executed))
	}
	return c.JSON(report)
}

// HandleLedgerItem audits a single item.
// @Summary Audit Ledger Item
// @Tags integrity
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 200 {object} reconcile.ReconcileResult
// @Failure 404 {object} map[string]string "Not Found"
// @Security ApiKeyAuth
// @Router /api/admin/integrity/ledger/{id} [get]
func (h *Handler) HandleLedgerItem(c *fiber.Ctx) error {
	result, err := h.service.AuditItem(c.Context(), auth.RoleFrom(c), c.Params("id"))
	if err != nil {
		return h.fail(c, "Ledger audit failed", err)
	}
	return c.JSON(result)
}

// HandleServerCheck checks database schema integrity.
// @Summary Check Server Schema
// @Description Checks that the database tables expose every column the models map.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/admin/integrity/server [get]
func (h *Handler) HandleServerCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckSchema(auth.RoleFrom(c))
	if err != nil {
		return h.fail(c, "Server schema check failed", err)
	}
	return c.JSON(report)
}

// HandleStorageCheck checks and optionally fixes the export bucket.
// @Summary Check Storage
// @Description Checks that the export bucket exists. Optionally creates it.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Create the bucket when missing"
// @Success 200 {object} checks.StorageReport "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /api/admin/integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	report, err := h.service.CheckStorage(c.Context(), auth.RoleFrom(c), c.QueryBool("fix"))
	if err != nil {
		return h.fail(c, "Storage check failed", err)
	}
	return c.JSON(report)
}

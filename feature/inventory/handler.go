package inventory

import (
	"time"

	"equipment-tracker/core/apperr"
	"equipment-tracker/core/logger"
	"equipment-tracker/core/middleware/auth"
	"equipment-tracker/core/server"
	"equipment-tracker/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog, checkouts and returns.
type Handler struct {
	service     *Service
	logger      *zap.Logger
	returnLimit int
}

// NewHandler creates a new HTTP handler. returnLimit caps return attempts per
// client IP per minute; zero disables the limit.
func NewHandler(service *Service, logger *zap.Logger, returnLimit int) *Handler {
	return &Handler{service: service, logger: logger, returnLimit: returnLimit}
}

// RegisterRoutes registers the public and admin routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	api := app.Group("/api")
	api.Get("/equipment", h.HandleCatalog)
	api.Get("/equipment/:id", h.HandleCatalogItem)
	api.Get("/equipment/:id/active-checkouts", h.HandleActiveCheckouts)
	api.Get("/equipment/:id/return-preview", h.HandleReturnPreview)
	api.Post("/checkout", h.HandleCheckout)
	api.Post("/return", h.returnLimiter(), h.HandleReturn)

	admin := api.Group("/admin", auth.RequireRole(server.RoleAdmin))
	admin.Get("/equipment", h.HandleListEquipment)
	admin.Get("/equipment/:id", h.HandleEquipmentDetail)
	admin.Post("/equipment", h.HandleCreateEquipment)
	admin.Patch("/equipment/:id", h.HandleUpdateEquipment)
	admin.Post("/equipment/:id/:action", h.HandleSetState)
	admin.Delete("/equipment/:id", h.HandleDeleteEquipment)
	admin.Get("/checkouts", h.HandleHistory)
	admin.Get("/checkouts/active", h.HandleActiveLedger)
	admin.Post("/checkouts/:id/force-return", h.HandleForceReturn)
	admin.Delete("/checkouts/:id", h.HandleDeleteCheckout)
}

func (h *Handler) returnLimiter() fiber.Handler {
	if h.returnLimit <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        h.returnLimit,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|return"
		},
		LimitReached: func(c *fiber.Ctx) error {
			logger.WithRayID(h.logger, c).Warn("Return rate limit hit", zap.String("ip", c.IP()))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many return attempts. Please try again later.",
			})
		},
	})
}

// fail writes err and logs internal failures with the ray id.
func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	if apperr.KindOf(err) == apperr.KindInternal {
		logger.WithRayID(h.logger, c).Error(msg, zap.Error(err))
	}
	return apperr.Write(c, err)
}

func (h *Handler) parse(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperr.Validation("Invalid request body")
	}
	return nil
}

func filterFrom(c *fiber.Ctx) models.ListFilter {
	return models.ListFilter{
		Search:   c.Query("search"),
		Category: models.Category(c.Query("category")),
	}
}

// HandleCatalog lists active equipment.
// @Summary List Equipment
// @Description List active equipment in the public catalog.
// @Tags equipment
// @Produce json
// @Param search query string false "Name filter"
// @Param category query string false "Category filter"
// @Success 200 {array} models.PublicEquipment
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/equipment [get]
func (h *Handler) HandleCatalog(c *fiber.Ctx) error {
	items, err := h.service.Catalog(c.Context(), filterFrom(c))
	if err != nil {
		return h.fail(c, "Catalog listing failed", err)
	}
	return c.JSON(items)
}

// HandleCatalogItem returns one catalog item.
// @Summary Get Equipment
// @Tags equipment
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 200 {object} models.PublicEquipment
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/equipment/{id} [get]
func (h *Handler) HandleCatalogItem(c *fiber.Ctx) error {
	item, err := h.service.CatalogItem(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Catalog lookup failed", err)
	}
	return c.JSON(item)
}

// HandleActiveCheckouts lists who currently holds an item.
// @Summary Active Checkouts
// @Tags equipment
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 200 {array} models.PublicCheckout
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/equipment/{id}/active-checkouts [get]
func (h *Handler) HandleActiveCheckouts(c *fiber.Ctx) error {
	out, err := h.service.ActiveCheckouts(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, "Active checkout lookup failed", err)
	}
	return c.JSON(out)
}

// HandleReturnPreview suggests a return breakdown.
// @Summary Return Preview
// @Tags checkout
// @Produce json
// @Param id path string true "Equipment ID"
// @Param borrower query string false "Borrower name"
// @Success 200 {object} models.ReturnPreview
// @Failure 404 {object} map[string]string "Not Found"
// @Router /api/equipment/{id}/return-preview [get]
func (h *Handler) HandleReturnPreview(c *fiber.Ctx) error {
	p, err := h.service.PreviewReturn(c.Context(), c.Params("id"), c.Query("borrower"))
	if err != nil {
		return h.fail(c, "Return preview failed", err)
	}
	return c.JSON(p)
}

// HandleCheckout checks equipment out.
// @Summary Checkout Equipment
// @Description Check units out under a 4-digit PIN. Returns a merge prompt when the borrower already holds this item.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Checkout"
// @Success 200 {object} models.CheckoutResult "Merge prompt"
// @Success 201 {object} models.CheckoutResult "Checked out"
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]interface{} "Insufficient Quantity"
// @Router /api/checkout [post]
func (h *Handler) HandleCheckout(c *fiber.Ctx) error {
	var req models.CheckoutRequest
	if err := h.parse(c, &req); err != nil {
		return h.fail(c, "Checkout failed", err)
	}
	res, err := h.service.Checkout(c.Context(), &req)
	if err != nil {
		return h.fail(c, "Checkout failed", err)
	}
	if res.MergePrompt {
		return c.JSON(res)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// HandleReturn returns equipment.
// @Summary Return Equipment
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body models.ReturnRequest true "Return"
// @Success 200 {object} models.ReturnResult
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 403 {object} map[string]string "PIN Mismatch"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 429 {object} map[string]string "Too Many Requests"
// @Router /api/return [post]
func (h *Handler) HandleReturn(c *fiber.Ctx) error {
	var req models.ReturnRequest
	if err := h.parse(c, &req); err != nil {
		return h.fail(c, "Return failed", err)
	}
	res, err := h.service.Return(c.Context(), &req)
	if err != nil {
		if apperr.Is(err, apperr.KindForbidden) {
			logger.WithRayID(h.logger, c).Warn("Return PIN mismatch", zap.String("equipment_id", req.EquipmentID))
		}
		return h.fail(c, "Return failed", err)
	}
	return c.JSON(res)
}

// HandleListEquipment lists equipment for administration.
// @Summary Admin List Equipment
// @Tags admin
// @Produce json
// @Param view query string false "active, reserved or archived"
// @Param search query string false "Name filter"
// @Param category query string false "Category filter"
// @Success 200 {array} models.Equipment
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security ApiKeyAuth
// @Router /api/admin/equipment [get]
func (h *Handler) HandleListEquipment(c *fiber.Ctx) error {
	view, ok := models.ParseView(c.Query("view"))
	if !ok {
		return apperr.Write(c, apperr.Validation("Invalid view: %s", c.Query("view")))
	}
	items, err := h.service.ListEquipment(c.Context(), auth.RoleFrom(c), view, filterFrom(c))
	if err != nil {
		return h.fail(c, "Equipment listing failed", err)
	}
	return c.JSON(items)
}

// HandleEquipmentDetail returns an item with its active checkouts.
// @Summary Equipment Detail
// @Tags admin
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 200 {object} models.EquipmentDetail
// @Failure 404 {object} map[string]string "Not Found"
// @Security ApiKeyAuth
// @Router /api/admin/equipment/{id} [get]
func (h *Handler) HandleEquipmentDetail(c *fiber.Ctx) error {
	d, err := h.service.EquipmentDetail(c.Context(), auth.RoleFrom(c), c.Params("id"))
	if err != nil {
		return h.fail(c, "Equipment detail failed", err)
	}
	return c.JSON(d)
}

// HandleCreateEquipment creates an item.
// @Summary Create Equipment
// @Tags admin
// @Accept json
// @Produce json
// @Param request body models.CreateEquipmentRequest true "Equipment"
// @Success 201 {object} models.Equipment
// @Failure 400 {object} map[string]string "Validation Error"
// @Security ApiKeyAuth
// @Router /api/admin/equipment [post]
func (h *Handler) HandleCreateEquipment(c *fiber.Ctx) error {
	var req models.CreateEquipmentRequest
	if err := h.parse(c, &req); err != nil {
		return h.fail(c, "Create equipment failed", err)
	}
	e, err := h.service.CreateEquipment(c.Context(), auth.RoleFrom(c), &req)
	if err != nil {
		return h.fail(c, "Create equipment failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

// HandleUpdateEquipment patches an item.
// @Summary Update Equipment
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID"
// @Param request body models.UpdateEquipmentRequest true "Patch"
// @Success 200 {object} models.Equipment
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Security ApiKeyAuth
// @Router /api/admin/equipment/{id} [patch]
func (h *Handler) HandleUpdateEquipment(c *fiber.Ctx) error {
	var req models.UpdateEquipmentRequest
	if err := h.parse(c, &req); err != nil {
		return h.fail(c, "Update equipment failed", err)
	}
	e, err := h.service.UpdateEquipment(c.Context(), auth.RoleFrom(c), c.Params("id"), &req)
	if err != nil {
		return h.fail(c, "Update equipment failed", err)
	}
	return c.JSON(e)
}

// HandleSetState retires, restores, reserves or unreserves an item.
// @Summary Change Equipment State
// @Tags admin
// @Produce json
// @Param id path string true "Equipment ID"
// @Param action path string true "retire, restore, reserve or unreserve"
// @Success 200 {object} models.Equipment
// @Failure 404 {object} map[string]string "Not Found"
// @Security ApiKeyAuth
// @Router /api/admin/equipment/{id}/{action} [post]
func (h *Handler) HandleSetState(c *fiber.Ctx) error {
	e, err := h.service.SetState(c.Context(), auth.RoleFrom(c), c.Params("id"), Action(c.Params("action")))
	if err != nil {
		return h.fail(c, "Equipment state change failed", err)
	}
	return c.JSON(e)
}

// HandleDeleteEquipment deletes an item without active checkouts.
// @Summary Delete Equipment
// @Tags admin
// @Param id path string true "Equipment ID"
// @Success 204
// @Failure 409 {object} map[string]interface{} "Active Checkouts"
// @Security ApiKeyAuth
// @Router /api/admin/equipment/{id} [delete]
func (h *Handler) HandleDeleteEquipment(c *fiber.Ctx) error {
	if err := h.service.DeleteEquipment(c.Context(), auth.RoleFrom(c), c.Params("id")); err != nil {
		return h.fail(c, "Delete equipment failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleHistory lists checkout history.
// @Summary Checkout History
// @Tags admin
// @Produce json
// @Param search query string false "Borrower, team, equipment, location, contact or AV member"
// @Success 200 {array} models.HistoryEntry
// @Security ApiKeyAuth
// @Router /api/admin/checkouts [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	out, err := h.service.History(c.Context(), auth.RoleFrom(c), c.Query("search"))
	if err != nil {
		return h.fail(c, "History listing failed", err)
	}
	return c.JSON(out)
}

// HandleActiveLedger lists every active checkout.
// @Summary Active Checkouts (Admin)
// @Tags admin
// @Produce json
// @Success 200 {array} models.HistoryEntry
// @Security ApiKeyAuth
// @Router /api/admin/checkouts/active [get]
func (h *Handler) HandleActiveLedger(c *fiber.Ctx) error {
	out, err := h.service.ActiveLedger(c.Context(), auth.RoleFrom(c))
	if err != nil {
		return h.fail(c, "Active ledger listing failed", err)
	}
	return c.JSON(out)
}

// HandleForceReturn returns units against a record without a PIN.
// @Summary Force Return
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Checkout ID"
// @Param request body models.ForceReturnRequest true "Return"
// @Success 200 {object} models.ReturnResult
// @Failure 400 {object} map[string]string "Validation Error"
// @Failure 404 {object} map[string]string "Not Found"
// @Security ApiKeyAuth
// @Router /api/admin/checkouts/{id}/force-return [post]
func (h *Handler) HandleForceReturn(c *fiber.Ctx) error {
	var req models.ForceReturnRequest
	if err := h.parse(c, &req); err != nil {
		return h.fail(c, "Force return failed", err)
	}
	res, err := h.service.ForceReturn(c.Context(), auth.RoleFrom(c), c.Params("id"), &req)
	if err != nil {
		return h.fail(c, "Force return failed", err)
	}
	return c.JSON(res)
}

// HandleDeleteCheckout deletes a fully returned record.
// @Summary Delete Checkout
// @Tags admin
// @Param id path string true "Checkout ID"
// @Success 204
// @Failure 409 {object} map[string]interface{} "Still Active"
// @Security ApiKeyAuth
// @Router /api/admin/checkouts/{id} [delete]
func (h *Handler) HandleDeleteCheckout(c *fiber.Ctx) error {
	if err := h.service.DeleteCheckout(c.Context(), auth.RoleFrom(c), c.Params("id")); err != nil {
		return h.fail(c, "Delete checkout failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

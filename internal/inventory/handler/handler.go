package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"medtrack_backend/internal/inventory/service"
	"medtrack_backend/internal/inventory/transport"
	"medtrack_backend/platform/httpkit"
	"medtrack_backend/platform/validator"
)

// Handler handles HTTP requests for inventory.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest      = "invalid request"
	msgValidationFailed    = "validation failed"
	msgInvalidMedicationID = "invalid medication ID"
)

// New creates a new inventory handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// GetByMedication retrieves the stock level for a medication.
// GET /api/v1/medications/:id/inventory
func (h *Handler) GetByMedication(c *gin.Context) {
	medicationID, ok := h.medicationID(c)
	if !ok {
		return
	}

	result, err := h.svc.GetByMedication(c.Request.Context(), medicationID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Adjust sets the absolute unit count for a medication.
// PUT /api/v1/medications/:id/inventory
func (h *Handler) Adjust(c *gin.Context) {
	medicationID, ok := h.medicationID(c)
	if !ok {
		return
	}

	var req transport.AdjustInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Adjust(c.Request.Context(), medicationID, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Deduct decrements the unit count for a medication.
// POST /api/v1/medications/:id/inventory/deduct
func (h *Handler) Deduct(c *gin.Context) {
	medicationID, ok := h.medicationID(c)
	if !ok {
		return
	}

	var req transport.DeductInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Deduct(c.Request.Context(), medicationID, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// SetPackageCounts updates the per-size package counts for a medication.
// PUT /api/v1/medications/:id/inventory/packages
func (h *Handler) SetPackageCounts(c *gin.Context) {
	medicationID, ok := h.medicationID(c)
	if !ok {
		return
	}

	var req transport.PackageCountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.SetPackageCounts(c.Request.Context(), medicationID, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ListLogs retrieves recent inventory changes for a medication.
// GET /api/v1/medications/:id/inventory/logs
func (h *Handler) ListLogs(c *gin.Context) {
	medicationID, ok := h.medicationID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	result, err := h.svc.ListLogs(c.Request.Context(), medicationID, limit)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ListLowStock retrieves medications at or below the stock threshold.
// GET /api/v1/inventory/low-stock
func (h *Handler) ListLowStock(c *gin.Context) {
	result, err := h.svc.ListLowStock(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

func (h *Handler) medicationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidMedicationID, nil)
		return uuid.Nil, false
	}
	return id, true
}

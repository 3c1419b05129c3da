package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medtrack_backend/internal/scanner/service"
	"medtrack_backend/internal/scanner/transport"
	"medtrack_backend/platform/httpkit"
	"medtrack_backend/platform/validator"
)

// Handler handles HTTP requests for barcode scanning.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new scanner handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Scan classifies a decoded barcode and resolves it against the catalog.
// POST /api/v1/scanner/scan
func (h *Handler) Scan(c *gin.Context) {
	var req transport.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Scan(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Package scanner provides the barcode scanning bounded context module.
// It classifies decoded barcode content into national pharmaceutical
// numbering schemes and resolves matches against the package catalog.
package scanner

import (
	"medtrack_backend/internal/events"
	apphttp "medtrack_backend/internal/http"
	"medtrack_backend/internal/scanner/handler"
	"medtrack_backend/internal/scanner/service"
	"medtrack_backend/platform/logger"
	"medtrack_backend/platform/validator"
)

// Module is the scanner bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the scanner module. The PackageFinder is
// an adapter over the medications module, wired by the composition root.
func NewModule(finder service.PackageFinder, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(finder, bus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "scanner"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts scanner routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/scanner/scan", m.handler.Scan)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

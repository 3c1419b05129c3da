// Package inventory provides the stock tracking bounded context module.
// It maintains per-medication unit counts with an append-only change log.
package inventory

import (
	"medtrack_backend/internal/events"
	apphttp "medtrack_backend/internal/http"
	"medtrack_backend/internal/inventory/handler"
	"medtrack_backend/internal/inventory/repository"
	"medtrack_backend/internal/inventory/service"
	"medtrack_backend/platform/config"
	"medtrack_backend/platform/logger"
	"medtrack_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the inventory bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the inventory module with all its dependencies.
func NewModule(pool *pgxpool.Pool, bus events.Bus, val *validator.Validator, cfg config.InventoryConfig, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, bus, log, cfg.GetLowStockThresholdUnits())
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "inventory"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts inventory routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	meds := ctx.V1.Group("/medications/:id/inventory")
	meds.GET("", m.handler.GetByMedication)
	meds.PUT("", m.handler.Adjust)
	meds.POST("/deduct", m.handler.Deduct)
	meds.PUT("/packages", m.handler.SetPackageCounts)
	meds.GET("/logs", m.handler.ListLogs)

	ctx.V1.GET("/inventory/low-stock", m.handler.ListLowStock)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

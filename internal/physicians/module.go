// Package physicians provides the prescriber directory bounded context module.
package physicians

import (
	apphttp "medtrack_backend/internal/http"
	"medtrack_backend/internal/physicians/handler"
	"medtrack_backend/internal/physicians/repository"
	"medtrack_backend/internal/physicians/service"
	"medtrack_backend/platform/config"
	"medtrack_backend/platform/logger"
	"medtrack_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the physicians bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the physicians module with all its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, cfg config.PhoneConfig, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log, cfg.GetPhoneDefaultRegion())
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "physicians"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts physician routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/physicians")
	group.GET("", m.handler.List)
	group.POST("", m.handler.Create)
	group.GET("/:id", m.handler.GetByID)
	group.PATCH("/:id", m.handler.Update)
	group.DELETE("/:id", m.handler.Delete)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

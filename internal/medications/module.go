// Package medications provides the medication catalog bounded context module.
// It manages medications and their product packages, including national
// pharmaceutical number classification on package create and update.
package medications

import (
	apphttp "medtrack_backend/internal/http"
	"medtrack_backend/internal/medications/handler"
	"medtrack_backend/internal/medications/repository"
	"medtrack_backend/internal/medications/service"
	"medtrack_backend/platform/logger"
	"medtrack_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the medications bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the medications module with all its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "medications"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the repository for direct access if needed.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts medication and package routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	meds := ctx.V1.Group("/medications")
	meds.GET("", m.handler.List)
	meds.POST("", m.handler.Create)
	meds.GET("/:id", m.handler.GetByID)
	meds.PATCH("/:id", m.handler.Update)
	meds.DELETE("/:id", m.handler.Delete)
	meds.GET("/:id/packages", m.handler.ListPackages)
	meds.POST("/:id/packages", m.handler.CreatePackage)

	packages := ctx.V1.Group("/packages")
	packages.GET("/:id", m.handler.GetPackageByID)
	packages.PATCH("/:id", m.handler.UpdatePackage)
	packages.DELETE("/:id", m.handler.DeletePackage)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

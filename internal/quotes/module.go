// Package quotes provides the quotes bounded context module.
package quotes

import (
	apphttp "saas_cpq_api/internal/http"
	"saas_cpq_api/internal/quotes/handler"
	"saas_cpq_api/internal/quotes/repository"
	"saas_cpq_api/internal/quotes/service"
	"saas_cpq_api/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the quotes bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates a new quotes module with all dependencies wired.
func NewModule(pool *pgxpool.Pool, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "quotes"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts quote routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.API)
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)

// Package customers provides the customers bounded context module.
package customers

import (
	"saas_cpq_api/internal/customers/handler"
	"saas_cpq_api/internal/customers/repository"
	"saas_cpq_api/internal/customers/service"
	apphttp "saas_cpq_api/internal/http"
	"saas_cpq_api/platform/logger"
	"saas_cpq_api/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the customers bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates a new customers module with all dependencies wired.
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
	return "customers"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts customer routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.API)
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)

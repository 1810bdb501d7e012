// Package inquiries provides the inquiries bounded context module.
// Sales representatives capture, search, update and delete customer inquiries.
package inquiries

import (
	apphttp "inquiry_portal_backend/internal/http"
	"inquiry_portal_backend/internal/inquiries/handler"
	"inquiry_portal_backend/internal/inquiries/ports"
	"inquiry_portal_backend/internal/inquiries/repository"
	"inquiry_portal_backend/internal/inquiries/service"
	"inquiry_portal_backend/platform/httpkit"
	"inquiry_portal_backend/platform/logger"
	"inquiry_portal_backend/platform/metrics"
	"inquiry_portal_backend/platform/phone"
	"inquiry_portal_backend/platform/validator"
)

// Roles allowed to use the inquiry routes.
const (
	RoleSalesRep = "SALES_REP"
	RoleAdmin    = "ADMIN"
)

// Module is the inquiries bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the inquiries module with all its dependencies.
func NewModule(repo repository.Repository, users ports.UserExistenceChecker, normalizer *phone.Normalizer, val *validator.Validator, log *logger.Logger, m *metrics.Metrics) *Module {
	svc := service.New(repo, users, normalizer, log, service.WithMetrics(m))
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "inquiries"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts inquiry routes on the protected group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Protected.Group("/inquiries", httpkit.RequireAnyRole(RoleSalesRep, RoleAdmin))
	m.handler.RegisterRoutes(group)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)

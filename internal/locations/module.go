// Package locations provides the read-only country, state and city
// reference data used by the inquiry form's cascading selects.
package locations

import (
	apphttp "inquiry_portal_backend/internal/http"
	"inquiry_portal_backend/internal/locations/handler"
	"inquiry_portal_backend/internal/locations/repository"
	"inquiry_portal_backend/internal/locations/service"
)

// Module is the locations module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule wires the module over an already loaded provider.
func NewModule(provider *repository.Provider) *Module {
	svc := service.New(provider)
	return &Module{handler: handler.New(svc), service: svc}
}

func (m *Module) Name() string {
	return "locations"
}

func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts location routes on the protected group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/locations"))
}

var _ apphttp.Module = (*Module)(nil)

package handler

import (
	"inquiry_portal_backend/internal/locations/service"
	"inquiry_portal_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for location reference data.
type Handler struct {
	svc *service.Service
}

func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/countries", h.ListCountries)
	rg.GET("/countries/:country/states", h.ListStates)
	rg.GET("/countries/:country/states/:state/cities", h.ListCities)
	rg.GET("/defaults", h.GetDefaults)
}

// ListCountries GET /api/v1/locations/countries
func (h *Handler) ListCountries(c *gin.Context) {
	httpkit.OK(c, h.svc.Countries())
}

// ListStates GET /api/v1/locations/countries/:country/states
func (h *Handler) ListStates(c *gin.Context) {
	result, err := h.svc.States(c.Param("country"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ListCities GET /api/v1/locations/countries/:country/states/:state/cities
func (h *Handler) ListCities(c *gin.Context) {
	result, err := h.svc.Cities(c.Param("country"), c.Param("state"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// GetDefaults GET /api/v1/locations/defaults
func (h *Handler) GetDefaults(c *gin.Context) {
	httpkit.OK(c, h.svc.Defaults())
}

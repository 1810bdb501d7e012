package handler

import (
	"net/http"

	"inquiry_portal_backend/internal/inquiries/domain"
	"inquiry_portal_backend/internal/inquiries/service"
	"inquiry_portal_backend/internal/inquiries/transport"
	"inquiry_portal_backend/platform/httpkit"
	"inquiry_portal_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// maxBodyBytes caps create and update bodies.
const maxBodyBytes = 1 << 20

// Handler handles HTTP requests for inquiries.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new inquiries handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes mounts the inquiry resource on rg.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.Get)
	rg.POST("", h.Create)
	rg.PUT("", h.Update)
	rg.DELETE("", h.Delete)
	rg.GET("/options", h.Options)
}

// Get returns one inquiry when ?id is present, otherwise the filtered list.
// GET /api/v1/inquiries
func (h *Handler) Get(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		result, err := h.svc.GetByID(c.Request.Context(), id)
		if httpkit.HandleError(c, err) {
			return
		}
		httpkit.OK(c, result)
		return
	}

	var query transport.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.HandleError(c, domain.ErrInvalidFormat("query").WithDetails(map[string]interface{}{"field": "query", "details": err.Error()}))
		return
	}
	if err := h.val.Struct(query); err != nil {
		httpkit.HandleError(c, domain.ErrInvalidFormat("query").WithDetails(map[string]interface{}{
			"field":   "query",
			"details": validator.FieldErrors(err),
		}))
		return
	}

	result, err := h.svc.List(c.Request.Context(), query)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Create stores one inquiry or an array of inquiries.
// POST /api/v1/inquiries
func (h *Handler) Create(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	body, err := readBody(c)
	if httpkit.HandleError(c, err) {
		return
	}
	payloads, err := transport.DecodeCreateBody(body)
	if httpkit.HandleError(c, err) {
		return
	}

	result, err := h.svc.Create(c.Request.Context(), identity, payloads)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}

// Update applies a partial update to ?id.
// PUT /api/v1/inquiries
func (h *Handler) Update(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	id := c.Query("id")
	if id == "" {
		httpkit.HandleError(c, domain.ErrMissingID())
		return
	}

	body, err := readBody(c)
	if httpkit.HandleError(c, err) {
		return
	}
	payload, err := transport.DecodeUpdateBody(body)
	if httpkit.HandleError(c, err) {
		return
	}

	result, err := h.svc.Update(c.Request.Context(), identity, id, payload)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Delete removes ?id and returns the removed record.
// DELETE /api/v1/inquiries
func (h *Handler) Delete(c *gin.Context) {
	identity := httpkit.MustGetIdentity(c)
	if identity == nil {
		return
	}

	result, err := h.svc.Delete(c.Request.Context(), identity, c.Query("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Options returns the allowed values for every categorical field.
// GET /api/v1/inquiries/options
func (h *Handler) Options(c *gin.Context) {
	httpkit.OK(c, h.svc.Options())
}

func readBody(c *gin.Context) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		return nil, domain.ErrMalformedBody(err)
	}
	return body, nil
}

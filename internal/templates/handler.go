package templates

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-studio/internal/shared/server/middleware"
	"resume-studio/internal/shared/server/respond"
)

// Handler exposes the template catalog over HTTP.
type Handler struct {
	Catalog *Catalog

	// IsAdminEmail gates mutations. Nil means no admins.
	IsAdminEmail func(email string) bool
}

func NewHandler(catalog *Catalog, isAdminEmail func(string) bool) *Handler {
	return &Handler{Catalog: catalog, IsAdminEmail: isAdminEmail}
}

// RegisterRoutes attaches template routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", h.list)
	rg.GET("/templates/:id", h.get)
	rg.PUT("/templates/:id/enabled", h.setEnabled)
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Catalog.ListEnabled(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list templates", nil)
		return
	}
	respond.JSON(c, http.StatusOK, list)
}

func (h *Handler) get(c *gin.Context) {
	tpl, err := h.Catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "template not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch template", nil)
		return
	}
	respond.JSON(c, http.StatusOK, tpl)
}

type setEnabledRequest struct {
	Enabled bool `json:"enabled"`
}

func (h *Handler) setEnabled(c *gin.Context) {
	email := middleware.UserEmailFromContext(c)
	if h.IsAdminEmail == nil || !h.IsAdminEmail(email) {
		respond.Error(c, http.StatusForbidden, "forbidden", "admin access required", nil)
		return
	}

	var req setEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	tpl, err := h.Catalog.SetEnabled(c.Request.Context(), c.Param("id"), req.Enabled)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "template not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update template", nil)
		return
	}
	respond.JSON(c, http.StatusOK, tpl)
}

package previews

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-studio/internal/resumes"
	"resume-studio/internal/shared/metrics"
	"resume-studio/internal/shared/server/middleware"
	"resume-studio/internal/shared/server/respond"
)

// Handler exposes preview and export endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches preview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/resumes/:id/preview", h.preview)
	rg.POST("/resumes/:id/export", h.export)
}

func (h *Handler) preview(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")
	templateID := c.Query("template")
	c.Set("resumeId", resumeID)
	if templateID != "" {
		c.Set("templateId", templateID)
	}

	metrics.IncRenderRequest()
	start := time.Now()
	html, cached, err := h.Svc.Preview(c.Request.Context(), userID, resumeID, templateID)
	metrics.ObserveRenderDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	if err != nil {
		metrics.IncRenderError()
		h.respondError(c, err, "failed to render preview")
		return
	}

	if cached {
		metrics.IncRenderCacheHit()
		c.Set("renderCache", "hit")
	} else {
		c.Set("renderCache", "miss")
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) export(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")
	templateID := c.Query("template")
	c.Set("resumeId", resumeID)
	if templateID != "" {
		c.Set("templateId", templateID)
	}

	html, fileName, err := h.Svc.Export(c.Request.Context(), userID, resumeID, templateID)
	if err != nil {
		h.respondError(c, err, "failed to export resume")
		return
	}

	metrics.IncExport()
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, resumes.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrNoCredits):
		respond.Error(c, http.StatusPaymentRequired, "no_credits", "no credits remaining", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

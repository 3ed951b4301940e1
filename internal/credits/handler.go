package credits

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-studio/internal/shared/server/middleware"
	"resume-studio/internal/shared/server/respond"
)

// Handler exposes credit endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches credit routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/credits", h.getCredits)
}

// RegisterDevRoutes attaches dev-only credit routes.
func (h *Handler) RegisterDevRoutes(rg *gin.RouterGroup) {
	rg.POST("/credits/reset", h.resetCredits)
}

func (h *Handler) getCredits(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	balance, err := h.Svc.EnsurePeriod(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "failed to fetch credits")
		return
	}
	respond.JSON(c, http.StatusOK, balance)
}

func (h *Handler) resetCredits(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	balance, err := h.Svc.Reset(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "failed to reset credits")
		return
	}
	respond.JSON(c, http.StatusOK, balance)
}

func (h *Handler) respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respond.Error(c, http.StatusRequestTimeout, "timeout", "request canceled", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

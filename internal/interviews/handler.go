package interviews

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-studio/internal/credits"
	"resume-studio/internal/resumes"
	"resume-studio/internal/shared/server/middleware"
	"resume-studio/internal/shared/server/respond"
)

// Handler generates interview questions for a resume.
type Handler struct {
	Resumes *resumes.Service
	Credits *credits.Service
}

// NewHandler constructs a Handler.
func NewHandler(resumeSvc *resumes.Service, creditSvc *credits.Service) *Handler {
	return &Handler{Resumes: resumeSvc, Credits: creditSvc}
}

// RegisterRoutes attaches interview routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes/:id/interview-questions", h.generate)
}

func (h *Handler) generate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)

	resume, err := h.Resumes.Get(c.Request.Context(), userID, resumeID)
	if err != nil {
		if errors.Is(err, resumes.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load resume", nil)
		return
	}

	if h.Credits != nil {
		if _, err := h.Credits.Consume(c.Request.Context(), userID, 1); err != nil {
			if errors.Is(err, credits.ErrLimitReached) {
				respond.Error(c, http.StatusPaymentRequired, "no_credits", "no credits remaining", nil)
				return
			}
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to spend credit", nil)
			return
		}
	}

	questions := Generate(resume.RenderDocument())
	respond.JSON(c, http.StatusOK, gin.H{
		"resumeId":  resumeID,
		"questions": questions,
	})
}

package resumes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-studio/internal/shared/server/middleware"
	"resume-studio/internal/shared/server/respond"
	"resume-studio/resume/model"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.upload)
	rg.POST("/resumes/from-document", h.createFromDocument)
	rg.GET("/resumes", h.list)
	rg.GET("/resumes/current", h.current)
	rg.GET("/resumes/:id", h.get)
	rg.PUT("/resumes/:id/document", h.attachDocument)
	rg.PUT("/resumes/:id/template", h.setTemplate)
	rg.PUT("/resumes/:id/status", h.setStatus)
	rg.DELETE("/resumes/:id", h.remove)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	resume, err := h.Svc.Upload(c.Request.Context(), userID, fileHeader.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to upload resume", nil)
		}
		return
	}

	c.Set("resumeId", resume.ID)
	respond.JSON(c, http.StatusCreated, toResponse(resume))
}

type createFromDocumentRequest struct {
	TemplateID string               `json:"templateId"`
	Document   model.ResumeDocument `json:"document"`
}

func (h *Handler) createFromDocument(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createFromDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resume, err := h.Svc.CreateFromDocument(c.Request.Context(), userID, req.Document, req.TemplateID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "unknown template", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create resume", nil)
		}
		return
	}

	c.Set("resumeId", resume.ID)
	respond.JSON(c, http.StatusCreated, toResponse(resume))
}

func (h *Handler) current(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	resume, err := h.Svc.Current(c.Request.Context(), userID)
	if err != nil {
		h.respondServiceError(c, err, "failed to fetch resume")
		return
	}

	c.Set("resumeId", resume.ID)
	respond.JSON(c, http.StatusOK, toResponse(resume))
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)

	resume, err := h.Svc.Get(c.Request.Context(), userID, resumeID)
	if err != nil {
		h.respondServiceError(c, err, "failed to fetch resume")
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(resume))
}

func (h *Handler) list(c *gin.Context) {
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
		return
	}

	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	list, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.respondServiceError(c, err, "failed to list resumes")
		return
	}

	resp := make([]map[string]any, 0, len(list))
	for _, resume := range list {
		resp = append(resp, toSummary(resume))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) attachDocument(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)

	var doc model.ResumeDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid document body", nil)
		return
	}

	resume, err := h.Svc.AttachDocument(c.Request.Context(), userID, resumeID, doc)
	if err != nil {
		h.respondServiceError(c, err, "failed to store document")
		return
	}

	respond.JSON(c, http.StatusOK, toResponse(resume))
}

type setTemplateRequest struct {
	TemplateID string `json:"templateId"`
}

func (h *Handler) setTemplate(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)

	var req setTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set("templateId", req.TemplateID)

	if err := h.Svc.SetTemplate(c.Request.Context(), userID, resumeID, req.TemplateID); err != nil {
		h.respondServiceError(c, err, "failed to set template")
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"resumeId": resumeID, "templateId": req.TemplateID})
}

type setStatusRequest struct {
	Status model.Status `json:"status"`
}

func (h *Handler) setStatus(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)

	var req setStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.Valid() {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid status", nil)
		return
	}

	if err := h.Svc.SetStatus(c.Request.Context(), userID, resumeID, req.Status); err != nil {
		h.respondServiceError(c, err, "failed to set status")
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"resumeId": resumeID, "status": req.Status})
}

func (h *Handler) remove(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	resumeID := c.Param("id")
	c.Set("resumeId", resumeID)

	if err := h.Svc.Delete(c.Request.Context(), userID, resumeID); err != nil {
		h.respondServiceError(c, err, "failed to delete resume")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, ErrInvalidTransition):
		respond.Error(c, http.StatusConflict, "invalid_transition", "status transition not allowed", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

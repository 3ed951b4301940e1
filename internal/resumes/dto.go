package resumes

import (
	"time"

	"resume-studio/resume/model"
)

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	ResumeID   string                `json:"resumeId"`
	FileName   string                `json:"fileName,omitempty"`
	MimeType   string                `json:"mimeType,omitempty"`
	SizeBytes  int64                 `json:"sizeBytes,omitempty"`
	TemplateID string                `json:"templateId"`
	Status     model.Status          `json:"status"`
	Document   *model.ResumeDocument `json:"document,omitempty"`
	UploadedAt time.Time             `json:"uploadedAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

func toResponse(resume Resume) ResumeResponse {
	return ResumeResponse{
		ResumeID:   resume.ID,
		FileName:   resume.FileName,
		MimeType:   resume.MimeType,
		SizeBytes:  resume.SizeBytes,
		TemplateID: resume.TemplateID,
		Status:     resume.Status,
		Document:   resume.Document,
		UploadedAt: resume.CreatedAt,
		UpdatedAt:  resume.UpdatedAt,
	}
}

func toSummary(resume Resume) map[string]any {
	return map[string]any{
		"resumeId":   resume.ID,
		"fileName":   resume.FileName,
		"templateId": resume.TemplateID,
		"status":     resume.Status,
		"uploadedAt": resume.CreatedAt,
	}
}

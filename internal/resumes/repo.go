package resumes

import (
	"context"
	"time"

	"resume-studio/resume/model"
)

// Repo defines persistence operations for resumes.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, userID, resumeID string) (Resume, error)
	GetCurrentByUser(ctx context.Context, userID string) (Resume, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Resume, error)
	UpdateDocument(ctx context.Context, userID, resumeID string, doc *model.ResumeDocument, status model.Status) error
	UpdateTemplate(ctx context.Context, userID, resumeID, templateID string) error
	UpdateStatus(ctx context.Context, userID, resumeID string, status model.Status) error
	UpdateExtraction(ctx context.Context, userID, resumeID, extractedKey string, extractedAt time.Time) error
	SoftDelete(ctx context.Context, userID, resumeID string) error
}

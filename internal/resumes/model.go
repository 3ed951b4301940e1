package resumes

import (
	"time"

	"resume-studio/resume/model"
)

// Resume represents an uploaded resume owned by a user, together with
// its parsed document payload once parsing has completed.
type Resume struct {
	ID               string
	UserID           string
	FileName         string
	MimeType         string
	SizeBytes        int64
	StorageKey       string
	TemplateID       string
	Status           model.Status
	Document         *model.ResumeDocument
	ExtractedTextKey string
	ExtractedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RenderDocument returns the parsed document stamped with the identity
// fields the renderer needs. Returns a zero document when no payload has
// been attached yet, which still renders with fallbacks.
func (r Resume) RenderDocument() model.ResumeDocument {
	var doc model.ResumeDocument
	if r.Document != nil {
		doc = *r.Document
	}
	doc.ID = r.ID
	doc.Status = r.Status
	doc.TemplateID = r.TemplateID
	return doc
}

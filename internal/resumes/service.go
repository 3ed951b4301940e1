package resumes

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-studio/internal/extract"
	"resume-studio/internal/shared/storage/object"
	"resume-studio/internal/shared/telemetry"
	"resume-studio/resume/model"
	"resume-studio/resume/render"
)

// Service contains business logic for resumes.
type Service struct {
	Store object.ObjectStore
	Repo  Repo

	// OnChange is invoked after a resume's document, template, or status
	// changes, so render caches can drop stale entries. May be nil.
	OnChange func(resumeID string)
}

// Upload saves the file to object storage, records the resume, and kicks
// off text extraction. Extraction failure marks the resume as errored but
// does not fail the upload.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Resume, error) {
	if strings.TrimSpace(fileName) == "" {
		return Resume{}, ErrInvalidInput
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, r)
	if err != nil {
		return Resume{}, err
	}

	resume := Resume{
		ID:         uuid.NewString(),
		UserID:     userID,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		TemplateID: render.TemplateIDModern,
		Status:     model.StatusUploaded,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}

	s.extract(ctx, &resume)
	return resume, nil
}

// CreateFromDocument records a resume built directly from a parsed document,
// with no source file. Used when the client edits a resume from scratch.
func (s *Service) CreateFromDocument(ctx context.Context, userID string, doc model.ResumeDocument, templateID string) (Resume, error) {
	if templateID == "" {
		templateID = render.TemplateIDModern
	}
	if !knownTemplate(templateID) {
		return Resume{}, ErrInvalidInput
	}

	resume := Resume{
		ID:         uuid.NewString(),
		UserID:     userID,
		TemplateID: templateID,
		Status:     model.StatusParsed,
		Document:   &doc,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// AttachDocument stores the parsed document payload. The first attach moves
// the resume to parsed; later attaches are edits and keep the current status.
func (s *Service) AttachDocument(ctx context.Context, userID, resumeID string, doc model.ResumeDocument) (Resume, error) {
	resume, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return Resume{}, err
	}

	status := resume.Status
	if status != model.StatusParsed && status != model.StatusScored {
		if !status.CanTransition(model.StatusParsed) {
			return Resume{}, ErrInvalidTransition
		}
		status = model.StatusParsed
	}

	if err := s.Repo.UpdateDocument(ctx, userID, resumeID, &doc, status); err != nil {
		return Resume{}, err
	}
	s.notifyChange(resumeID)
	return s.Repo.GetByID(ctx, userID, resumeID)
}

// SetTemplate switches the resume to another style variant.
func (s *Service) SetTemplate(ctx context.Context, userID, resumeID, templateID string) error {
	if !knownTemplate(templateID) {
		return ErrInvalidInput
	}
	if err := s.Repo.UpdateTemplate(ctx, userID, resumeID, templateID); err != nil {
		return err
	}
	s.notifyChange(resumeID)
	return nil
}

// SetStatus advances the resume lifecycle, enforcing legal transitions.
func (s *Service) SetStatus(ctx context.Context, userID, resumeID string, next model.Status) error {
	resume, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return err
	}
	if !resume.Status.CanTransition(next) {
		return ErrInvalidTransition
	}
	if err := s.Repo.UpdateStatus(ctx, userID, resumeID, next); err != nil {
		return err
	}
	s.notifyChange(resumeID)
	return nil
}

// Current returns the newest resume for a user.
func (s *Service) Current(ctx context.Context, userID string) (Resume, error) {
	if userID == "" {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.GetCurrentByUser(ctx, userID)
}

// Get returns a single resume by ID.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (Resume, error) {
	if userID == "" || resumeID == "" {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, resumeID)
}

// List returns resumes newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Delete soft-deletes a resume.
func (s *Service) Delete(ctx context.Context, userID, resumeID string) error {
	if err := s.Repo.SoftDelete(ctx, userID, resumeID); err != nil {
		return err
	}
	s.notifyChange(resumeID)
	return nil
}

func (s *Service) extract(ctx context.Context, resume *Resume) {
	if err := s.Repo.UpdateStatus(ctx, resume.UserID, resume.ID, model.StatusParsing); err != nil {
		telemetry.Warn("resume.extract_status", map[string]any{"resume_id": resume.ID, "error": err.Error()})
		return
	}
	resume.Status = model.StatusParsing

	_, err := extract.Text(ctx, s.Store, resume.StorageKey, resume.MimeType, resume.FileName)
	if err != nil {
		telemetry.Warn("resume.extract_failed", map[string]any{"resume_id": resume.ID, "error": err.Error()})
		if serr := s.Repo.UpdateStatus(ctx, resume.UserID, resume.ID, model.StatusError); serr == nil {
			resume.Status = model.StatusError
		}
		return
	}

	now := time.Now().UTC()
	extractedKey := resume.StorageKey + ".extracted.txt"
	if err := s.Repo.UpdateExtraction(ctx, resume.UserID, resume.ID, extractedKey, now); err != nil {
		telemetry.Warn("resume.extract_record", map[string]any{"resume_id": resume.ID, "error": err.Error()})
		return
	}
	resume.ExtractedTextKey = extractedKey
	resume.ExtractedAt = &now
}

func (s *Service) notifyChange(resumeID string) {
	if s.OnChange != nil {
		s.OnChange(resumeID)
	}
}

func knownTemplate(templateID string) bool {
	switch templateID {
	case render.TemplateIDModern, render.TemplateIDClassic, render.TemplateIDMinimalist:
		return true
	}
	return false
}

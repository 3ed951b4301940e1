package previews

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"resume-studio/internal/credits"
	"resume-studio/internal/resumes"
	"resume-studio/internal/shared/storage/object"
	"resume-studio/internal/shared/util"
	"resume-studio/resume/render"
)

// ErrNoCredits indicates the user has spent their export credits.
var ErrNoCredits = errors.New("no credits remaining")

// Service renders resume previews and exports.
//
// Each resume gets its own render memo keyed on (resume, status), so
// repeated previews of an unchanged resume reuse the built document.
// Template overrides bypass the memo since they do not reflect the
// resume's persisted state.
type Service struct {
	Resumes *resumes.Service
	Credits *credits.Service
	Store   object.ObjectStore

	mu    sync.Mutex
	memos map[string]*memoEntry
}

type memoEntry struct {
	memo *render.Memo
}

// NewService constructs a preview service.
func NewService(resumeSvc *resumes.Service, creditSvc *credits.Service, store object.ObjectStore) *Service {
	return &Service{
		Resumes: resumeSvc,
		Credits: creditSvc,
		Store:   store,
		memos:   make(map[string]*memoEntry),
	}
}

// Preview renders the resume as HTML. templateOverride, when non-empty,
// renders with that variant instead of the stored one. The returned bool
// reports whether the memoized document was reused.
func (s *Service) Preview(ctx context.Context, userID, resumeID, templateOverride string) (string, bool, error) {
	resume, err := s.Resumes.Get(ctx, userID, resumeID)
	if err != nil {
		return "", false, err
	}

	doc := resume.RenderDocument()

	if templateOverride != "" {
		doc.TemplateID = templateOverride
		rendered := render.Render(doc)
		return rendered.HTML(), false, nil
	}

	entry := s.entryFor(resumeID)
	rendered, cached := entry.memo.RenderCached(doc)

	return rendered.HTML(), cached, nil
}

// Export renders the resume, spends one credit, stores the artifact, and
// returns the HTML plus the suggested download file name.
func (s *Service) Export(ctx context.Context, userID, resumeID, templateOverride string) (string, string, error) {
	resume, err := s.Resumes.Get(ctx, userID, resumeID)
	if err != nil {
		return "", "", err
	}

	if s.Credits != nil {
		if _, err := s.Credits.Consume(ctx, userID, 1); err != nil {
			if errors.Is(err, credits.ErrLimitReached) {
				return "", "", ErrNoCredits
			}
			return "", "", err
		}
	}

	html, _, err := s.Preview(ctx, userID, resumeID, templateOverride)
	if err != nil {
		return "", "", err
	}

	templateID := templateOverride
	if templateID == "" {
		templateID = resume.TemplateID
	}
	if templateID == "" {
		templateID = render.TemplateIDModern
	}

	fileName := fmt.Sprintf("resume_%s.html", templateID)

	if saver, ok := s.Store.(object.KeySaver); ok {
		key := fmt.Sprintf("exports/%s/%s_%s.html", util.HashOwnerKey(userID), resumeID, templateID)
		if _, err := saver.SaveWithKey(ctx, key, "text/html; charset=utf-8", strings.NewReader(html)); err != nil {
			return "", "", fmt.Errorf("store export: %w", err)
		}
	}

	return html, fileName, nil
}

// Invalidate drops the memo for a resume. Called when its document,
// template, or status changes.
func (s *Service) Invalidate(resumeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.memos, resumeID)
}

func (s *Service) entryFor(resumeID string) *memoEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.memos[resumeID]
	if !ok {
		entry = &memoEntry{memo: &render.Memo{}}
		s.memos[resumeID] = entry
	}
	return entry
}

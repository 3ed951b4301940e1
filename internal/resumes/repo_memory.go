package resumes

import (
	"context"
	"sort"
	"sync"
	"time"

	"resume-studio/resume/model"
)

// MemoryRepo implements Repo with an in-memory map, for tests and local runs.
type MemoryRepo struct {
	mu      sync.RWMutex
	resumes map[string]Resume
	deleted map[string]bool
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		resumes: make(map[string]Resume),
		deleted: make(map[string]bool),
	}
}

func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if resume.CreatedAt.IsZero() {
		resume.CreatedAt = time.Now().UTC()
	}
	resume.UpdatedAt = resume.CreatedAt
	r.resumes[resume.ID] = resume
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.resumes[resumeID]
	if !ok || resume.UserID != userID || r.deleted[resumeID] {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}

func (r *MemoryRepo) GetCurrentByUser(ctx context.Context, userID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var newest Resume
	found := false
	for id, resume := range r.resumes {
		if resume.UserID != userID || r.deleted[id] {
			continue
		}
		if !found || resume.CreatedAt.After(newest.CreatedAt) {
			newest = resume
			found = true
		}
	}
	if !found {
		return Resume{}, ErrNotFound
	}
	return newest, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []Resume
	for id, resume := range r.resumes {
		if resume.UserID == userID && !r.deleted[id] {
			out = append(out, resume)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) UpdateDocument(ctx context.Context, userID, resumeID string, doc *model.ResumeDocument, status model.Status) error {
	return r.update(ctx, userID, resumeID, func(resume *Resume) {
		resume.Document = doc
		resume.Status = status
	})
}

func (r *MemoryRepo) UpdateTemplate(ctx context.Context, userID, resumeID, templateID string) error {
	return r.update(ctx, userID, resumeID, func(resume *Resume) {
		resume.TemplateID = templateID
	})
}

func (r *MemoryRepo) UpdateStatus(ctx context.Context, userID, resumeID string, status model.Status) error {
	return r.update(ctx, userID, resumeID, func(resume *Resume) {
		resume.Status = status
	})
}

func (r *MemoryRepo) UpdateExtraction(ctx context.Context, userID, resumeID, extractedKey string, extractedAt time.Time) error {
	return r.update(ctx, userID, resumeID, func(resume *Resume) {
		resume.ExtractedTextKey = extractedKey
		resume.ExtractedAt = &extractedAt
	})
}

func (r *MemoryRepo) SoftDelete(ctx context.Context, userID, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	resume, ok := r.resumes[resumeID]
	if !ok || resume.UserID != userID || r.deleted[resumeID] {
		return ErrNotFound
	}
	r.deleted[resumeID] = true
	return nil
}

func (r *MemoryRepo) update(ctx context.Context, userID, resumeID string, mutate func(*Resume)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	resume, ok := r.resumes[resumeID]
	if !ok || resume.UserID != userID || r.deleted[resumeID] {
		return ErrNotFound
	}
	mutate(&resume)
	resume.UpdatedAt = time.Now().UTC()
	r.resumes[resumeID] = resume
	return nil
}

var _ Repo = (*MemoryRepo)(nil)

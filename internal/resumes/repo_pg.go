package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"resume-studio/resume/model"
)

// PGRepo implements Repo using Postgres. The parsed document is stored
// as JSONB in the resumes table.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, user_id, file_name, mime_type, size_bytes, storage_key, template_id, status, document, extracted_text_key, extracted_at, created_at, updated_at`

func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (
    id,
    user_id,
    file_name,
    mime_type,
    size_bytes,
    storage_key,
    template_id,
    status,
    document,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`

	docJSON, err := marshalDocument(resume.Document)
	if err != nil {
		return err
	}
	createdAt := resume.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.UserID,
		resume.FileName,
		resume.MimeType,
		resume.SizeBytes,
		resume.StorageKey,
		resume.TemplateID,
		string(resume.Status),
		docJSON,
		createdAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM resumes
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL
LIMIT 1`, resumeColumns)
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID, resumeID))
}

func (r *PGRepo) GetCurrentByUser(ctx context.Context, userID string) (Resume, error) {
	query := fmt.Sprintf(`
SELECT %s
FROM resumes
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT 1`, resumeColumns)
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID))
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Resume, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	query := fmt.Sprintf(`
SELECT %s
FROM resumes
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`, resumeColumns)

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateDocument(ctx context.Context, userID, resumeID string, doc *model.ResumeDocument, status model.Status) error {
	const query = `
UPDATE resumes
SET document = $1, status = $2, updated_at = now()
WHERE user_id = $3 AND id = $4 AND deleted_at IS NULL`
	docJSON, err := marshalDocument(doc)
	if err != nil {
		return err
	}
	return r.execExpectingRow(ctx, query, docJSON, string(status), userID, resumeID)
}

func (r *PGRepo) UpdateTemplate(ctx context.Context, userID, resumeID, templateID string) error {
	const query = `
UPDATE resumes
SET template_id = $1, updated_at = now()
WHERE user_id = $2 AND id = $3 AND deleted_at IS NULL`
	return r.execExpectingRow(ctx, query, templateID, userID, resumeID)
}

func (r *PGRepo) UpdateStatus(ctx context.Context, userID, resumeID string, status model.Status) error {
	const query = `
UPDATE resumes
SET status = $1, updated_at = now()
WHERE user_id = $2 AND id = $3 AND deleted_at IS NULL`
	return r.execExpectingRow(ctx, query, string(status), userID, resumeID)
}

func (r *PGRepo) UpdateExtraction(ctx context.Context, userID, resumeID, extractedKey string, extractedAt time.Time) error {
	const query = `
UPDATE resumes
SET extracted_text_key = $1, extracted_at = $2, updated_at = now()
WHERE user_id = $3 AND id = $4 AND deleted_at IS NULL`
	return r.execExpectingRow(ctx, query, extractedKey, extractedAt, userID, resumeID)
}

func (r *PGRepo) SoftDelete(ctx context.Context, userID, resumeID string) error {
	const query = `
UPDATE resumes
SET deleted_at = now(), updated_at = now()
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL`
	return r.execExpectingRow(ctx, query, userID, resumeID)
}

func (r *PGRepo) execExpectingRow(ctx context.Context, query string, args ...any) error {
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanOne(row rowScanner) (Resume, error) {
	resume, err := scanResume(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

func scanResume(row rowScanner) (Resume, error) {
	var resume Resume
	var status string
	var docJSON []byte
	var extractedKey sql.NullString
	var extractedAt sql.NullTime
	var updatedAt sql.NullTime
	err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.FileName,
		&resume.MimeType,
		&resume.SizeBytes,
		&resume.StorageKey,
		&resume.TemplateID,
		&status,
		&docJSON,
		&extractedKey,
		&extractedAt,
		&resume.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return Resume{}, err
	}
	resume.Status = model.Status(status)
	if len(docJSON) > 0 {
		var doc model.ResumeDocument
		if err := json.Unmarshal(docJSON, &doc); err != nil {
			return Resume{}, fmt.Errorf("decode resume document: %w", err)
		}
		resume.Document = &doc
	}
	if extractedKey.Valid {
		resume.ExtractedTextKey = extractedKey.String
	}
	if extractedAt.Valid {
		resume.ExtractedAt = &extractedAt.Time
	}
	if updatedAt.Valid {
		resume.UpdatedAt = updatedAt.Time
	}
	return resume, nil
}

func marshalDocument(doc *model.ResumeDocument) (any, error) {
	if doc == nil {
		return nil, nil
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode resume document: %w", err)
	}
	return data, nil
}

var _ Repo = (*PGRepo)(nil)

package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"jobmatch-backend/internal/candidate"
)

// PGRepo implements Repo using Postgres. Skills and certifications are JSONB arrays.
type PGRepo struct {
	DB *sql.DB
}

const profileColumns = `id, name, email, skills, experience_years, experience_source, education, certifications, raw_text, file_name, mime_type, document_key, created_at`

// Create inserts a new profile.
func (r *PGRepo) Create(ctx context.Context, p Profile) error {
	const query = `
INSERT INTO profiles (
    id,
    name,
    email,
    skills,
    experience_years,
    experience_source,
    education,
    certifications,
    raw_text,
    file_name,
    mime_type,
    document_key,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	skills, err := marshalList(p.Skills)
	if err != nil {
		return fmt.Errorf("encode skills: %w", err)
	}
	certs, err := marshalList(p.Certifications)
	if err != nil {
		return fmt.Errorf("encode certifications: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		p.ID,
		p.Name,
		p.Email,
		skills,
		p.ExperienceYears,
		string(p.ExperienceSource),
		p.Education,
		certs,
		p.RawText,
		p.FileName,
		p.MimeType,
		p.DocumentKey,
		p.CreatedAt,
	)
	return err
}

// Get fetches a profile by ID.
func (r *PGRepo) Get(ctx context.Context, id string) (Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	p, err := scanProfile(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	return p, nil
}

// List lists profiles ordered newest first.
func (r *PGRepo) List(ctx context.Context, limit int) ([]Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at DESC, id LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (Profile, error) {
	var (
		p      Profile
		source string
		skills []byte
		certs  []byte
	)
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&skills,
		&p.ExperienceYears,
		&source,
		&p.Education,
		&certs,
		&p.RawText,
		&p.FileName,
		&p.MimeType,
		&p.DocumentKey,
		&p.CreatedAt,
	); err != nil {
		return Profile{}, err
	}
	p.ExperienceSource = candidate.ExperienceSource(source)

	var err error
	if p.Skills, err = unmarshalList(skills); err != nil {
		return Profile{}, fmt.Errorf("decode skills for profile %s: %w", p.ID, err)
	}
	if p.Certifications, err = unmarshalList(certs); err != nil {
		return Profile{}, fmt.Errorf("decode certifications for profile %s: %w", p.ID, err)
	}
	return p, nil
}

func marshalList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	return string(raw), err
}

func unmarshalList(raw []byte) ([]string, error) {
	out := []string{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

var _ Repo = (*PGRepo)(nil)

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/apperrors"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/models"
)

type SubmissionRepo interface {
	Create(ctx context.Context, s *models.FormSubmission) (*models.FormSubmission, error)
	List(ctx context.Context, p models.ListParams) ([]*models.FormSubmission, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.FormSubmission, error)
	Update(ctx context.Context, s *models.FormSubmission) (*models.FormSubmission, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.FormSubmission, error)
}

type submissionRepo struct{ db *pgxpool.Pool }

func NewSubmissionRepo(db *pgxpool.Pool) SubmissionRepo { return &submissionRepo{db: db} }

const submissionColumns = `id, form_type, status, name, email, phone_number, payload, created_at, updated_at`

func scanSubmission(row pgx.Row) (*models.FormSubmission, error) {
	var s models.FormSubmission
	var payload []byte
	err := row.Scan(&s.ID, &s.FormType, &s.Status, &s.Name, &s.Email, &s.PhoneNumber, &payload, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	// The payload column holds the variant document; route it back into the
	// field matching the tag.
	if err := s.SetVariant(func(v interface{}) error {
		return json.Unmarshal(payload, v)
	}); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *submissionRepo) Create(ctx context.Context, s *models.FormSubmission) (*models.FormSubmission, error) {
	payload, err := json.Marshal(s.Variant())
	if err != nil {
		return nil, err
	}

	q := `
		INSERT INTO form_submissions (form_type, status, name, email, phone_number, payload)
		VALUES ($1,$2,$3,$4,$5,$6::jsonb)
		RETURNING ` + submissionColumns
	return scanSubmission(r.db.QueryRow(ctx, q, s.FormType, s.Status, s.Name, s.Email, s.PhoneNumber, payload))
}

func (r *submissionRepo) List(ctx context.Context, p models.ListParams) ([]*models.FormSubmission, int, error) {
	p = p.Normalize()

	where := []string{}
	args := []interface{}{}
	i := 1

	if p.FormType != "" {
		where = append(where, fmt.Sprintf("form_type = $%d", i))
		args = append(args, p.FormType)
		i++
	}
	if p.Status != "" {
		where = append(where, fmt.Sprintf("status = $%d", i))
		args = append(args, p.Status)
		i++
	}
	if p.Search != "" {
		where = append(where, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR phone_number ILIKE $%d)", i, i, i))
		args = append(args, "%"+p.Search+"%")
		i++
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM form_submissions"+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := "SELECT " + submissionColumns + " FROM form_submissions" + whereSQL +
		" ORDER BY created_at DESC, id DESC"
	if !p.All {
		q += fmt.Sprintf(" LIMIT $%d OFFSET $%d", i, i+1)
		args = append(args, p.PageSize, p.Offset())
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []*models.FormSubmission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}

func (r *submissionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.FormSubmission, error) {
	q := "SELECT " + submissionColumns + " FROM form_submissions WHERE id = $1"
	return scanSubmission(r.db.QueryRow(ctx, q, id))
}

func (r *submissionRepo) Update(ctx context.Context, s *models.FormSubmission) (*models.FormSubmission, error) {
	payload, err := json.Marshal(s.Variant())
	if err != nil {
		return nil, err
	}

	q := `
		UPDATE form_submissions
		SET form_type=$1, status=$2, name=$3, email=$4, phone_number=$5, payload=$6::jsonb, updated_at=now()
		WHERE id=$7
		RETURNING ` + submissionColumns
	return scanSubmission(r.db.QueryRow(ctx, q, s.FormType, s.Status, s.Name, s.Email, s.PhoneNumber, payload, s.ID))
}

func (r *submissionRepo) Delete(ctx context.Context, id uuid.UUID) (*models.FormSubmission, error) {
	q := "DELETE FROM form_submissions WHERE id = $1 RETURNING " + submissionColumns
	return scanSubmission(r.db.QueryRow(ctx, q, id))
}

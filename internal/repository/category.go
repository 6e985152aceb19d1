package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/apperrors"
	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/models"
)

type CategoryRepo interface {
	Create(ctx context.Context, c *models.Category) (*models.Category, error)
	List(ctx context.Context, p models.ListParams) ([]*models.Category, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Category, error)
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, c *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Category, error)
}

type categoryRepo struct{ db *pgxpool.Pool }

func NewCategoryRepo(db *pgxpool.Pool) CategoryRepo { return &categoryRepo{db: db} }

const categoryColumns = `id, title_en, title_ar, slug, status, created_at, updated_at`

func scanCategory(row pgx.Row) (*models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.TitleEn, &c.TitleAr, &c.Slug, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	q := `
		INSERT INTO article_categories (title_en, title_ar, slug, status)
		VALUES ($1,$2,$3,$4)
		RETURNING ` + categoryColumns
	return scanCategory(r.db.QueryRow(ctx, q, c.TitleEn, c.TitleAr, c.Slug, c.Status))
}

func (r *categoryRepo) List(ctx context.Context, p models.ListParams) ([]*models.Category, int, error) {
	p = p.Normalize()

	where := []string{}
	args := []interface{}{}
	i := 1

	if p.Search != "" {
		where = append(where, fmt.Sprintf("(title_en ILIKE $%d OR title_ar ILIKE $%d OR slug ILIKE $%d)", i, i, i))
		args = append(args, "%"+p.Search+"%")
		i++
	}
	if p.Status != "" {
		where = append(where, fmt.Sprintf("status = $%d", i))
		args = append(args, p.Status)
		i++
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM article_categories"+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := "SELECT " + categoryColumns + " FROM article_categories" + whereSQL +
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

	var list []*models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

func (r *categoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	q := "SELECT " + categoryColumns + " FROM article_categories WHERE id = $1"
	return scanCategory(r.db.QueryRow(ctx, q, id))
}

func (r *categoryRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	q := "SELECT " + categoryColumns + " FROM article_categories WHERE id = ANY($1)"
	rows, err := r.db.Query(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *categoryRepo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM article_categories WHERE slug = $1 AND id <> $2)`
	var ok bool
	if err := r.db.QueryRow(ctx, q, slug, excludeID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *categoryRepo) Update(ctx context.Context, c *models.Category) (*models.Category, error) {
	q := `
		UPDATE article_categories
		SET title_en=$1, title_ar=$2, slug=$3, status=$4, updated_at=now()
		WHERE id=$5
		RETURNING ` + categoryColumns
	return scanCategory(r.db.QueryRow(ctx, q, c.TitleEn, c.TitleAr, c.Slug, c.Status, c.ID))
}

func (r *categoryRepo) Delete(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	q := "DELETE FROM article_categories WHERE id = $1 RETURNING " + categoryColumns
	return scanCategory(r.db.QueryRow(ctx, q, id))
}

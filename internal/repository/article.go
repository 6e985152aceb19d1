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

type ArticleRepo interface {
	Create(ctx context.Context, a *models.Article) (*models.Article, error)
	List(ctx context.Context, p models.ListParams) ([]*models.Article, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	Update(ctx context.Context, a *models.Article) (*models.Article, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Article, error)
	IncrementViewCount(ctx context.Context, slug string) (*models.Article, error)
}

type articleRepo struct{ db *pgxpool.Pool }

func NewArticleRepo(db *pgxpool.Pool) ArticleRepo { return &articleRepo{db: db} }

const articleColumns = `
	id, title, title_ar, slug, content, blocks, excerpt, excerpt_ar,
	featured_image, tiktok_video_url, meta_title, meta_description,
	status, tags, categories, published_at, view_count, featured,
	created_at, updated_at
`

func scanArticle(row pgx.Row) (*models.Article, error) {
	var a models.Article
	var blocksRaw, tagsRaw, catsRaw []byte
	err := row.Scan(
		&a.ID, &a.Title, &a.TitleAr, &a.Slug, &a.Content, &blocksRaw,
		&a.Excerpt, &a.ExcerptAr, &a.FeaturedImage, &a.TikTokVideoURL,
		&a.MetaTitle, &a.MetaDescription, &a.Status, &tagsRaw, &catsRaw,
		&a.PublishedAt, &a.ViewCount, &a.Featured, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	_ = json.Unmarshal(blocksRaw, &a.Blocks)
	_ = json.Unmarshal(tagsRaw, &a.Tags)
	_ = json.Unmarshal(catsRaw, &a.Categories)
	if a.Tags == nil {
		a.Tags = []string{}
	}
	if a.Categories == nil {
		a.Categories = []models.CategoryRef{}
	}
	return &a, nil
}

func categoryIDStrings(refs []models.CategoryRef) []string {
	out := make([]string, 0, len(refs))
	for _, id := range models.CategoryIDs(refs) {
		out = append(out, id.String())
	}
	return out
}

func (r *articleRepo) Create(ctx context.Context, a *models.Article) (*models.Article, error) {
	blocksJSON, _ := json.Marshal(a.Blocks)
	tagsJSON, _ := json.Marshal(a.Tags)
	catsJSON, _ := json.Marshal(categoryIDStrings(a.Categories))

	q := `
		INSERT INTO articles (
			title, title_ar, slug, content, blocks, excerpt, excerpt_ar,
			featured_image, tiktok_video_url, meta_title, meta_description,
			status, tags, categories, published_at, featured
		)
		VALUES ($1,$2,$3,$4,$5::jsonb,$6,$7,$8,$9,$10,$11,$12,$13::jsonb,$14::jsonb,$15,$16)
		RETURNING ` + articleColumns

	row := r.db.QueryRow(ctx, q,
		a.Title, a.TitleAr, a.Slug, a.Content, blocksJSON, a.Excerpt, a.ExcerptAr,
		a.FeaturedImage, a.TikTokVideoURL, a.MetaTitle, a.MetaDescription,
		a.Status, tagsJSON, catsJSON, a.PublishedAt, a.Featured,
	)
	return scanArticle(row)
}

// articleWhere builds the filter clause shared by the count and page
// queries. Search matches title, content, excerpt, and block text.
func articleWhere(p models.ListParams) (string, []interface{}) {
	where := []string{}
	args := []interface{}{}
	i := 1

	if p.Search != "" {
		where = append(where, fmt.Sprintf(`(
			title ILIKE $%d OR content ILIKE $%d OR excerpt ILIKE $%d
			OR EXISTS (
				SELECT 1 FROM jsonb_array_elements(blocks) AS b
				WHERE b->>'textHtml' ILIKE $%d
			)
		)`, i, i, i, i))
		args = append(args, "%"+p.Search+"%")
		i++
	}
	if p.Status != "" {
		where = append(where, fmt.Sprintf("status = $%d", i))
		args = append(args, p.Status)
		i++
	}
	if p.Category != "" {
		where = append(where, fmt.Sprintf(`
			EXISTS (
				SELECT 1 FROM jsonb_array_elements_text(categories) AS c(val)
				WHERE c.val = $%d
			)
		`, i))
		args = append(args, p.Category)
		i++
	}
	if p.Tag != "" {
		where = append(where, fmt.Sprintf(`
			EXISTS (
				SELECT 1 FROM jsonb_array_elements_text(tags) AS t(val)
				WHERE t.val = $%d
			)
		`, i))
		args = append(args, p.Tag)
		i++
	}
	if p.Featured != nil {
		where = append(where, fmt.Sprintf("featured = $%d", i))
		args = append(args, *p.Featured)
		i++
	}

	if len(where) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

func (r *articleRepo) List(ctx context.Context, p models.ListParams) ([]*models.Article, int, error) {
	p = p.Normalize()
	whereSQL, args := articleWhere(p)

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM articles"+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := "SELECT " + articleColumns + " FROM articles" + whereSQL +
		" ORDER BY created_at DESC, id DESC"
	if !p.All {
		q += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
		args = append(args, p.PageSize, p.Offset())
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var list []*models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, a)
	}
	return list, total, rows.Err()
}

func (r *articleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	q := "SELECT " + articleColumns + " FROM articles WHERE id = $1"
	return scanArticle(r.db.QueryRow(ctx, q, id))
}

func (r *articleRepo) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	q := "SELECT " + articleColumns + " FROM articles WHERE slug = $1"
	return scanArticle(r.db.QueryRow(ctx, q, slug))
}

func (r *articleRepo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1 AND id <> $2)`
	var ok bool
	if err := r.db.QueryRow(ctx, q, slug, excludeID).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *articleRepo) Update(ctx context.Context, a *models.Article) (*models.Article, error) {
	blocksJSON, _ := json.Marshal(a.Blocks)
	tagsJSON, _ := json.Marshal(a.Tags)
	catsJSON, _ := json.Marshal(categoryIDStrings(a.Categories))

	// published_at is one-way: COALESCE keeps the first-publish timestamp
	// even if two updates race.
	q := `
		UPDATE articles
		SET title=$1, title_ar=$2, slug=$3, content=$4, blocks=$5::jsonb,
		    excerpt=$6, excerpt_ar=$7, featured_image=$8, tiktok_video_url=$9,
		    meta_title=$10, meta_description=$11, status=$12,
		    tags=$13::jsonb, categories=$14::jsonb,
		    published_at = COALESCE(published_at, $15),
		    featured=$16, updated_at=now()
		WHERE id=$17
		RETURNING ` + articleColumns

	row := r.db.QueryRow(ctx, q,
		a.Title, a.TitleAr, a.Slug, a.Content, blocksJSON, a.Excerpt, a.ExcerptAr,
		a.FeaturedImage, a.TikTokVideoURL, a.MetaTitle, a.MetaDescription, a.Status,
		tagsJSON, catsJSON, a.PublishedAt, a.Featured, a.ID,
	)
	return scanArticle(row)
}

func (r *articleRepo) Delete(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	q := "DELETE FROM articles WHERE id = $1 RETURNING " + articleColumns
	return scanArticle(r.db.QueryRow(ctx, q, id))
}

func (r *articleRepo) IncrementViewCount(ctx context.Context, slug string) (*models.Article, error) {
	q := `
		UPDATE articles
		SET view_count = view_count + 1
		WHERE slug = $1
		RETURNING ` + articleColumns
	return scanArticle(r.db.QueryRow(ctx, q, slug))
}

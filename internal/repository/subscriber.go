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

type SubscriberRepo interface {
	Create(ctx context.Context, email string) (*models.Subscriber, error)
	List(ctx context.Context, p models.ListParams) ([]*models.Subscriber, int, error)
	Update(ctx context.Context, id uuid.UUID, email string) (*models.Subscriber, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Subscriber, error)
	MonthlyStats(ctx context.Context) ([]models.SubscriberStat, error)
}

type subscriberRepo struct{ db *pgxpool.Pool }

func NewSubscriberRepo(db *pgxpool.Pool) SubscriberRepo { return &subscriberRepo{db: db} }

const subscriberColumns = `id, email, created_at, updated_at`

func scanSubscriber(row pgx.Row) (*models.Subscriber, error) {
	var s models.Subscriber
	err := row.Scan(&s.ID, &s.Email, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *subscriberRepo) Create(ctx context.Context, email string) (*models.Subscriber, error) {
	q := "INSERT INTO newsletter_subscribers (email) VALUES ($1) RETURNING " + subscriberColumns
	return scanSubscriber(r.db.QueryRow(ctx, q, email))
}

func (r *subscriberRepo) List(ctx context.Context, p models.ListParams) ([]*models.Subscriber, int, error) {
	p = p.Normalize()

	where := []string{}
	args := []interface{}{}
	i := 1

	if p.Search != "" {
		where = append(where, fmt.Sprintf("email ILIKE $%d", i))
		args = append(args, "%"+p.Search+"%")
		i++
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM newsletter_subscribers"+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := "SELECT " + subscriberColumns + " FROM newsletter_subscribers" + whereSQL +
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

	var list []*models.Subscriber
	for rows.Next() {
		s, err := scanSubscriber(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, s)
	}
	return list, total, rows.Err()
}

func (r *subscriberRepo) Update(ctx context.Context, id uuid.UUID, email string) (*models.Subscriber, error) {
	q := `
		UPDATE newsletter_subscribers
		SET email=$1, updated_at=now()
		WHERE id=$2
		RETURNING ` + subscriberColumns
	return scanSubscriber(r.db.QueryRow(ctx, q, email, id))
}

func (r *subscriberRepo) Delete(ctx context.Context, id uuid.UUID) (*models.Subscriber, error) {
	q := "DELETE FROM newsletter_subscribers WHERE id = $1 RETURNING " + subscriberColumns
	return scanSubscriber(r.db.QueryRow(ctx, q, id))
}

func (r *subscriberRepo) MonthlyStats(ctx context.Context) ([]models.SubscriberStat, error) {
	const q = `
		SELECT date_trunc('month', created_at) AS month, COUNT(*)
		FROM newsletter_subscribers
		GROUP BY month
		ORDER BY month
	`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.SubscriberStat
	for rows.Next() {
		var s models.SubscriberStat
		if err := rows.Scan(&s.Month, &s.Count); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// Package reaction implements read access to feed reactions.
package reaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/doblock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/doblock-backend/internal/domain"
)

// Repo provides reaction persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reaction repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const countByFeedSQL = `SELECT count(*) FROM reactions WHERE feed_id = $1`

const listByFeedSQL = `
SELECT r.id, r.feed_id, r.reaction_type, r.posted_at,
       m.id, m.email, m.nickname, m.profile_image
FROM reactions r
JOIN members m ON m.id = r.member_id
WHERE r.feed_id = $1
ORDER BY r.posted_at DESC, r.id`

const listRecentByFeedSQL = listByFeedSQL + `
LIMIT $2`

// CountByFeed returns the number of reactions on a feed.
func (r *Repo) CountByFeed(ctx context.Context, feedID uuid.UUID) (int, error) {
	var count int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countByFeedSQL, feedID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count reactions: %w", err)
	}
	return count, nil
}

// ListByFeed returns every reaction on a feed, newest first.
func (r *Repo) ListByFeed(ctx context.Context, feedID uuid.UUID) ([]domain.Reaction, error) {
	return r.list(ctx, listByFeedSQL, feedID)
}

// ListRecentByFeed returns at most limit reactions on a feed, newest first.
func (r *Repo) ListRecentByFeed(ctx context.Context, feedID uuid.UUID, limit int) ([]domain.Reaction, error) {
	if limit <= 0 {
		return []domain.Reaction{}, nil
	}
	return r.list(ctx, listRecentByFeedSQL, feedID, limit)
}

func (r *Repo) list(ctx context.Context, query string, args ...any) ([]domain.Reaction, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reactions: %w", err)
	}

	reactions, err := pgx.CollectRows(rows, scanReaction)
	if err != nil {
		return nil, fmt.Errorf("list reactions: %w", err)
	}

	if reactions == nil {
		reactions = []domain.Reaction{}
	}
	return reactions, nil
}

func scanReaction(row pgx.CollectableRow) (domain.Reaction, error) {
	var (
		rc   domain.Reaction
		kind string
	)
	err := row.Scan(
		&rc.ID, &rc.FeedID, &kind, &rc.PostedAt,
		&rc.Member.ID, &rc.Member.Email, &rc.Member.Nickname, &rc.Member.ProfileImage,
	)
	rc.ReactionType = domain.ReactionType(kind)
	return rc, err
}

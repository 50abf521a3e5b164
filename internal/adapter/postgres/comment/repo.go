// Package comment implements read access to feed comments.
package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/doblock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/doblock-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const countByFeedSQL = `SELECT count(*) FROM comments WHERE feed_id = $1`

const listByFeedSQL = `
SELECT c.id, c.feed_id, c.comment_content, c.posted_at,
       m.id, m.email, m.nickname, m.profile_image
FROM comments c
JOIN members m ON m.id = c.member_id
WHERE c.feed_id = $1
ORDER BY c.posted_at, c.id`

// CountByFeed returns the number of comments on a feed.
func (r *Repo) CountByFeed(ctx context.Context, feedID uuid.UUID) (int, error) {
	var count int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countByFeedSQL, feedID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return count, nil
}

// ListByFeed returns every comment on a feed in posting order (oldest first).
// Returns an empty slice (not nil) when the feed has no comments.
func (r *Repo) ListByFeed(ctx context.Context, feedID uuid.UUID) ([]domain.Comment, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listByFeedSQL, feedID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	comments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Comment, error) {
		var c domain.Comment
		err := row.Scan(
			&c.ID, &c.FeedID, &c.Content, &c.PostedAt,
			&c.Member.ID, &c.Member.Email, &c.Member.Nickname, &c.Member.ProfileImage,
		)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments, nil
}

// Package feed implements read access to feeds. Every feed is loaded
// together with its owning member.
package feed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/doblock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/doblock-backend/internal/domain"
)

// Repo provides feed persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new feed repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Columns is the select list that ScanRow expects, for queries aliasing
// feeds as f and members as m.
const Columns = `
    f.id, f.feed_title, f.feed_content, f.todo_list, f.image_list,
    f.feed_color, f.event_feed, f.posted_at,
    m.id, m.email, m.nickname, m.profile_image`

const getByIDSQL = `
SELECT` + Columns + `
FROM feeds f
JOIN members m ON m.id = f.member_id
WHERE f.id = $1`

const listByMemberSQL = `
SELECT` + Columns + `
FROM feeds f
JOIN members m ON m.id = f.member_id
WHERE f.member_id = $1
ORDER BY f.posted_at DESC, f.id`

// GetByID returns a feed by primary key.
// Returns domain.ErrNotFound if the feed does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Feed, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, getByIDSQL, id)
	if err != nil {
		return nil, postgres.MapError(err, "feed", id)
	}

	f, err := pgx.CollectExactlyOneRow(rows, ScanRow)
	if err != nil {
		return nil, postgres.MapError(err, "feed", id)
	}

	return &f, nil
}

// ListByMember returns all feeds posted by a member, newest first.
// Returns an empty slice (not nil) when the member has no feeds.
func (r *Repo) ListByMember(ctx context.Context, memberID uuid.UUID) ([]domain.Feed, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listByMemberSQL, memberID)
	if err != nil {
		return nil, fmt.Errorf("list feeds by member: %w", err)
	}

	feeds, err := CollectRows(rows)
	if err != nil {
		return nil, fmt.Errorf("list feeds by member: %w", err)
	}

	return feeds, nil
}

// CollectRows scans every row selected with Columns. Never returns a nil slice
// on success.
func CollectRows(rows pgx.Rows) ([]domain.Feed, error) {
	feeds, err := pgx.CollectRows(rows, ScanRow)
	if err != nil {
		return nil, err
	}
	if feeds == nil {
		feeds = []domain.Feed{}
	}
	return feeds, nil
}

// ScanRow scans one row selected with Columns into a domain.Feed.
func ScanRow(row pgx.CollectableRow) (domain.Feed, error) {
	var f domain.Feed
	err := row.Scan(
		&f.ID, &f.Title, &f.Content, &f.TodoList, &f.ImageList,
		&f.Color, &f.EventFeed, &f.PostedAt,
		&f.Member.ID, &f.Member.Email, &f.Member.Nickname, &f.Member.ProfileImage,
	)
	return f, err
}

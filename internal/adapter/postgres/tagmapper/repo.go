// Package tagmapper implements the tag association tables: feed_tags links
// tags to feeds, member_tags links tags to the members interested in them.
package tagmapper

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/doblock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/doblock-backend/internal/adapter/postgres/feed"
	"github.com/heartmarshall/doblock-backend/internal/domain"
)

// Repo provides tag-mapper persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag-mapper repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// feed_tags
// ---------------------------------------------------------------------------

const listFeedsByTagSQL = `
SELECT` + feed.Columns + `
FROM feed_tags ft
JOIN feeds f ON f.id = ft.feed_id
JOIN members m ON m.id = f.member_id
WHERE ft.tag_id = $1
ORDER BY ft.created_at, ft.id`

const listRecentFeedsByTagSQL = `
SELECT` + feed.Columns + `
FROM feed_tags ft
JOIN feeds f ON f.id = ft.feed_id
JOIN members m ON m.id = f.member_id
WHERE ft.tag_id = $1
ORDER BY f.posted_at DESC, f.id
LIMIT $2`

const listTagContentsByFeedSQL = `
SELECT t.tag_content
FROM feed_tags ft
JOIN tags t ON t.id = ft.tag_id
WHERE ft.feed_id = $1
ORDER BY ft.created_at, t.tag_content`

// ListFeedsByTag returns every feed carrying the tag, in tagging order.
func (r *Repo) ListFeedsByTag(ctx context.Context, tagID uuid.UUID) ([]domain.Feed, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listFeedsByTagSQL, tagID)
	if err != nil {
		return nil, fmt.Errorf("list feeds by tag: %w", err)
	}

	feeds, err := feed.CollectRows(rows)
	if err != nil {
		return nil, fmt.Errorf("list feeds by tag: %w", err)
	}
	return feeds, nil
}

// ListRecentFeedsByTag returns at most limit feeds carrying the tag,
// most recently posted first.
func (r *Repo) ListRecentFeedsByTag(ctx context.Context, tagID uuid.UUID, limit int) ([]domain.Feed, error) {
	if limit <= 0 {
		return []domain.Feed{}, nil
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listRecentFeedsByTagSQL, tagID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent feeds by tag: %w", err)
	}

	feeds, err := feed.CollectRows(rows)
	if err != nil {
		return nil, fmt.Errorf("list recent feeds by tag: %w", err)
	}
	return feeds, nil
}

// ListTagContentsByFeed returns the text of every tag on a feed, in tagging order.
// Returns an empty slice (not nil) when the feed is untagged.
func (r *Repo) ListTagContentsByFeed(ctx context.Context, feedID uuid.UUID) ([]string, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listTagContentsByFeedSQL, feedID)
	if err != nil {
		return nil, fmt.Errorf("list tags by feed: %w", err)
	}

	contents, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list tags by feed: %w", err)
	}

	if contents == nil {
		contents = []string{}
	}
	return contents, nil
}

// ---------------------------------------------------------------------------
// member_tags
// ---------------------------------------------------------------------------

const listTagsByMemberSQL = `
SELECT t.id, t.tag_content
FROM member_tags mt
JOIN tags t ON t.id = mt.tag_id
WHERE mt.member_id = $1
ORDER BY t.tag_content`

// ListTagsByMember returns the tags a member is affiliated with, ordered by content.
// Returns an empty slice (not nil) when the member has no tags.
func (r *Repo) ListTagsByMember(ctx context.Context, memberID uuid.UUID) ([]domain.Tag, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listTagsByMemberSQL, memberID)
	if err != nil {
		return nil, fmt.Errorf("list tags by member: %w", err)
	}

	tags, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Tag, error) {
		var t domain.Tag
		err := row.Scan(&t.ID, &t.TagContent)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("list tags by member: %w", err)
	}

	if tags == nil {
		tags = []domain.Tag{}
	}
	return tags, nil
}

// Package tag implements read access to tags.
package tag

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/doblock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/doblock-backend/internal/domain"
)

// Repo provides tag persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tag repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// SearchByContent returns tags whose content contains keyword
// (case-insensitive), ordered by content.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) SearchByContent(ctx context.Context, keyword string) ([]domain.Tag, error) {
	query, args, err := postgres.Builder().
		Select("id", "tag_content").
		From("tags").
		Where(postgres.ContainsFold("tag_content", keyword)).
		OrderBy("tag_content").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build tag search: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search tags: %w", err)
	}

	tags, err := pgx.CollectRows(rows, scanTag)
	if err != nil {
		return nil, fmt.Errorf("search tags: %w", err)
	}

	if tags == nil {
		tags = []domain.Tag{}
	}
	return tags, nil
}

func scanTag(row pgx.CollectableRow) (domain.Tag, error) {
	var t domain.Tag
	err := row.Scan(&t.ID, &t.TagContent)
	return t, err
}

// Package follow implements read access to the directed follow graph.
package follow

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/doblock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/doblock-backend/internal/domain"
)

// Repo provides follow persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new follow repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const existsSQL = `
SELECT EXISTS(
    SELECT 1 FROM follows WHERE from_member_id = $1 AND to_member_id = $2
)`

const listFollowingSQL = `
SELECT id, from_member_id, to_member_id
FROM follows
WHERE from_member_id = $1
ORDER BY created_at, id`

// Exists reports whether from follows to.
func (r *Repo) Exists(ctx context.Context, from, to uuid.UUID) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, existsSQL, from, to).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "follow", from)
	}
	return exists, nil
}

// ListFollowing returns every edge starting at from, oldest first.
// Returns an empty slice (not nil) when the member follows nobody.
func (r *Repo) ListFollowing(ctx context.Context, from uuid.UUID) ([]domain.Follow, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listFollowingSQL, from)
	if err != nil {
		return nil, fmt.Errorf("list following: %w", err)
	}

	follows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Follow, error) {
		var f domain.Follow
		err := row.Scan(&f.ID, &f.FromMemberID, &f.ToMemberID)
		return f, err
	})
	if err != nil {
		return nil, fmt.Errorf("list following: %w", err)
	}

	if follows == nil {
		follows = []domain.Follow{}
	}
	return follows, nil
}

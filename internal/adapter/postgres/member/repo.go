// Package member implements read access to members, including the
// substring searches used by member search.
package member

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/doblock-backend/internal/adapter/postgres"
	"github.com/heartmarshall/doblock-backend/internal/domain"
)

// Repo provides member persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new member repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{"id", "email", "nickname", "profile_image"}

// SearchByEmail returns members whose email contains keyword (case-insensitive),
// ordered by email. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) SearchByEmail(ctx context.Context, keyword string) ([]domain.Member, error) {
	return r.search(ctx, postgres.ContainsFold("email", keyword), "email")
}

// SearchByNickname returns members whose nickname contains keyword
// (case-insensitive), ordered by nickname.
func (r *Repo) SearchByNickname(ctx context.Context, keyword string) ([]domain.Member, error) {
	return r.search(ctx, postgres.ContainsFold("nickname", keyword), "nickname")
}

func (r *Repo) search(ctx context.Context, pred sq.Sqlizer, orderBy string) ([]domain.Member, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("members").
		Where(pred).
		OrderBy(orderBy, "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build member search: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search members: %w", err)
	}

	members, err := pgx.CollectRows(rows, scanMember)
	if err != nil {
		return nil, fmt.Errorf("search members: %w", err)
	}

	if members == nil {
		members = []domain.Member{}
	}
	return members, nil
}

func scanMember(row pgx.CollectableRow) (domain.Member, error) {
	var m domain.Member
	err := row.Scan(&m.ID, &m.Email, &m.Nickname, &m.ProfileImage)
	return m, err
}

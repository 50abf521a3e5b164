// Package search assembles the read-side views of the feed application:
// keyword search, the following timeline, tag recommendations and the
// single-feed detail view.
package search

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/doblock-backend/internal/domain"
)

type memberRepo interface {
	SearchByEmail(ctx context.Context, keyword string) ([]domain.Member, error)
	SearchByNickname(ctx context.Context, keyword string) ([]domain.Member, error)
}

type followRepo interface {
	Exists(ctx context.Context, from, to uuid.UUID) (bool, error)
	ListFollowing(ctx context.Context, from uuid.UUID) ([]domain.Follow, error)
}

type feedRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Feed, error)
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]domain.Feed, error)
}

type reactionRepo interface {
	CountByFeed(ctx context.Context, feedID uuid.UUID) (int, error)
	ListByFeed(ctx context.Context, feedID uuid.UUID) ([]domain.Reaction, error)
	ListRecentByFeed(ctx context.Context, feedID uuid.UUID, limit int) ([]domain.Reaction, error)
}

type commentRepo interface {
	CountByFeed(ctx context.Context, feedID uuid.UUID) (int, error)
	ListByFeed(ctx context.Context, feedID uuid.UUID) ([]domain.Comment, error)
}

type tagRepo interface {
	SearchByContent(ctx context.Context, keyword string) ([]domain.Tag, error)
}

type tagMapperRepo interface {
	ListFeedsByTag(ctx context.Context, tagID uuid.UUID) ([]domain.Feed, error)
	ListRecentFeedsByTag(ctx context.Context, tagID uuid.UUID, limit int) ([]domain.Feed, error)
	ListTagContentsByFeed(ctx context.Context, feedID uuid.UUID) ([]string, error)
	ListTagsByMember(ctx context.Context, memberID uuid.UUID) ([]domain.Tag, error)
}

type txManager interface {
	RunInReadOnlyTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Default list sizes.
const (
	DefaultPostsPerPage    = 5
	DefaultRecommendPerTag = 5
	DefaultRecentReactions = 2
)

// Limits holds the list sizes the service slices to. Non-positive page and
// per-tag sizes fall back to the defaults. RecentReactions falls back only when
// negative; zero disables the recent reaction types.
type Limits struct {
	PostsPerPage    int
	RecommendPerTag int
	RecentReactions int
}

func (l Limits) withDefaults() Limits {
	if l.PostsPerPage <= 0 {
		l.PostsPerPage = DefaultPostsPerPage
	}
	if l.RecommendPerTag <= 0 {
		l.RecommendPerTag = DefaultRecommendPerTag
	}
	if l.RecentReactions < 0 {
		l.RecentReactions = DefaultRecentReactions
	}
	return l
}

// Repos groups the persistence stores the service reads from.
type Repos struct {
	Members    memberRepo
	Follows    followRepo
	Feeds      feedRepo
	Reactions  reactionRepo
	Comments   commentRepo
	Tags       tagRepo
	TagMappers tagMapperRepo
}

// Service provides the search and timeline read operations.
type Service struct {
	members    memberRepo
	follows    followRepo
	feeds      feedRepo
	reactions  reactionRepo
	comments   commentRepo
	tags       tagRepo
	tagMappers tagMapperRepo
	tx         txManager
	limits     Limits
	log        *slog.Logger
}

// NewService creates a new search Service.
func NewService(log *slog.Logger, repos Repos, tx txManager, limits Limits) *Service {
	return &Service{
		members:    repos.Members,
		follows:    repos.Follows,
		feeds:      repos.Feeds,
		reactions:  repos.Reactions,
		comments:   repos.Comments,
		tags:       repos.Tags,
		tagMappers: repos.TagMappers,
		tx:         tx,
		limits:     limits.withDefaults(),
		log:        log.With("service", "search"),
	}
}

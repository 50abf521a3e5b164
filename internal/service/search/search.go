package search

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/doblock-backend/internal/domain"
	"github.com/heartmarshall/doblock-backend/pkg/ctxutil"
)

// Search looks up feeds by tag content or members by email and nickname,
// depending on the input category.
func (s *Service) Search(ctx context.Context, input SearchInput) (*SearchResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	keyword := domain.NormalizeKeyword(input.Keyword)

	if input.IsFeedSearch() {
		feeds, err := s.searchFeeds(ctx, keyword)
		if err != nil {
			return nil, fmt.Errorf("search feeds: %w", err)
		}
		return &SearchResult{Category: CategoryFeed, Feeds: feeds}, nil
	}

	viewerID, ok := ctxutil.MemberIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	members, err := s.searchMembers(ctx, viewerID, keyword)
	if err != nil {
		return nil, fmt.Errorf("search members: %w", err)
	}
	return &SearchResult{Category: input.Category, Members: members}, nil
}

func (s *Service) searchFeeds(ctx context.Context, keyword string) ([]FeedSummary, error) {
	var summaries []FeedSummary

	err := s.tx.RunInReadOnlyTx(ctx, func(txCtx context.Context) error {
		tags, err := s.tags.SearchByContent(txCtx, keyword)
		if err != nil {
			return fmt.Errorf("search tags: %w", err)
		}

		summaries = make([]FeedSummary, 0)
		for _, tag := range tags {
			feeds, err := s.tagMappers.ListFeedsByTag(txCtx, tag.ID)
			if err != nil {
				return fmt.Errorf("list feeds by tag %s: %w", tag.ID, err)
			}
			for i := range feeds {
				summary, err := s.buildSummary(txCtx, &feeds[i])
				if err != nil {
					return err
				}
				summaries = append(summaries, summary)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortByPostedAt(summaries, false)

	s.log.DebugContext(ctx, "feed search",
		slog.String("keyword", keyword),
		slog.Int("results", len(summaries)),
	)
	return summaries, nil
}

func (s *Service) searchMembers(ctx context.Context, viewerID uuid.UUID, keyword string) ([]MemberFollowStatus, error) {
	var result []MemberFollowStatus

	err := s.tx.RunInReadOnlyTx(ctx, func(txCtx context.Context) error {
		byEmail, err := s.members.SearchByEmail(txCtx, keyword)
		if err != nil {
			return fmt.Errorf("by email: %w", err)
		}
		byNickname, err := s.members.SearchByNickname(txCtx, keyword)
		if err != nil {
			return fmt.Errorf("by nickname: %w", err)
		}

		// Members matching both email and nickname appear twice.
		found := slices.Concat(byEmail, byNickname)
		result = make([]MemberFollowStatus, 0, len(found))
		for _, m := range found {
			following, err := s.follows.Exists(txCtx, viewerID, m.ID)
			if err != nil {
				return fmt.Errorf("follow status %s: %w", m.ID, err)
			}
			result = append(result, MemberFollowStatus{
				MemberID:     m.ID,
				Nickname:     m.Nickname,
				ProfileImage: m.ProfileImage,
				Following:    following,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// sortByPostedAt orders summaries by posting time. Feeds with equal
// timestamps keep their assembly order.
func sortByPostedAt(summaries []FeedSummary, desc bool) {
	slices.SortStableFunc(summaries, func(a, b FeedSummary) int {
		if desc {
			return b.PostedAt.Compare(a.PostedAt)
		}
		return a.PostedAt.Compare(b.PostedAt)
	})
}

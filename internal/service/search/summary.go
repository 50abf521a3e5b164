package search

import (
	"context"
	"fmt"

	"github.com/heartmarshall/doblock-backend/internal/domain"
)

// buildSummary projects a feed into its list form, loading the reaction
// count, comment count and tag contents.
func (s *Service) buildSummary(ctx context.Context, feed *domain.Feed) (FeedSummary, error) {
	reactionCount, err := s.reactions.CountByFeed(ctx, feed.ID)
	if err != nil {
		return FeedSummary{}, fmt.Errorf("count reactions of %s: %w", feed.ID, err)
	}
	tagList, err := s.tagMappers.ListTagContentsByFeed(ctx, feed.ID)
	if err != nil {
		return FeedSummary{}, fmt.Errorf("list tags of %s: %w", feed.ID, err)
	}
	commentCount, err := s.comments.CountByFeed(ctx, feed.ID)
	if err != nil {
		return FeedSummary{}, fmt.Errorf("count comments of %s: %w", feed.ID, err)
	}

	return FeedSummary{
		FeedID:          feed.ID,
		MemberID:        feed.Member.ID,
		Nickname:        feed.Member.Nickname,
		ProfileImageURL: feed.Member.ProfileImage,
		TodoList:        feed.TodoList,
		Title:           feed.Title,
		Color:           feed.Color,
		EventFeed:       feed.EventFeed,
		ReactionCount:   reactionCount,
		TagList:         tagList,
		CommentCount:    commentCount,
		PostedAt:        feed.PostedAt,
	}, nil
}

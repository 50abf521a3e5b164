package search

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/heartmarshall/doblock-backend/internal/domain"
	"github.com/heartmarshall/doblock-backend/pkg/ctxutil"
)

// GetFeed returns the detail view of one feed.
func (s *Service) GetFeed(ctx context.Context, feedID uuid.UUID) (*FeedDetail, error) {
	viewerID, ok := ctxutil.MemberIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var detail *FeedDetail

	err := s.tx.RunInReadOnlyTx(ctx, func(txCtx context.Context) error {
		feed, err := s.feeds.GetByID(txCtx, feedID)
		if err != nil {
			return fmt.Errorf("get feed: %w", err)
		}

		following, err := s.follows.Exists(txCtx, viewerID, feed.Member.ID)
		if err != nil {
			return fmt.Errorf("follow status: %w", err)
		}
		reactionCount, err := s.reactions.CountByFeed(txCtx, feed.ID)
		if err != nil {
			return fmt.Errorf("count reactions: %w", err)
		}
		recent, err := s.reactions.ListRecentByFeed(txCtx, feed.ID, s.limits.RecentReactions)
		if err != nil {
			return fmt.Errorf("recent reactions: %w", err)
		}
		tagList, err := s.tagMappers.ListTagContentsByFeed(txCtx, feed.ID)
		if err != nil {
			return fmt.Errorf("list tags: %w", err)
		}
		reactions, err := s.reactions.ListByFeed(txCtx, feed.ID)
		if err != nil {
			return fmt.Errorf("list reactions: %w", err)
		}
		commentCount, err := s.comments.CountByFeed(txCtx, feed.ID)
		if err != nil {
			return fmt.Errorf("count comments: %w", err)
		}
		comments, err := s.comments.ListByFeed(txCtx, feed.ID)
		if err != nil {
			return fmt.Errorf("list comments: %w", err)
		}

		detail = &FeedDetail{
			FeedID:          feed.ID,
			MemberID:        feed.Member.ID,
			Nickname:        feed.Member.Nickname,
			ProfileImageURL: feed.Member.ProfileImage,
			Following:       following,
			TodoList:        feed.TodoList,
			Title:           feed.Title,
			Content:         feed.Content,
			ImageURLs:       feed.ImageList,
			Color:           feed.Color,
			EventFeed:       feed.EventFeed,
			ReactionCount:   reactionCount,
			RecentReactionTypes: lo.Map(recent, func(r domain.Reaction, _ int) domain.ReactionType {
				return r.ReactionType
			}),
			TagList:      tagList,
			Reactions:    lo.Map(reactions, toReactionView),
			CommentCount: commentCount,
			Comments:     lo.Map(comments, toCommentView),
			PostedAt:     feed.PostedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return detail, nil
}

func toReactionView(r domain.Reaction, _ int) ReactionView {
	return ReactionView{
		MemberID:     r.Member.ID,
		Nickname:     r.Member.Nickname,
		ProfileImage: r.Member.ProfileImage,
		ReactionType: r.ReactionType,
	}
}

func toCommentView(c domain.Comment, _ int) CommentView {
	return CommentView{
		CommentID:    c.ID,
		MemberID:     c.Member.ID,
		Nickname:     c.Member.Nickname,
		ProfileImage: c.Member.ProfileImage,
		Content:      c.Content,
		PostedAt:     c.PostedAt,
	}
}

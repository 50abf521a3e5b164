package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/doblock-backend/internal/domain"
	"github.com/heartmarshall/doblock-backend/pkg/ctxutil"
)

// GetFollowingFeeds returns one page of the viewer's timeline: feeds of every
// followed member plus the viewer's own, newest first.
func (s *Service) GetFollowingFeeds(ctx context.Context, page int) ([]FeedSummary, error) {
	viewerID, ok := ctxutil.MemberIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if page < 0 {
		return nil, domain.NewValidationError("page", "must be non-negative")
	}

	var summaries []FeedSummary

	err := s.tx.RunInReadOnlyTx(ctx, func(txCtx context.Context) error {
		follows, err := s.follows.ListFollowing(txCtx, viewerID)
		if err != nil {
			return fmt.Errorf("list following: %w", err)
		}

		authors := make([]domain.Follow, 0, len(follows)+1)
		authors = append(authors, follows...)
		authors = append(authors, domain.Follow{FromMemberID: viewerID, ToMemberID: viewerID})

		summaries = make([]FeedSummary, 0)
		for _, f := range authors {
			feeds, err := s.feeds.ListByMember(txCtx, f.ToMemberID)
			if err != nil {
				return fmt.Errorf("list feeds of %s: %w", f.ToMemberID, err)
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
		return nil, fmt.Errorf("get following feeds: %w", err)
	}

	sortByPostedAt(summaries, true)

	result, err := paginate(summaries, page, s.limits.PostsPerPage)
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "following feeds",
		slog.String("member_id", viewerID.String()),
		slog.Int("page", page),
		slog.Int("total", len(summaries)),
	)
	return result, nil
}

// paginate slices [page*size, min(len, (page+1)*size)). An empty window is
// reported as a validation error rather than an empty page.
func paginate(items []FeedSummary, page, size int) ([]FeedSummary, error) {
	// Pages past the last one are rejected before page*size can overflow.
	if len(items) == 0 || page > (len(items)-1)/size {
		return nil, domain.NewValidationError("page", "no feeds on this page")
	}
	start := page * size
	end := min(len(items), (page+1)*size)
	if end <= start {
		return nil, domain.NewValidationError("page", "no feeds on this page")
	}
	return items[start:end], nil
}

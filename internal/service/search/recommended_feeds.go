package search

import (
	"context"
	"fmt"

	"github.com/heartmarshall/doblock-backend/internal/domain"
	"github.com/heartmarshall/doblock-backend/pkg/ctxutil"
)

// GetRecommendedFeeds returns the most recent feeds for each tag the viewer
// is affiliated with, oldest first. Feeds shared by several tags repeat.
func (s *Service) GetRecommendedFeeds(ctx context.Context) ([]FeedSummary, error) {
	viewerID, ok := ctxutil.MemberIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var summaries []FeedSummary

	err := s.tx.RunInReadOnlyTx(ctx, func(txCtx context.Context) error {
		tags, err := s.tagMappers.ListTagsByMember(txCtx, viewerID)
		if err != nil {
			return fmt.Errorf("list member tags: %w", err)
		}

		summaries = make([]FeedSummary, 0)
		for _, tag := range tags {
			feeds, err := s.tagMappers.ListRecentFeedsByTag(txCtx, tag.ID, s.limits.RecommendPerTag)
			if err != nil {
				return fmt.Errorf("list recent feeds by tag %s: %w", tag.ID, err)
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
		return nil, fmt.Errorf("get recommended feeds: %w", err)
	}

	sortByPostedAt(summaries, false)
	return summaries, nil
}

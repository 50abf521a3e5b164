package search

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/doblock-backend/internal/domain"
)

// FeedSummary is the list projection of a feed. It carries counts but no
// content or reaction details.
type FeedSummary struct {
	FeedID          uuid.UUID
	MemberID        uuid.UUID
	Nickname        string
	ProfileImageURL string
	TodoList        []string
	Title           string
	Color           string
	EventFeed       bool
	ReactionCount   int
	TagList         []string
	CommentCount    int
	PostedAt        time.Time
}

// FeedDetail is the full single-feed view.
type FeedDetail struct {
	FeedID              uuid.UUID
	MemberID            uuid.UUID
	Nickname            string
	ProfileImageURL     string
	Following           bool
	TodoList            []string
	Title               string
	Content             string
	ImageURLs           []string
	Color               string
	EventFeed           bool
	ReactionCount       int
	RecentReactionTypes []domain.ReactionType
	TagList             []string
	Reactions           []ReactionView
	CommentCount        int
	Comments            []CommentView
	PostedAt            time.Time
}

// ReactionView is one reaction with the reacting member's public profile.
type ReactionView struct {
	MemberID     uuid.UUID
	Nickname     string
	ProfileImage string
	ReactionType domain.ReactionType
}

// CommentView is one comment with its author's public profile.
type CommentView struct {
	CommentID    uuid.UUID
	MemberID     uuid.UUID
	Nickname     string
	ProfileImage string
	Content      string
	PostedAt     time.Time
}

// MemberFollowStatus is a member search hit annotated with whether the
// viewer already follows that member.
type MemberFollowStatus struct {
	MemberID     uuid.UUID
	Nickname     string
	ProfileImage string
	Following    bool
}

// SearchResult holds the outcome of Search. Exactly one of Feeds or Members
// is populated, depending on the requested category.
type SearchResult struct {
	Category string
	Feeds    []FeedSummary
	Members  []MemberFollowStatus
}

// IsFeedResult reports whether the result holds feed summaries.
func (r *SearchResult) IsFeedResult() bool {
	return r.Category == CategoryFeed
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Feed is a posted content unit. Member is always resolved together with the feed.
type Feed struct {
	ID        uuid.UUID
	Member    Member
	Title     string
	Content   string
	TodoList  []string
	ImageList []string
	Color     string
	EventFeed bool
	PostedAt  time.Time
}

// ReactionType is the kind of reaction a member attached to a feed.
type ReactionType string

const (
	ReactionLike     ReactionType = "LIKE"
	ReactionCheerUp  ReactionType = "CHEER_UP"
	ReactionAmazing  ReactionType = "AMAZING"
	ReactionTogether ReactionType = "TOGETHER"
)

// Reaction is a typed response by a member to a feed.
type Reaction struct {
	ID           uuid.UUID
	FeedID       uuid.UUID
	Member       Member
	ReactionType ReactionType
	PostedAt     time.Time
}

// Comment is a text reply by a member to a feed.
type Comment struct {
	ID       uuid.UUID
	FeedID   uuid.UUID
	Member   Member
	Content  string
	PostedAt time.Time
}

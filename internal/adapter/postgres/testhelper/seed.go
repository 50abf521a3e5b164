package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/doblock-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedMember creates a member with a unique email and nickname.
func SeedMember(t *testing.T, pool *pgxpool.Pool) domain.Member {
	t.Helper()
	suffix := UniqueSuffix()
	return SeedMemberWith(t, pool, "member-"+suffix+"@example.com", "nick-"+suffix)
}

// SeedMemberWith creates a member with the given email and nickname.
func SeedMemberWith(t *testing.T, pool *pgxpool.Pool, email, nickname string) domain.Member {
	t.Helper()

	m := domain.Member{
		ID:           uuid.New(),
		Email:        email,
		Nickname:     nickname,
		ProfileImage: "https://img.example.com/" + nickname + ".png",
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO members (id, email, nickname, profile_image) VALUES ($1, $2, $3, $4)`,
		m.ID, m.Email, m.Nickname, m.ProfileImage,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMember: %v", err)
	}

	return m
}

// SeedFollow makes from follow to.
func SeedFollow(t *testing.T, pool *pgxpool.Pool, from, to uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO follows (from_member_id, to_member_id) VALUES ($1, $2)`, from, to,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFollow: %v", err)
	}
}

// SeedFeed creates a feed owned by member, posted at postedAt.
func SeedFeed(t *testing.T, pool *pgxpool.Pool, member domain.Member, postedAt time.Time) domain.Feed {
	t.Helper()

	suffix := UniqueSuffix()
	f := domain.Feed{
		ID:        uuid.New(),
		Member:    member,
		Title:     "title-" + suffix,
		Content:   "content-" + suffix,
		TodoList:  []string{"wake up", "run 5km"},
		ImageList: []string{"https://img.example.com/feed-" + suffix + ".png"},
		Color:     "#FFAA00",
		EventFeed: false,
		PostedAt:  postedAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO feeds (id, member_id, feed_title, feed_content, todo_list, image_list, feed_color, event_feed, posted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		f.ID, member.ID, f.Title, f.Content, f.TodoList, f.ImageList, f.Color, f.EventFeed, f.PostedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFeed: %v", err)
	}

	return f
}

// SeedTag creates a tag with the given content.
func SeedTag(t *testing.T, pool *pgxpool.Pool, content string) domain.Tag {
	t.Helper()

	tag := domain.Tag{ID: uuid.New(), TagContent: content}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO tags (id, tag_content) VALUES ($1, $2)`, tag.ID, tag.TagContent,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTag: %v", err)
	}

	return tag
}

// SeedFeedTag links a feed to a tag.
func SeedFeedTag(t *testing.T, pool *pgxpool.Pool, feedID, tagID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO feed_tags (feed_id, tag_id) VALUES ($1, $2)`, feedID, tagID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFeedTag: %v", err)
	}
}

// SeedMemberTag links a member to a tag.
func SeedMemberTag(t *testing.T, pool *pgxpool.Pool, memberID, tagID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO member_tags (member_id, tag_id) VALUES ($1, $2)`, memberID, tagID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMemberTag: %v", err)
	}
}

// SeedReaction records a reaction by member on feed.
func SeedReaction(t *testing.T, pool *pgxpool.Pool, feedID uuid.UUID, member domain.Member, rt domain.ReactionType, postedAt time.Time) domain.Reaction {
	t.Helper()

	r := domain.Reaction{
		ID:           uuid.New(),
		FeedID:       feedID,
		Member:       member,
		ReactionType: rt,
		PostedAt:     postedAt.UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO reactions (id, feed_id, member_id, reaction_type, posted_at) VALUES ($1, $2, $3, $4, $5)`,
		r.ID, feedID, member.ID, string(rt), r.PostedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReaction: %v", err)
	}

	return r
}

// SeedComment records a comment by member on feed.
func SeedComment(t *testing.T, pool *pgxpool.Pool, feedID uuid.UUID, member domain.Member, content string, postedAt time.Time) domain.Comment {
	t.Helper()

	c := domain.Comment{
		ID:       uuid.New(),
		FeedID:   feedID,
		Member:   member,
		Content:  content,
		PostedAt: postedAt.UTC().Truncate(time.Microsecond),
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO comments (id, feed_id, member_id, comment_content, posted_at) VALUES ($1, $2, $3, $4, $5)`,
		c.ID, feedID, member.ID, c.Content, c.PostedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment: %v", err)
	}

	return c
}

package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/doblock-backend/internal/domain"
	"github.com/heartmarshall/doblock-backend/internal/service/search"
)

// searchService defines the operations FeedHandler needs.
type searchService interface {
	Search(ctx context.Context, input search.SearchInput) (*search.SearchResult, error)
	GetFollowingFeeds(ctx context.Context, page int) ([]search.FeedSummary, error)
	GetRecommendedFeeds(ctx context.Context) ([]search.FeedSummary, error)
	GetFeed(ctx context.Context, feedID uuid.UUID) (*search.FeedDetail, error)
}

// FeedHandler serves the search and feed read endpoints.
type FeedHandler struct {
	svc searchService
	log *slog.Logger
}

// NewFeedHandler creates a FeedHandler.
func NewFeedHandler(svc searchService, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{svc: svc, log: logger.With("handler", "feed")}
}

// Search handles GET /api/search?keyword=&category=.
// The body is a list of feed summaries or of members, depending on category.
func (h *FeedHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.svc.Search(r.Context(), search.SearchInput{
		Keyword:  q.Get("keyword"),
		Category: q.Get("category"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if result.IsFeedResult() {
		writeJSON(w, http.StatusOK, toFeedSummaryResponses(result.Feeds))
		return
	}
	writeJSON(w, http.StatusOK, toMemberResponses(result.Members))
}

// FollowingFeeds handles GET /api/feeds/following?page=.
func (h *FeedHandler) FollowingFeeds(w http.ResponseWriter, r *http.Request) {
	page := 0
	if raw := r.URL.Query().Get("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "page must be an integer")
			return
		}
		page = p
	}

	feeds, err := h.svc.GetFollowingFeeds(r.Context(), page)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFeedSummaryResponses(feeds))
}

// RecommendedFeeds handles GET /api/feeds/recommended.
func (h *FeedHandler) RecommendedFeeds(w http.ResponseWriter, r *http.Request) {
	feeds, err := h.svc.GetRecommendedFeeds(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFeedSummaryResponses(feeds))
}

// GetFeed handles GET /api/feeds/{feedID}.
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	feedID, err := uuid.Parse(r.PathValue("feedID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid feed id")
		return
	}

	detail, err := h.svc.GetFeed(r.Context(), feedID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFeedDetailResponse(detail))
}

type feedSummaryResponse struct {
	FeedID          string    `json:"feedId"`
	MemberID        string    `json:"memberId"`
	Nickname        string    `json:"nickname"`
	ProfileImageURL string    `json:"profileImageUrl"`
	TodoList        []string  `json:"todoList"`
	FeedTitle       string    `json:"feedTitle"`
	FeedColor       string    `json:"feedColor"`
	EventFeed       bool      `json:"eventFeed"`
	CountReaction   int       `json:"countReaction"`
	TagList         []string  `json:"tagList"`
	CountComment    int       `json:"countComment"`
	PostedAt        time.Time `json:"postedAt"`
}

type feedDetailResponse struct {
	FeedID              string                `json:"feedId"`
	MemberID            string                `json:"memberId"`
	Nickname            string                `json:"nickname"`
	ProfileImageURL     string                `json:"profileImageUrl"`
	FollowOrNot         bool                  `json:"followOrNot"`
	TodoList            []string              `json:"todoList"`
	FeedTitle           string                `json:"feedTitle"`
	FeedContent         string                `json:"feedContent"`
	FeedImagesURLList   []string              `json:"feedImagesUrlList"`
	FeedColor           string                `json:"feedColor"`
	EventFeed           bool                  `json:"eventFeed"`
	CountReaction       int                   `json:"countReaction"`
	CurrentReactionType []domain.ReactionType `json:"currentReactionType"`
	TagList             []string              `json:"tagList"`
	Reactions           []reactionResponse    `json:"reactionResponseDtoList"`
	CountComment        int                   `json:"countComment"`
	Comments            []commentResponse     `json:"commentResponseDtoList"`
	PostedAt            time.Time             `json:"postedAt"`
}

type reactionResponse struct {
	MemberID     string              `json:"memberId"`
	Nickname     string              `json:"nickname"`
	ProfileImage string              `json:"profileImage"`
	ReactionType domain.ReactionType `json:"reactionType"`
}

type commentResponse struct {
	CommentID      string    `json:"commentId"`
	MemberID       string    `json:"memberId"`
	Nickname       string    `json:"nickname"`
	ProfileImage   string    `json:"profileImage"`
	CommentContent string    `json:"commentContent"`
	PostedAt       time.Time `json:"postedAt"`
}

type memberResponse struct {
	MemberID     string `json:"memberId"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profileImage"`
	FollowOrNot  bool   `json:"followOrNot"`
}

func toFeedSummaryResponses(feeds []search.FeedSummary) []feedSummaryResponse {
	out := make([]feedSummaryResponse, 0, len(feeds))
	for _, f := range feeds {
		out = append(out, feedSummaryResponse{
			FeedID:          f.FeedID.String(),
			MemberID:        f.MemberID.String(),
			Nickname:        f.Nickname,
			ProfileImageURL: f.ProfileImageURL,
			TodoList:        nonNil(f.TodoList),
			FeedTitle:       f.Title,
			FeedColor:       f.Color,
			EventFeed:       f.EventFeed,
			CountReaction:   f.ReactionCount,
			TagList:         nonNil(f.TagList),
			CountComment:    f.CommentCount,
			PostedAt:        f.PostedAt,
		})
	}
	return out
}

func toMemberResponses(members []search.MemberFollowStatus) []memberResponse {
	out := make([]memberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, memberResponse{
			MemberID:     m.MemberID.String(),
			Nickname:     m.Nickname,
			ProfileImage: m.ProfileImage,
			FollowOrNot:  m.Following,
		})
	}
	return out
}

func toFeedDetailResponse(d *search.FeedDetail) feedDetailResponse {
	reactions := make([]reactionResponse, 0, len(d.Reactions))
	for _, rv := range d.Reactions {
		reactions = append(reactions, reactionResponse{
			MemberID:     rv.MemberID.String(),
			Nickname:     rv.Nickname,
			ProfileImage: rv.ProfileImage,
			ReactionType: rv.ReactionType,
		})
	}
	comments := make([]commentResponse, 0, len(d.Comments))
	for _, cv := range d.Comments {
		comments = append(comments, commentResponse{
			CommentID:      cv.CommentID.String(),
			MemberID:       cv.MemberID.String(),
			Nickname:       cv.Nickname,
			ProfileImage:   cv.ProfileImage,
			CommentContent: cv.Content,
			PostedAt:       cv.PostedAt,
		})
	}

	return feedDetailResponse{
		FeedID:              d.FeedID.String(),
		MemberID:            d.MemberID.String(),
		Nickname:            d.Nickname,
		ProfileImageURL:     d.ProfileImageURL,
		FollowOrNot:         d.Following,
		TodoList:            nonNil(d.TodoList),
		FeedTitle:           d.Title,
		FeedContent:         d.Content,
		FeedImagesURLList:   nonNil(d.ImageURLs),
		FeedColor:           d.Color,
		EventFeed:           d.EventFeed,
		CountReaction:       d.ReactionCount,
		CurrentReactionType: nonNil(d.RecentReactionTypes),
		TagList:             nonNil(d.TagList),
		Reactions:           reactions,
		CountComment:        d.CommentCount,
		Comments:            comments,
		PostedAt:            d.PostedAt,
	}
}

// nonNil keeps empty lists encoding as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

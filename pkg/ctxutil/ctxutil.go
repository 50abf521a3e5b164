package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	memberIDKey     ctxKey = "member_id"
	requestIDKey    ctxKey = "request_id"
	viewerHolderKey ctxKey = "viewer_holder"
	routeHolderKey  ctxKey = "route_holder"
)

type viewerHolder struct {
	id uuid.UUID
}

// WithMemberID stores the authenticated viewer's member ID in the context.
// If an outer layer installed a viewer holder, the ID is recorded there too.
func WithMemberID(ctx context.Context, id uuid.UUID) context.Context {
	if h, ok := ctx.Value(viewerHolderKey).(*viewerHolder); ok {
		h.id = id
	}
	return context.WithValue(ctx, memberIDKey, id)
}

// MemberIDFromCtx extracts the viewer's member ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func MemberIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(memberIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithViewerHolder installs a holder that captures the member ID set by any
// inner context derived from ctx. Outer HTTP middleware uses it to see the
// viewer resolved further down the chain.
func WithViewerHolder(ctx context.Context) context.Context {
	return context.WithValue(ctx, viewerHolderKey, &viewerHolder{})
}

// ViewerFromHolder returns the member ID captured by the holder, if any.
func ViewerFromHolder(ctx context.Context) (uuid.UUID, bool) {
	h, ok := ctx.Value(viewerHolderKey).(*viewerHolder)
	if !ok || h.id == uuid.Nil {
		return MemberIDFromCtx(ctx)
	}
	return h.id, true
}

type routeHolder struct {
	pattern string
}

// WithRouteHolder installs a holder for the route pattern matched further down
// the handler chain.
func WithRouteHolder(ctx context.Context) context.Context {
	return context.WithValue(ctx, routeHolderKey, &routeHolder{})
}

// SetRoute records the matched route pattern in the holder installed by
// WithRouteHolder. It is a no-op without a holder.
func SetRoute(ctx context.Context, pattern string) {
	if h, ok := ctx.Value(routeHolderKey).(*routeHolder); ok {
		h.pattern = pattern
	}
}

// RouteFromHolder returns the recorded route pattern, or "" when no route matched.
func RouteFromHolder(ctx context.Context) string {
	h, ok := ctx.Value(routeHolderKey).(*routeHolder)
	if !ok {
		return ""
	}
	return h.pattern
}

package domain

import "github.com/google/uuid"

// Tag is a free-form label attached to feeds and members.
type Tag struct {
	ID         uuid.UUID
	TagContent string
}

package domain

import "github.com/google/uuid"

// Member is a registered user of the feed application.
type Member struct {
	ID           uuid.UUID
	Email        string
	Nickname     string
	ProfileImage string
}

// Follow is a directed edge: FromMemberID follows ToMemberID.
type Follow struct {
	ID           uuid.UUID
	FromMemberID uuid.UUID
	ToMemberID   uuid.UUID
}

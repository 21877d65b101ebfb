package dto

import "github.com/clubhub/clubhub-api/internal/domain/valueobject"

// CreateClub carries the validated club-creation input into the domain.
type CreateClub struct {
	Name        string
	Description string
	MaxPeople   int
	Tags        []string
}

// UpdateClub is a PATCH payload: nil fields are left untouched.
type UpdateClub struct {
	Name        *string
	Description *string
	MaxPeople   *int
	Tags        *[]string
}

// ClubFilter narrows club listings; nil fields match everything.
type ClubFilter struct {
	Name     *string
	LeaderID *int64
}

// ClubMemberInfo is one resolved roster entry (approved members only).
type ClubMemberInfo struct {
	UserID int64
	Name   string
	Status valueobject.MemberStatus
}

// ClubDetail is a club together with its resolved roster.
type ClubDetail struct {
	ID          string
	Name        string
	Description string
	LeaderID    int64
	MaxPeople   int
	Tags        []string
	Members     []ClubMemberInfo
}

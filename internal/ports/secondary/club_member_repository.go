package secondary

import (
	"context"

	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"github.com/clubhub/clubhub-api/internal/domain/valueobject"
)

// ClubMemberRepository defines the interface for club membership data access
type ClubMemberRepository interface {
	Get(ctx context.Context, clubID string, userID int64) (*entity.ClubMember, error)
	// CountApproved counts APPROVED rows of users that are not soft-deleted.
	CountApproved(ctx context.Context, clubID string) (int64, error)
	// GetRoster resolves approved members to user id + name pairs.
	GetRoster(ctx context.Context, clubID string) ([]dto.ClubMemberInfo, error)
	// JoinWithCapacityCheck re-reads the approved count under a club row lock
	// and creates the PENDING row only while capacity remains.
	JoinWithCapacityCheck(ctx context.Context, clubID string, userID int64, maxPeople int) error
	// ApproveWithCapacityCheck flips a PENDING row to APPROVED, re-checking
	// capacity inside the same transaction so concurrent approvals never
	// overshoot maxPeople.
	ApproveWithCapacityCheck(ctx context.Context, clubID string, userID int64, maxPeople int) error
	UpdateStatus(ctx context.Context, clubID string, userID int64, status valueobject.MemberStatus) error
}

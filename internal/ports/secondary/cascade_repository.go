package secondary

import (
	"context"

	"github.com/clubhub/clubhub-api/internal/domain/dto"
)

// CascadeRepository executes a cascade plan as one atomic unit.
//
// For MEMBER_LEAVE plans the membership row is removed after the steps; for
// CLUB_DELETE plans all remaining membership rows and the club row itself
// are removed after the steps. A failure anywhere rolls back everything.
type CascadeRepository interface {
	Apply(ctx context.Context, plan dto.CascadePlan) error
}

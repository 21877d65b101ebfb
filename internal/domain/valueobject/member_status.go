package valueobject

// MemberStatus is the persisted review state of a club membership row.
// Only approved rows count toward club capacity and roster listings; the
// gate is always evaluated against the stored value of the specific row.
type MemberStatus string

const (
	MemberStatusPending  MemberStatus = "PENDING"
	MemberStatusApproved MemberStatus = "APPROVED"
	MemberStatusRejected MemberStatus = "REJECTED"
)

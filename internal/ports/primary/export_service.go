package primary

import "context"

// ExportService defines the interface for on-demand event exports
type ExportService interface {
	// ParticipantsXLSX renders the event's participant roster as a workbook.
	ParticipantsXLSX(ctx context.Context, eventID string) ([]byte, error)
	// ICS renders the event as an iCalendar document.
	ICS(ctx context.Context, eventID string) ([]byte, error)
	// InviteQR renders a PNG QR code of the event's join link.
	InviteQR(ctx context.Context, eventID string) ([]byte, error)
}

package service

import (
	"context"
	"fmt"

	ics "github.com/arran4/golang-ical"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/xuri/excelize/v2"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
	"github.com/clubhub/clubhub-api/internal/ports/secondary"
)

// ExportService renders on-demand, read-only views of a single event:
// a participant roster workbook, an iCalendar document and an invite QR code.
type ExportService struct {
	eventRepo       secondary.EventRepository
	participantRepo secondary.EventParticipantRepository
	userRepo        secondary.UserRepository

	// publicURL is the externally visible base URL used in invite links.
	publicURL string
}

func NewExportService(
	eventStorage secondary.EventRepository,
	participantStorage secondary.EventParticipantRepository,
	userStorage secondary.UserRepository,
	publicURL string,
) *ExportService {
	return &ExportService{
		eventRepo:       eventStorage,
		participantRepo: participantStorage,
		userRepo:        userStorage,
		publicURL:       publicURL,
	}
}

func (s *ExportService) ParticipantsXLSX(ctx context.Context, eventID string) ([]byte, error) {
	event, err := s.eventRepo.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}

	participants, err := s.participantRepo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"User ID", "Name", "Email", "Role", "Registered At"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	row := 2
	for _, participant := range participants {
		user, err := s.userRepo.Get(ctx, participant.UserID)
		if err != nil {
			if errorz.IsKind(err, errorz.KindNotFound) {
				// soft-deleted users are left out of the roster
				continue
			}
			return nil, err
		}

		role := "participant"
		if participant.UserID == event.HostID {
			role = "host"
		}

		values := []interface{}{
			user.ID,
			user.Name,
			user.Email,
			role,
			participant.CreatedAt.Format("2006-01-02 15:04"),
		}
		for i, value := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ExportService) ICS(ctx context.Context, eventID string) ([]byte, error) {
	event, err := s.eventRepo.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	calEvent := cal.AddEvent(event.ID)
	calEvent.SetCreatedTime(event.CreatedAt)
	calEvent.SetDtStampTime(event.CreatedAt)
	calEvent.SetStartAt(event.StartTime)
	calEvent.SetEndAt(event.EndTime)
	calEvent.SetSummary(event.Title)
	calEvent.SetDescription(event.Description)
	calEvent.SetURL(s.eventURL(event.ID))

	return []byte(cal.Serialize()), nil
}

func (s *ExportService) InviteQR(ctx context.Context, eventID string) ([]byte, error) {
	event, err := s.eventRepo.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return qrcode.Encode(s.eventURL(event.ID), qrcode.Medium, 512)
}

func (s *ExportService) eventURL(eventID string) string {
	return fmt.Sprintf("%s/events/%s", s.publicURL, eventID)
}

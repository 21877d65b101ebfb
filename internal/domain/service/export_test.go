package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
)

func newExportFixture() (*clubFixture, *ExportService) {
	fx := newClubFixture()
	svc := NewExportService(
		&fakeEventRepo{store: fx.store},
		&fakeParticipantRepo{store: fx.store},
		&fakeUserRepo{store: fx.store},
		"https://clubhub.example.com",
	)
	return fx, svc
}

func TestExportService_ParticipantsXLSX(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fx, svc := newExportFixture()
	fx.store.addUser(1, "Alice")
	fx.store.addUser(2, "Bob")
	club := fx.store.addClub("Chess Club", 1, 10)

	upStart, upEnd := upcomingWindow()
	event := fx.seedEvent(club.ID, 1, upStart, upEnd)
	fx.store.addParticipant(event.ID, 2)

	raw, err := svc.ParticipantsXLSX(ctx, event.ID)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "User ID", rows[0][0])

	roles := map[string]string{rows[1][1]: rows[1][3], rows[2][1]: rows[2][3]}
	assert.Equal(t, "host", roles["Alice"])
	assert.Equal(t, "participant", roles["Bob"])
}

func TestExportService_ICS(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fx, svc := newExportFixture()
	fx.store.addUser(1, "Alice")
	club := fx.store.addClub("Chess Club", 1, 10)

	upStart, upEnd := upcomingWindow()
	event := fx.seedEvent(club.ID, 1, upStart, upEnd)

	raw, err := svc.ICS(ctx, event.ID)
	require.NoError(t, err)

	doc := string(raw)
	assert.Contains(t, doc, "BEGIN:VCALENDAR")
	assert.Contains(t, doc, "SUMMARY:Meetup")
	assert.Contains(t, doc, event.ID)
	assert.Contains(t, doc, "https://clubhub.example.com/events/"+event.ID)
}

func TestExportService_InviteQR(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fx, svc := newExportFixture()
	fx.store.addUser(1, "Alice")
	club := fx.store.addClub("Chess Club", 1, 10)

	upStart, upEnd := upcomingWindow()
	event := fx.seedEvent(club.ID, 1, upStart, upEnd)

	raw, err := svc.InviteQR(ctx, event.ID)
	require.NoError(t, err)
	// PNG signature
	assert.True(t, bytes.HasPrefix(raw, []byte{0x89, 'P', 'N', 'G'}))
}

func TestExportService_UnknownEvent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, svc := newExportFixture()

	_, err := svc.ParticipantsXLSX(ctx, "missing")
	assert.True(t, errorz.IsKind(err, errorz.KindNotFound), "got %v", err)
	_, err = svc.ICS(ctx, "missing")
	assert.True(t, errorz.IsKind(err, errorz.KindNotFound), "got %v", err)
	_, err = svc.InviteQR(ctx, "missing")
	assert.True(t, errorz.IsKind(err, errorz.KindNotFound), "got %v", err)
}

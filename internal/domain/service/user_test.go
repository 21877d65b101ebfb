package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
)

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := newMemStore()
	svc := NewUserService(&fakeUserRepo{store: store})

	user, err := svc.Register(ctx, "Alice", "alice@example.com", "correct horse")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "correct horse", user.PasswordHash)

	_, err = svc.Register(ctx, "Alice Again", "alice@example.com", "correct horse")
	assert.True(t, errorz.IsKind(err, errorz.KindConflict), "got %v", err)
}

func TestUserService_Register_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                  string
		userName, email, pass string
	}{
		{"missing name", "", "alice@example.com", "correct horse"},
		{"missing email", "Alice", "", "correct horse"},
		{"short password", "Alice", "alice@example.com", "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewUserService(&fakeUserRepo{store: newMemStore()})
			_, err := svc.Register(context.Background(), tt.userName, tt.email, tt.pass)
			assert.True(t, errorz.IsKind(err, errorz.KindInvalidArgument), "got %v", err)
		})
	}
}

func TestUserService_Authenticate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := NewUserService(&fakeUserRepo{store: newMemStore()})

	registered, err := svc.Register(ctx, "Alice", "alice@example.com", "correct horse")
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "alice@example.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	// a wrong password and an unknown email fail identically
	_, err = svc.Authenticate(ctx, "alice@example.com", "wrong horse")
	assert.True(t, errorz.IsKind(err, errorz.KindForbidden), "got %v", err)
	_, err = svc.Authenticate(ctx, "nobody@example.com", "correct horse")
	assert.True(t, errorz.IsKind(err, errorz.KindForbidden), "got %v", err)
}

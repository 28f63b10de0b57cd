package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"easydonate-payments/internal/core/ports/mocks"
	"easydonate-payments/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSessionSecret = "test-secret-at-least-32-chars-long"

func newSessionFixture(t *testing.T) (*mocks.MockSessionStore, *SessionServiceImpl) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSessionStore(ctrl)
	svc := NewSessionService(store, testSessionSecret, time.Hour, "easydonate-payments", zerolog.Nop())
	return store, svc
}

func TestSession_OpenAndResolve(t *testing.T) {
	store, svc := newSessionFixture(t)

	var storedSessionID string
	store.EXPECT().
		Put(gomock.Any(), gomock.Any(), "user-1", "upstream-bearer-token", time.Hour).
		DoAndReturn(func(_ context.Context, sessionID, _, _ string, _ time.Duration) error {
			storedSessionID = sessionID
			return nil
		})

	token, expiresAt, err := svc.Open(context.Background(), "user-1", "upstream-bearer-token")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	store.EXPECT().
		Get(gomock.Any(), storedSessionID).
		Return("user-1", "upstream-bearer-token", nil)

	claims, err := svc.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, storedSessionID, claims.SessionID)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "upstream-bearer-token", claims.UpstreamToken)
}

func TestSession_Resolve_GarbageToken(t *testing.T) {
	_, svc := newSessionFixture(t)

	_, err := svc.Resolve(context.Background(), "not-a-jwt")

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestSession_Resolve_WrongSecret(t *testing.T) {
	store, _ := newSessionFixture(t)
	other := NewSessionService(store, "a-completely-different-secret-value", time.Hour, "easydonate-payments", zerolog.Nop())

	store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	token, _, err := other.Open(context.Background(), "user-1", "tok")
	require.NoError(t, err)

	_, svc := newSessionFixture(t)
	_, err = svc.Resolve(context.Background(), token)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestSession_Resolve_StoreEntryGone(t *testing.T) {
	store, svc := newSessionFixture(t)

	store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	token, _, err := svc.Open(context.Background(), "user-1", "tok")
	require.NoError(t, err)

	// Logged out or TTL expired: the JWT alone is not enough.
	store.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", "", nil)

	_, err = svc.Resolve(context.Background(), token)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTH_001", appErr.Code)
}

func TestSession_Open_StoreFailure(t *testing.T) {
	store, svc := newSessionFixture(t)
	store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	_, _, err := svc.Open(context.Background(), "user-1", "tok")

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SYS_001", appErr.Code)
}

func TestSession_Close(t *testing.T) {
	store, svc := newSessionFixture(t)
	store.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil)

	require.NoError(t, svc.Close(context.Background(), "sess-1"))
}

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/jobwise/internal/adapter"
	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/internal/mock"
	"github.com/MKhiriev/jobwise/internal/store"
	"github.com/MKhiriev/jobwise/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestClientAuthSvc builds a clientAuthService backed by mocks.
func newTestClientAuthSvc(t *testing.T) (*clientAuthService, *mock.MockServerAdapter, *mock.MockSessionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)

	svc := NewClientAuthService(mockSessions, mockAdapter, logger.Nop()).(*clientAuthService)
	svc.now = func() time.Time { return testNow }

	return svc, mockAdapter, mockSessions
}

var janeProfile = models.UserProfile{ID: 7, Name: "Jane", Email: "jane@example.com"}

// ── Login / Signup ───────────────────────────────────────────────────────────

func TestClientAuthService_Login_SavesSession(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)
	ctx := context.Background()
	req := models.LoginRequest{Email: "jane@example.com", Password: "pw"}

	gomock.InOrder(
		mockAdapter.EXPECT().Login(ctx, req).Return(models.AuthResponse{Token: "tok", User: janeProfile}, nil),
		mockSessions.EXPECT().SaveSession(ctx, models.Session{Token: "tok", User: janeProfile, CreatedAt: testNow}).Return(nil),
	)

	got, err := svc.Login(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, janeProfile, got)
}

func TestClientAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, mockAdapter, _ := newTestClientAuthSvc(t)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, "invalid email or password"))

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "jane@example.com", Password: "bad"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestClientAuthService_Signup_SaveFailure(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)
	saveErr := errors.New("disk full")

	mockAdapter.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(models.AuthResponse{Token: "tok", User: janeProfile}, nil)
	mockSessions.EXPECT().SaveSession(gomock.Any(), gomock.Any()).Return(saveErr)

	_, err := svc.Signup(context.Background(), models.SignupRequest{Email: "jane@example.com"})
	assert.ErrorIs(t, err, saveErr)
}

func TestClientAuthService_Signup_Duplicate(t *testing.T) {
	svc, mockAdapter, _ := newTestClientAuthSvc(t)

	mockAdapter.EXPECT().Signup(gomock.Any(), gomock.Any()).
		Return(models.AuthResponse{}, fmt.Errorf("%w: %s", adapter.ErrBadRequest, "user with this email already exists"))

	_, err := svc.Signup(context.Background(), models.SignupRequest{Email: "jane@example.com"})
	assert.ErrorIs(t, err, ErrDuplicateUser)
}

// ── RestoreSession ───────────────────────────────────────────────────────────

func TestClientAuthService_RestoreSession_Valid(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		mockSessions.EXPECT().GetSession(ctx).Return(models.Session{Token: "tok", User: janeProfile}, nil),
		mockAdapter.EXPECT().SetToken("tok"),
		mockAdapter.EXPECT().Profile(ctx).Return(models.User{UserID: 7, Name: "Jane", Email: "jane@example.com"}, nil),
	)

	got, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, janeProfile, got)
}

func TestClientAuthService_RestoreSession_NothingSaved(t *testing.T) {
	svc, _, mockSessions := newTestClientAuthSvc(t)
	mockSessions.EXPECT().GetSession(gomock.Any()).Return(models.Session{}, store.ErrSessionNotFound)

	_, err := svc.RestoreSession(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestClientAuthService_RestoreSession_RejectedTokenIsDropped(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)

	gomock.InOrder(
		mockSessions.EXPECT().GetSession(gomock.Any()).Return(models.Session{Token: "expired"}, nil),
		mockAdapter.EXPECT().SetToken("expired"),
		mockAdapter.EXPECT().Profile(gomock.Any()).Return(models.User{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, "authentication required")),
		mockAdapter.EXPECT().SetToken(""),
		mockSessions.EXPECT().DeleteSession(gomock.Any()).Return(nil),
	)

	_, err := svc.RestoreSession(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestClientAuthService_RestoreSession_ServerDownKeepsSession(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)

	mockSessions.EXPECT().GetSession(gomock.Any()).Return(models.Session{Token: "tok"}, nil)
	mockAdapter.EXPECT().SetToken("tok")
	mockAdapter.EXPECT().Profile(gomock.Any()).Return(models.User{}, fmt.Errorf("%w: %s", adapter.ErrServerError, "internal server error"))

	_, err := svc.RestoreSession(context.Background())
	assert.ErrorIs(t, err, ErrServerUnavailable)
}

// ── Logout and recovery ──────────────────────────────────────────────────────

func TestClientAuthService_Logout(t *testing.T) {
	svc, mockAdapter, mockSessions := newTestClientAuthSvc(t)

	mockAdapter.EXPECT().SetToken("")
	mockSessions.EXPECT().DeleteSession(gomock.Any()).Return(nil)

	assert.NoError(t, svc.Logout(context.Background()))
}

func TestClientAuthService_Recovery(t *testing.T) {
	svc, mockAdapter, _ := newTestClientAuthSvc(t)
	req := models.ResetPasswordRequest{Email: "jane@example.com", SecurityAnswer: "rex", NewPassword: "new"}

	mockAdapter.EXPECT().SecurityQuestion(gomock.Any(), "jane@example.com").Return("First pet?", nil)
	mockAdapter.EXPECT().ResetPassword(gomock.Any(), req).
		Return(fmt.Errorf("%w: %s", adapter.ErrBadRequest, "incorrect security answer"))

	question, err := svc.SecurityQuestion(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "First pet?", question)

	assert.ErrorIs(t, svc.ResetPassword(context.Background(), req), ErrIncorrectAnswer)
}

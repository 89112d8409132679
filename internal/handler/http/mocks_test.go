package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/internal/service"
	"github.com/MKhiriev/jobwise/models"
)

// Func-field service stubs. A nil field returns zero values.

type mockAuthService struct {
	signupFn           func(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)
	loginFn            func(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	securityQuestionFn func(ctx context.Context, email string) (string, error)
	resetPasswordFn    func(ctx context.Context, req models.ResetPasswordRequest) error
	getProfileFn       func(ctx context.Context, userID int64) (models.User, error)
	parseTokenFn       func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	if m.signupFn == nil {
		return models.AuthResponse{}, nil
	}
	return m.signupFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	if m.loginFn == nil {
		return models.AuthResponse{}, nil
	}
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) GetSecurityQuestion(ctx context.Context, email string) (string, error) {
	if m.securityQuestionFn == nil {
		return "", nil
	}
	return m.securityQuestionFn(ctx, email)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	if m.resetPasswordFn == nil {
		return nil
	}
	return m.resetPasswordFn(ctx, req)
}

func (m *mockAuthService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	if m.getProfileFn == nil {
		return models.User{UserID: userID}, nil
	}
	return m.getProfileFn(ctx, userID)
}

func (m *mockAuthService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	return models.Token{SignedString: "stub-token", UserID: user.UserID}, nil
}

// ParseToken accepts "good-token" as user 7 unless overridden.
func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	if tokenString == "good-token" {
		return models.Token{SignedString: tokenString, UserID: testUserID}, nil
	}
	return models.Token{}, service.ErrUnauthenticated
}

type mockJobService struct {
	createFn func(ctx context.Context, userID int64, job models.JobApplication) (models.JobApplication, error)
	listFn   func(ctx context.Context, userID int64, filter models.JobFilter) ([]models.JobApplication, error)
	getFn    func(ctx context.Context, userID int64, jobID string) (models.JobApplication, error)
	updateFn func(ctx context.Context, userID int64, jobID string, update models.JobApplicationUpdate) (models.JobApplication, error)
	deleteFn func(ctx context.Context, userID int64, jobID string) error
}

func (m *mockJobService) CreateJob(ctx context.Context, userID int64, job models.JobApplication) (models.JobApplication, error) {
	if m.createFn == nil {
		return job, nil
	}
	return m.createFn(ctx, userID, job)
}

func (m *mockJobService) ListJobs(ctx context.Context, userID int64, filter models.JobFilter) ([]models.JobApplication, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(ctx, userID, filter)
}

func (m *mockJobService) GetJob(ctx context.Context, userID int64, jobID string) (models.JobApplication, error) {
	if m.getFn == nil {
		return models.JobApplication{ID: jobID}, nil
	}
	return m.getFn(ctx, userID, jobID)
}

func (m *mockJobService) UpdateJob(ctx context.Context, userID int64, jobID string, update models.JobApplicationUpdate) (models.JobApplication, error) {
	if m.updateFn == nil {
		return models.JobApplication{ID: jobID}, nil
	}
	return m.updateFn(ctx, userID, jobID, update)
}

func (m *mockJobService) DeleteJob(ctx context.Context, userID int64, jobID string) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, userID, jobID)
}

type mockAnalyticsService struct {
	getFn func(ctx context.Context, userID int64, period string) (models.Analytics, error)
}

func (m *mockAnalyticsService) GetAnalytics(ctx context.Context, userID int64, period string) (models.Analytics, error) {
	if m.getFn == nil {
		return models.Analytics{Period: models.Period(period)}, nil
	}
	return m.getFn(ctx, userID, period)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

const testUserID int64 = 7

// newTestHandler wires stubs into a Handler; nil arguments get default stubs.
func newTestHandler(t *testing.T, auth *mockAuthService, jobs *mockJobService, analytics *mockAnalyticsService) *Handler {
	t.Helper()
	if auth == nil {
		auth = &mockAuthService{}
	}
	if jobs == nil {
		jobs = &mockJobService{}
	}
	if analytics == nil {
		analytics = &mockAnalyticsService{}
	}
	svcs := &service.Services{
		AuthService:      auth,
		JobService:       jobs,
		AnalyticsService: analytics,
		AppInfoService:   &mockAppInfoService{version: "v1.2.3"},
	}
	return NewHandler(svcs, 0, logger.Nop())
}

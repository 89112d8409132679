package tui

import (
	"context"

	"github.com/MKhiriev/jobwise/models"
)

type fakeAuth struct {
	signupFn   func(req models.SignupRequest) (models.UserProfile, error)
	loginFn    func(req models.LoginRequest) (models.UserProfile, error)
	questionFn func(email string) (string, error)
	resetFn    func(req models.ResetPasswordRequest) error
}

func (f *fakeAuth) Signup(_ context.Context, req models.SignupRequest) (models.UserProfile, error) {
	return f.signupFn(req)
}

func (f *fakeAuth) Login(_ context.Context, req models.LoginRequest) (models.UserProfile, error) {
	return f.loginFn(req)
}

func (f *fakeAuth) RestoreSession(context.Context) (models.UserProfile, error) {
	return models.UserProfile{}, nil
}

func (f *fakeAuth) Logout(context.Context) error { return nil }

func (f *fakeAuth) SecurityQuestion(_ context.Context, email string) (string, error) {
	return f.questionFn(email)
}

func (f *fakeAuth) ResetPassword(_ context.Context, req models.ResetPasswordRequest) error {
	return f.resetFn(req)
}

type fakeAnalytics struct {
	calls []models.Period
	fn    func(period models.Period) (models.Analytics, error)
}

func (f *fakeAnalytics) Load(_ context.Context, period models.Period) (models.Analytics, error) {
	f.calls = append(f.calls, period)
	if f.fn == nil {
		return models.Analytics{Period: period}, nil
	}
	return f.fn(period)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/jobwise/internal/app"
	"github.com/MKhiriev/jobwise/internal/service"
	"github.com/MKhiriev/jobwise/internal/store"
	"github.com/MKhiriev/jobwise/internal/validators"
	"github.com/MKhiriev/jobwise/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSignup = models.SignupRequest{
	Name:             "Ada",
	Email:            "ada@example.com",
	Password:         "secret1",
	SecurityQuestion: "First pet?",
	SecurityAnswer:   "Rex",
}

func TestSignup(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "created",
			body:       toJSON(t, testSignup),
			wantStatus: http.StatusCreated,
		},
		{
			name:        "malformed json",
			body:        `{"name":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidDataProvided,
		},
		{
			name:        "validation detail is returned",
			body:        toJSON(t, testSignup),
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyName),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid data provided: name is required",
		},
		{
			name:        "duplicate email",
			body:        toJSON(t, testSignup),
			err:         service.ErrDuplicateUser,
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgUserAlreadyExists,
		},
		{
			name:        "store failure is hidden",
			body:        toJSON(t, testSignup),
			err:         fmt.Errorf("user creation ended with error: %w", store.ErrExecutingQuery),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.SignupRequest
			auth := &mockAuthService{
				signupFn: func(_ context.Context, req models.SignupRequest) (models.AuthResponse, error) {
					got = req
					if tt.err != nil {
						return models.AuthResponse{}, tt.err
					}
					return models.AuthResponse{
						Token: "signed",
						User:  models.UserProfile{ID: 1, Name: req.Name, Email: req.Email},
					}, nil
				},
			}

			rr := serve(t, newTestHandler(t, auth, nil, nil), http.MethodPost, "/api/auth/signup", tt.body, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, messageOf(t, rr))
				return
			}

			assert.Equal(t, testSignup, got)
			var resp models.AuthResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "signed", resp.Token)
			assert.Equal(t, models.UserProfile{ID: 1, Name: "Ada", Email: "ada@example.com"}, resp.User)
		})
	}
}

func TestLogin(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.AuthResponse, error) {
			if req.Password != "secret1" {
				return models.AuthResponse{}, service.ErrInvalidCredentials
			}
			return models.AuthResponse{Token: "signed", User: models.UserProfile{ID: 3, Email: req.Email}}, nil
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	t.Run("ok", func(t *testing.T) {
		rr := serve(t, h, http.MethodPost, "/api/auth/login", `{"email":"a@b.c","password":"secret1"}`, "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"token":"signed","user":{"id":3,"name":"","email":"a@b.c"}}`, rr.Body.String())
	})

	t.Run("wrong password is a client error", func(t *testing.T) {
		rr := serve(t, h, http.MethodPost, "/api/auth/login", `{"email":"a@b.c","password":"nope"}`, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, app.MsgInvalidCredentials, messageOf(t, rr))
	})

	t.Run("empty body", func(t *testing.T) {
		rr := serve(t, h, http.MethodPost, "/api/auth/login", "", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSecurityQuestion(t *testing.T) {
	auth := &mockAuthService{
		securityQuestionFn: func(_ context.Context, email string) (string, error) {
			if email != "ada@example.com" {
				return "", service.ErrUserNotFound
			}
			return "First pet?", nil
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	rr := serve(t, h, http.MethodGet, "/api/auth/security-question?email=ada@example.com", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"securityQuestion":"First pet?"}`, rr.Body.String())

	rr = serve(t, h, http.MethodGet, "/api/auth/security-question?email=bob@example.com", "", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgUserNotFound, messageOf(t, rr))
}

func TestForgotPassword(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "reset", wantStatus: http.StatusOK, wantMessage: app.MsgPasswordReset},
		{name: "wrong answer", err: service.ErrIncorrectAnswer, wantStatus: http.StatusBadRequest, wantMessage: app.MsgIncorrectAnswer},
		{name: "unknown user", err: service.ErrUserNotFound, wantStatus: http.StatusBadRequest, wantMessage: app.MsgUserNotFound},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMessage: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				resetPasswordFn: func(_ context.Context, req models.ResetPasswordRequest) error {
					assert.Equal(t, "newpass", req.NewPassword)
					return tt.err
				},
			}
			body := `{"email":"ada@example.com","securityAnswer":"rex","newPassword":"newpass"}`

			rr := serve(t, newTestHandler(t, auth, nil, nil), http.MethodPost, "/api/auth/forgot-password", body, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, messageOf(t, rr))
		})
	}
}

func TestMe(t *testing.T) {
	t.Run("profile of the token owner", func(t *testing.T) {
		auth := &mockAuthService{
			getProfileFn: func(_ context.Context, userID int64) (models.User, error) {
				return models.User{UserID: userID, Name: "Ada", Email: "ada@example.com", PasswordHash: "hash"}, nil
			},
		}
		rr := serve(t, newTestHandler(t, auth, nil, nil), http.MethodGet, "/api/auth/me", "", "good-token")

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":7`)
		assert.NotContains(t, rr.Body.String(), "hash")
	})

	t.Run("missing token", func(t *testing.T) {
		rr := serve(t, newTestHandler(t, nil, nil, nil), http.MethodGet, "/api/auth/me", "", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, app.MsgUnauthenticated, messageOf(t, rr))
	})

	t.Run("deleted user is not found", func(t *testing.T) {
		auth := &mockAuthService{
			getProfileFn: func(context.Context, int64) (models.User, error) {
				return models.User{}, service.ErrUserNotFound
			},
		}
		rr := serve(t, newTestHandler(t, auth, nil, nil), http.MethodGet, "/api/auth/me", "", "good-token")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

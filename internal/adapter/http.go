package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/jobwise/internal/config"
	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.ServerURL and configures
// the underlying resty client with the resolved base URL and request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger.Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("duration", resp.Time()).
				Msg("server response")
			return nil
		})

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup implements [ServerAdapter]. POST /api/auth/signup.
func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/signup")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}
	if result.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("%w: signup response without token", ErrUnexpected)
	}

	h.SetToken(result.Token)
	return result, nil
}

// Login implements [ServerAdapter]. POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}
	if result.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("%w: login response without token", ErrUnexpected)
	}

	h.SetToken(result.Token)
	return result, nil
}

// Profile implements [ServerAdapter]. GET /api/auth/me.
func (h *httpServerAdapter) Profile(ctx context.Context) (models.User, error) {
	var result models.ProfileResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

// SecurityQuestion implements [ServerAdapter].
// GET /api/auth/security-question?email=.
func (h *httpServerAdapter) SecurityQuestion(ctx context.Context, email string) (string, error) {
	var result models.SecurityQuestionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("email", email).
		SetResult(&result).
		Get("/api/auth/security-question")
	if err != nil {
		return "", fmt.Errorf("security question request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.SecurityQuestion, nil
}

// ResetPassword implements [ServerAdapter]. POST /api/auth/forgot-password.
func (h *httpServerAdapter) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/forgot-password")
	if err != nil {
		return fmt.Errorf("reset password request: %w", err)
	}

	return mapHTTPError(resp)
}

// Analytics implements [ServerAdapter]. GET /api/jobs/analytics?period=.
func (h *httpServerAdapter) Analytics(ctx context.Context, period models.Period) (models.Analytics, error) {
	var result models.Analytics

	resp, err := h.authedRequest(ctx).
		SetQueryParam("period", string(period)).
		SetResult(&result).
		Get("/api/jobs/analytics")
	if err != nil {
		return models.Analytics{}, fmt.Errorf("analytics request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Analytics{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

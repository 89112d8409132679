package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/jobwise/internal/config"
	"github.com/MKhiriev/jobwise/internal/logger"
	"github.com/MKhiriev/jobwise/internal/store"
	"github.com/MKhiriev/jobwise/internal/utils"
	"github.com/MKhiriev/jobwise/internal/validators"
	"github.com/MKhiriev/jobwise/models"
)

// authService is the concrete implementation of AuthService.
// It handles signup, credential verification, security-question recovery and
// the JWT token lifecycle, using a UserRepository for persistence and bcrypt
// for password and answer hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks the presence and size of request fields.
	validator validators.Validator

	// bcryptCost is the work factor of every password and answer hash.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validator,
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Signup creates a new account and issues its first token.
//
// The password and the normalised security answer are hashed independently.
// Returns:
//   - ErrInvalidDataProvided if a field is missing or too long.
//   - ErrDuplicateUser if the email is already registered, including the case
//     where a concurrent signup wins the race to the unique index.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("invalid signup request")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	email := models.NormalizeEmail(req.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return models.AuthResponse{}, ErrDuplicateUser
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("email", email).Msg("user lookup failed")
		return models.AuthResponse{}, fmt.Errorf("user lookup failed: %w", err)
	}

	passwordHash, err := utils.HashSecret(req.Password, a.bcryptCost)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}
	answerHash, err := utils.HashSecret(utils.NormalizeAnswer(req.SecurityAnswer), a.bcryptCost)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("hash security answer: %w", err)
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		Name:               req.Name,
		Email:              email,
		PasswordHash:       passwordHash,
		SecurityQuestion:   req.SecurityQuestion,
		SecurityAnswerHash: answerHash,
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.AuthResponse{}, ErrDuplicateUser
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.authResponse(ctx, created)
}

// Login authenticates an existing user by email and password.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials so
// the response does not reveal which accounts exist.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	email := models.NormalizeEmail(req.Email)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Str("email", email).Msg("login for unknown email")
		return models.AuthResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.AuthResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CompareSecret(user.PasswordHash, req.Password); err != nil {
		if !errors.Is(err, utils.ErrSecretMismatch) {
			log.Err(err).Int64("user_id", user.UserID).Msg("stored password hash is unusable")
		}
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	return a.authResponse(ctx, user)
}

// GetSecurityQuestion returns the recovery question of the account registered
// under email, or ErrUserNotFound.
func (a *authService) GetSecurityQuestion(ctx context.Context, email string) (string, error) {
	if err := a.validator.Validate(ctx, models.LoginRequest{Email: email}, validators.FieldEmail); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.findByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		return "", err
	}

	return user.SecurityQuestion, nil
}

// ResetPassword replaces the password of the account after checking the
// security answer.
//
// Returns ErrUserNotFound for an unknown email and ErrIncorrectAnswer when the
// normalised answer does not match the stored hash.
func (a *authService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.findByEmail(ctx, models.NormalizeEmail(req.Email))
	if err != nil {
		return err
	}

	if err = utils.CompareSecret(user.SecurityAnswerHash, utils.NormalizeAnswer(req.SecurityAnswer)); err != nil {
		if !errors.Is(err, utils.ErrSecretMismatch) {
			log.Err(err).Int64("user_id", user.UserID).Msg("stored answer hash is unusable")
		}
		return ErrIncorrectAnswer
	}

	passwordHash, err := utils.HashSecret(req.NewPassword, a.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = a.userRepository.UpdatePasswordHash(ctx, user.UserID, passwordHash)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("password reset")
	return nil
}

// GetProfile returns the account behind a verified token subject.
func (a *authService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed) is
// normalised to ErrUnauthenticated so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrUnauthenticated
	}

	return token, nil
}

func (a *authService) findByEmail(ctx context.Context, email string) (models.User, error) {
	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}
	return user, nil
}

func (a *authService) authResponse(ctx context.Context, user models.User) (models.AuthResponse, error) {
	token, err := a.CreateToken(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.UserID).Msg("token creation failed")
		return models.AuthResponse{}, err
	}

	return models.AuthResponse{Token: token.SignedString, User: user.Profile()}, nil
}

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/jobwise/internal/utils"
	"github.com/MKhiriev/jobwise/models"
)

// Field name constants for auth request validation.
const (
	FieldName             = "name"
	FieldEmail            = "email"
	FieldPassword         = "password"
	FieldNewPassword      = "new_password"
	FieldSecurityQuestion = "security_question"
	FieldSecurityAnswer   = "security_answer"
)

// bcryptMaxPasswordLen is the input limit of bcrypt; longer secrets are
// rejected rather than silently truncated.
const bcryptMaxPasswordLen = 72

// AuthValidator implements [Validator] for signup, login and password reset
// requests. It only checks presence and size; credential correctness is the
// service's job.
type AuthValidator struct{}

// NewAuthValidator constructs a new AuthValidator and returns it as the
// Validator interface.
func NewAuthValidator() Validator {
	return &AuthValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types: models.SignupRequest, models.LoginRequest,
// models.ResetPasswordRequest and their pointers.
func (v *AuthValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.ResetPasswordRequest:
		return v.validateReset(value, fields...)
	case *models.ResetPasswordRequest:
		return v.validateReset(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldSecurityQuestion, FieldSecurityAnswer}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			err = notBlank(req.Name, ErrEmptyName)
		case FieldEmail:
			err = notBlank(req.Email, ErrEmptyEmail)
		case FieldPassword:
			err = password(req.Password)
		case FieldSecurityQuestion:
			err = notBlank(req.SecurityQuestion, ErrEmptySecurityQuestion)
		case FieldSecurityAnswer:
			err = securityAnswer(req.SecurityAnswer)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *AuthValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if err := notBlank(req.Email, ErrEmptyEmail); err != nil {
				return err
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthValidator) validateReset(req models.ResetPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldSecurityAnswer, FieldNewPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldEmail:
			err = notBlank(req.Email, ErrEmptyEmail)
		case FieldSecurityAnswer:
			err = securityAnswer(req.SecurityAnswer)
		case FieldNewPassword:
			err = password(req.NewPassword)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func notBlank(value string, emptyErr error) error {
	if strings.TrimSpace(value) == "" {
		return emptyErr
	}
	return nil
}

func password(value string) error {
	if value == "" {
		return ErrEmptyPassword
	}
	if len(value) > bcryptMaxPasswordLen {
		return ErrPasswordTooLong
	}
	return nil
}

// securityAnswer checks the answer in the form that gets hashed.
func securityAnswer(value string) error {
	normalized := utils.NormalizeAnswer(value)
	if normalized == "" {
		return ErrEmptySecurityAnswer
	}
	if len(normalized) > bcryptMaxPasswordLen {
		return ErrSecurityAnswerTooLong
	}
	return nil
}

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrEmptyJobID         = errors.New("job id is required")
	ErrEmptyCompany       = errors.New("company is required")
	ErrEmptyRole          = errors.New("role is required")
	ErrInvalidStatus      = errors.New("status must be one of Applied, Interview, Offer, Rejected")
	ErrMissingAppliedAt   = errors.New("applied date is required")
	ErrRespondedBeforeApp = errors.New("response date cannot be before applied date")
	ErrFieldTooLong       = errors.New("field is too long")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")

	ErrEmptyName             = errors.New("name is required")
	ErrEmptyEmail            = errors.New("email is required")
	ErrEmptyPassword         = errors.New("password is required")
	ErrPasswordTooLong       = errors.New("password must be at most 72 bytes")
	ErrEmptySecurityQuestion = errors.New("security question is required")
	ErrEmptySecurityAnswer   = errors.New("security answer is required")
	ErrSecurityAnswerTooLong = errors.New("security answer must be at most 72 bytes")
)

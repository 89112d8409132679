package models

// AuthResponse is returned by signup and login.
type AuthResponse struct {
	// Token is the signed bearer token to send in the Authorization header.
	Token string `json:"token"`

	// User is the public profile of the authenticated account.
	User UserProfile `json:"user"`
}

// ProfileResponse is returned by GET /api/auth/me.
type ProfileResponse struct {
	User User `json:"user"`
}

// SecurityQuestionResponse is returned by GET /api/auth/security-question.
type SecurityQuestionResponse struct {
	SecurityQuestion string `json:"securityQuestion"`
}

// MessageResponse carries a short human-readable outcome. Every error
// response of the API uses this shape.
type MessageResponse struct {
	Message string `json:"message"`
}

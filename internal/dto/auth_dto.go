package dto

import "github.com/arkan-dev/eduverse-api/internal/models"

// LoginRequest resumes a registered learner's session by email. Unknown
// emails still produce a demo session; no credential is checked.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SignupRequest registers a new learner. An existing registration under the
// same email is overwritten, last write wins.
type SignupRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=255"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateProfileRequest merges the provided fields into the active identity.
type UpdateProfileRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Role   *string `json:"role,omitempty" validate:"omitempty,max=32"`
	Avatar *string `json:"avatar,omitempty" validate:"omitempty,max=512"`
}

// CheckoutRequest is the opaque payment collaborator's success signal.
type CheckoutRequest struct {
	Plan string `json:"plan" validate:"required,oneof=monthly yearly"`
}

// SessionResponse carries the session token and the activated identity.
type SessionResponse struct {
	Token   string         `json:"token"`
	Learner models.Learner `json:"learner"`
}

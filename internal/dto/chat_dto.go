package dto

// ChatRequest is one user turn sent to the study buddy.
type ChatRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

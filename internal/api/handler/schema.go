package handler

import "github.com/researchnexus/nexus/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Session ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"     validate:"required,max=120"`
	Role     string `json:"role"     validate:"required,oneof=researcher company admin"`
}

// sessionResponse is the session snapshot plus, when authenticated, a
// bearer token for the protected routes.
type sessionResponse struct {
	domain.Session
	Token string `json:"token,omitempty"`
}

// --- Research ---

// researchQuery is bound from the query string of GET /v1/research. Tags
// may repeat (tags=A&tags=B) or be comma separated.
type researchQuery struct {
	Search  string   `query:"search"  validate:"max=200"`
	Field   string   `query:"field"   validate:"max=100"`
	Tags    []string `query:"tags"    validate:"max=20,dive,max=100"`
	Date    string   `query:"date"    validate:"omitempty,oneof=newest oldest"`
	Premium string   `query:"premium" validate:"omitempty,oneof=true false"`
}

type researchListResponse struct {
	Count   int               `json:"count"`
	Results []domain.Research `json:"results"`
}

// --- Chat ---

type chatRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type chatTranscriptResponse struct {
	Messages []domain.ChatMessage `json:"messages"`
}

type chatSendResponse struct {
	Message   *domain.ChatMessage `json:"message,omitempty"`
	Duplicate bool                `json:"duplicate"`
}

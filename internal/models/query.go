package models

// AskRequest is the payload for POST /ask.
type AskRequest struct {
	Question string `json:"question"` // user’s natural‑language question
}

// AskResponse is returned by POST /ask once the model produced an answer.
type AskResponse struct {
	Answer string `json:"answer"`
}

// ErrorResponse is the body of every non‑2xx reply.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
	Model    string `json:"model,omitempty"`
}

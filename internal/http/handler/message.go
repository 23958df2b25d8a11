package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// Response is the envelope of every error reply.
type Response struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

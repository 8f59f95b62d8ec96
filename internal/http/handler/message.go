package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

// Response is the JSON envelope every endpoint replies with.
type Response struct {
	Message string `json:"message,omitempty"` // short message for humans
	Data    any    `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string `json:"error,omitempty"`   // error detail (if any)
}

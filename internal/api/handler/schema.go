package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the envelope for operations with no payload.
type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

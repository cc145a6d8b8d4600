package handlers

// ErrorResponse is the error envelope every endpoint answers with
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse is a generic success envelope
type SuccessResponse struct {
	Message string `json:"message"`
}

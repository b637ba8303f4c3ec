package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewError construye un ErrorResponse.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message}
}

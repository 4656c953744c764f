package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DeleteResponse confirmación de borrado.
type DeleteResponse struct {
	Success bool `json:"success"`
}

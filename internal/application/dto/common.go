package dto

// MessageResponse confirmación devuelta por los DELETE del backend.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse cuerpo de error HTTP del backend.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

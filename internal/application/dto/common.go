package dto

// ErrorResponse cuerpo de error HTTP. El campo `error` es el mensaje estable
// que consume el SPA; el detalle interno de almacenamiento nunca viaja aquí.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse respuesta de éxito con mensaje y, opcionalmente, el id creado.
type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

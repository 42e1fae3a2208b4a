package dto

// ChatRequest mensaje del usuario para el asistente de negocio.
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// InsightsRequest consulta opcional para el análisis de datos del negocio.
type InsightsRequest struct {
	Query string `json:"query"`
}

// AIResponse texto del colaborador externo, sin procesar.
// Fallback indica que el servicio no estaba disponible y el texto es el genérico.
type AIResponse struct {
	Response string `json:"response"`
	Fallback bool   `json:"fallback,omitempty"`
}

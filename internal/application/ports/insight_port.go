package ports

import "context"

// InsightService define el puerto de salida hacia el colaborador externo de
// insights (un servicio de completado de texto generativo). Cualquier adaptador
// (Gemini, mock de tests) debe implementar esta interfaz; la aplicación solo
// conoce este contrato, no la implementación concreta.
//
// Los tres métodos reciben datos ya agregados con alcance del usuario y
// devuelven texto libre que la API entrega sin procesar. El contexto debe
// llevar timeout: son llamadas externas y no deben retener ningún recurso
// del almacén de datos mientras esperan.
type InsightService interface {
	// AnalyticsInsights analiza los agregados del negocio según la consulta del usuario.
	AnalyticsInsights(ctx context.Context, data any, query string) (string, error)
	// BusinessInsights genera un análisis general (tendencias, riesgos, oportunidades).
	BusinessInsights(ctx context.Context, data any) (string, error)
	// ChatResponse responde un mensaje del usuario con los agregados como contexto.
	ChatResponse(ctx context.Context, message string, contextData any) (string, error)
}

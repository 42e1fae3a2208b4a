package usecase

import (
	"context"
	"time"

	"github.com/jcastellr/bizpulse-api/internal/application/dto"
	"github.com/jcastellr/bizpulse-api/internal/application/ports"
	"github.com/jcastellr/bizpulse-api/pkg/validator"
)

// insightTimeout límite por llamada al colaborador externo. La petición HTTP
// entrante nunca espera más que esto por la IA.
const insightTimeout = 15 * time.Second

// Textos de fallback cuando el colaborador falla o no está configurado.
// El cliente siempre recibe una respuesta; el error se queda en el log.
const (
	fallbackChat      = "I apologize, but I encountered an error while processing your request. Please try again."
	fallbackAnalytics = "I apologize, but I encountered an error while analyzing your data. Please try again."
	fallbackInsights  = "I apologize, but I encountered an error while analyzing your business data. Please try again."
)

// SummaryProvider agregados del negocio usados como contexto para la IA.
type SummaryProvider interface {
	Summary(ctx context.Context, ownerID string) (*dto.AnalyticsSummaryResponse, error)
}

// InsightUseCase delega la generación de insights al colaborador externo.
// Toda falla del upstream degrada a un texto de fallback con Fallback=true:
// UpstreamUnavailable nunca llega al usuario final como error duro.
type InsightUseCase struct {
	svc       ports.InsightService
	analytics SummaryProvider
	onError   func(err error)
}

// NewInsightUseCase construye el caso de uso. onError recibe los fallos del
// upstream para logging; puede ser nil.
func NewInsightUseCase(svc ports.InsightService, analytics SummaryProvider, onError func(err error)) *InsightUseCase {
	return &InsightUseCase{svc: svc, analytics: analytics, onError: onError}
}

// Chat responde un mensaje del asistente con los agregados como contexto.
func (uc *InsightUseCase) Chat(ctx context.Context, ownerID string, in dto.ChatRequest) (*dto.AIResponse, error) {
	if err := validator.Struct(in); err != nil {
		return nil, err
	}
	summary, err := uc.analytics.Summary(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, insightTimeout)
	defer cancel()

	text, err := uc.svc.ChatResponse(ctx, in.Message, summary)
	if err != nil {
		uc.reportError(err)
		return &dto.AIResponse{Response: fallbackChat, Fallback: true}, nil
	}
	return &dto.AIResponse{Response: text}, nil
}

// Insights genera el análisis del negocio. Con query se responde la consulta
// concreta; sin query, un análisis general de tendencias y riesgos.
func (uc *InsightUseCase) Insights(ctx context.Context, ownerID string, in dto.InsightsRequest) (*dto.AIResponse, error) {
	summary, err := uc.analytics.Summary(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, insightTimeout)
	defer cancel()

	var text string
	if in.Query != "" {
		text, err = uc.svc.AnalyticsInsights(ctx, summary, in.Query)
		if err != nil {
			uc.reportError(err)
			return &dto.AIResponse{Response: fallbackAnalytics, Fallback: true}, nil
		}
	} else {
		text, err = uc.svc.BusinessInsights(ctx, summary)
		if err != nil {
			uc.reportError(err)
			return &dto.AIResponse{Response: fallbackInsights, Fallback: true}, nil
		}
	}
	return &dto.AIResponse{Response: text}, nil
}

func (uc *InsightUseCase) reportError(err error) {
	if uc.onError != nil {
		uc.onError(err)
	}
}

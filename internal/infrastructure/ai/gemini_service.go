package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jcastellr/bizpulse-api/internal/application/ports"
	"github.com/jcastellr/bizpulse-api/internal/domain"
)

// Verificar en tiempo de compilación que GeminiService implementa InsightService.
var _ ports.InsightService = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// Prompts del sistema por operación. Los tres definen un analista de
	// negocio para pymes; la salida es texto libre, no JSON.
	analyticsPrompt = `You are a business analytics expert for small businesses.
Analyze the provided business data and answer the user's question with specific, actionable insights.
Keep the answer concise (under 300 words), reference concrete numbers from the data, and suggest next steps.`

	insightsPrompt = `You are a business intelligence advisor for small businesses.
Given the aggregated business data, produce a short analysis covering: revenue trends, inventory health
(low stock and out of stock items), top performing products, and one or two growth opportunities.
Keep it under 300 words and reference concrete numbers from the data.`

	chatPrompt = `You are a friendly business assistant for a small business owner.
Use the provided business data as context to answer the user's message.
Be conversational, concise and practical; reference their actual numbers when relevant.`
)

// GeminiService adaptador que implementa InsightService contra la API REST de
// Google Gemini. Usa únicamente net/http; los agregados del negocio viajan
// serializados como JSON dentro del mensaje de usuario.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
// Si apiKey está vacío, las llamadas devuelven domain.ErrAIUnavailable y el
// caso de uso degrada a su texto de fallback.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// AnalyticsInsights analiza los agregados según la consulta del usuario.
func (s *GeminiService) AnalyticsInsights(ctx context.Context, data any, query string) (string, error) {
	userText, err := buildUserText(data, "Question: "+query)
	if err != nil {
		return "", err
	}
	return s.generate(ctx, analyticsPrompt, userText)
}

// BusinessInsights genera el análisis general del negocio.
func (s *GeminiService) BusinessInsights(ctx context.Context, data any) (string, error) {
	userText, err := buildUserText(data, "Provide your analysis of this business.")
	if err != nil {
		return "", err
	}
	return s.generate(ctx, insightsPrompt, userText)
}

// ChatResponse responde el mensaje del usuario con los agregados como contexto.
func (s *GeminiService) ChatResponse(ctx context.Context, message string, contextData any) (string, error) {
	userText, err := buildUserText(contextData, "User message: "+message)
	if err != nil {
		return "", err
	}
	return s.generate(ctx, chatPrompt, userText)
}

func buildUserText(data any, trailer string) (string, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("AI: serializar datos de negocio: %w", err)
	}
	return fmt.Sprintf("Business data (JSON):\n%s\n\n%s", encoded, trailer), nil
}

// generate hace la llamada HTTP a Gemini y extrae el texto del primer candidato.
// Todo fallo de red, de la API o de formato se reporta como error y el caso de
// uso decide el fallback; este adaptador nunca inventa respuestas.
func (s *GeminiService) generate(ctx context.Context, systemPrompt, userText string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado: %w", domain.ErrAIUnavailable)
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: userText}},
			},
		},
		GenerationConfig: genConfig{
			Temperature:     0.7,
			MaxOutputTokens: 1024,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}

	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jcastellr/bizpulse-api/internal/application/dto"
	"github.com/jcastellr/bizpulse-api/internal/application/usecase"
)

// AIHandler expone el chat y los insights de negocio (protegido).
// El caso de uso degrada los fallos del upstream a respuestas de fallback,
// así que estos endpoints casi nunca devuelven 5xx.
type AIHandler struct {
	uc  *usecase.InsightUseCase
	log zerolog.Logger
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.InsightUseCase, log zerolog.Logger) *AIHandler {
	return &AIHandler{uc: uc, log: log}
}

// Chat godoc
// @Summary      Chat con el asistente de negocio
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "Mensaje"
// @Success      200   {object}  dto.AIResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ai/chat [post]
func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	out, err := h.uc.Chat(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Insights godoc
// @Summary      Insights analíticos del negocio
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InsightsRequest  false  "Consulta opcional"
// @Success      200   {object}  dto.AIResponse
// @Router       /api/ai/insights [post]
func (h *AIHandler) Insights(c *fiber.Ctx) error {
	var in dto.InsightsRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
		}
	}
	out, err := h.uc.Insights(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

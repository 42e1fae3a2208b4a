package http

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jcastellr/bizpulse-api/internal/application/dto"
	"github.com/jcastellr/bizpulse-api/internal/application/usecase"
)

// UploadHandler recibe el CSV de productos por multipart/form-data.
type UploadHandler struct {
	uc  *usecase.ImportUseCase
	log zerolog.Logger
}

// NewUploadHandler construye el handler.
func NewUploadHandler(uc *usecase.ImportUseCase, log zerolog.Logger) *UploadHandler {
	return &UploadHandler{uc: uc, log: log}
}

// UploadCSV godoc
// @Summary      Importar productos desde CSV
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo CSV"
// @Success      200   {object}  dto.ImportResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/upload-csv [post]
func (h *UploadHandler) UploadCSV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "No file uploaded"})
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".csv") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Only CSV files are allowed"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, h.log, err)
	}
	defer file.Close()

	out, err := h.uc.ImportCSV(c.UserContext(), GetUserID(c), file)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

package handlers

import (
	"io"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"

	"hr-management-backend/pkg/analysis"
)

type AnalysisHandler struct{}

func NewAnalysisHandler() *AnalysisHandler {
	return &AnalysisHandler{}
}

type analyzeTextPayload struct {
	Text string `json:"text"`
}

// AnalyzeText godoc
// @Summary Extract evidence and classify a piece of text
// @Tags Analysis
// @Accept json
// @Produce json
// @Param text body analyzeTextPayload true "Text to analyze"
// @Success 200 {object} analysis.TextReport
// @Failure 400 {object} object{error=string}
// @Router /api/analyze_text [post]
func (h *AnalysisHandler) AnalyzeText(c *fiber.Ctx) error {
	var payload analyzeTextPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if payload.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No text provided"})
	}

	return c.JSON(analysis.AnalyzeText(payload.Text))
}

// AnalyzeFile godoc
// @Summary Extract evidence from an uploaded text file
// @Tags Analysis
// @Accept mpfd
// @Produce json
// @Param file formData file true "File to analyze"
// @Success 200 {object} analysis.FileReport
// @Failure 400 {object} object{error=string}
// @Router /api/analyze_file [post]
func (h *AnalysisHandler) AnalyzeFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file part"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Could not read file as text"})
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil || !utf8.Valid(content) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Could not read file as text"})
	}

	return c.JSON(analysis.AnalyzeFile(fileHeader.Filename, content))
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hr-management-backend/chatbot"
	"hr-management-backend/config/middleware"
)

type ChatHandler struct {
	bot *chatbot.HRChatBot
}

func NewChatHandler(bot *chatbot.HRChatBot) *ChatHandler {
	return &ChatHandler{bot: bot}
}

type chatPayload struct {
	Message string `json:"message"`
}

// Chat godoc
// @Summary Ask the HR assistant a question
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param message body chatPayload true "Message"
// @Success 200 {object} object{response=string}
// @Failure 400 {object} object{error=string}
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	var payload chatPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if payload.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Message is required"})
	}

	return c.JSON(fiber.Map{"response": h.bot.GetResponse(user.ID, payload.Message)})
}

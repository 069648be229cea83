package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alumnihub/internal/model"
	"alumnihub/internal/service"
)

// SendMessage broadcasts a message to a category.
func SendMessage(svc service.MessageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in struct {
			Category string `json:"category"`
			Message  string `json:"message"`
		}
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		if err := svc.Send(c.UserContext(), in.Category, in.Message); err != nil {
			switch {
			case errors.Is(err, service.ErrValidation):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Message sent successfully",
		})
	}
}

// ListMessages returns the visible messages, optionally filtered by ?category=.
func ListMessages(svc service.MessageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		msgs, err := svc.List(c.UserContext(), c.Query("category"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrValidation):
				return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		if msgs == nil {
			msgs = []model.Message{}
		}
		return c.JSON(msgs)
	}
}

// MessageStats returns aggregates over the visible message window.
func MessageStats(svc service.MessageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Stats(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(fiber.Map{
			"success":       true,
			"totalMessages": stats.TotalMessages,
			"categoryCount": stats.CategoryCount,
			"messages":      stats.Messages,
		})
	}
}

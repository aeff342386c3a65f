package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"studygeni/internal/service"
)

// genericGenerationMessage is the only caller-visible text for any generation
// failure; the underlying cause stays in operator logs.
const genericGenerationMessage = "Failed to generate. Please try again."

// GetSummary generates and returns a prose summary for a document.
func GetSummary(svc service.StudyAidService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid id format")
		}
		res, err := svc.Summary(c.UserContext(), id)
		if err != nil {
			return writeStudyAidError(c, err)
		}
		return writeData(c, fiber.StatusOK, "", res)
	}
}

// GetQuiz generates and returns a validated multiple-choice quiz for a document.
func GetQuiz(svc service.StudyAidService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid id format")
		}
		res, err := svc.Quiz(c.UserContext(), id)
		if err != nil {
			return writeStudyAidError(c, err)
		}
		return writeData(c, fiber.StatusOK, "", res)
	}
}

func writeStudyAidError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, service.ErrNotFound.Error())
	case errors.Is(err, service.ErrGeneration):
		return writeError(c, fiber.StatusBadGateway, genericGenerationMessage)
	default:
		return writeError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

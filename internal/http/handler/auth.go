package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"studygeni/internal/service"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// Register creates a new account.
func Register(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req registerRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}

		user, err := svc.Register(c.UserContext(), service.RegisterInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Role:     req.Role,
		})
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNameRequired),
				errors.Is(err, service.ErrEmailRequired),
				errors.Is(err, service.ErrPasswordTooShort),
				errors.Is(err, service.ErrInvalidRole):
				return writeError(c, fiber.StatusBadRequest, err.Error())
			case errors.Is(err, service.ErrEmailTaken):
				return writeError(c, fiber.StatusConflict, err.Error())
			default:
				return writeError(c, fiber.StatusInternalServerError, "internal server error")
			}
		}
		return writeData(c, fiber.StatusCreated, "Account created successfully", user)
	}
}

// Login checks credentials and returns an access token.
func Login(svc service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "invalid request body")
		}

		token, user, err := svc.Login(c.UserContext(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return writeError(c, fiber.StatusUnauthorized, err.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
		return writeData(c, fiber.StatusOK, "", loginResponse{Token: token, User: user})
	}
}

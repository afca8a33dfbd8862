package authValidator

import (
	"strings"

	"careerhub/validators"

	"github.com/gofiber/fiber/v2"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register validates the sign-up request
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(RegisterRequest)
		return validators.Bind(c, "validatedRegister", req, func(errs map[string]string) {
			req.Name = strings.TrimSpace(req.Name)
			req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		})
	}
}

// Login validates the sign-in request
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(LoginRequest)
		return validators.Bind(c, "validatedLogin", req, func(errs map[string]string) {
			req.Email = strings.ToLower(strings.TrimSpace(req.Email))
		})
	}
}

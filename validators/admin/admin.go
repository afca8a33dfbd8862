package adminValidator

import (
	"strings"

	"careerhub/validators"

	"github.com/gofiber/fiber/v2"
)

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=8,max=72"` // generated when empty
	Role     string `json:"role" validate:"omitempty,oneof=USER ADMIN"`
}

type RoleRequest struct {
	Role string `json:"role" validate:"required,oneof=USER ADMIN"`
}

type RemoveMediaRequest struct {
	Path string `json:"path" validate:"required,max=500"`
}

// CreateUser validates admin user creation
func CreateUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(CreateUserRequest)
		return validators.Bind(c, "validatedCreateUser", req, func(errs map[string]string) {
			req.Name = strings.TrimSpace(req.Name)
			req.Email = strings.ToLower(strings.TrimSpace(req.Email))
			req.Role = strings.ToUpper(strings.TrimSpace(req.Role))
		})
	}
}

// UpdateRole validates a role change
func UpdateRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(RoleRequest)
		return validators.Bind(c, "validatedRole", req, func(errs map[string]string) {
			req.Role = strings.ToUpper(strings.TrimSpace(req.Role))
		})
	}
}

// RemoveMedia validates a storage delete
func RemoveMedia() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(RemoveMediaRequest)
		return validators.Bind(c, "validatedRemoveMedia", req, func(errs map[string]string) {
			req.Path = strings.Trim(strings.TrimSpace(req.Path), "/")
			if strings.Contains(req.Path, "..") {
				errs["path"] = "path must not contain '..'!"
			}
		})
	}
}

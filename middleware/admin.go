package middleware

import (
	"errors"

	"careerhub/database"
	"careerhub/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminMiddleware allows the request through only for an active ADMIN user.
// The role is read from the database so demoted admins lose access before their token expires.
func AdminMiddleware(c *fiber.Ctx) error {
	userID, ok := CurrentUserID(c)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized: User ID not found", nil)
	}

	var user models.User
	err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		}
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error while checking permissions!", nil)
	}

	if !user.IsAdmin() {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	return c.Next()
}

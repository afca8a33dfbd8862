package controllers

import (
	"strings"

	"careerhub/config"
	"careerhub/database"
	"careerhub/logger"
	"careerhub/middleware"
	"careerhub/models"
	"careerhub/utils"
	"careerhub/validators"
	adminValidator "careerhub/validators/admin"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GetUsers lists active users, optionally filtered by role or a name/email search
func GetUsers(c *fiber.Ctx) error {
	page := validators.GetPage(c)

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false)
	if role := strings.ToUpper(strings.TrimSpace(c.Query("role"))); role != "" {
		db = db.Where("role = ?", role)
	}
	if search := strings.ToLower(strings.TrimSpace(c.Query("search"))); search != "" {
		like := "%" + search + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var total int64
	db.Count(&total)

	var users []models.User
	if err := db.Order("created_at desc").Offset(page.Offset).Limit(page.Limit).Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": users,
		"pagination": fiber.Map{
			"total": total,
			"page":  page.Page,
			"limit": page.Limit,
		},
	})
}

// CreateUser adds a user or admin and emails them their credentials
func CreateUser(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateUser").(*adminValidator.CreateUserRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var existing int64
	database.Database.Db.Model(&models.User{}).Where("email = ?", reqData.Email).Count(&existing)
	if existing > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already registered!", nil)
	}

	password := reqData.Password
	if password == "" {
		password = strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	}
	role := reqData.Role
	if role == "" {
		role = models.RoleUser
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to hash password!", nil)
	}

	user := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Role:     role,
	}
	if err := database.Database.Db.Create(&user).Error; err != nil {
		if database.IsDuplicate(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already registered!", nil)
		}
		logger.Log.Error("create user failed", zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	emailSent := true
	if err := utils.SendInvitationEmail(user.Name, user.Email, user.Role, password); err != nil {
		emailSent = false
		logger.Log.Warn("invitation email failed", zap.String("email", user.Email), zap.Error(err))
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully!", fiber.Map{
		"user":      user,
		"emailSent": emailSent,
	})
}

// UpdateUserRole promotes or demotes a user. Admins cannot demote themselves.
func UpdateUserRole(c *fiber.Ctx) error {
	targetID := validators.GetID(c, "id")
	currentID, _ := middleware.CurrentUserID(c)

	reqData, ok := c.Locals("validatedRole").(*adminValidator.RoleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if targetID == currentID && reqData.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot remove your own admin role!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := database.Database.Db.Model(&user).Update("role", reqData.Role).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update role!", nil)
	}
	user.Role = reqData.Role

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Role updated successfully!", user)
}

// DeleteUser soft deletes a user and frees their email address
func DeleteUser(c *fiber.Ctx) error {
	targetID := validators.GetID(c, "id")
	currentID, _ := middleware.CurrentUserID(c)
	if targetID == currentID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot delete your own account!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", targetID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if err := database.Database.Db.Model(&user).Updates(map[string]interface{}{
		"is_deleted": true,
		"email":      "deleted-" + user.ID[:8] + "-" + user.Email,
	}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully!", nil)
}

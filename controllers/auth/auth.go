package controllers

import (
	"time"

	"careerhub/config"
	"careerhub/database"
	"careerhub/logger"
	"careerhub/middleware"
	"careerhub/models"
	"careerhub/validators"
	authValidator "careerhub/validators/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxFailedLogins = 5
	lockoutDuration = 15 * time.Minute
)

// Register creates a learner account and returns a token
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var existing int64
	database.Database.Db.Model(&models.User{}).Where("email = ?", reqData.Email).Count(&existing)
	if existing > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to hash password!", nil)
	}

	user := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Role:     models.RoleUser,
	}
	if err := database.Database.Db.Create(&user).Error; err != nil {
		if database.IsDuplicate(err) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already registered!", nil)
		}
		logger.Log.Error("create user failed", zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registered successfully!", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Login checks credentials, locking the account for a while after repeated failures
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ? AND is_deleted = ?", reqData.Email, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	now := time.Now()
	if user.BlockedUntil != nil && user.BlockedUntil.After(now) {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Your account is temporarily blocked. Try again later.", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		updates := map[string]interface{}{"failed_login_attempts": user.FailedLoginAttempts + 1}
		if user.FailedLoginAttempts+1 >= maxFailedLogins {
			updates["blocked_until"] = now.Add(lockoutDuration)
			updates["failed_login_attempts"] = 0
			logger.Log.Warn("account locked after failed logins", zap.String("userId", user.ID))
		}
		database.Database.Db.Model(&user).Updates(updates)
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := database.Database.Db.Model(&user).Updates(map[string]interface{}{
		"last_login":            now,
		"failed_login_attempts": 0,
		"blocked_until":         nil,
	}).Error; err != nil {
		logger.Log.Warn("failed to record last login", zap.String("userId", user.ID), zap.Error(err))
	}

	history := models.LoginHistory{
		UserID:    user.ID,
		IPAddress: c.IP(),
		Device:    c.Get(fiber.HeaderUserAgent),
	}
	if err := database.Database.Db.Create(&history).Error; err != nil {
		logger.Log.Warn("failed to record login history", zap.String("userId", user.ID), zap.Error(err))
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Me returns the authenticated user
func Me(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

// LoginHistoryList returns the caller's recent sign-ins, newest first
func LoginHistoryList(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	page := validators.GetPage(c)

	var history []models.LoginHistory
	if err := database.Database.Db.Where("user_id = ?", userID).
		Order("created_at desc").
		Offset(page.Offset).
		Limit(page.Limit).
		Find(&history).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch login history!", nil)
	}

	var total int64
	database.Database.Db.Model(&models.LoginHistory{}).Where("user_id = ?", userID).Count(&total)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login History List.", fiber.Map{
		"loginHistory": history,
		"pagination": fiber.Map{
			"total": total,
			"page":  page.Page,
			"limit": page.Limit,
		},
	})
}

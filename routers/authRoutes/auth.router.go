package authRoutes

import (
	authControllers "careerhub/controllers/auth"
	"careerhub/middleware"
	"careerhub/validators"
	authValidators "careerhub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(router fiber.Router) {
	authGroup := router.Group("/auth")

	authGroup.Post("/register", authValidators.Register(), authControllers.Register)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Get("/me", middleware.JWTMiddleware, authControllers.Me)
	authGroup.Get("/login/history", middleware.JWTMiddleware, validators.Pagination(), authControllers.LoginHistoryList)
}

package adminRoutes

import (
	controllers "careerhub/controllers/admin"
	"careerhub/validators"
	adminValidators "careerhub/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up user management and the dashboard
func SetupAdminRoutes(admin fiber.Router) {
	users := admin.Group("/users")
	users.Get("/", validators.Pagination(), controllers.GetUsers)
	users.Post("/", adminValidators.CreateUser(), controllers.CreateUser)
	users.Put("/:id/role", validators.ParamID("id", "User"), adminValidators.UpdateRole(), controllers.UpdateUserRole)
	users.Delete("/:id", validators.ParamID("id", "User"), controllers.DeleteUser)

	admin.Get("/dashboard/stats", controllers.GetDashboardStats)
}

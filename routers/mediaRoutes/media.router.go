package mediaRoutes

import (
	controllers "careerhub/controllers/media"
	adminValidators "careerhub/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupMediaRoutes(admin fiber.Router) {
	group := admin.Group("/media")

	group.Post("/upload", controllers.Upload)
	group.Delete("/", adminValidators.RemoveMedia(), controllers.Remove)
	group.Get("/drive", controllers.DriveFiles)
}

package universityRoutes

import (
	controllers "careerhub/controllers/university"
	"careerhub/validators"
	universityValidators "careerhub/validators/university"

	"github.com/gofiber/fiber/v2"
)

func SetupUniversityRoutes(router fiber.Router) {
	group := router.Group("/universities")

	group.Get("/", validators.Pagination(), controllers.GetUniversities)
	group.Get("/:id", validators.ParamID("id", "University"), controllers.GetUniversityDetails)
}

func SetupAdminUniversityRoutes(admin fiber.Router) {
	group := admin.Group("/universities")

	group.Get("/", validators.Pagination(), controllers.AdminListUniversities)
	group.Post("/", universityValidators.CreateUniversity(), controllers.AdminCreateUniversity)
	group.Put("/:id", validators.ParamID("id", "University"), universityValidators.UpdateUniversity(), controllers.AdminUpdateUniversity)
	group.Delete("/:id", validators.ParamID("id", "University"), controllers.AdminDeleteUniversity)
}

package courseRoutes

import (
	controllers "careerhub/controllers/course"
	"careerhub/validators"
	courseValidators "careerhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up course management. admin must already enforce the ADMIN role.
func SetupAdminCourseRoutes(admin fiber.Router) {
	group := admin.Group("/programming")

	// Course CRUD
	group.Get("/courses", validators.Pagination(), controllers.AdminListCourses)
	group.Post("/courses", courseValidators.CreateCourse(), controllers.AdminCreateCourse)
	group.Put("/courses/:id", validators.ParamID("id", "Course"), courseValidators.UpdateCourse(), controllers.AdminUpdateCourse)
	group.Delete("/courses/:id", validators.ParamID("id", "Course"), controllers.AdminDeleteCourse)
	group.Get("/courses/:id/chapters", validators.ParamID("id", "Course"), controllers.AdminListChapters)

	// Chapter management
	group.Post("/chapters", courseValidators.CreateChapter(), controllers.AdminCreateChapter)
	group.Put("/chapters/:id", validators.ParamID("id", "Chapter"), courseValidators.UpdateChapter(), controllers.AdminUpdateChapter)
	group.Delete("/chapters/:id", validators.ParamID("id", "Chapter"), controllers.AdminDeleteChapter)
	group.Post("/chapters/:id/import-doc", validators.ParamID("id", "Chapter"), courseValidators.ImportDoc(), controllers.AdminImportChapterDoc)
	group.Get("/chapters/:id/questions", validators.ParamID("id", "Chapter"), controllers.AdminListQuestions)

	// Question management
	group.Post("/questions", courseValidators.CreateQuestion(), controllers.AdminCreateQuestion)
	group.Put("/questions/:id", validators.ParamID("id", "Question"), courseValidators.UpdateQuestion(), controllers.AdminUpdateQuestion)
	group.Delete("/questions/:id", validators.ParamID("id", "Question"), controllers.AdminDeleteQuestion)
}

package certificationRoutes

import (
	controllers "careerhub/controllers/certification"
	"careerhub/middleware"
	"careerhub/validators"
	certValidators "careerhub/validators/certification"

	"github.com/gofiber/fiber/v2"
)

func SetupCertificationRoutes(router fiber.Router) {
	group := router.Group("/certifications")

	group.Get("/", validators.Pagination(), controllers.GetCertifications)
	group.Get("/:id", validators.ParamID("id", "Certification"), controllers.GetCertificationDetails)
	group.Get("/:id/questions", validators.ParamID("id", "Certification"), certValidators.QuestionList(), controllers.GetQuestions)
	group.Post("/:id/questions/:questionId/answer", middleware.JWTMiddleware,
		validators.ParamID("id", "Certification"), validators.ParamID("questionId", "Question"),
		certValidators.SubmitAnswer(), controllers.SubmitAnswer)
	group.Get("/:id/progress", middleware.JWTMiddleware, validators.ParamID("id", "Certification"), controllers.GetProgress)
}

func SetupAdminCertificationRoutes(admin fiber.Router) {
	group := admin.Group("/certifications")

	group.Get("/", validators.Pagination(), controllers.AdminListCertifications)
	group.Post("/", certValidators.CreateCertification(), controllers.AdminCreateCertification)
	group.Put("/questions/:id", validators.ParamID("id", "Question"), certValidators.UpdateQuestion(), controllers.AdminUpdateQuestion)
	group.Delete("/questions/:id", validators.ParamID("id", "Question"), controllers.AdminDeleteQuestion)
	group.Put("/:id", validators.ParamID("id", "Certification"), certValidators.UpdateCertification(), controllers.AdminUpdateCertification)
	group.Delete("/:id", validators.ParamID("id", "Certification"), controllers.AdminDeleteCertification)
	group.Get("/:id/questions", validators.ParamID("id", "Certification"), controllers.AdminListQuestions)
	group.Post("/:id/questions", validators.ParamID("id", "Certification"), certValidators.CreateQuestion(), controllers.AdminCreateQuestion)
}

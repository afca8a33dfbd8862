package englishRoutes

import (
	controllers "careerhub/controllers/english"
	"careerhub/validators"
	englishValidators "careerhub/validators/english"

	"github.com/gofiber/fiber/v2"
)

func SetupEnglishRoutes(router fiber.Router) {
	group := router.Group("/english")

	// Reading and listening material
	group.Get("/news", validators.Pagination(), controllers.GetNews)
	group.Get("/news/:id", validators.ParamID("id", "News"), controllers.GetNewsDetails)
	group.Get("/movies", validators.Pagination(), controllers.GetMovies)
	group.Get("/movies/:id", validators.ParamID("id", "Movie"), controllers.GetMovieDetails)

	// Practice tools
	group.Post("/dictation", englishValidators.Dictation(), controllers.Dictation)
	group.Post("/explain", englishValidators.Explain(), controllers.Explain)
	group.Post("/tts", englishValidators.TTS(), controllers.TTS)
	group.Get("/speech/token", controllers.SpeechToken)
	group.Get("/voicevox/speakers", controllers.VoicevoxSpeakers)
}

func SetupAdminEnglishRoutes(admin fiber.Router) {
	group := admin.Group("/english")

	group.Get("/news", validators.Pagination(), controllers.AdminListNews)
	group.Post("/news", englishValidators.CreateNews(), controllers.AdminCreateNews)
	group.Post("/news/fetch", englishValidators.FetchNews(), controllers.AdminFetchNews)
	group.Put("/news/:id", validators.ParamID("id", "News"), englishValidators.UpdateNews(), controllers.AdminUpdateNews)
	group.Delete("/news/:id", validators.ParamID("id", "News"), controllers.AdminDeleteNews)
	group.Post("/news/:id/audio", validators.ParamID("id", "News"), englishValidators.NewsAudio(), controllers.AdminGenerateNewsAudio)

	group.Get("/movies", validators.Pagination(), controllers.AdminListMovies)
	group.Post("/movies", englishValidators.CreateMovie(), controllers.AdminCreateMovie)
	group.Put("/movies/:id", validators.ParamID("id", "Movie"), englishValidators.UpdateMovie(), controllers.AdminUpdateMovie)
	group.Delete("/movies/:id", validators.ParamID("id", "Movie"), controllers.AdminDeleteMovie)
}

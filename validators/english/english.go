package englishValidator

import (
	"strings"
	"time"

	"careerhub/validators"

	"github.com/gofiber/fiber/v2"
)

// ============ News ============

type NewsRequest struct {
	Title       string     `json:"title" validate:"required,max=300"`
	Description string     `json:"description" validate:"max=5000"`
	Content     string     `json:"content"`
	URL         string     `json:"url" validate:"required,url"`
	ImageURL    string     `json:"imageUrl" validate:"omitempty,url"`
	Source      string     `json:"source" validate:"max=120"`
	Author      string     `json:"author" validate:"max=200"`
	Level       string     `json:"level" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	PublishedAt *time.Time `json:"publishedAt"`
	IsPublished *bool      `json:"isPublished"`
}

type NewsUpdateRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=300"`
	Description *string    `json:"description" validate:"omitempty,max=5000"`
	Content     *string    `json:"content"`
	ImageURL    *string    `json:"imageUrl" validate:"omitempty,url"`
	Source      *string    `json:"source" validate:"omitempty,max=120"`
	Author      *string    `json:"author" validate:"omitempty,max=200"`
	Level       *string    `json:"level" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	PublishedAt *time.Time `json:"publishedAt"`
	IsPublished *bool      `json:"isPublished"`
}

type NewsFetchRequest struct {
	Country  string `json:"country" validate:"omitempty,len=2"`
	Category string `json:"category" validate:"omitempty,oneof=business entertainment general health science sports technology"`
	Query    string `json:"q" validate:"max=200"`
	PageSize int    `json:"pageSize" validate:"min=0,max=100"`
	Level    string `json:"level" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
}

// ============ Movies ============

type MovieRequest struct {
	Title        string `json:"title" validate:"required,max=300"`
	Description  string `json:"description" validate:"max=5000"`
	YoutubeID    string `json:"youtubeId" validate:"required,max=20"`
	Level        string `json:"level" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	Transcript   string `json:"transcript"`
	ThumbnailURL string `json:"thumbnailUrl" validate:"omitempty,url"`
	IsPublished  bool   `json:"isPublished"`
}

type MovieUpdateRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=300"`
	Description  *string `json:"description" validate:"omitempty,max=5000"`
	YoutubeID    *string `json:"youtubeId" validate:"omitempty,min=1,max=20"`
	Level        *string `json:"level" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	Transcript   *string `json:"transcript"`
	ThumbnailURL *string `json:"thumbnailUrl" validate:"omitempty,url"`
	IsPublished  *bool   `json:"isPublished"`
}

// ============ Practice ============

type DictationRequest struct {
	Expected  string   `json:"expected" validate:"required,max=2000"`
	Answer    string   `json:"answer" validate:"max=2000"`
	Threshold *float64 `json:"threshold" validate:"omitempty,min=0,max=1"`
}

type ChatTurn struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required,max=4000"`
}

type ExplainRequest struct {
	Text     string     `json:"text" validate:"required,max=4000"`
	Question string     `json:"question" validate:"max=1000"`
	History  []ChatTurn `json:"history" validate:"max=20,dive"`
}

type TTSRequest struct {
	Text    string `json:"text" validate:"required,max=2000"`
	Engine  string `json:"engine" validate:"omitempty,oneof=azure voicevox"`
	Voice   string `json:"voice" validate:"max=80"`
	Speaker *int   `json:"speaker" validate:"omitempty,min=0"`
}

type NewsAudioRequest struct {
	Engine  string `json:"engine" validate:"omitempty,oneof=azure voicevox"`
	Voice   string `json:"voice" validate:"max=80"`
	Speaker *int   `json:"speaker" validate:"omitempty,min=0"`
}

func upper(s *string) {
	if s != nil {
		*s = strings.ToUpper(strings.TrimSpace(*s))
	}
}

func CreateNews() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(NewsRequest)
		return validators.Bind(c, "validatedNews", req, func(errs map[string]string) {
			validators.TrimAll(&req.Title, &req.Description, &req.URL, &req.ImageURL, &req.Source, &req.Author)
			upper(&req.Level)
		})
	}
}

func UpdateNews() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(NewsUpdateRequest)
		return validators.Bind(c, "validatedNewsUpdate", req, func(errs map[string]string) {
			validators.TrimAll(req.Title, req.Description, req.ImageURL, req.Source, req.Author)
			upper(req.Level)
		})
	}
}

func FetchNews() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(NewsFetchRequest)
		if len(c.Body()) == 0 {
			c.Locals("validatedNewsFetch", req)
			return c.Next()
		}
		return validators.Bind(c, "validatedNewsFetch", req, func(errs map[string]string) {
			req.Country = strings.ToLower(strings.TrimSpace(req.Country))
			req.Category = strings.ToLower(strings.TrimSpace(req.Category))
			upper(&req.Level)
		})
	}
}

func CreateMovie() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(MovieRequest)
		return validators.Bind(c, "validatedMovie", req, func(errs map[string]string) {
			validators.TrimAll(&req.Title, &req.Description, &req.YoutubeID, &req.ThumbnailURL)
			upper(&req.Level)
		})
	}
}

func UpdateMovie() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(MovieUpdateRequest)
		return validators.Bind(c, "validatedMovieUpdate", req, func(errs map[string]string) {
			validators.TrimAll(req.Title, req.Description, req.YoutubeID, req.ThumbnailURL)
			upper(req.Level)
		})
	}
}

func Dictation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(DictationRequest)
		return validators.Bind(c, "validatedDictation", req, nil)
	}
}

func Explain() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(ExplainRequest)
		return validators.Bind(c, "validatedExplain", req, func(errs map[string]string) {
			validators.TrimAll(&req.Text, &req.Question)
		})
	}
}

func TTS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(TTSRequest)
		return validators.Bind(c, "validatedTTS", req, func(errs map[string]string) {
			validators.TrimAll(&req.Text, &req.Voice)
			req.Engine = strings.ToLower(strings.TrimSpace(req.Engine))
			if req.Engine == "" {
				req.Engine = "azure"
			}
		})
	}
}

func NewsAudio() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(NewsAudioRequest)
		if len(c.Body()) == 0 {
			req.Engine = "azure"
			c.Locals("validatedNewsAudio", req)
			return c.Next()
		}
		return validators.Bind(c, "validatedNewsAudio", req, func(errs map[string]string) {
			req.Engine = strings.ToLower(strings.TrimSpace(req.Engine))
			if req.Engine == "" {
				req.Engine = "azure"
			}
		})
	}
}

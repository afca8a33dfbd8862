package courseValidator

import (
	"strings"

	"careerhub/validators"

	"github.com/gofiber/fiber/v2"
)

// ============ Course ============

type CourseRequest struct {
	Title        string `json:"title" validate:"required,min=3,max=200"`
	Slug         string `json:"slug" validate:"omitempty,max=120"`
	Description  string `json:"description" validate:"max=5000"`
	Language     string `json:"language" validate:"required,max=40"`
	Level        string `json:"level" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	ThumbnailURL string `json:"thumbnailUrl" validate:"omitempty,url"`
	OrderIndex   int    `json:"orderIndex" validate:"min=0"`
	IsPublished  bool   `json:"isPublished"`
}

type CourseUpdateRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=3,max=200"`
	Slug         *string `json:"slug" validate:"omitempty,min=1,max=120"`
	Description  *string `json:"description" validate:"omitempty,max=5000"`
	Language     *string `json:"language" validate:"omitempty,min=1,max=40"`
	Level        *string `json:"level" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	ThumbnailURL *string `json:"thumbnailUrl" validate:"omitempty,url"`
	OrderIndex   *int    `json:"orderIndex" validate:"omitempty,min=0"`
	IsPublished  *bool   `json:"isPublished"`
}

// CreateCourse validates admin course creation
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(CourseRequest)
		return validators.Bind(c, "validatedCourse", req, func(errs map[string]string) {
			validators.TrimAll(&req.Title, &req.Slug, &req.Description, &req.Language, &req.ThumbnailURL)
			req.Language = strings.ToLower(req.Language)
			req.Level = strings.ToUpper(strings.TrimSpace(req.Level))
		})
	}
}

// UpdateCourse validates a partial course update
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(CourseUpdateRequest)
		return validators.Bind(c, "validatedCourseUpdate", req, func(errs map[string]string) {
			validators.TrimAll(req.Title, req.Slug, req.Description, req.Language, req.ThumbnailURL, req.Level)
			if req.Level != nil {
				*req.Level = strings.ToUpper(*req.Level)
			}
			if req.Language != nil {
				*req.Language = strings.ToLower(*req.Language)
			}
		})
	}
}

// ============ Chapter ============

type ChapterRequest struct {
	CourseID    string `json:"courseId" validate:"required,uuid"`
	Title       string `json:"title" validate:"required,min=2,max=200"`
	Content     string `json:"content"`
	OrderIndex  int    `json:"orderIndex" validate:"min=0"`
	IsPublished bool   `json:"isPublished"`
}

type ChapterUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=2,max=200"`
	Content     *string `json:"content"`
	OrderIndex  *int    `json:"orderIndex" validate:"omitempty,min=0"`
	IsPublished *bool   `json:"isPublished"`
}

type ImportDocRequest struct {
	DocumentID string `json:"documentId" validate:"required,max=200"`
	Format     string `json:"format" validate:"omitempty,oneof=text html"`
}

func CreateChapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(ChapterRequest)
		return validators.Bind(c, "validatedChapter", req, func(errs map[string]string) {
			validators.TrimAll(&req.CourseID, &req.Title)
		})
	}
}

func UpdateChapter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(ChapterUpdateRequest)
		return validators.Bind(c, "validatedChapterUpdate", req, func(errs map[string]string) {
			validators.TrimAll(req.Title)
		})
	}
}

func ImportDoc() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(ImportDocRequest)
		return validators.Bind(c, "validatedImportDoc", req, func(errs map[string]string) {
			validators.TrimAll(&req.DocumentID, &req.Format)
		})
	}
}

// ChapterList requires ?courseId=
func ChapterList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Query("courseId"))
		errs := validators.Struct(&struct {
			CourseID string `json:"courseId" validate:"required,uuid"`
		}{CourseID: courseID})
		if len(errs) > 0 {
			return validationFailed(c, errs)
		}
		c.Locals("courseId", courseID)
		return c.Next()
	}
}

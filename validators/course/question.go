package courseValidator

import (
	"strings"

	"careerhub/middleware"
	"careerhub/models/course"
	"careerhub/validators"

	"github.com/gofiber/fiber/v2"
)

type QuestionRequest struct {
	ChapterID    string   `json:"chapterId" validate:"required,uuid"`
	Type         string   `json:"type" validate:"omitempty,oneof=CHOICE TEXT"`
	Prompt       string   `json:"prompt" validate:"required,max=5000"`
	Options      []string `json:"options" validate:"max=10,dive,required,max=500"`
	CorrectIndex int      `json:"correctIndex" validate:"min=0"`
	Answer       string   `json:"answer" validate:"max=2000"`
	Explanation  string   `json:"explanation" validate:"max=5000"`
	OrderIndex   int      `json:"orderIndex" validate:"min=0"`
}

type QuestionUpdateRequest struct {
	Type         *string  `json:"type" validate:"omitempty,oneof=CHOICE TEXT"`
	Prompt       *string  `json:"prompt" validate:"omitempty,min=1,max=5000"`
	Options      []string `json:"options" validate:"omitempty,max=10,dive,required,max=500"`
	CorrectIndex *int     `json:"correctIndex" validate:"omitempty,min=0"`
	Answer       *string  `json:"answer" validate:"omitempty,max=2000"`
	Explanation  *string  `json:"explanation" validate:"omitempty,max=5000"`
	OrderIndex   *int     `json:"orderIndex" validate:"omitempty,min=0"`
}

type AnswerRequest struct {
	SelectedIndex *int   `json:"selectedIndex" validate:"omitempty,min=0"`
	Answer        string `json:"answer" validate:"max=2000"`
}

// CheckQuestionShape enforces the rules that depend on the question type
func CheckQuestionShape(qType string, options []string, correctIndex int, answer string, errs map[string]string) {
	switch qType {
	case course.QuestionText:
		if strings.TrimSpace(answer) == "" {
			errs["answer"] = "answer is required for TEXT questions!"
		}
	default:
		if len(options) < 2 {
			errs["options"] = "CHOICE questions need at least 2 options!"
		} else if correctIndex >= len(options) {
			errs["correctIndex"] = "correctIndex must point at one of the options!"
		}
	}
}

func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(QuestionRequest)
		return validators.Bind(c, "validatedQuestion", req, func(errs map[string]string) {
			validators.TrimAll(&req.ChapterID, &req.Prompt, &req.Answer, &req.Explanation)
			req.Type = strings.ToUpper(strings.TrimSpace(req.Type))
			if req.Type == "" {
				req.Type = course.QuestionChoice
			}
			for i := range req.Options {
				req.Options[i] = strings.TrimSpace(req.Options[i])
			}
			CheckQuestionShape(req.Type, req.Options, req.CorrectIndex, req.Answer, errs)
		})
	}
}

func UpdateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(QuestionUpdateRequest)
		return validators.Bind(c, "validatedQuestionUpdate", req, func(errs map[string]string) {
			validators.TrimAll(req.Prompt, req.Answer, req.Explanation)
			if req.Type != nil {
				*req.Type = strings.ToUpper(strings.TrimSpace(*req.Type))
			}
		})
	}
}

func SubmitAnswer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(AnswerRequest)
		return validators.Bind(c, "validatedAnswer", req, func(errs map[string]string) {
			if req.SelectedIndex == nil && strings.TrimSpace(req.Answer) == "" {
				errs["answer"] = "selectedIndex or answer is required!"
			}
		})
	}
}

// ProgressQuery reads an optional ?courseId=
func ProgressQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Query("courseId"))
		if courseID != "" {
			errs := validators.Struct(&struct {
				CourseID string `json:"courseId" validate:"uuid"`
			}{CourseID: courseID})
			if len(errs) > 0 {
				return validationFailed(c, errs)
			}
		}
		c.Locals("courseId", courseID)
		return c.Next()
	}
}

// CourseFilters reads ?language=&level=&sort=
func CourseFilters() fiber.Handler {
	return func(c *fiber.Ctx) error {
		level := strings.ToUpper(strings.TrimSpace(c.Query("level")))
		if level != "" && level != course.LevelBeginner && level != course.LevelIntermediate && level != course.LevelAdvanced {
			return validationFailed(c, map[string]string{"level": "level must be one of: BEGINNER, INTERMEDIATE, ADVANCED!"})
		}
		c.Locals("level", level)
		c.Locals("language", strings.ToLower(strings.TrimSpace(c.Query("language"))))
		return c.Next()
	}
}

func validationFailed(c *fiber.Ctx, errs map[string]string) error {
	return middleware.ValidationErrorResponse(c, errs)
}

package certificationValidator

import (
	"strconv"
	"strings"

	"careerhub/middleware"
	"careerhub/validators"

	"github.com/gofiber/fiber/v2"
)

type CertificationRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=200"`
	Code         string `json:"code" validate:"required,max=40"`
	Vendor       string `json:"vendor" validate:"required,max=80"`
	Description  string `json:"description" validate:"max=5000"`
	Level        string `json:"level" validate:"max=40"`
	PassingScore *int   `json:"passingScore" validate:"omitempty,min=0,max=100"`
	IsPublished  bool   `json:"isPublished"`
}

type CertificationUpdateRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=2,max=200"`
	Code         *string `json:"code" validate:"omitempty,min=1,max=40"`
	Vendor       *string `json:"vendor" validate:"omitempty,min=1,max=80"`
	Description  *string `json:"description" validate:"omitempty,max=5000"`
	Level        *string `json:"level" validate:"omitempty,max=40"`
	PassingScore *int    `json:"passingScore" validate:"omitempty,min=0,max=100"`
	IsPublished  *bool   `json:"isPublished"`
}

type QuestionRequest struct {
	Category     string   `json:"category" validate:"max=80"`
	Prompt       string   `json:"prompt" validate:"required,max=5000"`
	Options      []string `json:"options" validate:"required,min=2,max=10,dive,required,max=500"`
	CorrectIndex int      `json:"correctIndex" validate:"min=0"`
	Explanation  string   `json:"explanation" validate:"max=5000"`
}

type QuestionUpdateRequest struct {
	Category     *string  `json:"category" validate:"omitempty,max=80"`
	Prompt       *string  `json:"prompt" validate:"omitempty,min=1,max=5000"`
	Options      []string `json:"options" validate:"omitempty,min=2,max=10,dive,required,max=500"`
	CorrectIndex *int     `json:"correctIndex" validate:"omitempty,min=0"`
	Explanation  *string  `json:"explanation" validate:"omitempty,max=5000"`
}

type AnswerRequest struct {
	SelectedIndex *int `json:"selectedIndex" validate:"required,min=0"`
}

// QuestionQuery is the parsed query of GET /certifications/:id/questions
type QuestionQuery struct {
	Limit    int
	Shuffle  bool
	Category string
}

func CreateCertification() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(CertificationRequest)
		return validators.Bind(c, "validatedCertification", req, func(errs map[string]string) {
			validators.TrimAll(&req.Name, &req.Code, &req.Vendor, &req.Description, &req.Level)
			req.Code = strings.ToUpper(req.Code)
		})
	}
}

func UpdateCertification() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(CertificationUpdateRequest)
		return validators.Bind(c, "validatedCertificationUpdate", req, func(errs map[string]string) {
			validators.TrimAll(req.Name, req.Code, req.Vendor, req.Description, req.Level)
			if req.Code != nil {
				*req.Code = strings.ToUpper(*req.Code)
			}
		})
	}
}

func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(QuestionRequest)
		return validators.Bind(c, "validatedCertQuestion", req, func(errs map[string]string) {
			validators.TrimAll(&req.Category, &req.Prompt, &req.Explanation)
			for i := range req.Options {
				req.Options[i] = strings.TrimSpace(req.Options[i])
			}
			if len(req.Options) >= 2 && req.CorrectIndex >= len(req.Options) {
				errs["correctIndex"] = "correctIndex must point at one of the options!"
			}
		})
	}
}

func UpdateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(QuestionUpdateRequest)
		return validators.Bind(c, "validatedCertQuestionUpdate", req, func(errs map[string]string) {
			validators.TrimAll(req.Category, req.Prompt, req.Explanation)
		})
	}
}

func SubmitAnswer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(AnswerRequest)
		return validators.Bind(c, "validatedCertAnswer", req, nil)
	}
}

// QuestionList parses ?limit=&shuffle=&category=
func QuestionList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := &QuestionQuery{Category: strings.TrimSpace(c.Query("category"))}

		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 || n > 200 {
				return middleware.ValidationErrorResponse(c, map[string]string{"limit": "limit must be between 1 and 200!"})
			}
			query.Limit = n
		}
		if v := c.Query("shuffle"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return middleware.ValidationErrorResponse(c, map[string]string{"shuffle": "shuffle must be true or false!"})
			}
			query.Shuffle = b
		}

		c.Locals("questionQuery", query)
		return c.Next()
	}
}

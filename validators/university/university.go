package universityValidator

import (
	"strings"

	"careerhub/validators"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type UniversityRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=200"`
	Country     string          `json:"country" validate:"required,max=80"`
	City        string          `json:"city" validate:"max=80"`
	Website     string          `json:"website" validate:"omitempty,url"`
	Ranking     int             `json:"ranking" validate:"min=0"`
	TuitionFee  decimal.Decimal `json:"tuitionFee"`
	Currency    string          `json:"currency" validate:"omitempty,len=3"`
	Description string          `json:"description" validate:"max=10000"`
	LogoURL     string          `json:"logoUrl" validate:"omitempty,url"`
	IsPublished *bool           `json:"isPublished"`
}

type UniversityUpdateRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=2,max=200"`
	Country     *string          `json:"country" validate:"omitempty,min=1,max=80"`
	City        *string          `json:"city" validate:"omitempty,max=80"`
	Website     *string          `json:"website" validate:"omitempty,url"`
	Ranking     *int             `json:"ranking" validate:"omitempty,min=0"`
	TuitionFee  *decimal.Decimal `json:"tuitionFee"`
	Currency    *string          `json:"currency" validate:"omitempty,len=3"`
	Description *string          `json:"description" validate:"omitempty,max=10000"`
	LogoURL     *string          `json:"logoUrl" validate:"omitempty,url"`
	IsPublished *bool            `json:"isPublished"`
}

func CreateUniversity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(UniversityRequest)
		return validators.Bind(c, "validatedUniversity", req, func(errs map[string]string) {
			validators.TrimAll(&req.Name, &req.Country, &req.City, &req.Website, &req.Description, &req.LogoURL)
			req.Currency = strings.ToUpper(strings.TrimSpace(req.Currency))
			if req.TuitionFee.IsNegative() {
				errs["tuitionFee"] = "tuitionFee must not be negative!"
			}
		})
	}
}

func UpdateUniversity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(UniversityUpdateRequest)
		return validators.Bind(c, "validatedUniversityUpdate", req, func(errs map[string]string) {
			validators.TrimAll(req.Name, req.Country, req.City, req.Website, req.Description, req.LogoURL)
			if req.Currency != nil {
				*req.Currency = strings.ToUpper(strings.TrimSpace(*req.Currency))
			}
			if req.TuitionFee != nil && req.TuitionFee.IsNegative() {
				errs["tuitionFee"] = "tuitionFee must not be negative!"
			}
		})
	}
}

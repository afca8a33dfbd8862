// Package validators holds the request-validation middleware shared by every route group.
// Each validator parses and checks the request, stores the result in c.Locals and calls Next.
package validators

import (
	"reflect"
	"strconv"
	"strings"

	"careerhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	// Report errors under the JSON field name the client sent
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Page is the parsed page/limit query
type Page struct {
	Page   int `json:"page"`
	Limit  int `json:"limit"`
	Offset int `json:"-"`
}

// Struct runs the validate tags on req and returns field -> message
func Struct(req interface{}) map[string]string {
	errs := make(map[string]string)
	err := validate.Struct(req)
	if err == nil {
		return errs
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["body"] = "Invalid request body!"
		return errs
	}
	for _, fe := range fieldErrs {
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required!"
	case "email":
		return field + " must be a valid email address!"
	case "url":
		return field + " must be a valid URL!"
	case "uuid":
		return field + " must be a valid ID!"
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ") + "!"
	case "min":
		if fe.Kind() == reflect.String {
			return field + " must be at least " + fe.Param() + " characters long!"
		}
		if fe.Kind() == reflect.Slice {
			return field + " must have at least " + fe.Param() + " items!"
		}
		return field + " must be at least " + fe.Param() + "!"
	case "max":
		if fe.Kind() == reflect.String {
			return field + " must be at most " + fe.Param() + " characters long!"
		}
		return field + " must be at most " + fe.Param() + "!"
	case "len":
		return field + " must be exactly " + fe.Param() + " characters long!"
	default:
		return field + " is invalid!"
	}
}

// Bind parses the JSON body into req, runs check (trimming and cross-field rules),
// then the struct tags. On success req is stored under key.
func Bind(c *fiber.Ctx, key string, req interface{}, check func(errs map[string]string)) error {
	if err := c.BodyParser(req); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errs := make(map[string]string)
	if check != nil {
		check(errs)
	}
	for field, msg := range Struct(req) {
		if _, exists := errs[field]; !exists {
			errs[field] = msg
		}
	}

	if len(errs) > 0 {
		return middleware.ValidationErrorResponse(c, errs)
	}

	c.Locals(key, req)
	return c.Next()
}

// ParamID validates that route parameter param is an ID and stores it under the same name
func ParamID(param, label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Params(param))
		if id == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" ID is required!", nil)
		}
		if _, err := uuid.Parse(id); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+" ID!", nil)
		}

		c.Locals(param, id)
		return c.Next()
	}
}

// GetID returns an ID stored by ParamID
func GetID(c *fiber.Ctx, param string) string {
	id, _ := c.Locals(param).(string)
	return id
}

// Pagination parses ?page=&limit= with defaults 1 and 10, capping limit at 100
func Pagination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := 1
		limit := DefaultLimit
		errs := make(map[string]string)

		if v := c.Query("page"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				errs["page"] = "page must be a positive number!"
			} else {
				page = n
			}
		}
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				errs["limit"] = "limit must be a positive number!"
			} else if n > MaxLimit {
				limit = MaxLimit
			} else {
				limit = n
			}
		}

		if len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}

		c.Locals("pagination", &Page{Page: page, Limit: limit, Offset: (page - 1) * limit})
		return c.Next()
	}
}

// GetPage returns the Page stored by Pagination, or the defaults
func GetPage(c *fiber.Ctx) *Page {
	if p, ok := c.Locals("pagination").(*Page); ok {
		return p
	}
	return &Page{Page: 1, Limit: DefaultLimit}
}

// TrimAll trims every non-nil string pointer in place
func TrimAll(values ...*string) {
	for _, v := range values {
		if v != nil {
			*v = strings.TrimSpace(*v)
		}
	}
}

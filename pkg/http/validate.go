package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// BindAndValidate binds the request body into req, applies `default` tags and
// validates `validate` tags. On failure it returns a 400 AppError whose
// message names the first offending field.
func BindAndValidate(c echo.Context, req interface{}) *AppError {
	if err := c.Bind(req); err != nil {
		return BadRequestError("malformed request body").WithError(err)
	}
	if err := defaults.Set(req); err != nil {
		return InternalError("request defaults").WithError(err)
	}
	if err := validate.StructCtx(c.Request().Context(), req); err != nil {
		return BadRequestError(firstValidationMessage(err)).WithError(err)
	}
	return nil
}

func firstValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request"
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}

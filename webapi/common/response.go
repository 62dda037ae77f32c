// Package common holds the response envelope, the RFC 9457 problem
// rendering and the request binding shared by all handlers.
package common

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sebsst/Banking-app/pkg/domain"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs, extended
// with a stable machine-readable code.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Code     string `json:"code"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

var validate = validator.New()

// SuccessResponseJSON writes the success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{Status: status, Message: message, Data: data})
}

// ProblemDetailsJSON writes a problem response with the given shape.
func ProblemDetailsJSON(c *fiber.Ctx, status int, code, title, detail string, fieldErrors any) error {
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Code:     code,
		Detail:   detail,
		Instance: c.OriginalURL(),
		Errors:   fieldErrors,
	}
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(pd)
}

// ErrorJSON translates a service error into its problem response. Every
// domain error maps to a stable code; anything unexpected is logged and
// surfaced as a generic failure, with the detail included only in
// development mode.
func ErrorJSON(c *fiber.Ctx, err error, logger *slog.Logger, development bool) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ProblemDetailsJSON(c, fiber.StatusBadRequest, "validation_failed", "Validation failed", "", ve.Fields)
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return ProblemDetailsJSON(c, fiber.StatusNotFound, "not_found", "Not Found", err.Error(), nil)
	case errors.Is(err, domain.ErrEmailExists),
		errors.Is(err, domain.ErrBankExists),
		errors.Is(err, domain.ErrIBANExists):
		return ProblemDetailsJSON(c, fiber.StatusConflict, "duplicate", "Conflict", err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidReference):
		return ProblemDetailsJSON(c, fiber.StatusBadRequest, "invalid_reference", "Invalid Reference", err.Error(), nil)
	case errors.Is(err, domain.ErrReferentialConflict):
		return ProblemDetailsJSON(c, fiber.StatusConflict, "referential_conflict", "Conflict", err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthenticated):
		return ProblemDetailsJSON(c, fiber.StatusUnauthorized, "unauthenticated", "Unauthorized", err.Error(), nil)
	}

	logger.Error("Unexpected error", "path", c.OriginalURL(), "error", err)
	detail := ""
	if development {
		detail = err.Error()
	}
	return ProblemDetailsJSON(c, fiber.StatusInternalServerError, "internal_error", "Internal Server Error", detail, nil)
}

// BindAndValidate parses the request body and validates it, collecting every
// field violation. On invalid input it writes the 400 problem response itself
// and returns a nil input with only the write error, so handlers must not
// render anything further.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, fiber.StatusBadRequest, "validation_failed", "Invalid request body", err.Error(), nil)
	}
	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			ve := &domain.ValidationError{}
			for _, fe := range verrs {
				ve.Add(fe.Field(), validationMessage(fe))
			}
			return nil, ProblemDetailsJSON(c, fiber.StatusBadRequest, "validation_failed", "Validation failed", "", ve.Fields)
		}
		return nil, ProblemDetailsJSON(c, fiber.StatusBadRequest, "validation_failed", "Validation failed", err.Error(), nil)
	}
	return &input, nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "datetime":
		return "must be a date in format " + fe.Param()
	default:
		return "is invalid"
	}
}

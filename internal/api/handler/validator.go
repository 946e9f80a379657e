package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/99minutos/todo-service/internal/api/httperr"
)

// RequestValidator wraps go-playground/validator so Echo can call
// c.Validate(req). Failures come back as a *httperr.Error carrying one
// Issue per violated rule, addressed by JSON field name.
type RequestValidator struct {
	v *validator.Validate
}

// NewValidator returns a RequestValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	return &RequestValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	issues := make([]httperr.Issue, 0, len(ve))
	for _, fe := range ve {
		issues = append(issues, issueFor(fe))
	}
	return httperr.Validation(issues...)
}

// fieldMessages overrides the generic message for specific field/rule pairs.
var fieldMessages = map[string]string{
	"email.required":    "Invalid email format",
	"email.email":       "Invalid email format",
	"password.required": "Password is required",
	"password.min":      "Password must be at least 6 characters",
	"password.max":      "Password must be at most 72 characters",
}

// issueFor converts a single FieldError into an Issue.
func issueFor(fe validator.FieldError) httperr.Issue {
	path := fieldPath(fe.Namespace())

	code, msg := ruleMessage(fe)
	if override, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		msg = override
	}
	return httperr.Issue{Path: path, Message: msg, Code: code}
}

func ruleMessage(fe validator.FieldError) (code, msg string) {
	switch fe.Tag() {
	case "required":
		return "invalid_type", "Required"
	case "email":
		return "invalid_string", "Invalid email"
	case "min":
		return "too_small", fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
	case "max":
		return "too_big", fmt.Sprintf("String must contain at most %s character(s)", fe.Param())
	case "oneof":
		opts := strings.Fields(fe.Param())
		for i, o := range opts {
			opts[i] = "'" + o + "'"
		}
		return "invalid_enum_value", "Invalid enum value. Expected " + strings.Join(opts, " | ")
	default:
		return "custom", fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) []string {
	parts := strings.Split(ns, ".")
	if len(parts) <= 1 {
		return []string{}
	}
	return parts[1:]
}

// bindError turns a Bind failure into the 400 returned for unreadable bodies.
func bindError(err error) *httperr.Error {
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) && ute.Field != "" {
		return httperr.Validation(httperr.Issue{
			Path:    strings.Split(ute.Field, "."),
			Message: fmt.Sprintf("Expected %s, received %s", ute.Type, ute.Value),
			Code:    "invalid_type",
		})
	}
	return httperr.Validation(httperr.Issue{
		Path:    []string{},
		Message: "invalid JSON payload",
		Code:    "invalid_json",
	})
}

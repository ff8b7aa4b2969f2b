package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mmynk/dailydiet/internal/service"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decode parses the request body into dst and validates it. The returned
// error is always a *service.ValidationError carrying one message per problem.
// An empty body decodes as an empty object.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()

	var messages []string
	skip := map[string]bool{}

	err := json.NewDecoder(body).Decode(dst)
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case err == nil, errors.Is(err, io.EOF):
	case errors.As(err, &typeErr) && typeErr.Field != "":
		// The decoder keeps going after a type mismatch, so the remaining
		// fields are still worth validating.
		messages = append(messages, fmt.Sprintf("%s must be a %s", typeErr.Field, typeName(typeErr.Type)))
		skip[typeErr.Field] = true
	case errors.As(err, &maxErr):
		return service.NewValidationError("request body too large")
	default:
		return service.NewValidationError("request body must be a valid JSON object")
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return service.NewValidationError(err.Error())
		}
		for _, fe := range fieldErrs {
			if skip[fe.Field()] {
				continue
			}
			messages = append(messages, fieldMessage(fe))
		}
	}

	if len(messages) > 0 {
		return service.NewValidationError(messages...)
	}
	return nil
}

// fieldMessage renders a validation failure the way clients expect to read it.
func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "invalid email format"
	case "min":
		if fe.Param() == "1" {
			return field + " must not be empty"
		}
		return fmt.Sprintf("min %s length is %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("max %s length is %s", field, fe.Param())
	case "datetime":
		return field + " must be an ISO-8601 datetime"
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	default:
		return t.String()
	}
}

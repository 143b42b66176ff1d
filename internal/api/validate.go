package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/erazemk/izposoja/internal/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Validate nullable patch fields by their value. An absent key or an
	// explicit null yields no value, which omitempty skips.
	v.RegisterCustomTypeFunc(nullableValue[int], model.Nullable[int]{})
	v.RegisterCustomTypeFunc(nullableValue[string], model.Nullable[string]{})
	return v
}

func nullableValue[T any](f reflect.Value) any {
	n, ok := f.Interface().(model.Nullable[T])
	if !ok {
		return nil
	}
	if x, ok := n.Get(); ok {
		return x
	}
	return nil
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationResponse struct {
	Message string       `json:"message"`
	Errors  []fieldError `json:"errors"`
}

// decodeValid decodes the request body into target and validates it. On
// failure it writes a 400 and returns false.
func decodeValid(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := decodeJSON(r, target); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	err := validate.Struct(target)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		jsonError(w, http.StatusBadRequest, "Invalid request")
		return false
	}

	resp := validationResponse{Message: "Invalid request"}
	for _, fe := range verrs {
		resp.Errors = append(resp.Errors, fieldError{Field: fe.Field(), Message: describe(fe)})
	}
	jsonResponse(w, http.StatusBadRequest, resp)
	return false
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// Package validate translates validator/v10 failures into the field-level
// error lists the API reports to callers.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError is one field-level validation failure, reported in request
// field order.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RegisterTagName makes gin's validator report JSON field names instead of
// Go struct field names. Call once before handling requests.
func RegisterTagName() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Fields translates a binding error into field-level errors. It returns nil
// when err carries no validator detail (for example malformed JSON), in
// which case the caller should report a generic bad-request instead.
func Fields(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldName(fe), Message: message(fe)})
	}
	return out
}

// IDError is the error list reported for a malformed :id path parameter.
func IDError() []FieldError {
	return []FieldError{{Field: "id", Message: "must be a positive integer"}}
}

// fieldName strips the top-level struct name from the namespace so nested
// failures read like the request body: "events[0].properties[1].name".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "min":
		return "must not be empty"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "gt":
		return "must be a positive integer"
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}

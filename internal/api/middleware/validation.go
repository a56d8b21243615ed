package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apierrors "documio/internal/api/errors"
)

// Validator interface for domain validation
type Validator interface {
	Validate() error
}

var fieldNamesOnce sync.Once

// useTagFieldNames makes validation errors name fields by their form, uri or
// json tag instead of the Go field name.
func useTagFieldNames() {
	fieldNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"form", "uri", "json"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return f.Name
		})
	})
}

// ValidateForm binds a form or multipart body into req and validates both
// struct tags and domain rules.
func ValidateForm(c *gin.Context, req interface{}) error {
	useTagFieldNames()
	if err := c.ShouldBind(req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apierrors.NewValidationError("Upload too large", map[string]string{
				"audio": "exceeds the upload limit",
			})
		}
		return apierrors.NewValidationError("Validation failed", fieldErrors(err, "form", "invalid form data"))
	}

	if v, ok := req.(Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ValidateURI binds path parameters into req
func ValidateURI(c *gin.Context, req interface{}) error {
	useTagFieldNames()
	if err := c.ShouldBindUri(req); err != nil {
		return apierrors.NewValidationError("Invalid path parameters", fieldErrors(err, "path", "invalid path parameters"))
	}

	if v, ok := req.(Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	return nil
}

func fieldErrors(err error, fallbackField, fallbackMessage string) map[string]string {
	result := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		result[fallbackField] = fallbackMessage
		return result
	}

	for _, fieldError := range validationErrs {
		field := strings.ToLower(fieldError.Field())

		switch fieldError.Tag() {
		case "required":
			result[field] = "is required"
		case "min":
			result[field] = "is too short"
		case "max":
			result[field] = "is too long"
		case "oneof":
			result[field] = "must be one of the allowed values"
		case "endswith":
			result[field] = "must end with " + fieldError.Param()
		default:
			result[field] = "is invalid"
		}
	}
	return result
}

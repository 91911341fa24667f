package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// engine backs the rule primitives and the enum checks done by setters.
var engine = newEngine()

func newEngine() *validator.Validate {
	v := validator.New()
	register(v)
	return v
}

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers the onboarding enum aliases so request payloads and setters agree.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		register(v)
	}
}

func register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterAlias("contact_method", "oneof=Email Phone SMS")
	v.RegisterAlias("phone_type", "oneof=Mobile Home Work")
	v.RegisterAlias("theme", "oneof=light dark auto")
	v.RegisterAlias("phone_field", "oneof=type number")
}

// Var validates a single value against a validator tag.
func Var(value any, tag string) error {
	return engine.Var(value, tag)
}

// IsEmail reports whether s is a well-formed email address.
func IsEmail(s string) bool {
	return engine.Var(s, "required,email") == nil
}

// Message returns the human-friendly text of the first validation failure in err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return formatFieldError(verrs[0])
	}
	return err.Error()
}

// ToDetails converts validation/binding errors into a map[field]message suitable for API error.details.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	// Invalid JSON payloads
	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return map[string]string{"payload": "invalid json"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	return map[string]string{"payload": "invalid payload"}
}

func formatFieldError(fe validator.FieldError) string {
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "e164":
		return "must be a valid phone number"
	case "numeric", "number":
		return "must be numeric"
	case "oneof":
		return "must be one of: " + strings.Join(splitParams(param), ", ")
	case "contact_method":
		return "must be one of: Email, Phone, SMS"
	case "phone_type":
		return "must be one of: Mobile, Home, Work"
	case "theme":
		return "must be one of: light, dark, auto"
	case "phone_field":
		return "must be one of: type, number"
	case "min":
		if isNumberKind(fe.Kind()) {
			return "must be at least " + param
		}
		return "must be at least " + param + " characters long"
	case "max":
		if isNumberKind(fe.Kind()) {
			return "must be at most " + param
		}
		return "must be at most " + param + " characters long"
	case "boolean":
		return "must be a boolean value"
	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", tag, param)
		}
		return fmt.Sprintf("validation failed for '%s'", tag)
	}
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func splitParams(p string) []string {
	if p == "" {
		return nil
	}
	if parts := strings.Fields(p); len(parts) > 1 {
		return parts
	}
	if strings.Contains(p, ",") {
		return strings.Split(p, ",")
	}
	return []string{p}
}

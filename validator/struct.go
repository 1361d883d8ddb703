package validator

import (
	"errors"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/ncobase/yatube/ecode"
	"github.com/ncobase/yatube/util"
)

var (
	validate *validator.Validate
	once     sync.Once

	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
)

// Validator returns the shared validator with the site rules registered
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(fieldName)
		_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernamePattern.MatchString(fl.Field().String())
		})
		_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return util.IsSlug(fl.Field().String())
		})
		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return validate
}

// FieldErrors maps form field names to the messages shown next to them.
// NonFieldKey holds errors that belong to the whole form.
type FieldErrors map[string]string

// NonFieldKey is the key of form-wide errors
const NonFieldKey = "__all__"

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "invalid form: " + strings.Join(parts, ", ")
}

// fieldName names fields by their form tag, falling back to json
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"form", "json"} {
		if name := strings.Split(f.Tag.Get(tag), ",")[0]; name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

// parseMessage builds the message shown next to a field
func parseMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return ecode.FieldIsRequired()
	case "max":
		return ecode.FieldTooLong()
	case "min":
		return ecode.FieldTooShort()
	case "eqfield":
		return ecode.FieldMismatch()
	case "oneof":
		return ecode.InvalidChoice()
	default:
		return ecode.FieldIsInvalid()
	}
}

// ValidateStruct validates a struct and returns a map of form field names to
// messages. The map is empty when the struct is valid.
func ValidateStruct(s any) FieldErrors {
	validationErrors := make(FieldErrors)

	err := Validator().Struct(s)
	if err == nil {
		return validationErrors
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			if _, seen := validationErrors[e.Field()]; !seen {
				validationErrors[e.Field()] = parseMessage(e)
			}
		}
		return validationErrors
	}

	validationErrors[NonFieldKey] = ecode.FieldIsInvalid()
	return validationErrors
}

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the date format used in dashboard payloads.
const DateLayout = "2006-01-02"

var phonePattern = regexp.MustCompile(`^\+?[0-9 ()\-.]{7,20}$`)

// Errors maps JSON field paths to human readable messages.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid parameter(s): " + strings.Join(fields, ", ")
}

// Validator checks request payloads against struct tag rules.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

// New creates a validator with the dashboard's custom rules registered:
//
//   - phone: loose international phone number
//   - pastdate: YYYY-MM-DD not after today
func New() *Validator {
	val := &Validator{v: validator.New(validator.WithRequiredStructEnabled()), now: time.Now}

	val.v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = val.v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = val.v.RegisterValidation("pastdate", func(fl validator.FieldLevel) bool {
		d, err := time.Parse(DateLayout, fl.Field().String())
		if err != nil {
			return false
		}
		return !d.After(val.now())
	})

	return val
}

// Struct validates s. It returns Errors when a rule fails.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation failed: %w", err)
	}
	out := make(Errors, len(verrs))
	for _, fe := range verrs {
		out[fieldPath(fe)] = message(fe)
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must be a valid phone number"
	case "pastdate":
		return "must be a date (YYYY-MM-DD) that is not in the future"
	case "datetime":
		return "must be a date (YYYY-MM-DD)"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min", "gte":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return "must have at least " + fe.Param() + " items/characters"
		}
		return "must be at least " + fe.Param()
	case "max", "lte":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return "must have at most " + fe.Param() + " items/characters"
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "uuid4", "uuid":
		return "must be a valid identifier"
	default:
		return "failed the " + fe.Tag() + " rule"
	}
}

package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"autoworld/internal/domain"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// slugPattern matches path and query identifiers such as gallery categories and sound types.
var slugPattern = regexp.MustCompile(`^[a-z0-9_-]{1,50}$`)

// Validator provides request validation functionality
type Validator struct {
	validate *govalidator.Validate
	trans    ut.Translator
}

// NewValidator creates a validator with English messages, JSON field names
// and the "slug" rule.
func NewValidator() *Validator {
	v := govalidator.New(govalidator.WithRequiredStructEnabled())

	// Use JSON tag name for field names in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("slug", func(fl govalidator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)
	_ = v.RegisterTranslation("slug", trans,
		func(ut ut.Translator) error {
			return ut.Add("slug", "{0} may only contain lowercase letters, digits, '-' and '_' (1-50 characters)", true)
		},
		func(ut ut.Translator, fe govalidator.FieldError) string {
			msg, _ := ut.T("slug", fe.Field())
			return msg
		},
	)

	return &Validator{validate: v, trans: trans}
}

// Struct validates a request DTO and returns nil when it is valid.
func (v *Validator) Struct(s any) error {
	return v.convert(v.validate.Struct(s))
}

// ValidateSlug validates a single path or query parameter.
func (v *Validator) ValidateSlug(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError(field, field+" is required")}
	}
	if !slugPattern.MatchString(value) {
		return domain.ValidationErrors{domain.NewInvalidFormatError(field, value,
			field+" may only contain lowercase letters, digits, '-' and '_' (1-50 characters)")}
	}
	return nil
}

func (v *Validator) convert(err error) error {
	if err == nil {
		return nil
	}
	var ve govalidator.ValidationErrors
	if !errors.As(err, &ve) {
		return domain.NewInvalidInputError(err.Error())
	}

	out := make(domain.ValidationErrors, 0, len(ve))
	for _, fe := range ve {
		msg := fe.Translate(v.trans)
		switch fe.Tag() {
		case "required":
			out = append(out, domain.NewMissingFieldError(fe.Field(), msg))
		case "min", "max", "gte", "lte", "gt", "lt", "len":
			out = append(out, domain.ValidationError{
				Field: fe.Field(), Code: domain.CodeOutOfRange, Message: msg, Value: fe.Value(),
			})
		default:
			out = append(out, domain.NewInvalidFormatError(fe.Field(), fe.Value(), msg))
		}
	}
	return out
}

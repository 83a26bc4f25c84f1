package shared

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/form"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/hi"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

var Decoder = form.NewDecoder()

var (
	Validate   = validator.New(validator.WithRequiredStructEnabled())
	Translator *ut.UniversalTranslator
)

func init() {
	enLocale := en.New()
	Translator = ut.New(enLocale, enLocale, hi.New())

	// Field names in validation errors follow the form tag, so they match
	// the submitted input names.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	trans, _ := Translator.GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(Validate, trans); err != nil {
		panic(err)
	}
}

// FieldErrors flattens validator errors into field -> message. localize is
// asked first; the default English translation is used when it returns false.
func FieldErrors(err error, localize func(fe validator.FieldError) (string, bool)) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}
	trans, _ := Translator.GetTranslator("en")
	for _, fe := range verrs {
		if _, exists := out[fe.Field()]; exists {
			continue
		}
		if localize != nil {
			if msg, ok := localize(fe); ok {
				out[fe.Field()] = msg
				continue
			}
		}
		out[fe.Field()] = fe.Translate(trans)
	}
	return out
}

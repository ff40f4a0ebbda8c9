package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"temanikan/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// custom validation tags
const (
	notBlankTag  = "notblank"
	loginRoleTag = "role"
	viewTag      = "view"
)

type customTag struct {
	tag string
	fn  validator.Func
}

var customTags = []customTag{
	{tag: notBlankTag, fn: notBlank},
	{tag: loginRoleTag, fn: loginRole},
	{tag: viewTag, fn: knownView},
}

var (
	validatorOnce sync.Once
	translator    ut.Translator
)

// registerValidators hooks the custom tags and English messages into gin's
// validator engine. Safe to call more than once; panics if the engine
// rejects a registration.
func registerValidators() {
	validatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		trans, err := installValidators(v, customTags)
		if err != nil {
			panic(fmt.Sprintf("register validators: %v", err))
		}
		translator = trans
	})
}

func installValidators(v *validator.Validate, tags []customTag) (ut.Translator, error) {
	_en := en.New()
	uni := ut.New(_en, _en)
	trans, found := uni.GetTranslator("en")
	if !found {
		return nil, errors.New("en translator not found")
	}
	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("default translations: %w", err)
	}

	// Report JSON field names instead of Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	noop := func(ut.Translator) error { return nil }
	for _, ct := range tags {
		if err := v.RegisterValidation(ct.tag, ct.fn); err != nil {
			return nil, fmt.Errorf("validation %q: %w", ct.tag, err)
		}
		if err := v.RegisterTranslation(ct.tag, trans, noop, translateCustom); err != nil {
			return nil, fmt.Errorf("translation %q: %w", ct.tag, err)
		}
	}
	return trans, nil
}

func translateCustom(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case notBlankTag:
		return fe.Field() + " cannot be blank"
	case loginRoleTag:
		return fe.Field() + " must be one of: member, admin"
	case viewTag:
		return fe.Field() + " is not a known view"
	default:
		return fe.Error()
	}
}

func notBlank(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

// loginRole accepts the roles a demo login may assume. Guest is reached
// through logout or the guest switch, never through a login.
func loginRole(fl validator.FieldLevel) bool {
	r, ok := models.ParseRole(fl.Field().String())
	return ok && r != models.RoleGuest
}

func knownView(fl validator.FieldLevel) bool {
	_, ok := models.ParseView(fl.Field().String())
	return ok
}

// validationMessage renders binding errors as one line of field messages.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || translator == nil {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(translator))
	}
	return strings.Join(msgs, "; ")
}

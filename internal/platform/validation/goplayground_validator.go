package validation

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// TagNotBlank rejects strings made only of whitespace.
const TagNotBlank = "notblank"

type GoPlaygroundValidator struct {
	v *validator.Validate
}

var _ Validator = (*GoPlaygroundValidator)(nil)

func NewGoPlaygroundValidator() *GoPlaygroundValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(jsonTagName)

	if err := v.RegisterValidation(TagNotBlank, validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", TagNotBlank, err))
	}

	return &GoPlaygroundValidator{
		v: v,
	}
}

// ValidateStruct returns a message per invalid field keyed by its json name, or nil.
func (va *GoPlaygroundValidator) ValidateStruct(s any) map[string]string {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return map[string]string{"input": err.Error()}
	}

	errMap := make(map[string]string, len(valErrs))
	for _, e := range valErrs {
		errMap[e.Field()] = validationMessage(s, e)
	}

	return errMap
}

func validationMessage(s any, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case TagNotBlank:
		return fmt.Sprintf("%s must not be blank", e.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", e.Field(), e.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters long", e.Field(), e.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", e.Field(), e.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", e.Field(), e.Param())
	case "numeric":
		return fmt.Sprintf("%s must be a number", e.Field())
	case "e164":
		return fmt.Sprintf("%s must be a phone number in international format", e.Field())
	case "eqfield":
		return fmt.Sprintf("%s should match %s", e.Field(), jsonName(s, e.Param()))
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}

// jsonName maps a struct field name to its json name, falling back to the field name.
func jsonName(s any, field string) string {
	t := reflect.TypeOf(s)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return field
	}

	f, ok := t.FieldByName(field)
	if !ok {
		return field
	}

	if name := jsonTagName(f); name != "" {
		return name
	}
	return field
}

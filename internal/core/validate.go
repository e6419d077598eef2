// AngelaMos | 2026
// validate.go

package core

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator reports fields by their wire name and adds the notblank
// rule for strings that must contain more than whitespace.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	//nolint:errcheck // tag name is static and valid
	_ = v.RegisterValidation("notblank", notBlank)

	return v
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()

	switch field.Kind() {
	case reflect.String:
		return strings.TrimSpace(field.String()) != ""
	case reflect.Pointer:
		if field.IsNil() {
			return true
		}
		elem := field.Elem()
		if elem.Kind() != reflect.String {
			return true
		}
		return strings.TrimSpace(elem.String()) != ""
	default:
		return true
	}
}

// Package validation checks decoded request payloads against their validate tags.
package validation

import (
	"reflect"
	"strings"
)

// Validator reports one message per invalid field, keyed by the field's json name.
// A valid struct yields nil.
type Validator interface {
	ValidateStruct(s any) map[string]string
}

// jsonTagName returns the name in the field's json tag. Fields tagged "-" yield "".
func jsonTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

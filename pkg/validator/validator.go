// Package validator turns gin binding failures into field-keyed messages for
// the validation error envelope.
package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ParseError flattens a binding error into a field → message map. Errors that
// carry no field information (malformed JSON and the like) land under the
// "error" key.
func ParseError(err error) map[string]string {
	out := make(map[string]string)

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[fe.Field()] = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		}
		return out
	}

	if err != nil {
		out["error"] = err.Error()
	}
	return out
}

package delivery

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps "Field.tag" to the message returned to the client.
var fieldMessages = map[string]string{
	"Name.required":     "enter valid name",
	"Email.required":    "enter valid email",
	"Email.email":       "enter valid email",
	"Password.required": "enter 6 characters at least!",
	"Password.min":      "enter 6 characters at least!",
	"Password.max":      "password must be at most 72 bytes",
}

// validationMessage returns the message for the first failing field, in
// struct order. ok is false when err is not a validation failure.
func validationMessage(err error) (string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "", false
	}
	first := verrs[0]
	if msg, ok := fieldMessages[first.StructField()+"."+first.Tag()]; ok {
		return msg, true
	}
	return "invalid " + first.Field(), true
}

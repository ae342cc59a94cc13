// Package forms содержит вспомогательные функции для работы с HTML-формами.
package forms

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// Message формирует человекочитаемый текст по ошибкам валидации формы,
// по одному сообщению на поле, через запятую.
func Message(errs validator.ValidationErrors) string {
	var msgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("field %s has an unsupported value", err.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}

// Package validation valida payloads de entrada a partir das tags `validate`.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator encapsula o validator do go-playground reportando os nomes JSON dos campos.
type Validator struct {
	v *validator.Validate
}

// New cria um Validator. É seguro para uso concorrente.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Struct valida s e devolve uma mensagem legível com o primeiro campo inválido.
func (val *Validator) Struct(s interface{}) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	return errors.New(describe(fieldErrs[0]))
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("o campo '%s' é obrigatório", field)
	case "email":
		return fmt.Sprintf("o campo '%s' deve ser um e-mail válido", field)
	case "gte":
		return fmt.Sprintf("o campo '%s' deve ser maior ou igual a %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("o campo '%s' deve ser maior que %s", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("o campo '%s' deve ter ao menos %s item(ns)", field, fe.Param())
		}
		return fmt.Sprintf("o campo '%s' não pode ser vazio", field)
	}
	return fmt.Sprintf("o campo '%s' é inválido (%s)", field, fe.Tag())
}

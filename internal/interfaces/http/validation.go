package http

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/portal-b2b/internal/domain"
	"github.com/jhoicas/portal-b2b/pkg/br"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// nomes dos campos nas mensagens seguem o JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// decimal.Decimal é validado como número (gte, lte...)
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("cnpj_digits", func(fl validator.FieldLevel) bool {
		return len(br.OnlyDigits(fl.Field().String())) >= 14
	})
	return v
}

// bind lê o JSON do corpo e valida as tags `validate`.
// Devolve errInvalidBody ou um *domain.ValidationError com a primeira falha.
func bind(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return errInvalidBody
	}
	return validateStruct(out)
}

func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return errInvalidBody
	}
	first := verrs[0]
	return &domain.ValidationError{
		Field:   first.Field(),
		Message: fmt.Sprintf("%s: %s", first.Field(), validationMessage(first)),
	}
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "e-mail inválido"
	case "min":
		if e.Kind() == reflect.String {
			return "deve ter pelo menos " + e.Param() + " caracteres"
		}
		if e.Kind() == reflect.Slice {
			return "informe pelo menos " + e.Param() + " item(ns)"
		}
		return "deve ser no mínimo " + e.Param()
	case "len":
		return "deve ter exatamente " + e.Param() + " caracteres"
	case "oneof":
		return "deve ser um de: " + strings.ReplaceAll(e.Param(), " ", ", ")
	case "gte":
		return "deve ser maior ou igual a " + e.Param()
	case "uuid":
		return "identificador inválido"
	case "cnpj_digits":
		return "CNPJ deve ter 14 dígitos"
	default:
		return "valor inválido"
	}
}

package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"gin-boutique/dto"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
}

// Result is the ordered list of field errors for one submission.
type Result struct {
	errors []FieldError
}

func (r Result) IsEmpty() bool {
	return len(r.errors) == 0
}

func (r Result) Array() []FieldError {
	return r.errors
}

func (r Result) First() string {
	if r.IsEmpty() {
		return ""
	}
	return r.errors[0].Msg
}

func (r Result) Has(param string) bool {
	for _, e := range r.errors {
		if e.Param == param {
			return true
		}
	}
	return false
}

type IProductValidator interface {
	Validate(input dto.ProductInput) Result
}

type ProductValidator struct {
	validate *validator.Validate
}

func NewProductValidator() IProductValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// priceは正の小数のみ許可
	_ = v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		value, err := strconv.ParseFloat(fl.Field().String(), 64)
		return err == nil && value > 0
	})
	return &ProductValidator{validate: v}
}

func (v *ProductValidator) Validate(input dto.ProductInput) Result {
	err := v.validate.Struct(input)
	if err == nil {
		return Result{}
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return Result{errors: []FieldError{{Msg: err.Error()}}}
	}

	result := Result{errors: make([]FieldError, 0, len(fieldErrors))}
	for _, fe := range fieldErrors {
		result.errors = append(result.errors, FieldError{
			Param: fe.Field(),
			Msg:   message(fe),
		})
	}
	return result
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters long.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("The %s must be at most %s characters long.", fe.Field(), fe.Param())
	case "price":
		return "The price must be a positive decimal number."
	}
	return fmt.Sprintf("Invalid value for %s.", fe.Field())
}

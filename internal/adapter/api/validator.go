package api

import (
	"github.com/go-playground/validator/v10"

	"altanzam/internal/usecase"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return usecase.ValidatePassword(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

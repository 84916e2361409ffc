package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/contacomigo/backend/internal/domain/entity"
)

// RegisterValidators installs the custom binding tags on gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("handle", validateHandle)
}

func validateHandle(fl validator.FieldLevel) bool {
	return entity.IsValidHandle(fl.Field().String())
}

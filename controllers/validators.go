package controllers

import (
	"github.com/EXCALOFRIO/RonaldosVinicius/models"
	"github.com/EXCALOFRIO/RonaldosVinicius/services"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators : gin 바인딩에 커스텀 검증 태그 등록
//   - bacunit   : blood | breath
//   - drinkkind : 기본값이 정의된 음료 종류
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("bacunit", validateUnit); err != nil {
		return err
	}
	return v.RegisterValidation("drinkkind", validateDrinkKind)
}

func validateUnit(fl validator.FieldLevel) bool {
	_, ok := services.LegalLimits[models.Unit(fl.Field().String())]
	return ok
}

func validateDrinkKind(fl validator.FieldLevel) bool {
	return services.IsKnownKind(models.DrinkKind(fl.Field().String()))
}

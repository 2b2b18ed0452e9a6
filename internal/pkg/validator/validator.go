package validator

import (
	stderrors "errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/route-weather-service/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// в деталях ошибок поля называются так же, как в JSON
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = validate.RegisterValidation("date", layoutValidator("2006-01-02"))
	_ = validate.RegisterValidation("clock", layoutValidator("15:04"))
	_ = validate.RegisterValidation("timezone", func(fl validator.FieldLevel) bool {
		if fl.Field().String() == "" {
			return true
		}
		_, err := time.LoadLocation(fl.Field().String())
		return err == nil
	})
}

func layoutValidator(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := time.Parse(layout, fl.Field().String())
		return err == nil
	}
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// ToAppError превращает ошибки валидатора в INVALID_REQUEST с деталями по полям
func ToAppError(err error) *errors.AppError {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.ErrInvalidRequest.Wrap(err)
	}

	fields := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields[fe.Field()] = rule
	}
	return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"fields": fields})
}

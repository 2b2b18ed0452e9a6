package utils

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"

	"github.com/route-weather-service/internal/pkg/errors"
	"github.com/route-weather-service/internal/pkg/i18n"
)

// LocaleKey - ключ c.Locals, под которым middleware кладёт language.Tag запроса
const LocaleKey = "locale"

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total    int     `json:"total,omitempty"`
	Limit    int     `json:"limit,omitempty"`
	Locale   string  `json:"locale,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendError отдаёт ошибку в конверте {error}. Текст переводится на локаль
// запроса, код остаётся прежним. Неизвестные ошибки превращаются в 500.
func SendError(c *fiber.Ctx, err error) error {
	appErr, ok := errors.As(err)
	if !ok {
		appErr = errors.ErrInternalServer
	}

	localized := appErr.WithMessage(i18n.Translate(Locale(c), appErr.Code, appErr.Message))
	return c.Status(appErr.StatusCode).JSON(ErrorResponse{
		Error: localized,
	})
}

// Locale возвращает локаль запроса или локаль по умолчанию
func Locale(c *fiber.Ctx) language.Tag {
	if tag, ok := c.Locals(LocaleKey).(language.Tag); ok {
		return tag
	}
	return i18n.English
}

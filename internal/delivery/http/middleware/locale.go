package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/route-weather-service/internal/pkg/i18n"
	"github.com/route-weather-service/internal/pkg/utils"
)

// Locale определяет локаль запроса: ?locale=, затем Accept-Language
func Locale() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tag := i18n.Resolve(c.Query("locale"), c.Get(fiber.HeaderAcceptLanguage))
		c.Locals(utils.LocaleKey, tag)
		c.Set(fiber.HeaderContentLanguage, tag.String())
		return c.Next()
	}
}

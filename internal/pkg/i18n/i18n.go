// Package i18n выбирает локаль запроса и переводит сообщения об ошибках.
// Коды ошибок не переводятся, меняется только текст.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Поддерживаемые локали. Первая в списке - локаль по умолчанию.
var (
	English   = language.English
	Norwegian = language.Norwegian
	Spanish   = language.Spanish

	supported = []language.Tag{English, Norwegian, Spanish}
	matcher   = language.NewMatcher(supported)
)

// DefaultLocale - локаль по умолчанию
const DefaultLocale = "en"

// Locales возвращает коды поддерживаемых локалей
func Locales() []string {
	out := make([]string, 0, len(supported))
	for _, tag := range supported {
		out = append(out, tag.String())
	}
	return out
}

// Resolve выбирает локаль: явный параметр (?locale=) важнее Accept-Language.
// Неподдерживаемые значения сводятся к DefaultLocale.
func Resolve(explicit, acceptLanguage string) language.Tag {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		if tag, err := language.Parse(explicit); err == nil {
			if matched, ok := exact(tag); ok {
				return matched
			}
		}
	}

	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			// теги уже отсортированы по q
			for _, tag := range tags {
				if matched, ok := exact(tag); ok {
					return matched
				}
			}
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return supported[idx]
			}
		}
	}

	return English
}

// exact сопоставляет тег с поддерживаемой локалью по базовому языку;
// nb/nn считаются норвежским.
func exact(tag language.Tag) (language.Tag, bool) {
	base, _ := tag.Base()
	switch base.String() {
	case "nb", "nn", "no":
		return Norwegian, true
	}
	for _, s := range supported {
		sb, _ := s.Base()
		if sb == base {
			return s, true
		}
	}
	return language.Und, false
}

// Translate возвращает перевод сообщения для кода ошибки. Если перевода нет,
// возвращается fallback.
func Translate(tag language.Tag, code, fallback string) string {
	if tag == English || !hasTranslation(tag, code) {
		return fallback
	}
	return message.NewPrinter(tag).Sprintf(message.Key(code, fallback))
}

func hasTranslation(tag language.Tag, code string) bool {
	byCode, ok := catalogEntries[tag]
	if !ok {
		return false
	}
	_, ok = byCode[code]
	return ok
}

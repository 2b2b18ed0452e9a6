package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// catalogEntries - переводы сообщений, ключ - код ошибки
var catalogEntries = map[language.Tag]map[string]string{
	Norwegian: {
		"INVALID_REQUEST":       "Ugyldige forespørselsparametere",
		"INVALID_DATETIME":      "Ugyldig reisedato eller tidspunkt",
		"GEOCODE_NOT_FOUND":     "Fant ikke koordinater for adressen",
		"GEOCODING_FAILED":      "Geokodingstjenesten feilet",
		"ROUTING_FAILED":        "Rutetjenesten feilet",
		"WEATHER_FAILED":        "Værtjenesten feilet",
		"AUTOCOMPLETE_FAILED":   "Adresseforslag feilet",
		"PLAN_NOT_FOUND":        "Ruteplanen ble ikke funnet",
		"INVALID_PLAN_ID":       "Ugyldig ruteplan-ID",
		"HISTORY_DISABLED":      "Planhistorikk er deaktivert",
		"DATABASE_ERROR":        "Databaseoperasjonen feilet",
		"NOT_FOUND":             "Ressursen ble ikke funnet",
		"INTERNAL_SERVER_ERROR": "Intern serverfeil",
	},
	Spanish: {
		"INVALID_REQUEST":       "Parámetros de solicitud no válidos",
		"INVALID_DATETIME":      "Fecha u hora de viaje no válida",
		"GEOCODE_NOT_FOUND":     "No se encontraron coordenadas para la dirección",
		"GEOCODING_FAILED":      "Falló el servicio de geocodificación",
		"ROUTING_FAILED":        "Falló el servicio de rutas",
		"WEATHER_FAILED":        "Falló el servicio meteorológico",
		"AUTOCOMPLETE_FAILED":   "Falló el autocompletado de direcciones",
		"PLAN_NOT_FOUND":        "Plan de ruta no encontrado",
		"INVALID_PLAN_ID":       "ID de plan de ruta no válido",
		"HISTORY_DISABLED":      "El historial de planes está desactivado",
		"DATABASE_ERROR":        "Falló la operación de base de datos",
		"NOT_FOUND":             "Recurso no encontrado",
		"INTERNAL_SERVER_ERROR": "Error interno del servidor",
	},
}

func init() {
	for tag, entries := range catalogEntries {
		for key, msg := range entries {
			if err := message.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}

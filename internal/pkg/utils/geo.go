package utils

import (
	"fmt"
	"strings"
)

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// CoordinateKey - координаты с точностью 4 знака (~11 м), как в запросе к MET
func CoordinateKey(lat, lon float64) string {
	return fmt.Sprintf("%.4f:%.4f", lat, lon)
}

// NormalizeAddress приводит адрес к виду для ключа кэша:
// нижний регистр, схлопнутые пробелы.
func NormalizeAddress(address string) string {
	return strings.Join(strings.Fields(strings.ToLower(address)), " ")
}

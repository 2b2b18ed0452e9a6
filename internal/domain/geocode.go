package domain

// GeocodeResult - результат прямого геокодирования адреса
type GeocodeResult struct {
	Query string `json:"query"`
	Label string `json:"label,omitempty"`
	Coordinate
}

// Suggestion - подсказка автодополнения адреса.
// Coordinates в порядке [lon, lat], как отдаёт провайдер.
type Suggestion struct {
	Label       string     `json:"label"`
	Coordinates [2]float64 `json:"coordinates"`
}

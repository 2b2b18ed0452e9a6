package domain

// Coordinate - географическая точка (WGS84)
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Equal сравнивает координаты побитово, как они пришли от провайдера
func (c Coordinate) Equal(other Coordinate) bool {
	return c.Lat == other.Lat && c.Lon == other.Lon
}

// Route - маршрут, построенный внешним сервисом маршрутизации
type Route struct {
	DistanceMeters  float64        `json:"distance"`
	DurationSeconds float64        `json:"duration"`
	Geometry        []Coordinate   `json:"-"`
	Segments        []RouteSegment `json:"segments,omitempty"`
	BBox            []float64      `json:"bbox,omitempty"`
}

// RouteSegment - участок маршрута между двумя соседними точками запроса
type RouteSegment struct {
	Distance float64     `json:"distance"`
	Duration float64     `json:"duration"`
	Steps    []RouteStep `json:"steps"`
}

// RouteStep - минимальная единица маршрута.
// WayPoints содержит индексы начала и конца шага в Geometry (включительно).
type RouteStep struct {
	Distance    float64 `json:"distance"`
	Duration    float64 `json:"duration"`
	WayPoints   [2]int  `json:"way_points"`
	Instruction string  `json:"instruction,omitempty"`
	Name        string  `json:"name,omitempty"`
}

// HasSteps проверяет, есть ли в маршруте пошаговая разбивка
func (r *Route) HasSteps() bool {
	for _, s := range r.Segments {
		if len(s.Steps) > 0 {
			return true
		}
	}
	return false
}

// SamplePoint - точка маршрута и время (в секундах от старта), когда
// путешественник ожидается в этой точке
type SamplePoint struct {
	Coordinate
	OffsetSeconds float64 `json:"offset_seconds"`
}

package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/twpayne/go-polyline"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/route-weather-service/internal/domain"
	"github.com/route-weather-service/internal/domain/repository"
	"github.com/route-weather-service/internal/pkg/errors"
	"github.com/route-weather-service/internal/pkg/metrics"
	"github.com/route-weather-service/internal/planner"
	"github.com/route-weather-service/internal/usecase/dto"
)

const dateTimeLayout = "2006-01-02 15:04"

// RouteWeatherConfig - параметры расчёта
type RouteWeatherConfig struct {
	MaxPoints       int
	DefaultLocation *time.Location
	ForecastTTL     time.Duration
	GeocodeTTL      time.Duration
}

// RouteWeatherUseCase - геокодирование, маршрут, выбор точек, прогнозы и сжатие ленты
type RouteWeatherUseCase struct {
	geocoder repository.GeocodingRepository
	router   repository.RoutingRepository
	weather  repository.WeatherRepository
	cache    repository.CacheRepository
	plans    repository.PlanRepository // nil, если история выключена
	cfg      RouteWeatherConfig
	logger   *zap.Logger
}

// NewRouteWeatherUseCase создает новый RouteWeatherUseCase. plans может быть nil.
func NewRouteWeatherUseCase(
	geocoder repository.GeocodingRepository,
	router repository.RoutingRepository,
	weather repository.WeatherRepository,
	cache repository.CacheRepository,
	plans repository.PlanRepository,
	cfg RouteWeatherConfig,
	logger *zap.Logger,
) *RouteWeatherUseCase {
	if cfg.MaxPoints < planner.MinMaxPoints {
		cfg.MaxPoints = planner.DefaultMaxPoints
	}
	if cfg.DefaultLocation == nil {
		cfg.DefaultLocation = time.UTC
	}
	return &RouteWeatherUseCase{
		geocoder: geocoder,
		router:   router,
		weather:  weather,
		cache:    cache,
		plans:    plans,
		cfg:      cfg,
		logger:   logger,
	}
}

// Plan рассчитывает маршрут с погодой.
//
// Порядок: разбор времени (до любых внешних вызовов), параллельное
// геокодирование всех адресов, маршрут, выбор точек, параллельная загрузка
// прогнозов, выбор прогноза на момент прибытия в каждую точку, сжатие ленты.
// Первая ошибка любого этапа прерывает расчёт. Сохранение в историю -
// best effort.
func (uc *RouteWeatherUseCase) Plan(ctx context.Context, req dto.RouteWeatherRequest) (resp *dto.RouteWeatherResponse, err error) {
	defer func() {
		outcome := "success"
		if appErr, ok := errors.As(err); ok {
			outcome = appErr.Code
		} else if err != nil {
			outcome = errors.CodeInternalServer
		}
		metrics.PlansTotal.WithLabelValues(outcome).Inc()
	}()

	baseTime, err := uc.ParseBaseTime(req.TravelDate, req.TravelTime, req.Timezone)
	if err != nil {
		return nil, err
	}

	addresses := routeAddresses(req)

	locations, err := uc.geocodeAll(ctx, addresses)
	if err != nil {
		return nil, err
	}

	coords := make([]domain.Coordinate, len(locations))
	for i, loc := range locations {
		coords[i] = loc.Coordinate
	}

	route, err := uc.router.GetRoute(ctx, coords)
	if err != nil {
		uc.logger.Error("Routing failed", zap.Int("points", len(coords)), zap.Error(err))
		return nil, errors.ErrRoutingFailed.Wrap(err)
	}

	if len(route.Geometry) == 0 {
		uc.logger.Warn("Route has empty geometry")
	} else if !route.HasSteps() && route.DurationSeconds > 0 && uc.cfg.MaxPoints > 2 {
		uc.logger.Warn("Route has no step data, sampling start and end only",
			zap.Float64("duration_s", route.DurationSeconds))
	}

	points := planner.SelectPoints(route, uc.cfg.MaxPoints)
	departure := planner.DepartureTime(baseTime, route.DurationSeconds, req.TravelType)

	series, err := uc.fetchForecasts(ctx, points)
	if err != nil {
		return nil, err
	}

	weather := planner.Compact(planner.BuildWeatherPoints(points, series, departure))
	metrics.TimelinePoints.Observe(float64(len(weather)))

	resp = &dto.RouteWeatherResponse{
		Route:         summarize(route),
		Weather:       weather,
		Locations:     locations,
		DepartureTime: departure.UTC(),
		ArrivalTime:   planner.ArrivalTime(departure, route.DurationSeconds).UTC(),
	}

	uc.savePlan(ctx, req, baseTime, resp)

	uc.logger.Info("Route weather planned",
		zap.Int("addresses", len(addresses)),
		zap.Float64("distance_m", route.DistanceMeters),
		zap.Float64("duration_s", route.DurationSeconds),
		zap.Int("sample_points", len(points)),
		zap.Int("timeline_points", len(weather)))

	return resp, nil
}

// ParseBaseTime разбирает дату (YYYY-MM-DD) и время (HH:MM) в зоне timezone
// или в зоне по умолчанию
func (uc *RouteWeatherUseCase) ParseBaseTime(date, clock, timezone string) (time.Time, error) {
	loc := uc.cfg.DefaultLocation
	if timezone != "" {
		l, err := time.LoadLocation(timezone)
		if err != nil {
			return time.Time{}, errors.ErrInvalidDatetime.WithDetails(map[string]interface{}{
				"timezone": timezone,
			})
		}
		loc = l
	}

	t, err := time.ParseInLocation(dateTimeLayout, strings.TrimSpace(date)+" "+strings.TrimSpace(clock), loc)
	if err != nil {
		return time.Time{}, errors.ErrInvalidDatetime.WithDetails(map[string]interface{}{
			"travel_date": date,
			"travel_time": clock,
		})
	}
	return t, nil
}

// routeAddresses - старт, непустые промежуточные точки, финиш
func routeAddresses(req dto.RouteWeatherRequest) []string {
	addresses := make([]string, 0, len(req.Waypoints)+2)
	addresses = append(addresses, strings.TrimSpace(req.StartAddress))
	for _, w := range req.Waypoints {
		if w = strings.TrimSpace(w); w != "" {
			addresses = append(addresses, w)
		}
	}
	return append(addresses, strings.TrimSpace(req.EndAddress))
}

func (uc *RouteWeatherUseCase) geocodeAll(ctx context.Context, addresses []string) ([]domain.GeocodeResult, error) {
	results := make([]domain.GeocodeResult, len(addresses))

	g, gctx := errgroup.WithContext(ctx)
	for i, address := range addresses {
		g.Go(func() error {
			result, err := uc.geocode(gctx, address)
			if err != nil {
				return err
			}
			results[i] = *result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (uc *RouteWeatherUseCase) geocode(ctx context.Context, address string) (*domain.GeocodeResult, error) {
	cached, err := uc.cache.GetGeocode(ctx, address)
	if err != nil {
		uc.logger.Warn("Geocode cache read failed", zap.String("address", address), zap.Error(err))
	}
	metrics.CacheResult("geocode", cached != nil)
	if cached != nil {
		cached.Query = address
		return cached, nil
	}

	result, err := uc.geocoder.Geocode(ctx, address)
	if err != nil {
		details := map[string]interface{}{"address": address}
		if stderrors.Is(err, domain.ErrAddressNotFound) {
			return nil, errors.ErrGeocodeNotFound.
				WithMessage(fmt.Sprintf("Could not find coordinates for address: %s", address)).
				WithDetails(details)
		}
		uc.logger.Error("Geocoding failed", zap.String("address", address), zap.Error(err))
		return nil, errors.ErrGeocodingFailed.WithDetails(details).Wrap(err)
	}

	if err := uc.cache.SetGeocode(ctx, address, result, uc.cfg.GeocodeTTL); err != nil {
		uc.logger.Warn("Geocode cache write failed", zap.String("address", address), zap.Error(err))
	}
	return result, nil
}

func (uc *RouteWeatherUseCase) fetchForecasts(ctx context.Context, points []domain.SamplePoint) ([][]domain.ForecastEntry, error) {
	series := make([][]domain.ForecastEntry, len(points))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range points {
		g.Go(func() error {
			s, err := uc.forecast(gctx, p.Coordinate)
			if err != nil {
				uc.logger.Error("Weather fetch failed",
					zap.Int("point", i),
					zap.Float64("lat", p.Lat),
					zap.Float64("lon", p.Lon),
					zap.Error(err))
				return errors.ErrWeatherFailed.WithDetails(map[string]interface{}{
					"point": i,
					"lat":   p.Lat,
					"lon":   p.Lon,
				}).Wrap(err)
			}
			series[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return series, nil
}

func (uc *RouteWeatherUseCase) forecast(ctx context.Context, coord domain.Coordinate) ([]domain.ForecastEntry, error) {
	cached, err := uc.cache.GetForecast(ctx, coord)
	if err != nil {
		uc.logger.Warn("Forecast cache read failed", zap.Error(err))
	}
	metrics.CacheResult("forecast", cached != nil)
	if cached != nil {
		return cached, nil
	}

	series, err := uc.weather.GetForecast(ctx, coord)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.SetForecast(ctx, coord, series, uc.cfg.ForecastTTL); err != nil {
		uc.logger.Warn("Forecast cache write failed", zap.Error(err))
	}
	return series, nil
}

func (uc *RouteWeatherUseCase) savePlan(ctx context.Context, req dto.RouteWeatherRequest, baseTime time.Time, resp *dto.RouteWeatherResponse) {
	if uc.plans == nil {
		return
	}

	plan := &domain.RoutePlan{
		StartAddress:    strings.TrimSpace(req.StartAddress),
		Waypoints:       routeAddresses(req)[1 : len(resp.Locations)-1],
		EndAddress:      strings.TrimSpace(req.EndAddress),
		TravelType:      req.TravelType,
		BaseTime:        baseTime.UTC(),
		DepartureTime:   resp.DepartureTime,
		ArrivalTime:     resp.ArrivalTime,
		DistanceMeters:  resp.Route.Distance,
		DurationSeconds: resp.Route.Duration,
		Weather:         resp.Weather,
	}

	if err := uc.plans.Save(ctx, plan); err != nil {
		uc.logger.Warn("Failed to save route plan", zap.Error(err))
		return
	}
	resp.PlanID = &plan.ID
}

// summarize - геометрия в GeoJSON и Google encoded polyline (порядок lat,lon)
func summarize(route *domain.Route) dto.RouteSummaryDTO {
	line := make(orb.LineString, 0, len(route.Geometry))
	coords := make([][]float64, 0, len(route.Geometry))
	for _, c := range route.Geometry {
		line = append(line, orb.Point{c.Lon, c.Lat})
		coords = append(coords, []float64{c.Lat, c.Lon})
	}

	return dto.RouteSummaryDTO{
		Distance:        route.DistanceMeters,
		Duration:        route.DurationSeconds,
		Geometry:        geojson.NewGeometry(line),
		EncodedPolyline: string(polyline.EncodeCoords(coords)),
		BBox:            route.BBox,
	}
}

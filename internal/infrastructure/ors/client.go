package ors

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/route-weather-service/internal/config"
	"github.com/route-weather-service/internal/domain"
	"github.com/route-weather-service/internal/infrastructure/httpclient"
	"github.com/route-weather-service/internal/pkg/utils"
)

// Client - клиент OpenRouteService: геокодирование, автодополнение, маршруты
type Client struct {
	http    *httpclient.Client
	baseURL string
	apiKey  string
	profile string
	logger  *zap.Logger
}

// NewClient создает новый клиент для OpenRouteService API
func NewClient(cfg *config.ORSConfig, logger *zap.Logger) *Client {
	profile := cfg.Profile
	if profile == "" {
		profile = "driving-car"
	}
	return &Client{
		http:    httpclient.New("ors", cfg.RequestTimeout, logger),
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		profile: profile,
		logger:  logger,
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body []byte) (*http.Request, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json, application/geo+json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// Geocode возвращает лучшее совпадение для адреса (/geocode/search, size=1)
func (c *Client) Geocode(ctx context.Context, address string) (*domain.GeocodeResult, error) {
	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("text", address)
	query.Set("size", "1")

	req, err := c.newRequest(ctx, http.MethodGet, "/geocode/search", query, nil)
	if err != nil {
		return nil, err
	}

	body, err := c.http.Do(req, "geocode")
	if err != nil {
		return nil, fmt.Errorf("ors geocode: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}

	for _, f := range fc.Features {
		point, ok := f.Geometry.(orb.Point)
		if !ok || !utils.ValidateCoordinates(point.Lat(), point.Lon()) {
			continue
		}
		return &domain.GeocodeResult{
			Query:      address,
			Label:      f.Properties.MustString("label", ""),
			Coordinate: domain.Coordinate{Lat: point.Lat(), Lon: point.Lon()},
		}, nil
	}

	c.logger.Debug("No geocode results", zap.String("address", address))
	return nil, domain.ErrAddressNotFound
}

// Autocomplete возвращает подсказки адресов (/geocode/autocomplete).
// focus смещает выдачу к точке пользователя.
func (c *Client) Autocomplete(ctx context.Context, text string, focus *domain.Coordinate) ([]domain.Suggestion, error) {
	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("text", text)
	if focus != nil {
		query.Set("focus.point.lon", strconv.FormatFloat(focus.Lon, 'f', 4, 64))
		query.Set("focus.point.lat", strconv.FormatFloat(focus.Lat, 'f', 4, 64))
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/geocode/autocomplete", query, nil)
	if err != nil {
		return nil, err
	}

	body, err := c.http.Do(req, "autocomplete")
	if err != nil {
		return nil, fmt.Errorf("ors autocomplete: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, fmt.Errorf("decode autocomplete response: %w", err)
	}

	suggestions := make([]domain.Suggestion, 0, len(fc.Features))
	for _, f := range fc.Features {
		point, ok := f.Geometry.(orb.Point)
		if !ok {
			continue
		}
		suggestions = append(suggestions, domain.Suggestion{
			Label:       f.Properties.MustString("label", ""),
			Coordinates: [2]float64{point.Lon(), point.Lat()},
		})
	}
	return suggestions, nil
}

type directionsRequest struct {
	Coordinates [][2]float64 `json:"coordinates"`
}

type routeProperties struct {
	Summary *struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"summary"`
	Segments []domain.RouteSegment `json:"segments"`
}

// GetRoute строит автомобильный маршрут через точки по порядку
// (POST /v2/directions/{profile}/geojson)
func (c *Client) GetRoute(ctx context.Context, coordinates []domain.Coordinate) (*domain.Route, error) {
	if len(coordinates) < 2 {
		return nil, fmt.Errorf("at least 2 coordinates required, got %d", len(coordinates))
	}

	payload := directionsRequest{Coordinates: make([][2]float64, 0, len(coordinates))}
	for _, coord := range coordinates {
		payload.Coordinates = append(payload.Coordinates, [2]float64{coord.Lon, coord.Lat})
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal directions request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/v2/directions/"+c.profile+"/geojson", nil, body)
	if err != nil {
		return nil, err
	}

	respBody, err := c.http.Do(req, "directions")
	if err != nil {
		return nil, fmt.Errorf("ors directions: %w", err)
	}

	route, err := decodeRoute(respBody)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Route received",
		zap.Float64("distance_m", route.DistanceMeters),
		zap.Float64("duration_s", route.DurationSeconds),
		zap.Int("geometry_points", len(route.Geometry)),
		zap.Int("segments", len(route.Segments)))

	return route, nil
}

func decodeRoute(body []byte) (*domain.Route, error) {
	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}
	if len(fc.Features) == 0 {
		return nil, domain.ErrInvalidRoute
	}

	feature := fc.Features[0]
	line, ok := feature.Geometry.(orb.LineString)
	if !ok {
		return nil, fmt.Errorf("%w: geometry is %T", domain.ErrInvalidRoute, feature.Geometry)
	}

	raw, err := json.Marshal(feature.Properties)
	if err != nil {
		return nil, fmt.Errorf("encode route properties: %w", err)
	}
	var props routeProperties
	if err := json.Unmarshal(raw, &props); err != nil {
		return nil, fmt.Errorf("decode route properties: %w", err)
	}
	if props.Summary == nil {
		return nil, fmt.Errorf("%w: missing summary", domain.ErrInvalidRoute)
	}

	geometry := make([]domain.Coordinate, 0, len(line))
	for _, p := range line {
		geometry = append(geometry, domain.Coordinate{Lat: p.Lat(), Lon: p.Lon()})
	}

	return &domain.Route{
		DistanceMeters:  props.Summary.Distance,
		DurationSeconds: props.Summary.Duration,
		Geometry:        geometry,
		Segments:        props.Segments,
		BBox:            routeBBox(fc.BBox, line),
	}, nil
}

// routeBBox - [minLon, minLat, maxLon, maxLat]; если провайдер не прислал bbox,
// он считается по геометрии
func routeBBox(provided geojson.BBox, line orb.LineString) []float64 {
	if provided.Valid() {
		b := provided.Bound()
		return []float64{b.Min.Lon(), b.Min.Lat(), b.Max.Lon(), b.Max.Lat()}
	}
	if len(line) == 0 {
		return nil
	}
	b := line.Bound()
	return []float64{b.Min.Lon(), b.Min.Lat(), b.Max.Lon(), b.Max.Lat()}
}

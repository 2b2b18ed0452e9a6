package metno

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/route-weather-service/internal/config"
	"github.com/route-weather-service/internal/domain"
	"github.com/route-weather-service/internal/infrastructure/httpclient"
)

const forecastPath = "/weatherapi/locationforecast/2.0/compact"

// Client - клиент MET Norway Locationforecast 2.0.
// API требует идентифицирующий User-Agent, без него отвечает 403.
type Client struct {
	http      *httpclient.Client
	baseURL   string
	userAgent string
	logger    *zap.Logger
}

func NewClient(cfg *config.MetNoConfig, logger *zap.Logger) *Client {
	return &Client{
		http:      httpclient.New("metno", cfg.RequestTimeout, logger),
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

type forecastResponse struct {
	Properties *struct {
		Timeseries []timeStep `json:"timeseries"`
	} `json:"properties"`
}

type timeStep struct {
	Time time.Time `json:"time"`
	Data struct {
		Instant struct {
			Details *struct {
				AirTemperature    *float64 `json:"air_temperature"`
				WindSpeed         *float64 `json:"wind_speed"`
				WindFromDirection *float64 `json:"wind_from_direction"`
			} `json:"details"`
		} `json:"instant"`
		Next1Hours  *period `json:"next_1_hours"`
		Next6Hours  *period `json:"next_6_hours"`
		Next12Hours *period `json:"next_12_hours"`
	} `json:"data"`
}

type period struct {
	Summary *struct {
		SymbolCode string `json:"symbol_code"`
	} `json:"summary"`
}

func (p *period) symbol() *string {
	if p == nil || p.Summary == nil || p.Summary.SymbolCode == "" {
		return nil
	}
	s := p.Summary.SymbolCode
	return &s
}

// GetForecast возвращает временной ряд прогноза для точки.
// Координаты округляются до 4 знаков, как требует API.
func (c *Client) GetForecast(ctx context.Context, coord domain.Coordinate) ([]domain.ForecastEntry, error) {
	endpoint := fmt.Sprintf("%s%s?lat=%.4f&lon=%.4f", c.baseURL, forecastPath, coord.Lat, coord.Lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	body, err := c.http.Do(req, "forecast")
	if err != nil {
		return nil, fmt.Errorf("met.no forecast: %w", err)
	}

	var resp forecastResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode forecast response: %w", err)
	}
	if resp.Properties == nil {
		return nil, fmt.Errorf("forecast response has no properties")
	}

	series := make([]domain.ForecastEntry, 0, len(resp.Properties.Timeseries))
	for _, step := range resp.Properties.Timeseries {
		series = append(series, toEntry(step))
	}

	c.logger.Debug("Forecast received",
		zap.Float64("lat", coord.Lat),
		zap.Float64("lon", coord.Lon),
		zap.Int("steps", len(series)))

	return series, nil
}

// toEntry берёт символ из самого короткого доступного горизонта
func toEntry(step timeStep) domain.ForecastEntry {
	entry := domain.ForecastEntry{Time: step.Time.UTC()}

	if d := step.Data.Instant.Details; d != nil {
		entry.Temperature = d.AirTemperature
		entry.WindSpeed = d.WindSpeed
		entry.WindDirection = d.WindFromDirection
	}

	for _, p := range []*period{step.Data.Next1Hours, step.Data.Next6Hours, step.Data.Next12Hours} {
		if s := p.symbol(); s != nil {
			entry.SymbolCode = s
			break
		}
	}
	return entry
}

package http_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/route-weather-service/internal/config"
	delivery "github.com/route-weather-service/internal/delivery/http"
	"github.com/route-weather-service/internal/delivery/http/handler"
	"github.com/route-weather-service/internal/domain"
	"github.com/route-weather-service/internal/pkg/errors"
	"github.com/route-weather-service/internal/usecase/dto"
)

type mockPlanner struct{ mock.Mock }

func (m *mockPlanner) Plan(ctx context.Context, req dto.RouteWeatherRequest) (*dto.RouteWeatherResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RouteWeatherResponse), args.Error(1)
}

type mockSuggester struct{ mock.Mock }

func (m *mockSuggester) Suggest(ctx context.Context, query, clientIP string) ([]domain.Suggestion, error) {
	args := m.Called(ctx, query, clientIP)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Suggestion), args.Error(1)
}

type mockHistory struct{ mock.Mock }

func (m *mockHistory) GetPlan(ctx context.Context, id string) (*domain.RoutePlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoutePlan), args.Error(1)
}

func (m *mockHistory) ListPlans(ctx context.Context, limit int) ([]*domain.RoutePlan, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RoutePlan), args.Error(1)
}

type healthFunc func(ctx context.Context) error

func (f healthFunc) Health(ctx context.Context) error { return f(ctx) }

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  map[string]any  `json:"meta"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

type testServer struct {
	server    *delivery.Server
	planner   *mockPlanner
	suggester *mockSuggester
	history   *mockHistory
}

func newTestServer(t *testing.T, checks map[string]handler.HealthChecker) *testServer {
	t.Helper()
	logger := zap.NewNop()
	cfg := &config.Config{Server: config.ServerConfig{Env: "production", AllowedOrigins: "*"}}

	ts := &testServer{
		planner:   &mockPlanner{},
		suggester: &mockSuggester{},
		history:   &mockHistory{},
	}
	ts.server = delivery.NewServer(cfg, logger, delivery.Handlers{
		RouteWeather: handler.NewRouteWeatherHandler(ts.planner, logger),
		Autocomplete: handler.NewAutocompleteHandler(ts.suggester, logger),
		Plans:        handler.NewPlanHandler(ts.history, logger),
		System:       handler.NewSystemHandler(checks, logger),
	})
	return ts
}

func (ts *testServer) do(t *testing.T, req *http.Request) (*http.Response, envelope) {
	t.Helper()
	resp, err := ts.server.App().Test(req, -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env), string(body))
	return resp, env
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

const validBody = `{
	"start_address": "Oslo",
	"end_address": "Bergen",
	"travel_date": "2026-10-19",
	"travel_time": "08:30",
	"travel_type": "departure"
}`

func TestRouteWeather_Success(t *testing.T) {
	ts := newTestServer(t, nil)
	temp := 4.5

	ts.planner.On("Plan", mock.Anything, mock.MatchedBy(func(r dto.RouteWeatherRequest) bool {
		return r.StartAddress == "Oslo" && r.TravelType == domain.TravelTypeDeparture
	})).Return(&dto.RouteWeatherResponse{
		Route: dto.RouteSummaryDTO{Distance: 463000, Duration: 25200},
		Weather: []domain.WeatherPoint{
			{Lat: 59.91, Lon: 10.75, Time: 1792391400000, Temperature: &temp, Source: domain.PointRoleStart},
		},
		DepartureTime: time.Date(2026, 10, 19, 6, 30, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2026, 10, 19, 13, 30, 0, 0, time.UTC),
	}, nil).Once()

	resp, env := ts.do(t, postJSON("/api/v1/route-weather", validBody))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Nil(t, env.Error)

	var data dto.RouteWeatherResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 463000.0, data.Route.Distance)
	require.Len(t, data.Weather, 1)
	assert.Equal(t, domain.PointRoleStart, data.Weather[0].Source)
	assert.Equal(t, float64(1), env.Meta["total"])

	ts.planner.AssertExpectations(t)
}

func TestRouteWeather_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing start", `{"end_address":"Bergen","travel_date":"2026-10-19","travel_time":"08:30","travel_type":"departure"}`, "start_address"},
		{"bad date format", `{"start_address":"Oslo","end_address":"Bergen","travel_date":"19.10.2026","travel_time":"08:30","travel_type":"departure"}`, "travel_date"},
		{"bad clock", `{"start_address":"Oslo","end_address":"Bergen","travel_date":"2026-10-19","travel_time":"8.30","travel_type":"departure"}`, "travel_time"},
		{"unknown travel type", `{"start_address":"Oslo","end_address":"Bergen","travel_date":"2026-10-19","travel_time":"08:30","travel_type":"teleport"}`, "travel_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, nil)

			resp, env := ts.do(t, postJSON("/api/v1/route-weather", tt.body))

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			require.NotNil(t, env.Error)
			assert.Equal(t, errors.CodeInvalidRequest, env.Error.Code)
			fields, ok := env.Error.Details["fields"].(map[string]any)
			require.True(t, ok)
			assert.Contains(t, fields, tt.field)

			ts.planner.AssertNotCalled(t, "Plan", mock.Anything, mock.Anything)
		})
	}
}

func TestRouteWeather_InvalidJSON(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, env := ts.do(t, postJSON("/api/v1/route-weather", `{"start_address":`))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, errors.CodeInvalidRequest, env.Error.Code)
}

func TestRouteWeather_LocalizedError(t *testing.T) {
	t.Run("query parameter", func(t *testing.T) {
		ts := newTestServer(t, nil)

		resp, env := ts.do(t, postJSON("/api/v1/route-weather?locale=no", `{}`))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "no", resp.Header.Get("Content-Language"))
		assert.Equal(t, errors.CodeInvalidRequest, env.Error.Code)
		assert.Equal(t, "Ugyldige forespørselsparametere", env.Error.Message)
	})

	t.Run("accept-language header", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.planner.On("Plan", mock.Anything, mock.Anything).
			Return(nil, errors.ErrGeocodeNotFound.WithDetails(map[string]interface{}{"address": "Atlantis"}))

		req := postJSON("/api/v1/route-weather", validBody)
		req.Header.Set("Accept-Language", "es-ES,es;q=0.9")
		resp, env := ts.do(t, req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, errors.CodeGeocodeNotFound, env.Error.Code)
		assert.Equal(t, "No se encontraron coordenadas para la dirección", env.Error.Message)
		assert.Equal(t, "Atlantis", env.Error.Details["address"])
	})
}

func TestRouteWeather_UpstreamError(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.planner.On("Plan", mock.Anything, mock.Anything).
		Return(nil, errors.ErrWeatherFailed.Wrap(stderrors.New("503 from upstream")))

	resp, env := ts.do(t, postJSON("/api/v1/route-weather", validBody))

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, errors.CodeWeatherFailed, env.Error.Code)
	assert.Equal(t, "Weather service failed", env.Error.Message)
}

func TestAutocomplete(t *testing.T) {
	ts := newTestServer(t, nil)
	suggestions := []domain.Suggestion{{Label: "Bergen, Norway", Coordinates: [2]float64{5.32, 60.39}}}
	ts.suggester.On("Suggest", mock.Anything, "Berg", mock.Anything).Return(suggestions, nil).Once()

	resp, env := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/autocomplete?q=Berg", nil))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var data dto.AutocompleteResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, suggestions, data.Suggestions)
	ts.suggester.AssertExpectations(t)
}

func TestPlans(t *testing.T) {
	t.Run("get not found", func(t *testing.T) {
		ts := newTestServer(t, nil)
		id := uuid.NewString()
		ts.history.On("GetPlan", mock.Anything, id).Return(nil, errors.ErrPlanNotFound)

		resp, env := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/plans/"+id, nil))

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, errors.CodePlanNotFound, env.Error.Code)
	})

	t.Run("list passes limit", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.history.On("ListPlans", mock.Anything, 3).Return([]*domain.RoutePlan{{ID: uuid.New()}}, nil).Once()

		resp, env := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/plans?limit=3", nil))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var data dto.PlanListResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Len(t, data.Plans, 1)
		ts.history.AssertExpectations(t)
	})

	t.Run("history disabled", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.history.On("ListPlans", mock.Anything, 0).Return(nil, errors.ErrHistoryDisabled)

		resp, env := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/plans", nil))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, errors.CodeHistoryDisabled, env.Error.Code)
	})
}

func TestLocales(t *testing.T) {
	ts := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/locales", nil)
	req.Header.Set("Accept-Language", "nb-NO")
	_, env := ts.do(t, req)

	var data dto.LocalesResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, []string{"en", "no", "es"}, data.Locales)
	assert.Equal(t, "en", data.Default)
	assert.Equal(t, "no", data.Current)
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		ts := newTestServer(t, map[string]handler.HealthChecker{
			"redis": healthFunc(func(context.Context) error { return nil }),
		})

		resp, err := ts.server.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()

		var health dto.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "healthy", health.Status)
	})

	t.Run("degraded", func(t *testing.T) {
		ts := newTestServer(t, map[string]handler.HealthChecker{
			"redis":    healthFunc(func(context.Context) error { return nil }),
			"postgres": healthFunc(func(context.Context) error { return stderrors.New("down") }),
		})

		resp, err := ts.server.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil), -1)
		require.NoError(t, err)
		defer resp.Body.Close()

		var health dto.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "degraded", health.Status)
		assert.Equal(t, "unhealthy", health.Services["postgres"])
	})
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, env := ts.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, errors.CodeNotFound, env.Error.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, nil)

	resp, err := ts.server.App().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "routeweather_")
}

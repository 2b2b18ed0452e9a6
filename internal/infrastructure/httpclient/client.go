// Package httpclient - общий HTTP-клиент для внешних API: таймаут,
// circuit breaker, метрики и логирование. Повторов нет: ошибка сразу
// возвращается вызывающему.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/route-weather-service/internal/pkg/metrics"
)

const maxBodyBytes = 16 << 20

var ErrCircuitOpen = errors.New("circuit breaker open")

// StatusError - ответ внешнего API с кодом вне 2xx
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

// Client выполняет запросы к одному провайдеру через общий breaker
type Client struct {
	provider   string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	logger     *zap.Logger
}

func New(provider string, timeout time.Duration, logger *zap.Logger) *Client {
	logger = logger.With(zap.String("provider", provider))

	settings := gobreaker.Settings{
		Name:        provider,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
		IsSuccessful: isSuccessful,
	}

	return &Client{
		provider:   provider,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    gobreaker.NewCircuitBreaker(settings),
		logger:     logger,
	}
}

// isSuccessful - для breaker сбоем считаются только сетевые ошибки, 429 и 5xx.
// 4xx и отмена запроса клиентом провайдера не характеризуют.
func isSuccessful(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code < 500 && se.Code != http.StatusTooManyRequests
	}
	return false
}

// Do выполняет запрос и возвращает тело ответа. operation - метка для метрик.
func (c *Client) Do(req *http.Request, operation string) (body []byte, err error) {
	defer metrics.ObserveUpstream(c.provider, operation, time.Now(), &err)

	c.logger.Debug("Calling upstream API",
		zap.String("operation", operation),
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path))

	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return nil, fmt.Errorf("read body: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &StatusError{
				Code: resp.StatusCode,
				Body: strings.TrimSpace(string(data)),
			}
		}
		return data, nil
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = fmt.Errorf("%s: %w", c.provider, ErrCircuitOpen)
		}
		c.logger.Error("Upstream API call failed",
			zap.String("operation", operation),
			zap.Error(err))
		return nil, err
	}

	return result.([]byte), nil
}

// State - текущее состояние breaker (для health)
func (c *Client) State() string {
	return c.breaker.State().String()
}

package geoip

import (
	"fmt"
	"net"

	"github.com/oschwald/geoip2-golang"
	"go.uber.org/zap"

	"github.com/route-weather-service/internal/domain"
)

// Locator определяет примерные координаты клиента по IP через базу
// MaxMind GeoLite2/GeoIP2 City. Без базы всегда возвращает (nil, nil).
type Locator struct {
	reader *geoip2.Reader
	logger *zap.Logger
}

// NewLocator открывает базу по пути. Пустой путь - локатор выключен.
func NewLocator(path string, logger *zap.Logger) (*Locator, error) {
	if path == "" {
		logger.Info("GeoIP database not configured, autocomplete focus disabled")
		return &Locator{logger: logger}, nil
	}

	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open geoip database: %w", err)
	}

	logger.Info("GeoIP database loaded",
		zap.String("path", path),
		zap.String("type", reader.Metadata().DatabaseType))

	return &Locator{reader: reader, logger: logger}, nil
}

// Locate возвращает координаты для IP. Приватные, невалидные и неизвестные
// адреса дают (nil, nil).
func (l *Locator) Locate(ip string) (*domain.Coordinate, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() {
		return nil, nil
	}
	if l.reader == nil {
		return nil, nil
	}

	city, err := l.reader.City(parsed)
	if err != nil {
		return nil, fmt.Errorf("geoip lookup: %w", err)
	}
	if city.Location.Latitude == 0 && city.Location.Longitude == 0 {
		return nil, nil
	}

	return &domain.Coordinate{Lat: city.Location.Latitude, Lon: city.Location.Longitude}, nil
}

func (l *Locator) Close() error {
	if l.reader == nil {
		return nil
	}
	return l.reader.Close()
}

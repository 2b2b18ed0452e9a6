package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	ORS      ORSConfig
	MetNo    MetNoConfig
	Planner  PlannerConfig
	GeoIP    GeoIPConfig
	Worker   WorkerConfig
	History  HistoryConfig
}

type ServerConfig struct {
	Host           string
	Port           int
	Env            string
	AllowedOrigins string
}

type DatabaseConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	ForecastTTL     time.Duration
	GeocodeTTL      time.Duration
	AutocompleteTTL time.Duration
}

type LogConfig struct {
	Level string
}

// ORSConfig - настройки клиента OpenRouteService
type ORSConfig struct {
	BaseURL        string
	APIKey         string
	Profile        string
	RequestTimeout time.Duration
}

// MetNoConfig - настройки клиента MET Norway. UserAgent обязателен по условиям API.
type MetNoConfig struct {
	BaseURL        string
	UserAgent      string
	RequestTimeout time.Duration
}

type PlannerConfig struct {
	MaxPoints       int
	DefaultTimezone string
}

type GeoIPConfig struct {
	DatabasePath string
}

type WorkerConfig struct {
	Enabled         bool
	ConsumerGroup   string
	ShutdownTimeout time.Duration
}

type HistoryConfig struct {
	Retention       time.Duration
	CleanupInterval time.Duration
	ListLimit       int
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// .env необязателен: в контейнере всё приходит из окружения
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("DB_ENABLED", true)
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 3600)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 600)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)

	v.SetDefault("FORECAST_CACHE_TTL", 600)
	v.SetDefault("GEOCODE_CACHE_TTL", 86400)
	v.SetDefault("AUTOCOMPLETE_CACHE_TTL", 3600)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("ORS_BASE_URL", "https://api.openrouteservice.org")
	v.SetDefault("ORS_PROFILE", "driving-car")
	v.SetDefault("ORS_TIMEOUT", 10000)

	v.SetDefault("METNO_BASE_URL", "https://api.met.no")
	v.SetDefault("METNO_USER_AGENT", "route-weather-service/1.0 github.com/route-weather-service")
	v.SetDefault("METNO_TIMEOUT", 10000)

	v.SetDefault("PLANNER_MAX_POINTS", 5)
	v.SetDefault("PLANNER_DEFAULT_TIMEZONE", "Europe/Oslo")

	v.SetDefault("WORKER_ENABLED", true)
	v.SetDefault("WORKER_CONSUMER_GROUP", "route-plan-workers")
	v.SetDefault("WORKER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("HISTORY_RETENTION", "720h")
	v.SetDefault("HISTORY_CLEANUP_INTERVAL", "1h")
	v.SetDefault("HISTORY_LIST_LIMIT", 20)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Host:           v.GetString("API_HOST"),
			Port:           v.GetInt("API_PORT"),
			Env:            v.GetString("API_ENV"),
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
		Database: DatabaseConfig{
			Enabled:         v.GetBool("DB_ENABLED"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			ForecastTTL:     time.Duration(v.GetInt("FORECAST_CACHE_TTL")) * time.Second,
			GeocodeTTL:      time.Duration(v.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
			AutocompleteTTL: time.Duration(v.GetInt("AUTOCOMPLETE_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		ORS: ORSConfig{
			BaseURL:        strings.TrimRight(v.GetString("ORS_BASE_URL"), "/"),
			APIKey:         v.GetString("ORS_API_KEY"),
			Profile:        v.GetString("ORS_PROFILE"),
			RequestTimeout: time.Duration(v.GetInt("ORS_TIMEOUT")) * time.Millisecond,
		},
		MetNo: MetNoConfig{
			BaseURL:        strings.TrimRight(v.GetString("METNO_BASE_URL"), "/"),
			UserAgent:      v.GetString("METNO_USER_AGENT"),
			RequestTimeout: time.Duration(v.GetInt("METNO_TIMEOUT")) * time.Millisecond,
		},
		Planner: PlannerConfig{
			MaxPoints:       v.GetInt("PLANNER_MAX_POINTS"),
			DefaultTimezone: v.GetString("PLANNER_DEFAULT_TIMEZONE"),
		},
		GeoIP: GeoIPConfig{
			DatabasePath: v.GetString("GEOIP_DB_PATH"),
		},
		Worker: WorkerConfig{
			Enabled:         v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:   v.GetString("WORKER_CONSUMER_GROUP"),
			ShutdownTimeout: time.Duration(v.GetInt("WORKER_SHUTDOWN_TIMEOUT")) * time.Second,
		},
		History: HistoryConfig{
			Retention:       v.GetDuration("HISTORY_RETENTION"),
			CleanupInterval: v.GetDuration("HISTORY_CLEANUP_INTERVAL"),
			ListLimit:       v.GetInt("HISTORY_LIST_LIMIT"),
		},
	}
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// IsProduction - боевое окружение (JSON-логи, без swagger)
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

package errors

import "net/http"

const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidDatetime  = "INVALID_DATETIME"
	CodeGeocodeNotFound  = "GEOCODE_NOT_FOUND"
	CodeGeocodingFailed  = "GEOCODING_FAILED"
	CodeRoutingFailed    = "ROUTING_FAILED"
	CodeWeatherFailed    = "WEATHER_FAILED"
	CodePlanNotFound     = "PLAN_NOT_FOUND"
	CodeHistoryDisabled  = "HISTORY_DISABLED"
	CodeDatabaseError    = "DATABASE_ERROR"
	CodeInternalServer   = "INTERNAL_SERVER_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidPlanID    = "INVALID_PLAN_ID"
	CodeAutocompleteFail = "AUTOCOMPLETE_FAILED"
)

var (
	ErrInvalidRequest = New(
		CodeInvalidRequest,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidDatetime = New(
		CodeInvalidDatetime,
		"Invalid travel date or time",
		http.StatusBadRequest,
	)

	// ErrGeocodeNotFound - адрес не найден; в Details кладётся address
	ErrGeocodeNotFound = New(
		CodeGeocodeNotFound,
		"Could not find coordinates for address",
		http.StatusBadRequest,
	)

	ErrGeocodingFailed = New(
		CodeGeocodingFailed,
		"Geocoding service failed",
		http.StatusBadGateway,
	)

	ErrRoutingFailed = New(
		CodeRoutingFailed,
		"Routing service failed",
		http.StatusBadGateway,
	)

	ErrWeatherFailed = New(
		CodeWeatherFailed,
		"Weather service failed",
		http.StatusBadGateway,
	)

	ErrAutocompleteFailed = New(
		CodeAutocompleteFail,
		"Autocomplete service failed",
		http.StatusBadGateway,
	)

	ErrPlanNotFound = New(
		CodePlanNotFound,
		"Route plan not found",
		http.StatusNotFound,
	)

	ErrInvalidPlanID = New(
		CodeInvalidPlanID,
		"Invalid route plan ID",
		http.StatusBadRequest,
	)

	ErrHistoryDisabled = New(
		CodeHistoryDisabled,
		"Plan history is disabled",
		http.StatusServiceUnavailable,
	)

	ErrDatabaseError = New(
		CodeDatabaseError,
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternalServer = New(
		CodeInternalServer,
		"Internal server error",
		http.StatusInternalServerError,
	)
)

package domain

import "errors"

var (
	// ErrAddressNotFound - геокодер не нашёл ни одного совпадения
	ErrAddressNotFound = errors.New("address not found")

	// ErrInvalidRoute - в ответе маршрутизатора нет геометрии или сводки
	ErrInvalidRoute = errors.New("invalid route data")

	ErrPlanNotFound = errors.New("route plan not found")
)

package propertyservice

import "errors"

var (
	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("propertyservice client: hotel not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("propertyservice client: booking not found")

	// ErrConflict возвращается на HTTP 409: нет свободных комнат под запрошенный
	// слот либо окно уже в запрошенном состоянии. Ответ бэкенда авторитетен,
	// автоматических повторов не делается
	ErrConflict = errors.New("propertyservice client: conflict")

	// ErrUnauthorized возвращается на HTTP 401/403 (токен отозван или невалиден)
	ErrUnauthorized = errors.New("propertyservice client: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("propertyservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("propertyservice client: invalid response")
)

package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("bookings: hotel not found")

	// ErrNoRoomsAvailable возвращается, когда под запрошенный слот нет свободных
	// комнат (HTTP 409 от PropertyService). Ответ бэкенда авторитетен,
	// автоматических повторов не делается
	ErrNoRoomsAvailable = errors.New("bookings: no rooms available")

	// ErrConflict возвращается, когда действие конфликтует с текущим статусом
	// бронирования на стороне бэкенда
	ErrConflict = errors.New("bookings: action conflict")

	// ErrRoomNotSelected возвращается при заселении без выбранной комнаты
	ErrRoomNotSelected = errors.New("bookings: room must be selected for check-in")

	// ErrInvalidAction возвращается при неизвестном действии
	ErrInvalidAction = errors.New("bookings: invalid action")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)

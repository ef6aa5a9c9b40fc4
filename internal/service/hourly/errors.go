package hourly

import "errors"

var (
	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("hourly: hotel not found")

	// ErrHourlyNotEnabled возвращается, когда у отеля нет возможности почасового режима
	ErrHourlyNotEnabled = errors.New("hourly: hotel is not enabled for hourly bookings")

	// ErrInvalidMode возвращается при неизвестном режиме открытия окна
	ErrInvalidMode = errors.New("hourly: invalid mode")

	// ErrTimeRangeRequired возвращается, когда для CUSTOM режима не задан диапазон
	// Валидация выполняется локально, до какого-либо сетевого вызова
	ErrTimeRangeRequired = errors.New("hourly: time range is required for custom mode")

	// ErrInvalidTimeRange возвращается при неупорядоченных границах диапазона
	ErrInvalidTimeRange = errors.New("hourly: invalid time range")

	// ErrAlreadyActive возвращается при попытке открыть окно, которое уже активно.
	// Start при активном окне считается недопустимым переходом, а не обновлением границ
	ErrAlreadyActive = errors.New("hourly: window already active")

	// ErrConflict возвращается, когда PropertyService отклонил операцию конфликтом
	ErrConflict = errors.New("hourly: operation conflict")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("hourly: internal error")
)

package domain

import "time"

// Default configuration values
const (
	// DefaultPollInterval интервал опроса снимка слотов
	DefaultPollInterval = 10 * time.Second

	// DefaultReferenceTTL время жизни кэша справочных данных (категории, комнаты)
	DefaultReferenceTTL = 5 * time.Minute
)

// Business validation constants
const (
	MinHourlyDurationHours = 1
	MaxHourlyDurationHours = 24
	MaxGuestNameLength     = 200
)

// Timeline rendering constants
const (
	// MinBlockWeight минимальный вес блока таймлайна: слишком короткие сегменты
	// растягиваются до него, чтобы оставаться видимыми и кликабельными
	MinBlockWeight = 3

	// PlaceholderLabel подпись для комнаты без данных о занятости
	PlaceholderLabel = "No Availability Data"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// GuestUUIDWalkIn UUID, под которым создаются walk-in бронирования без аккаунта
const GuestUUIDWalkIn = "00000000-0000-0000-0000-000000000000"

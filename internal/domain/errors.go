package domain

import "errors"

var (
	// ErrWindowBoundsMissing возвращается, когда у активного окна отсутствуют границы
	ErrWindowBoundsMissing = errors.New("domain: window bounds missing")

	// ErrWindowBoundsPresent возвращается, когда у неактивного окна заданы границы
	ErrWindowBoundsPresent = errors.New("domain: inactive window must not have bounds")

	// ErrInvalidWindowBounds возвращается, когда start >= end
	ErrInvalidWindowBounds = errors.New("domain: window start must be before end")

	// ErrInvalidWindowStatus возвращается при неизвестном статусе окна
	ErrInvalidWindowStatus = errors.New("domain: invalid window status")
)

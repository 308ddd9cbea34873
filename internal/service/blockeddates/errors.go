package blockeddates

import "errors"

var (
	// ErrMissingRange возвращается, когда не указана одна из границ диапазона
	ErrMissingRange = errors.New("blockeddates.service: both range bounds are required")

	// ErrInvalidRange возвращается, когда начало диапазона позже конца
	ErrInvalidRange = errors.New("blockeddates.service: range start is after range end")

	// ErrBlockedDateNotFound возвращается, когда блокировка не найдена
	ErrBlockedDateNotFound = errors.New("blockeddates.service: blocked date not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	// (в том числе при ошибке коммита - частичный результат не считается успехом)
	ErrInternal = errors.New("blockeddates.service: internal error")
)

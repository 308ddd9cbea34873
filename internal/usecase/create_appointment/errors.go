package create_appointment

import "errors"

var (
	// ErrMissingField возвращается, когда не заполнено обязательное поле
	ErrMissingField = errors.New("create_appointment: missing required field")

	// ErrBadPhone возвращается при некорректном номере телефона
	// (не только цифры или недопустимая длина)
	ErrBadPhone = errors.New("create_appointment: invalid phone number")

	// ErrPastTime возвращается при попытке записаться на прошедшее время
	ErrPastTime = errors.New("create_appointment: start time is in the past")

	// ErrSlotTaken возвращается, когда выбранное время пересекается с существующей записью
	ErrSlotTaken = errors.New("create_appointment: slot is already taken")

	// ErrDateBlocked возвращается при попытке записаться на заблокированный день
	ErrDateBlocked = errors.New("create_appointment: date is blocked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

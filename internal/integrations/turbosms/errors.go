package turbosms

import "errors"

var (
	// ErrSendFailed возвращается, когда шлюз отклонил сообщение
	ErrSendFailed = errors.New("turbosms client: gateway rejected message")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("turbosms client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("turbosms client: invalid response")
)

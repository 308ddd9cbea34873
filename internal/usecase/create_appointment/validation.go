package create_appointment

import (
	"fmt"

	"github.com/m04kA/BRB-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Все пять полей обязательны
func validateRequest(req *Request) error {
	if req.ClientName == "" {
		return fmt.Errorf("%w: client name is required", ErrMissingField)
	}

	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrMissingField)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrMissingField)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrMissingField)
	}

	if req.Service == "" {
		return fmt.Errorf("%w: service is required", ErrMissingField)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time format: %v", ErrMissingField, err)
	}

	return validatePhone(req.Phone)
}

// validatePhone проверяет номер телефона: только цифры,
// длина из domain.PhoneLengths (10, 12 или 13)
func validatePhone(phone string) error {
	for _, r := range phone {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: phone must contain digits only", ErrBadPhone)
		}
	}

	for _, l := range domain.PhoneLengths {
		if len(phone) == l {
			return nil
		}
	}

	return fmt.Errorf("%w: invalid phone length %d", ErrBadPhone, len(phone))
}

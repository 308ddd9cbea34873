package domain

// Default configuration values
const (
	DefaultOpenTime               = "10:00"
	DefaultCloseTime              = "18:00"
	DefaultSlotStepMinutes        = 30
	DefaultServiceDurationMinutes = 30
)

// Business validation constants
const (
	MaxClientNameLength = 30
	MaxReasonLength     = 100
)

// PhoneLengths допустимые длины номера телефона (только цифры)
var PhoneLengths = []int{10, 12, 13}

// Time format constants
const (
	TimeFormat = "15:04"            // HH:MM
	DateFormat = "2006-01-02"       // YYYY-MM-DD
	SMSFormat  = "02.01.2006 15:04" // дата и время в SMS подтверждении
)

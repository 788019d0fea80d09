package domain

// Business validation constants
const (
	MinTotalUnits            = 1
	MaxTotalUnits            = 500
	MaxStayNightsLimit       = 365
	MaxRoomNameLength        = 100
	MaxGuestNameLength       = 200
	MaxNotesLength           = 500
	MaxCancellationReasonLen = 500
	CurrencyCodeLength       = 3
)

// DefaultCurrency валюта бронирования, если не указана
const DefaultCurrency = "EUR"

// AllStatuses все допустимые статусы бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCancelled,
	StatusCompleted,
}

// IsValidStatus проверяет, что статус входит в список допустимых
func IsValidStatus(s BookingStatus) bool {
	for _, valid := range AllStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

package domain

// Business validation constants
const (
	MaxLabelLength = 100
	MaxNameLength  = 200
	MaxEmailLength = 254
)

// InactiveStatuses список статусов неактивных бронирований
// Используется при фильтрации конфликтующих бронирований
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusRejected,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusRequested,
	StatusConfirmed,
}

// ValidStatuses все допустимые статусы бронирования
var ValidStatuses = []BookingStatus{
	StatusRequested,
	StatusConfirmed,
	StatusCancelled,
	StatusRejected,
}

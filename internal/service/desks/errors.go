package desks

import "errors"

var (
	// ErrDeskNotFound возвращается, когда стол не найден
	ErrDeskNotFound = errors.New("desk not found")

	// ErrStaffNotFound возвращается, когда сотрудник для закрепления не найден
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrStaffAlreadyOwnsDesk возвращается, когда за сотрудником уже закреплен
	// другой стол. По инварианту сотрудник владеет не больше чем одним столом.
	ErrStaffAlreadyOwnsDesk = errors.New("staff member already owns another desk")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

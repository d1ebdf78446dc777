package create_release

import "errors"

var (
	// ErrDeskNotFound возвращается, когда стол не найден
	ErrDeskNotFound = errors.New("create_release: desk not found")

	// ErrDeskNotReserved возвращается для стола без постоянного закрепления:
	// освобождать нечего
	ErrDeskNotReserved = errors.New("create_release: desk has no permanent reservation")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_release: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_release: internal error")
)

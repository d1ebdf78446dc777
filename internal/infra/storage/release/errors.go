package release

import "errors"

var (
	// ErrReleaseNotFound возвращается, когда release не найден
	ErrReleaseNotFound = errors.New("release.repository: release not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("release.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("release.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("release.repository: failed to scan row")
)

package building

import "errors"

var (
	// ErrFloorNotFound возвращается, когда этаж не найден
	ErrFloorNotFound = errors.New("building.repository: floor not found")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("building.repository: room not found")

	// ErrIndividualNotFound возвращается, когда жилец не найден
	ErrIndividualNotFound = errors.New("building.repository: individual not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("building.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("building.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("building.repository: failed to scan row")
)

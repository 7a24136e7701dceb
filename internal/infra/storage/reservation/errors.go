package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrSlotTaken возвращается, когда пара (стол, слот) уже занята
	// Сюда транслируется нарушение UNIQUE (table_id, slot) при проигранной гонке
	ErrSlotTaken = errors.New("reservation.repository: table already booked at this slot")

	// ErrReferencedRowMissing возвращается при нарушении внешнего ключа:
	// стол или клиент, на которые ссылается бронирование, не существуют
	ErrReferencedRowMissing = errors.New("reservation.repository: referenced table or customer does not exist")

	// ErrSerializationFailure возвращается, когда PostgreSQL прервал
	// SERIALIZABLE транзакцию из-за конфликта; операцию можно повторить
	ErrSerializationFailure = errors.New("reservation.repository: transaction serialization failure")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)

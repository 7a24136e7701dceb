package admit_booking

import "errors"

var (
	// ErrTableNotFound возвращается, когда стол не найден
	ErrTableNotFound = errors.New("admit_booking: table not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("admit_booking: customer not found")

	// ErrSlotTaken возвращается, когда пара (стол, слот) уже занята
	ErrSlotTaken = errors.New("admit_booking: table already booked")

	// ErrPartySizeExceedsCapacity возвращается, когда размер компании превышает вместимость стола
	ErrPartySizeExceedsCapacity = errors.New("admit_booking: party size exceeds table capacity")

	// ErrInvalidInput возвращается при некорректных входных данных
	// Проверка выполняется до открытия транзакции
	ErrInvalidInput = errors.New("admit_booking: invalid input data")

	// ErrStorageUnavailable возвращается при недоступности хранилища
	// Транзакция откачена, частичных изменений нет — операцию можно повторить
	ErrStorageUnavailable = errors.New("admit_booking: storage unavailable")
)

package reschedule_booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RST-BookingService/internal/domain"
	reservationRepo "github.com/m04kA/RST-BookingService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/RST-BookingService/internal/infra/storage/table"
	"github.com/m04kA/RST-BookingService/pkg/types"
)

// nopLogger заглушка логгера для тестов
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// opLog журнал обращений к хранилищу, для проверки порядка блокировок
type opLog struct {
	ops []string
}

func (l *opLog) add(op string) {
	l.ops = append(l.ops, op)
}

func (l *opLog) indexAfter(start int, op string) int {
	for i := start; i < len(l.ops); i++ {
		if l.ops[i] == op {
			return i
		}
	}
	return -1
}

// fakeStore in-memory хранилище с UNIQUE (table_id, slot) на обновлении слота
type fakeStore struct {
	mu           sync.Mutex
	reservations map[int64]*domain.Reservation
	tables       map[int64]*domain.Table
	log          *opLog
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		reservations: make(map[int64]*domain.Reservation),
		tables:       make(map[int64]*domain.Table),
		log:          &opLog{},
	}
}

func (s *fakeStore) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	s.log.add("reservation.GetByID")
	r, ok := s.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *r
	return &copied, nil
}

func (s *fakeStore) GetAtSlot(ctx context.Context, tableID int64, slot types.SlotTime) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, r := range s.reservations {
		if r.TableID == tableID && r.Slot.Equal(slot) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (s *fakeStore) UpdateSlot(ctx context.Context, id int64, newSlot types.SlotTime) error {
	target, ok := s.reservations[id]
	if !ok {
		return reservationRepo.ErrReservationNotFound
	}
	for _, r := range s.reservations {
		if r.ID != id && r.TableID == target.TableID && r.Slot.Equal(newSlot) {
			return reservationRepo.ErrSlotTaken
		}
	}
	target.Slot = newSlot
	return nil
}

// tableRepoAdapter отдает столы из fakeStore с sentinel репозитория столов
type tableRepoAdapter struct {
	store *fakeStore
}

func (a *tableRepoAdapter) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	a.store.log.add("table.GetByID")
	table, ok := a.store.tables[id]
	if !ok {
		return nil, tableRepo.ErrTableNotFound
	}
	return table, nil
}

// fakeTxManager имитация сериализуемой транзакции: snapshot/restore
// дает семантику rollback при ошибке
type fakeTxManager struct {
	store     *fakeStore
	rollbacks int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.log.add("tx.begin")

	snapshot := make(map[int64]*domain.Reservation, len(m.store.reservations))
	for id, r := range m.store.reservations {
		copied := *r
		snapshot[id] = &copied
	}

	if err := fn(ctx); err != nil {
		m.store.reservations = snapshot
		m.rollbacks++
		return err
	}
	return nil
}

func mustSlot(t *testing.T, s string) types.SlotTime {
	t.Helper()
	slot, err := types.NewSlotTimeFromString(s)
	require.NoError(t, err)
	return slot
}

type env struct {
	store *fakeStore
	txMgr *fakeTxManager
	uc    *UseCase
}

func newEnv(t *testing.T) *env {
	store := newFakeStore()
	store.tables[3] = &domain.Table{ID: 3, Number: 3, Capacity: 6}
	store.reservations[1] = &domain.Reservation{
		ID: 1, CustomerID: 42, TableID: 3, Slot: mustSlot(t, "2022-11-12T19:00"), PartySize: 2,
	}
	store.reservations[2] = &domain.Reservation{
		ID: 2, CustomerID: 43, TableID: 3, Slot: mustSlot(t, "2022-11-12T21:00"), PartySize: 4,
	}

	txMgr := &fakeTxManager{store: store}
	uc := NewUseCase(store, &tableRepoAdapter{store: store}, txMgr, nopLogger{})

	return &env{store: store, txMgr: txMgr, uc: uc}
}

func TestExecute_Success(t *testing.T) {
	e := newEnv(t)
	newSlot := mustSlot(t, "2022-11-12T20:00")

	resp, err := e.uc.Execute(context.Background(), &Request{ReservationID: 1, NewSlot: newSlot})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, int64(1), resp.ID)
	assert.True(t, resp.Slot.Equal(newSlot))
	assert.True(t, e.store.reservations[1].Slot.Equal(newSlot))
}

func TestExecute_NewSlotTaken(t *testing.T) {
	e := newEnv(t)
	originalSlot := e.store.reservations[1].Slot

	// Слот 21:00 занят бронированием id=2
	resp, err := e.uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		NewSlot:       mustSlot(t, "2022-11-12T21:00"),
	})

	require.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, resp)

	// Отклоненный перенос не меняет исходный слот
	assert.True(t, e.store.reservations[1].Slot.Equal(originalSlot))
	assert.Equal(t, 1, e.txMgr.rollbacks)
}

func TestExecute_RescheduleOntoOwnSlot(t *testing.T) {
	e := newEnv(t)
	ownSlot := e.store.reservations[1].Slot

	// Перенос на собственный слот не конфликтует сам с собой
	resp, err := e.uc.Execute(context.Background(), &Request{ReservationID: 1, NewSlot: ownSlot})

	require.NoError(t, err)
	assert.True(t, resp.Slot.Equal(ownSlot))
}

func TestExecute_ReservationNotFound(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background(), &Request{
		ReservationID: 99,
		NewSlot:       mustSlot(t, "2022-11-12T20:00"),
	})

	require.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background(), &Request{ReservationID: 0, NewSlot: mustSlot(t, "2022-11-12T20:00")})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.uc.Execute(context.Background(), &Request{ReservationID: 1})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_TableLockedBeforeReservationRow(t *testing.T) {
	e := newEnv(t)

	_, err := e.uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		NewSlot:       mustSlot(t, "2022-11-12T20:00"),
	})
	require.NoError(t, err)

	// Внутри транзакции строка стола блокируется раньше строки
	// бронирования — тот же порядок, что и при допуске
	txStart := e.store.log.indexAfter(0, "tx.begin")
	require.NotEqual(t, -1, txStart)

	tableLock := e.store.log.indexAfter(txStart, "table.GetByID")
	reservationLock := e.store.log.indexAfter(txStart, "reservation.GetByID")
	require.NotEqual(t, -1, tableLock)
	require.NotEqual(t, -1, reservationLock)
	assert.Less(t, tableLock, reservationLock)
}

func TestExecute_CancelledBeforeTransaction(t *testing.T) {
	e := newEnv(t)

	// Бронирование отменяют между предварительным чтением и транзакцией:
	// повторное чтение под блокировкой обнаруживает пропажу
	cancelling := &cancellingTxManager{store: e.store, cancelID: 1}
	uc := NewUseCase(e.store, &tableRepoAdapter{store: e.store}, cancelling, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		NewSlot:       mustSlot(t, "2022-11-12T20:00"),
	})

	require.ErrorIs(t, err, ErrReservationNotFound)
}

// cancellingTxManager удаляет бронирование прямо перед началом транзакции
type cancellingTxManager struct {
	store    *fakeStore
	cancelID int64
}

func (m *cancellingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	delete(m.store.reservations, m.cancelID)
	return fn(ctx)
}

func TestExecute_SerializationFailureMapsToSlotTaken(t *testing.T) {
	e := newEnv(t)
	failing := failingTxManager{err: reservationRepo.ErrSerializationFailure}
	uc := NewUseCase(e.store, &tableRepoAdapter{store: e.store}, failing, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: 1,
		NewSlot:       mustSlot(t, "2022-11-12T20:00"),
	})

	require.ErrorIs(t, err, ErrSlotTaken)
}

type failingTxManager struct {
	err error
}

func (m failingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.err
}

package reservations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RST-BookingService/internal/domain"
	reservationRepo "github.com/m04kA/RST-BookingService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/RST-BookingService/internal/infra/storage/table"
	"github.com/m04kA/RST-BookingService/internal/service/reservations/models"
	"github.com/m04kA/RST-BookingService/pkg/types"
)

// nopLogger заглушка логгера для тестов
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// mockReservationRepo мок репозитория бронирований с переопределяемыми функциями
type mockReservationRepo struct {
	getByIDFunc              func(ctx context.Context, id int64) (*domain.Reservation, error)
	getAtSlotFunc            func(ctx context.Context, tableID int64, slot types.SlotTime) ([]*domain.Reservation, error)
	getByCustomerIDFunc      func(ctx context.Context, customerID int64) ([]*domain.Reservation, error)
	getByTableWithFilterFunc func(ctx context.Context, filter domain.TableReservationsFilter) ([]*domain.Reservation, error)
	deleteFunc               func(ctx context.Context, id int64) error
}

func (m *mockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (m *mockReservationRepo) GetAtSlot(ctx context.Context, tableID int64, slot types.SlotTime) ([]*domain.Reservation, error) {
	if m.getAtSlotFunc != nil {
		return m.getAtSlotFunc(ctx, tableID, slot)
	}
	return nil, nil
}

func (m *mockReservationRepo) GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Reservation, error) {
	if m.getByCustomerIDFunc != nil {
		return m.getByCustomerIDFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *mockReservationRepo) GetByTableWithFilter(ctx context.Context, filter domain.TableReservationsFilter) ([]*domain.Reservation, error) {
	if m.getByTableWithFilterFunc != nil {
		return m.getByTableWithFilterFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockReservationRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return reservationRepo.ErrReservationNotFound
}

// mockTableRepo мок репозитория столов
type mockTableRepo struct {
	getByIDFunc func(ctx context.Context, id int64) (*domain.Table, error)
}

func (m *mockTableRepo) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, tableRepo.ErrTableNotFound
}

func existingTable(id int64) *mockTableRepo {
	return &mockTableRepo{
		getByIDFunc: func(ctx context.Context, gotID int64) (*domain.Table, error) {
			if gotID == id {
				return &domain.Table{ID: id, Number: int(id), Capacity: 4}, nil
			}
			return nil, tableRepo.ErrTableNotFound
		},
	}
}

func mustSlot(t *testing.T, s string) types.SlotTime {
	t.Helper()
	slot, err := types.NewSlotTimeFromString(s)
	require.NoError(t, err)
	return slot
}

func TestCheckAvailability_Available(t *testing.T) {
	svc := NewService(&mockReservationRepo{}, existingTable(3), nopLogger{})

	resp, err := svc.CheckAvailability(context.Background(), 3, mustSlot(t, "2022-11-12T19:00"))

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.TableID)
	assert.Equal(t, "2022-11-12T19:00", resp.Slot)
	assert.Equal(t, string(domain.StatusAvailable), resp.Status)
	assert.Equal(t, "table 3 is available at 2022-11-12T19:00", resp.Message)
}

func TestCheckAvailability_Occupied(t *testing.T) {
	slot := mustSlot(t, "2022-11-12T19:00")
	repo := &mockReservationRepo{
		getAtSlotFunc: func(ctx context.Context, tableID int64, s types.SlotTime) ([]*domain.Reservation, error) {
			return []*domain.Reservation{
				{ID: 1, TableID: tableID, Slot: s, PartySize: 2},
			}, nil
		},
	}
	svc := NewService(repo, existingTable(3), nopLogger{})

	resp, err := svc.CheckAvailability(context.Background(), 3, slot)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusOccupied), resp.Status)
	assert.Equal(t, "table 3 is already booked at 2022-11-12T19:00", resp.Message)
}

func TestCheckAvailability_TableNotFound(t *testing.T) {
	svc := NewService(&mockReservationRepo{}, &mockTableRepo{}, nopLogger{})

	_, err := svc.CheckAvailability(context.Background(), 99, mustSlot(t, "2022-11-12T19:00"))

	require.ErrorIs(t, err, ErrTableNotFound)
}

func TestCheckAvailability_InvalidInput(t *testing.T) {
	svc := NewService(&mockReservationRepo{}, existingTable(3), nopLogger{})

	_, err := svc.CheckAvailability(context.Background(), 0, mustSlot(t, "2022-11-12T19:00"))
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CheckAvailability(context.Background(), 3, types.SlotTime{})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&mockReservationRepo{}, existingTable(3), nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)

	require.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGetByCustomer_ReturnsList(t *testing.T) {
	repo := &mockReservationRepo{
		getByCustomerIDFunc: func(ctx context.Context, customerID int64) ([]*domain.Reservation, error) {
			return []*domain.Reservation{
				{ID: 2, CustomerID: customerID, TableID: 3, Slot: mustSlot(t, "2022-11-13T19:00"), PartySize: 2},
				{ID: 1, CustomerID: customerID, TableID: 3, Slot: mustSlot(t, "2022-11-12T19:00"), PartySize: 2},
			}, nil
		},
	}
	svc := NewService(repo, existingTable(3), nopLogger{})

	resp, err := svc.GetByCustomer(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, resp.Reservations, 2)
	assert.Equal(t, int64(2), resp.Reservations[0].ID)
	assert.Equal(t, "2022-11-13T19:00", resp.Reservations[0].Slot)
}

func TestGetByTable_InvalidPeriod(t *testing.T) {
	svc := NewService(&mockReservationRepo{}, existingTable(3), nopLogger{})

	from := mustSlot(t, "2022-11-13T19:00")
	to := mustSlot(t, "2022-11-12T19:00")

	_, err := svc.GetByTable(context.Background(), &models.GetTableReservationsRequest{
		TableID:  3,
		FromSlot: &from,
		ToSlot:   &to,
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetByTable_TableNotFound(t *testing.T) {
	svc := NewService(&mockReservationRepo{}, &mockTableRepo{}, nopLogger{})

	_, err := svc.GetByTable(context.Background(), &models.GetTableReservationsRequest{TableID: 99})

	require.ErrorIs(t, err, ErrTableNotFound)
}

func TestCancel_Success(t *testing.T) {
	deleted := int64(0)
	repo := &mockReservationRepo{
		deleteFunc: func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		},
	}
	svc := NewService(repo, existingTable(3), nopLogger{})

	err := svc.Cancel(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(&mockReservationRepo{}, existingTable(3), nopLogger{})

	err := svc.Cancel(context.Background(), 99)

	require.ErrorIs(t, err, ErrReservationNotFound)
}

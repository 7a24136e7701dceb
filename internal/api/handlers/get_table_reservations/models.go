package get_table_reservations

import (
	"net/url"

	"github.com/m04kA/RST-BookingService/internal/service/reservations/models"
	"github.com/m04kA/RST-BookingService/pkg/ptr"
	"github.com/m04kA/RST-BookingService/pkg/types"
)

// parseRequest собирает запрос сервиса из path и query параметров
// Параметры from и to опциональны и задают период выборки
func parseRequest(tableID int64, query url.Values) (*models.GetTableReservationsRequest, error) {
	req := &models.GetTableReservationsRequest{TableID: tableID}

	if raw := query.Get("from"); raw != "" {
		from, err := types.NewSlotTimeFromString(raw)
		if err != nil {
			return nil, err
		}
		req.FromSlot = ptr.Ptr(from)
	}

	if raw := query.Get("to"); raw != "" {
		to, err := types.NewSlotTimeFromString(raw)
		if err != nil {
			return nil, err
		}
		req.ToSlot = ptr.Ptr(to)
	}

	return req, nil
}

package models

import "github.com/m04kA/RST-BookingService/internal/domain"

// TableResponse ответ с данными стола
type TableResponse struct {
	ID       int64 `json:"id"`
	Number   int   `json:"number"`
	Capacity int   `json:"capacity"`
}

// TableListResponse ответ со списком столов
type TableListResponse struct {
	Tables []TableResponse `json:"tables"`
}

// FromDomainTableList конвертирует список domain моделей в DTO
func FromDomainTableList(tables []*domain.Table) *TableListResponse {
	resp := &TableListResponse{
		Tables: make([]TableResponse, 0, len(tables)),
	}

	for _, table := range tables {
		resp.Tables = append(resp.Tables, TableResponse{
			ID:       table.ID,
			Number:   table.Number,
			Capacity: table.Capacity,
		})
	}

	return resp
}

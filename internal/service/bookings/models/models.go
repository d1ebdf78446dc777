package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DeskBookingService/internal/domain"
)

// Request модели

// GetOfficeBookingsRequest запрос на получение бронирований офиса
type GetOfficeBookingsRequest struct {
	OfficeID        int64
	StartDate       *time.Time
	EndDate         *time.Time
	Slot            *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetOfficeBookingsRequest) ToDomainFilter() (domain.OfficeBookingsFilter, error) {
	filter := domain.OfficeBookingsFilter{
		OfficeID:        r.OfficeID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Slot != nil {
		slot, err := domain.ParseSlot(*r.Slot)
		if err != nil {
			return filter, err
		}
		filter.Slot = &slot
	}

	return filter, nil
}

// GetStatsRequest запрос на агрегацию бронирований офиса по датам
type GetStatsRequest struct {
	OfficeID  int64
	StartDate time.Time
	EndDate   time.Time
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64     `json:"id"`
	DeskID        int64     `json:"deskId"`
	StaffMemberID uuid.UUID `json:"staffMemberId"`
	BookingDate   string    `json:"bookingDate"` // "2025-01-06"
	Slot          string    `json:"slot"`
	Status        string    `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// DailyCountResponse одна строка статистики занятости
type DailyCountResponse struct {
	Date  string `json:"date"` // "2025-01-06"
	Count int    `json:"count"`
}

// StatsResponse ответ со статистикой занятости офиса.
// Содержит строки только для дат, на которые есть бронирования.
type StatsResponse struct {
	Stats []DailyCountResponse `json:"stats"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		DeskID:        b.DeskID,
		StaffMemberID: b.StaffMemberID,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		Slot:          string(b.Slot),
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if br := FromDomainBooking(b); br != nil {
			resp.Bookings = append(resp.Bookings, *br)
		}
	}

	return resp
}

// FromDomainDailyCounts конвертирует агрегацию в DTO
func FromDomainDailyCounts(counts []domain.DailyCount) *StatsResponse {
	resp := &StatsResponse{
		Stats: make([]DailyCountResponse, 0, len(counts)),
	}

	for _, c := range counts {
		resp.Stats = append(resp.Stats, DailyCountResponse{
			Date:  c.Date.Format(domain.DateFormat),
			Count: c.Count,
		})
	}

	return resp
}

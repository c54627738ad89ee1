package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// GetScheduleRequest запрос на получение расписания за период
type GetScheduleRequest struct {
	From time.Time
	To   time.Time
}

// ScheduleResponse расписание салона по дням
type ScheduleResponse struct {
	Days []DaySchedule `json:"days"`
}

// DaySchedule расписание на один день
type DaySchedule struct {
	Date  string     `json:"date"` // "2025-10-15"
	Slots []SlotView `json:"slots"`
}

// SlotView представление слота в расписании.
// Данные клиента занятых слотов наружу не отдаются.
type SlotView struct {
	ID          int64  `json:"id"`
	StartTime   string `json:"startTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// FromDomainAppointments группирует слоты по дням в порядке выборки
func FromDomainAppointments(appointments []*domain.Appointment) *ScheduleResponse {
	resp := &ScheduleResponse{Days: make([]DaySchedule, 0)}

	byDate := make(map[string]int)
	for _, a := range appointments {
		date := a.Date.Format(domain.DateFormat)

		idx, ok := byDate[date]
		if !ok {
			resp.Days = append(resp.Days, DaySchedule{Date: date, Slots: make([]SlotView, 0)})
			idx = len(resp.Days) - 1
			byDate[date] = idx
		}

		resp.Days[idx].Slots = append(resp.Days[idx].Slots, SlotView{
			ID:          a.ID,
			StartTime:   a.DisplayTime(),
			IsAvailable: a.IsAvailable,
		})
	}

	return resp
}

package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func booked(name, phone string) *Appointment {
	return &Appointment{
		ID:          1,
		Date:        time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   "14:30",
		ClientName:  ptr.Ptr(name),
		ClientPhone: ptr.Ptr(phone),
		ServiceName: ptr.Ptr("Маникюр"),
		IsAvailable: false,
	}
}

func TestAppointment_BelongsTo_NameMatch(t *testing.T) {
	appt := booked("Dana Cohen", "+972501234567")

	// Совпадение по имени достаточно само по себе
	assert.True(t, appt.BelongsTo(Identity{Name: ptr.Ptr("Dana Cohen")}))

	// Регистр и пробелы по краям не учитываются
	assert.True(t, appt.BelongsTo(Identity{Name: ptr.Ptr("  dana cohen ")}))

	assert.False(t, appt.BelongsTo(Identity{Name: ptr.Ptr("Dana")}))
}

func TestAppointment_BelongsTo_PhoneMatch(t *testing.T) {
	appt := booked("Dana Cohen", "+972501234567")

	// Телефон совпал, имя другое — запись принадлежит клиенту
	assert.True(t, appt.BelongsTo(Identity{
		Name:  ptr.Ptr("Другое Имя"),
		Phone: ptr.Ptr("+972501234567"),
	}))

	assert.True(t, appt.BelongsTo(Identity{Phone: ptr.Ptr(" +972501234567 ")}))
	assert.False(t, appt.BelongsTo(Identity{Phone: ptr.Ptr("+972500000000")}))
}

func TestAppointment_BelongsTo_EmptyIdentity(t *testing.T) {
	appt := booked("Dana Cohen", "+972501234567")

	assert.False(t, appt.BelongsTo(Identity{}))
	assert.False(t, appt.BelongsTo(Identity{Name: ptr.Ptr("   ")}))
}

func TestAppointment_IsUpcoming(t *testing.T) {
	today := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	appt := booked("Dana Cohen", "+972501234567")

	// Сегодняшняя запись считается предстоящей независимо от времени
	appt.Date = today
	appt.StartTime = "00:30"
	assert.True(t, appt.IsUpcoming(today))

	appt.Date = today.AddDate(0, 0, 1)
	assert.True(t, appt.IsUpcoming(today))

	appt.Date = today.AddDate(0, 0, -1)
	assert.False(t, appt.IsUpcoming(today))
}

func TestAppointment_StartsAt(t *testing.T) {
	appt := booked("Dana Cohen", "+972501234567")
	appt.StartTime = "9:30"

	assert.Equal(t, time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC), appt.StartsAt())

	// Отсутствующее время — полночь для сортировки
	appt.StartTime = ""
	assert.Equal(t, time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), appt.StartsAt())
}

func TestAppointment_DisplayTime(t *testing.T) {
	appt := booked("Dana Cohen", "+972501234567")

	appt.StartTime = "9:30"
	assert.Equal(t, "09:30", appt.DisplayTime())

	// Отсутствующее время не подменяется полуночью при отображении
	appt.StartTime = types.TimeString("")
	assert.Equal(t, "", appt.DisplayTime())
}

func TestAppointment_DisplayService(t *testing.T) {
	appt := booked("Dana Cohen", "+972501234567")
	assert.Equal(t, "Маникюр", appt.DisplayService())

	appt.ServiceName = nil
	assert.Equal(t, "", appt.DisplayService())
}

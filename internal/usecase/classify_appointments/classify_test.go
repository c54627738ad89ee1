package classify_appointments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var testNow = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

func bookedAppt(id int64, date string, startTime types.TimeString, name, phone string) *domain.Appointment {
	d, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		panic(err)
	}
	return &domain.Appointment{
		ID:          id,
		Date:        d,
		StartTime:   startTime,
		ClientName:  ptr.Ptr(name),
		ClientPhone: ptr.Ptr(phone),
		ServiceName: ptr.Ptr("Маникюр"),
		IsAvailable: false,
	}
}

func identity(name, phone string) domain.Identity {
	id := domain.Identity{}
	if name != "" {
		id.Name = ptr.Ptr(name)
	}
	if phone != "" {
		id.Phone = ptr.Ptr(phone)
	}
	return id
}

func TestClassify_EmptyIdentity(t *testing.T) {
	records := []*domain.Appointment{
		bookedAppt(1, "2025-10-20", "14:00", "Dana Cohen", "+972501234567"),
	}

	result := Classify(records, domain.Identity{}, testNow)

	assert.Nil(t, result.Next)
	assert.Empty(t, result.Upcoming)
	assert.Empty(t, result.Past)
}

func TestClassify_SkipsOpenSlots(t *testing.T) {
	open := bookedAppt(1, "2025-10-20", "14:00", "Dana Cohen", "+972501234567")
	open.IsAvailable = true

	result := Classify([]*domain.Appointment{open}, identity("Dana Cohen", ""), testNow)

	assert.Nil(t, result.Next)
	assert.Empty(t, result.Upcoming)
	assert.Empty(t, result.Past)
}

func TestClassify_BookedAndOpenSlotSameDateTime(t *testing.T) {
	// Занятая запись и свободный слот на ту же дату и время:
	// клиент видит только свою запись
	booked := bookedAppt(1, "2025-10-20", "14:00", "Dana Cohen", "+972501234567")
	open := bookedAppt(2, "2025-10-20", "14:00", "Dana Cohen", "+972501234567")
	open.IsAvailable = true

	result := Classify([]*domain.Appointment{booked, open}, identity("Dana Cohen", ""), testNow)

	require.Len(t, result.Upcoming, 1)
	assert.Equal(t, int64(1), result.Upcoming[0].ID)
	require.NotNil(t, result.Next)
	assert.Equal(t, int64(1), result.Next.ID)
}

func TestClassify_SkipsForeignRecords(t *testing.T) {
	// Best-effort фильтр хранилища мог вернуть чужие записи —
	// авторитетная проверка отбрасывает их
	records := []*domain.Appointment{
		bookedAppt(1, "2025-10-20", "14:00", "Dana Cohen", "+972501234567"),
		bookedAppt(2, "2025-10-21", "10:00", "Другой Клиент", "+972509999999"),
	}

	result := Classify(records, identity("Dana Cohen", "+972501234567"), testNow)

	require.Len(t, result.Upcoming, 1)
	assert.Equal(t, int64(1), result.Upcoming[0].ID)
}

func TestClassify_PhoneMatchIsSufficient(t *testing.T) {
	// Телефон совпал, имя нет — запись принадлежит клиенту
	records := []*domain.Appointment{
		bookedAppt(1, "2025-10-20", "14:00", "Дана К.", "+972501234567"),
	}

	result := Classify(records, identity("Dana Cohen", "+972501234567"), testNow)

	require.Len(t, result.Upcoming, 1)
	assert.Equal(t, int64(1), result.Upcoming[0].ID)
}

func TestClassify_Partition(t *testing.T) {
	records := []*domain.Appointment{
		bookedAppt(1, "2025-10-10", "14:00", "Dana Cohen", "+972501234567"), // прошедшая
		bookedAppt(2, "2025-10-15", "18:00", "Dana Cohen", "+972501234567"), // сегодня — предстоящая
		bookedAppt(3, "2025-10-20", "09:00", "Dana Cohen", "+972501234567"), // предстоящая
		bookedAppt(4, "2025-10-14", "23:59", "Dana Cohen", "+972501234567"), // вчера — прошедшая
	}

	result := Classify(records, identity("Dana Cohen", ""), testNow)

	// Каждая запись ровно в одной категории
	assert.Len(t, result.Upcoming, 2)
	assert.Len(t, result.Past, 2)
	assert.Equal(t, len(records), len(result.Upcoming)+len(result.Past))

	// Ближайшая — минимум по (дата, время): сегодняшняя 18:00
	require.NotNil(t, result.Next)
	assert.Equal(t, int64(2), result.Next.ID)
}

func TestClassify_NextOrderedByDateThenTime(t *testing.T) {
	records := []*domain.Appointment{
		bookedAppt(1, "2025-10-20", "14:00", "Dana Cohen", "+972501234567"),
		bookedAppt(2, "2025-10-20", "09:30", "Dana Cohen", "+972501234567"),
		bookedAppt(3, "2025-10-21", "08:00", "Dana Cohen", "+972501234567"),
	}

	result := Classify(records, identity("Dana Cohen", ""), testNow)

	require.NotNil(t, result.Next)
	assert.Equal(t, int64(2), result.Next.ID)
}

func TestClassify_MissingTimeSortsAsMidnight(t *testing.T) {
	records := []*domain.Appointment{
		bookedAppt(1, "2025-10-20", "09:00", "Dana Cohen", "+972501234567"),
		bookedAppt(2, "2025-10-20", "", "Dana Cohen", "+972501234567"),
	}

	result := Classify(records, identity("Dana Cohen", ""), testNow)

	// Запись без времени считается полуночью и оказывается первой
	require.NotNil(t, result.Next)
	assert.Equal(t, int64(2), result.Next.ID)
}

func TestClassify_Idempotent(t *testing.T) {
	records := []*domain.Appointment{
		bookedAppt(1, "2025-10-10", "14:00", "Dana Cohen", "+972501234567"),
		bookedAppt(2, "2025-10-20", "09:00", "Dana Cohen", "+972501234567"),
	}
	id := identity("Dana Cohen", "+972501234567")

	first := Classify(records, id, testNow)
	second := Classify(records, id, testNow)

	assert.Equal(t, first, second)
}

func TestWithoutNext(t *testing.T) {
	a := bookedAppt(1, "2025-10-20", "09:00", "Dana Cohen", "+972501234567")
	b := bookedAppt(2, "2025-10-21", "10:00", "Dana Cohen", "+972501234567")

	rest := withoutNext([]*domain.Appointment{a, b}, a)
	require.Len(t, rest, 1)
	assert.Equal(t, int64(2), rest[0].ID)

	// Без ближайшей записи список возвращается как есть
	assert.Len(t, withoutNext([]*domain.Appointment{a, b}, nil), 2)
}

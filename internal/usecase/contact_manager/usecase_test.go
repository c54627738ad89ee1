package contact_manager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockAppointmentRepo struct {
	appt   *domain.Appointment
	getErr error
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.appt, nil
}

type mockWhatsAppClient struct {
	configured bool
	sendErr    error
	sentTo     string
	sentBody   string
}

func (m *mockWhatsAppClient) IsConfigured() bool { return m.configured }

func (m *mockWhatsAppClient) ChatLink(phone, text string) string {
	return "https://wa.me/" + phone + "?text=" + text
}

func (m *mockWhatsAppClient) SendText(_ context.Context, to, body string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sentTo = to
	m.sentBody = body
	return nil
}

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:          10,
		Date:        time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC),
		StartTime:   "14:30",
		ClientName:  ptr.Ptr("Dana Cohen"),
		ClientPhone: ptr.Ptr("+972501234567"),
		ServiceName: ptr.Ptr("Маникюр"),
		IsAvailable: false,
	}
}

func ownerIdentity() domain.Identity {
	return domain.Identity{Name: ptr.Ptr("Dana Cohen")}
}

func TestUseCase_Execute_BuildsDeterministicMessage(t *testing.T) {
	wa := &mockWhatsAppClient{}
	uc := NewUseCase(&mockAppointmentRepo{appt: testAppointment()}, wa, "Алина", "+79990001122", nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, Identity: ownerIdentity()})
	require.NoError(t, err)

	want := "Здравствуйте! Хочу отменить запись на 2025-10-16 в 14:30 (Маникюр). " +
		"До визита осталось меньше 48 часов, поэтому отменяю через вас."
	assert.Equal(t, want, resp.Message)
	assert.Equal(t, "Алина", resp.ManagerName)
	assert.Contains(t, resp.ChatLink, "wa.me")
	assert.False(t, resp.Delivered)

	// Сообщение зависит только от данных записи
	again, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, Identity: ownerIdentity()})
	require.NoError(t, err)
	assert.Equal(t, resp.Message, again.Message)
}

func TestUseCase_Execute_MissingTimeAndService(t *testing.T) {
	appt := testAppointment()
	appt.StartTime = ""
	appt.ServiceName = nil
	uc := NewUseCase(&mockAppointmentRepo{appt: appt}, &mockWhatsAppClient{}, "Алина", "+79990001122", nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, Identity: ownerIdentity()})
	require.NoError(t, err)

	assert.Contains(t, resp.Message, "время не указано")
	assert.Contains(t, resp.Message, "услуга не указана")
}

func TestUseCase_Execute_CloudAPIDelivery(t *testing.T) {
	wa := &mockWhatsAppClient{configured: true}
	uc := NewUseCase(&mockAppointmentRepo{appt: testAppointment()}, wa, "Алина", "+79990001122", nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, Identity: ownerIdentity()})
	require.NoError(t, err)

	assert.True(t, resp.Delivered)
	assert.Equal(t, "+79990001122", wa.sentTo)
	assert.Equal(t, resp.Message, wa.sentBody)
}

func TestUseCase_Execute_SendFailureFallsBackToLink(t *testing.T) {
	// Сбой Cloud API не ошибка: wa.me ссылка остаётся рабочим каналом
	wa := &mockWhatsAppClient{configured: true, sendErr: errors.New("api down")}
	uc := NewUseCase(&mockAppointmentRepo{appt: testAppointment()}, wa, "Алина", "+79990001122", nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, Identity: ownerIdentity()})
	require.NoError(t, err)

	assert.False(t, resp.Delivered)
	assert.Contains(t, resp.ChatLink, "wa.me")
}

func TestUseCase_Execute_ManagerContactNotConfigured(t *testing.T) {
	uc := NewUseCase(&mockAppointmentRepo{appt: testAppointment()}, &mockWhatsAppClient{}, "Алина", "", nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, Identity: ownerIdentity()})
	assert.ErrorIs(t, err, ErrManagerContactNotConfigured)
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	uc := NewUseCase(&mockAppointmentRepo{getErr: appointmentRepo.ErrAppointmentNotFound},
		&mockWhatsAppClient{}, "Алина", "+79990001122", nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, Identity: ownerIdentity()})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUseCase_Execute_AccessDenied(t *testing.T) {
	uc := NewUseCase(&mockAppointmentRepo{appt: testAppointment()},
		&mockWhatsAppClient{}, "Алина", "+79990001122", nopLogger{})

	foreign := domain.Identity{Name: ptr.Ptr("Другой Клиент")}
	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, Identity: foreign})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&mockAppointmentRepo{appt: testAppointment()},
		&mockWhatsAppClient{}, "Алина", "+79990001122", nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: -1, Identity: ownerIdentity()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{AppointmentID: 10, Identity: domain.Identity{}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

package cancel_appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var testNow = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time { return p.now }

type mockAppointmentRepo struct {
	appt       *domain.Appointment
	getErr     error
	releaseErr error

	releaseCalls int
	releaseGate  chan struct{} // если задан, Release ждёт закрытия канала
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	// Копия: usecase снимает снапшот, хранилище не должно делить состояние
	appt := *m.appt
	return &appt, nil
}

func (m *mockAppointmentRepo) Release(_ context.Context, _ int64) error {
	if m.releaseGate != nil {
		<-m.releaseGate
	}
	m.releaseCalls++
	return m.releaseErr
}

type mockWaitlistRepo struct {
	slotEntries    []*domain.WaitlistEntry
	serviceEntries []*domain.WaitlistEntry
	err            error
}

func (m *mockWaitlistRepo) GetBySlot(_ context.Context, _ time.Time, _ types.TimeString) ([]*domain.WaitlistEntry, error) {
	return m.slotEntries, m.err
}

func (m *mockWaitlistRepo) GetByServiceFrom(_ context.Context, _ string, _ time.Time) ([]*domain.WaitlistEntry, error) {
	return m.serviceEntries, m.err
}

type mockPushClient struct {
	mu    sync.Mutex
	calls [][]string
	err   error
}

func (m *mockPushClient) NotifyClients(_ context.Context, phones []string, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, phones)
	return m.err
}

type mockAdminClient struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (m *mockAdminClient) CreateNotification(_ context.Context, _, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	return m.err
}

func bookedAppt(hoursAhead float64) *domain.Appointment {
	startsAt := testNow.Add(time.Duration(hoursAhead * float64(time.Hour)))
	return &domain.Appointment{
		ID:          10,
		Date:        time.Date(startsAt.Year(), startsAt.Month(), startsAt.Day(), 0, 0, 0, 0, time.UTC),
		StartTime:   types.NewTimeString(startsAt),
		ClientName:  ptr.Ptr("Dana Cohen"),
		ClientPhone: ptr.Ptr("+972501234567"),
		ServiceName: ptr.Ptr("Маникюр"),
		IsAvailable: false,
	}
}

func ownerIdentity() domain.Identity {
	return domain.Identity{Name: ptr.Ptr("Dana Cohen"), Phone: ptr.Ptr("+972501234567")}
}

type testDeps struct {
	repo     *mockAppointmentRepo
	waitlist *mockWaitlistRepo
	push     *mockPushClient
	admin    *mockAdminClient
}

func newTestUseCase(deps testDeps) *UseCase {
	if deps.repo == nil {
		deps.repo = &mockAppointmentRepo{appt: bookedAppt(72)}
	}
	if deps.waitlist == nil {
		deps.waitlist = &mockWaitlistRepo{}
	}
	if deps.push == nil {
		deps.push = &mockPushClient{}
	}
	if deps.admin == nil {
		deps.admin = &mockAdminClient{}
	}

	uc := NewUseCase(deps.repo, deps.waitlist, deps.push, deps.admin, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := &mockAppointmentRepo{appt: bookedAppt(72)}
	admin := &mockAdminClient{}
	uc := newTestUseCase(testDeps{repo: repo, admin: admin})

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, Identity: ownerIdentity()})

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.AppointmentID)
	assert.Equal(t, "Маникюр", resp.ServiceName)
	assert.Equal(t, 1, repo.releaseCalls)
	assert.Equal(t, 1, admin.calls)
}

func TestUseCase_Execute_WindowBoundary(t *testing.T) {
	tests := []struct {
		name       string
		hoursAhead float64
		wantErr    error
	}{
		{"72 часа до визита - отмена разрешена", 72, nil},
		{"ровно 48 часов - отмена ещё разрешена", 48, nil},
		{"чуть меньше 48 часов - блокировка", 47.99, ErrWithinProtectedWindow},
		{"36 часов - блокировка", 36, ErrWithinProtectedWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockAppointmentRepo{appt: bookedAppt(tt.hoursAhead)}
			uc := newTestUseCase(testDeps{repo: repo})

			_, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, Identity: ownerIdentity()})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, repo.releaseCalls)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUseCase_Execute_NotFound(t *testing.T) {
	repo := &mockAppointmentRepo{getErr: appointmentRepo.ErrAppointmentNotFound}
	uc := newTestUseCase(testDeps{repo: repo})

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, Identity: ownerIdentity()})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUseCase_Execute_AccessDenied(t *testing.T) {
	repo := &mockAppointmentRepo{appt: bookedAppt(72)}
	uc := newTestUseCase(testDeps{repo: repo})

	foreign := domain.Identity{Name: ptr.Ptr("Другой Клиент"), Phone: ptr.Ptr("+972509999999")}
	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, Identity: foreign})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, 0, repo.releaseCalls)
}

func TestUseCase_Execute_SlotAlreadyOpen(t *testing.T) {
	appt := bookedAppt(72)
	appt.IsAvailable = true
	repo := &mockAppointmentRepo{appt: appt}
	uc := newTestUseCase(testDeps{repo: repo})

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, Identity: ownerIdentity()})
	assert.ErrorIs(t, err, ErrAlreadyReleased)
}

func TestUseCase_Execute_ConcurrentRelease(t *testing.T) {
	// Между GetByID и Release слот освободил другой процесс:
	// условное обновление не затронуло строк
	repo := &mockAppointmentRepo{appt: bookedAppt(72), releaseErr: appointmentRepo.ErrAlreadyReleased}
	push := &mockPushClient{}
	admin := &mockAdminClient{}
	uc := newTestUseCase(testDeps{repo: repo, push: push, admin: admin})

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, Identity: ownerIdentity()})

	assert.ErrorIs(t, err, ErrAlreadyReleased)
	// Уведомления после неудавшейся отмены не отправляются
	assert.Empty(t, push.calls)
	assert.Equal(t, 0, admin.calls)
}

func TestUseCase_Execute_EffectFailuresDoNotFailCancellation(t *testing.T) {
	repo := &mockAppointmentRepo{appt: bookedAppt(72)}
	waitlist := &mockWaitlistRepo{err: errors.New("db down")}
	admin := &mockAdminClient{err: errors.New("service unavailable")}
	uc := newTestUseCase(testDeps{repo: repo, waitlist: waitlist, admin: admin})

	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, Identity: ownerIdentity()})

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.AppointmentID)
	assert.Equal(t, 1, repo.releaseCalls)
}

func TestUseCase_Execute_NotifiesWaitlists(t *testing.T) {
	repo := &mockAppointmentRepo{appt: bookedAppt(72)}
	waitlist := &mockWaitlistRepo{
		slotEntries: []*domain.WaitlistEntry{
			{ClientName: "А", ClientPhone: "+972501111111"},
		},
		serviceEntries: []*domain.WaitlistEntry{
			{ClientName: "Б", ClientPhone: "+972502222222"},
			{ClientName: "В", ClientPhone: ""},
		},
	}
	push := &mockPushClient{}
	uc := newTestUseCase(testDeps{repo: repo, waitlist: waitlist, push: push})

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 10, Identity: ownerIdentity()})
	require.NoError(t, err)

	// Две рассылки: по слоту и по услуге; пустые телефоны отброшены
	require.Len(t, push.calls, 2)
	assert.Equal(t, []string{"+972501111111"}, push.calls[0])
	assert.Equal(t, []string{"+972502222222"}, push.calls[1])
}

func TestUseCase_Execute_DuplicateSubmission(t *testing.T) {
	gate := make(chan struct{})
	repo := &mockAppointmentRepo{appt: bookedAppt(72), releaseGate: gate}
	uc := newTestUseCase(testDeps{repo: repo})

	req := &Request{AppointmentID: 10, Identity: ownerIdentity()}

	firstDone := make(chan error, 1)
	go func() {
		_, err := uc.Execute(context.Background(), req)
		firstDone <- err
	}()

	// Ждём, пока первая отмена займёт слот и повиснет на Release
	require.Eventually(t, func() bool {
		uc.mu.Lock()
		defer uc.mu.Unlock()
		_, busy := uc.inFlight[10]
		return busy
	}, time.Second, time.Millisecond)

	// Повторная отправка, пока первая в полёте - no-op
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCancelInProgress)

	close(gate)
	require.NoError(t, <-firstDone)
	assert.Equal(t, 1, repo.releaseCalls)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(testDeps{})

	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 0, Identity: ownerIdentity()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{AppointmentID: 10, Identity: domain.Identity{}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHoursUntil(t *testing.T) {
	appt := bookedAppt(48)
	assert.InDelta(t, 48.0, hoursUntil(appt, testNow), 0.01)
	assert.True(t, isCancellable(appt, testNow))

	assert.False(t, isCancellable(appt, testNow.Add(time.Minute)))
}

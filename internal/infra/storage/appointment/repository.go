package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// appointmentColumns колонки таблицы appointments в порядке сканирования
var appointmentColumns = []string{
	"id",
	"appointment_date",
	"start_time",
	"client_name",
	"client_phone",
	"service_name",
	"is_available",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := r.scanAppointment(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetRange получает все слоты (свободные и занятые) за период [from, to] включительно
func (r *Repository) GetRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.GtOrEq{"appointment_date": from}).
		Where(squirrel.LtOrEq{"appointment_date": to}).
		OrderBy("appointment_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetBookedByIdentity получает занятые слоты за период с best-effort фильтром
// по клиенту: поиск по имени нестрогий (ILIKE), поэтому выборка может содержать
// чужие записи. Авторитетная проверка принадлежности выполняется на уровне
// usecase через domain.Appointment.BelongsTo.
func (r *Repository) GetBookedByIdentity(ctx context.Context, from, to time.Time, identity domain.Identity) ([]*domain.Appointment, error) {
	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"is_available": false}).
		Where(squirrel.GtOrEq{"appointment_date": from}).
		Where(squirrel.LtOrEq{"appointment_date": to}).
		OrderBy("appointment_date ASC, start_time ASC")

	// Фильтр по клиенту: достаточно совпадения по имени ИЛИ по телефону
	identityFilter := squirrel.Or{}
	if identity.Name != nil && strings.TrimSpace(*identity.Name) != "" {
		identityFilter = append(identityFilter,
			squirrel.ILike{"client_name": "%" + strings.TrimSpace(*identity.Name) + "%"})
	}
	if identity.Phone != nil && strings.TrimSpace(*identity.Phone) != "" {
		identityFilter = append(identityFilter,
			squirrel.Eq{"client_phone": strings.TrimSpace(*identity.Phone)})
	}
	if len(identityFilter) == 0 {
		// Нет идентификации - нет записей
		return []*domain.Appointment{}, nil
	}
	selectBuilder = selectBuilder.Where(identityFilter)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedByIdentity - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedByIdentity - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// Release освобождает слот: сбрасывает данные клиента и услуги и помечает слот
// свободным. Условие is_available = false защищает от конкурентной отмены:
// если слот уже освобождён или переоформлен, запрос не затронет ни одной строки
// и вернётся ErrAlreadyReleased.
func (r *Repository) Release(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Update("appointments").
		Set("is_available", true).
		Set("client_name", nil).
		Set("client_phone", nil).
		Set("service_name", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"is_available": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAlreadyReleased
	}

	return nil
}

// Claim занимает свободный слот: записывает данные клиента и услуги.
// Условие is_available = true защищает от двойного бронирования: если слот
// уже занят, запрос не затронет ни одной строки и вернётся ErrSlotTaken.
func (r *Repository) Claim(ctx context.Context, id int64, clientName, clientPhone, serviceName string) error {
	query, args, err := psqlbuilder.Update("appointments").
		Set("is_available", false).
		Set("client_name", clientName).
		Set("client_phone", clientPhone).
		Set("service_name", serviceName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"is_available": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Claim - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Claim - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Claim - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotTaken
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAppointment сканирует одну строку в domain.Appointment
func (r *Repository) scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.Date,
		&appt.StartTime,
		&appt.ClientName,
		&appt.ClientPhone,
		&appt.ServiceName,
		&appt.IsAvailable,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс слотов
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

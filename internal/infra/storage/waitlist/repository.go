package waitlist

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// waitlistColumns колонки таблицы waitlist_entries в порядке сканирования
var waitlistColumns = []string{
	"id",
	"client_name",
	"client_phone",
	"slot_date",
	"slot_time",
	"service_name",
	"created_at",
}

// Repository репозиторий для работы с листом ожидания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория листа ожидания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись в лист ожидания
func (r *Repository) Create(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
	query, args, err := psqlbuilder.Insert("waitlist_entries").
		Columns(
			"client_name",
			"client_phone",
			"slot_date",
			"slot_time",
			"service_name",
		).
		Values(
			entry.ClientName,
			entry.ClientPhone,
			entry.Date,
			entry.StartTime,
			entry.ServiceName,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time

	return entry, nil
}

// GetBySlot получает лист ожидания на конкретный слот (дата + время)
func (r *Repository) GetBySlot(ctx context.Context, date time.Time, startTime types.TimeString) ([]*domain.WaitlistEntry, error) {
	query, args, err := psqlbuilder.Select(waitlistColumns...).
		From("waitlist_entries").
		Where(squirrel.Eq{"slot_date": date}).
		Where(squirrel.Eq{"slot_time": startTime.Normalized()}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// GetByServiceFrom получает лист ожидания по услуге на любую дату начиная с from
func (r *Repository) GetByServiceFrom(ctx context.Context, serviceName string, from time.Time) ([]*domain.WaitlistEntry, error) {
	query, args, err := psqlbuilder.Select(waitlistColumns...).
		From("waitlist_entries").
		Where(squirrel.Eq{"service_name": serviceName}).
		Where(squirrel.Or{
			squirrel.Eq{"slot_date": nil},
			squirrel.GtOrEq{"slot_date": from},
		}).
		OrderBy("created_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByServiceFrom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByServiceFrom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanEntries(rows)
}

// scanEntries сканирует результаты запроса в слайс записей листа ожидания
func (r *Repository) scanEntries(rows *sql.Rows) ([]*domain.WaitlistEntry, error) {
	entries := make([]*domain.WaitlistEntry, 0)

	for rows.Next() {
		var entry domain.WaitlistEntry
		var createdAt sql.NullTime
		var slotTime *types.TimeString

		err := rows.Scan(
			&entry.ID,
			&entry.ClientName,
			&entry.ClientPhone,
			&entry.Date,
			&slotTime,
			&entry.ServiceName,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanEntries - scan row: %v", ErrScanRow, err)
		}

		entry.StartTime = slotTime
		entry.CreatedAt = createdAt.Time

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanEntries - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}

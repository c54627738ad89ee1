package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var (
	// ErrEmptyTarget возвращается, когда в заявке не указан ни слот, ни услуга
	ErrEmptyTarget = errors.New("waitlist entry must target a slot or a service")

	// ErrMissingContact возвращается, когда не указаны имя или телефон клиента
	ErrMissingContact = errors.New("client name and phone are required")
)

// JoinWaitlistRequest заявка на добавление в лист ожидания.
// Заявка адресует либо конкретный слот (Date + StartTime), либо услугу
// (ServiceName) - аудитории рассылки при освобождении слота не пересекаются.
type JoinWaitlistRequest struct {
	ClientName  string            `json:"clientName"`
	ClientPhone string            `json:"clientPhone"`
	Date        *time.Time        `json:"date,omitempty"`
	StartTime   *types.TimeString `json:"startTime,omitempty"`
	ServiceName *string           `json:"serviceName,omitempty"`
}

// ToDomainEntry конвертирует заявку в domain модель с валидацией
func (r *JoinWaitlistRequest) ToDomainEntry() (*domain.WaitlistEntry, error) {
	name := strings.TrimSpace(r.ClientName)
	phone := strings.TrimSpace(r.ClientPhone)
	if name == "" || phone == "" {
		return nil, ErrMissingContact
	}

	hasSlot := r.Date != nil && r.StartTime != nil && !r.StartTime.IsZero()
	hasService := r.ServiceName != nil && strings.TrimSpace(*r.ServiceName) != ""
	if !hasSlot && !hasService {
		return nil, ErrEmptyTarget
	}

	entry := &domain.WaitlistEntry{
		ClientName:  name,
		ClientPhone: phone,
	}

	if hasSlot {
		entry.Date = r.Date
		normalized := r.StartTime.Normalized()
		entry.StartTime = &normalized
	}
	if hasService {
		service := strings.TrimSpace(*r.ServiceName)
		entry.ServiceName = &service
	}

	return entry, nil
}

// WaitlistEntryResponse ответ с созданной записью листа ожидания
type WaitlistEntryResponse struct {
	ID          int64   `json:"id"`
	ClientName  string  `json:"clientName"`
	Date        *string `json:"date,omitempty"`
	StartTime   *string `json:"startTime,omitempty"`
	ServiceName *string `json:"serviceName,omitempty"`
}

// FromDomainEntry конвертирует domain модель в DTO
func FromDomainEntry(e *domain.WaitlistEntry) *WaitlistEntryResponse {
	resp := &WaitlistEntryResponse{
		ID:          e.ID,
		ClientName:  e.ClientName,
		ServiceName: e.ServiceName,
	}

	if e.Date != nil {
		date := e.Date.Format(domain.DateFormat)
		resp.Date = &date
	}
	if e.StartTime != nil {
		startTime := e.StartTime.String()
		resp.StartTime = &startTime
	}

	return resp
}

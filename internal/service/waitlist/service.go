package waitlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/service/waitlist/models"
)

// Service сервис для работы с листом ожидания
type Service struct {
	waitlistRepo WaitlistRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса листа ожидания
func NewService(waitlistRepo WaitlistRepository, logger Logger) *Service {
	return &Service{
		waitlistRepo: waitlistRepo,
		logger:       logger,
	}
}

// Join добавляет клиента в лист ожидания
func (s *Service) Join(ctx context.Context, req *models.JoinWaitlistRequest) (*models.WaitlistEntryResponse, error) {
	entry, err := req.ToDomainEntry()
	if err != nil {
		if errors.Is(err, models.ErrEmptyTarget) || errors.Is(err, models.ErrMissingContact) {
			s.logger.Warn("Join: invalid request: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: Join - conversion error: %v", ErrInternal, err)
	}

	created, err := s.waitlistRepo.Create(ctx, entry)
	if err != nil {
		s.logger.Error("Join: repository error: %v", err)
		return nil, fmt.Errorf("%w: Join - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Join: waitlist entry id=%d created for %s", created.ID, created.ClientPhone)
	return models.FromDomainEntry(created), nil
}

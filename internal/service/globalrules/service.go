package globalrules

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtScheduleService/internal/domain"
	globalruleRepo "github.com/m04kA/SMC-CourtScheduleService/internal/infra/storage/globalrule"
	"github.com/m04kA/SMC-CourtScheduleService/internal/service/globalrules/models"
)

// Service сервис администрирования глобальных (venue-wide) ценовых условий
// Глобальные условия применяются к каждому активному корту, пока их не
// перекрывает условие уровня корта
type Service struct {
	repo      GlobalRuleRepository
	txManager TransactionManager
	cache     ScheduleCache // nil, если кэш выключен
	logger    Logger
}

// NewService создает новый экземпляр сервиса глобальных условий
func NewService(repo GlobalRuleRepository, txManager TransactionManager, cache ScheduleCache, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		cache:     cache,
		logger:    logger,
	}
}

// List возвращает все глобальные условия
func (s *Service) List(ctx context.Context) ([]models.ConditionResponse, error) {
	conditions, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: failed to list global conditions: %v", err)
		return nil, fmt.Errorf("%w: failed to list conditions: %v", ErrInternal, err)
	}

	result := make([]models.ConditionResponse, 0, len(conditions))
	for _, c := range conditions {
		result = append(result, models.FromDomain(c))
	}
	return result, nil
}

// Create создает новое глобальное условие
func (s *Service) Create(ctx context.Context, req *models.CreateConditionRequest) (*models.ConditionResponse, error) {
	cond := req.ToDomain()
	cond.ID = uuid.NewString()

	if err := cond.Validate(); err != nil {
		s.logger.Warn("Create: invalid condition: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidCondition, err)
	}
	if cond.SlotFrom.String() >= cond.SlotTo.String() {
		s.logger.Warn("Create: inverted time range %s-%s", cond.SlotFrom, cond.SlotTo)
		return nil, fmt.Errorf("%w: slotFrom must be before slotTo", ErrInvalidCondition)
	}

	created, err := s.repo.Create(ctx, &cond)
	if err != nil {
		s.logger.Error("Create: failed to create condition: %v", err)
		return nil, fmt.Errorf("%w: failed to create condition: %v", ErrInternal, err)
	}

	s.invalidate(ctx)
	s.logger.Info("Create: created global condition id=%s scope=%s %s-%s price=%.2f",
		created.ID, created.Scope, created.SlotFrom, created.SlotTo, created.Price)

	resp := models.FromDomain(*created)
	return &resp, nil
}

// Delete удаляет глобальное условие по ID
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, globalruleRepo.ErrConditionNotFound) {
			s.logger.Warn("Delete: condition id=%s not found", id)
			return ErrConditionNotFound
		}
		s.logger.Error("Delete: failed to delete condition id=%s: %v", id, err)
		return fmt.Errorf("%w: failed to delete condition: %v", ErrInternal, err)
	}

	s.invalidate(ctx)
	s.logger.Info("Delete: deleted global condition id=%s", id)
	return nil
}

// ReplaceAll атомарно заменяет весь набор глобальных условий
// Используется шаблонным редактором: валидирует все условия заранее,
// затем в сериализуемой транзакции удаляет старый набор и пишет новый
func (s *Service) ReplaceAll(ctx context.Context, req *models.ReplaceConditionsRequest) ([]models.ConditionResponse, error) {
	conditions := make([]domain.PriceCondition, 0, len(req.Conditions))
	for i := range req.Conditions {
		cond := req.Conditions[i].ToDomain()
		cond.ID = uuid.NewString()

		if err := cond.Validate(); err != nil {
			s.logger.Warn("ReplaceAll: invalid condition at index %d: %v", i, err)
			return nil, fmt.Errorf("%w: condition %d: %v", ErrInvalidCondition, i, err)
		}
		if cond.SlotFrom.String() >= cond.SlotTo.String() {
			s.logger.Warn("ReplaceAll: inverted time range at index %d", i)
			return nil, fmt.Errorf("%w: condition %d: slotFrom must be before slotTo", ErrInvalidCondition, i)
		}

		conditions = append(conditions, cond)
	}

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.repo.DeleteAll(txCtx); err != nil {
			return fmt.Errorf("%w: failed to clear conditions: %v", ErrInternal, err)
		}
		for i := range conditions {
			if _, err := s.repo.Create(txCtx, &conditions[i]); err != nil {
				return fmt.Errorf("%w: failed to create condition: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("ReplaceAll: transaction failed: %v", err)
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info("ReplaceAll: replaced global conditions, new count=%d", len(conditions))

	result := make([]models.ConditionResponse, 0, len(conditions))
	for _, c := range conditions {
		result = append(result, models.FromDomain(c))
	}
	return result, nil
}

// invalidate сбрасывает кэш расписания: глобальные условия влияют на все корты
func (s *Service) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Flush(ctx)
	}
}

package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	scheduleRepo "github.com/vinender/fieldsy-scheduling-service/internal/infra/storage/schedule"
	fieldClient "github.com/vinender/fieldsy-scheduling-service/internal/integrations/fieldservice"
	engine "github.com/vinender/fieldsy-scheduling-service/internal/schedule"
	"github.com/vinender/fieldsy-scheduling-service/internal/service/schedule/models"
	"github.com/vinender/fieldsy-scheduling-service/pkg/types"
)

// Service manages per-field schedule overrides and resolves the effective
// schedule of a field. The stored override wins; fields without one fall
// back to the raw configuration carried by the catalogue profile.
type Service struct {
	scheduleRepo ScheduleRepository
	fieldClient  FieldServiceClient
	logger       Logger
}

func NewService(
	scheduleRepo ScheduleRepository,
	fieldClient FieldServiceClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		fieldClient:  fieldClient,
		logger:       logger,
	}
}

// Get returns the resolved schedule of a field.
func (s *Service) Get(ctx context.Context, fieldID int64) (*models.ScheduleResponse, error) {
	fs, err := s.ResolveForField(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSchedule(fs), nil
}

// ResolveForField returns the effective schedule of a field as an immutable
// snapshot. Used by every scheduling usecase; the snapshot is taken once per
// request so a concurrent schedule edit cannot produce a half-old half-new
// computation.
func (s *Service) ResolveForField(ctx context.Context, fieldID int64) (*domain.FieldSchedule, error) {
	fs, err := s.scheduleRepo.GetByFieldID(ctx, fieldID)
	if err == nil {
		return fs, nil
	}
	if !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		s.logger.Error("ResolveForField: repository error for field=%d: %v", fieldID, err)
		return nil, fmt.Errorf("%w: ResolveForField - repository error: %v", ErrInternal, err)
	}

	// No override stored; normalize the catalogue profile.
	field, err := s.fieldClient.GetActiveField(ctx, fieldID)
	if err != nil {
		if errors.Is(err, fieldClient.ErrFieldNotFound) {
			s.logger.Warn("ResolveForField: field id=%d not found", fieldID)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("ResolveForField: failed to get field id=%d: %v", fieldID, err)
		return nil, fmt.Errorf("%w: ResolveForField - failed to get field: %v", ErrInternal, err)
	}

	return s.normalizeCatalogField(field)
}

// Upsert validates and writes the schedule override of a field.
// Restricted to the field owner.
func (s *Service) Upsert(ctx context.Context, req *models.UpsertScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Upsert: writing schedule for field=%d by user=%d", req.FieldID, req.UserID)

	field, err := s.fieldClient.GetActiveField(ctx, req.FieldID)
	if err != nil {
		if errors.Is(err, fieldClient.ErrFieldNotFound) {
			s.logger.Warn("Upsert: field id=%d not found", req.FieldID)
			return nil, ErrFieldNotFound
		}
		s.logger.Error("Upsert: failed to get field id=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: Upsert - failed to get field: %v", ErrInternal, err)
	}

	if field.OwnerID != req.UserID {
		s.logger.Warn("Upsert: user=%d does not own field=%d", req.UserID, req.FieldID)
		return nil, ErrAccessDenied
	}

	fs, err := s.validateRequest(req)
	if err != nil {
		s.logger.Warn("Upsert: invalid schedule for field=%d: %v", req.FieldID, err)
		return nil, err
	}

	stored, err := s.scheduleRepo.Upsert(ctx, fs)
	if err != nil {
		s.logger.Error("Upsert: repository error for field=%d: %v", req.FieldID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: stored schedule for field=%d", req.FieldID)
	return models.FromDomainSchedule(stored), nil
}

// Delete removes the stored override of a field, restoring the catalogue
// profile as the effective schedule. Restricted to the field owner.
func (s *Service) Delete(ctx context.Context, fieldID, userID int64) error {
	s.logger.Info("Delete: removing schedule override for field=%d by user=%d", fieldID, userID)

	field, err := s.fieldClient.GetActiveField(ctx, fieldID)
	if err != nil {
		if errors.Is(err, fieldClient.ErrFieldNotFound) {
			s.logger.Warn("Delete: field id=%d not found", fieldID)
			return ErrFieldNotFound
		}
		s.logger.Error("Delete: failed to get field id=%d: %v", fieldID, err)
		return fmt.Errorf("%w: Delete - failed to get field: %v", ErrInternal, err)
	}

	if field.OwnerID != userID {
		s.logger.Warn("Delete: user=%d does not own field=%d", userID, fieldID)
		return ErrAccessDenied
	}

	if err := s.scheduleRepo.Delete(ctx, fieldID); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Delete: field=%d has no stored override", fieldID)
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error for field=%d: %v", fieldID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: removed schedule override for field=%d", fieldID)
	return nil
}

// validateRequest normalizes and validates a schedule write.
//
// Writes are strict where reads are permissive: an empty operating-day list
// on a stored override is rejected rather than defaulted, so an owner cannot
// accidentally publish a schedule that silently means "open every day".
func (s *Service) validateRequest(req *models.UpsertScheduleRequest) (*domain.FieldSchedule, error) {
	if len(req.OperatingDays) == 0 {
		return nil, fmt.Errorf("%w: operating days must not be empty", ErrInvalidOperatingDays)
	}

	days, err := engine.ResolveOperatingDays(req.OperatingDays)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOperatingDays, err)
	}

	opening, err := types.ParseFlexible(req.OpeningTime)
	if err != nil {
		return nil, fmt.Errorf("%w: opening time: %v", ErrInvalidOperatingHours, err)
	}
	closing, err := types.ParseFlexible(req.ClosingTime)
	if err != nil {
		return nil, fmt.Errorf("%w: closing time: %v", ErrInvalidOperatingHours, err)
	}
	if !opening.IsBefore(closing) {
		return nil, fmt.Errorf("%w: opening %s must be before closing %s", ErrInvalidOperatingHours, opening, closing)
	}

	duration := domain.SlotDuration(req.SlotDurationMinutes)
	if !duration.IsValid() {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidSlotDuration, req.SlotDurationMinutes)
	}

	if req.BufferMinutes < domain.MinBufferMinutes || req.BufferMinutes > domain.MaxBufferMinutes {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidBuffer, req.BufferMinutes)
	}

	if req.MaxDogsPerSlot < domain.MinDogsPerSlot || req.MaxDogsPerSlot > domain.MaxDogsPerSlot {
		return nil, fmt.Errorf("%w: %d dogs", ErrInvalidCapacity, req.MaxDogsPerSlot)
	}

	return &domain.FieldSchedule{
		FieldID:        req.FieldID,
		OperatingDays:  days,
		OpeningTime:    opening,
		ClosingTime:    closing,
		SlotDuration:   duration,
		BufferMinutes:  req.BufferMinutes,
		MaxDogsPerSlot: req.MaxDogsPerSlot,
	}, nil
}

// normalizeCatalogField builds a schedule snapshot from the raw catalogue
// profile. Absent pieces fall back to the marketplace defaults so a field
// without schedule data stays bookable; pieces that are present but broken
// are surfaced as ErrInvalidScheduleConfig, never silently defaulted.
func (s *Service) normalizeCatalogField(field *fieldClient.Field) (*domain.FieldSchedule, error) {
	days, err := engine.ResolveOperatingDays(field.OperatingDays)
	if err != nil {
		s.logger.Warn("normalizeCatalogField: field=%d has unrecognized operating days %v",
			field.ID, field.OperatingDays)
		return nil, fmt.Errorf("%w: operating days %v: %v", ErrInvalidScheduleConfig, field.OperatingDays, err)
	}

	opening := types.TimeString(domain.DefaultOpeningTime)
	if field.OpeningTime != "" {
		opening, err = types.ParseFlexible(field.OpeningTime)
		if err != nil {
			s.logger.Warn("normalizeCatalogField: field=%d has bad opening time %q", field.ID, field.OpeningTime)
			return nil, fmt.Errorf("%w: opening time %q: %v", ErrInvalidScheduleConfig, field.OpeningTime, err)
		}
	}

	closing := types.TimeString(domain.DefaultClosingTime)
	if field.ClosingTime != "" {
		closing, err = types.ParseFlexible(field.ClosingTime)
		if err != nil {
			s.logger.Warn("normalizeCatalogField: field=%d has bad closing time %q", field.ID, field.ClosingTime)
			return nil, fmt.Errorf("%w: closing time %q: %v", ErrInvalidScheduleConfig, field.ClosingTime, err)
		}
	}
	if !opening.IsBefore(closing) {
		return nil, fmt.Errorf("%w: opening %s must be before closing %s", ErrInvalidScheduleConfig, opening, closing)
	}

	duration := domain.DefaultSlotDuration
	if field.SlotDurationMinutes != 0 {
		duration = domain.SlotDuration(field.SlotDurationMinutes)
		if !duration.IsValid() {
			return nil, fmt.Errorf("%w: slot duration %d minutes", ErrInvalidScheduleConfig, field.SlotDurationMinutes)
		}
	}

	buffer := field.BufferMinutes
	if buffer < domain.MinBufferMinutes || buffer > domain.MaxBufferMinutes {
		return nil, fmt.Errorf("%w: buffer %d minutes", ErrInvalidScheduleConfig, field.BufferMinutes)
	}

	capacity := domain.DefaultMaxDogsPerSlot
	if field.MaxDogsPerSlot != 0 {
		capacity = field.MaxDogsPerSlot
		if capacity < domain.MinDogsPerSlot || capacity > domain.MaxDogsPerSlot {
			return nil, fmt.Errorf("%w: %d dogs per slot", ErrInvalidScheduleConfig, field.MaxDogsPerSlot)
		}
	}

	return &domain.FieldSchedule{
		FieldID:        field.ID,
		OperatingDays:  days,
		OpeningTime:    opening,
		ClosingTime:    closing,
		SlotDuration:   duration,
		BufferMinutes:  buffer,
		MaxDogsPerSlot: capacity,
	}, nil
}

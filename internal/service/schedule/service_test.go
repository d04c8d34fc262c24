package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	scheduleRepo "github.com/vinender/fieldsy-scheduling-service/internal/infra/storage/schedule"
	fieldClient "github.com/vinender/fieldsy-scheduling-service/internal/integrations/fieldservice"
	"github.com/vinender/fieldsy-scheduling-service/internal/service/schedule/models"
)

type stubScheduleRepo struct {
	schedule       *domain.FieldSchedule
	getErr         error
	upserted       *domain.FieldSchedule
	deleteErr      error
	deletedFieldID int64
}

func (s *stubScheduleRepo) GetByFieldID(ctx context.Context, fieldID int64) (*domain.FieldSchedule, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.schedule, nil
}

func (s *stubScheduleRepo) Upsert(ctx context.Context, fs *domain.FieldSchedule) (*domain.FieldSchedule, error) {
	s.upserted = fs
	return fs, nil
}

func (s *stubScheduleRepo) Delete(ctx context.Context, fieldID int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deletedFieldID = fieldID
	return nil
}

type stubFieldClient struct {
	field *fieldClient.Field
	err   error
}

func (s *stubFieldClient) GetActiveField(ctx context.Context, fieldID int64) (*fieldClient.Field, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.field, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validUpsertRequest() *models.UpsertScheduleRequest {
	return &models.UpsertScheduleRequest{
		UserID:              10,
		FieldID:             1,
		OperatingDays:       []string{"Monday", "Wednesday", "Friday"},
		OpeningTime:         "07:00",
		ClosingTime:         "19:00",
		SlotDurationMinutes: 60,
		BufferMinutes:       15,
		MaxDogsPerSlot:      4,
	}
}

func TestResolveForFieldPrefersStoredOverride(t *testing.T) {
	stored := &domain.FieldSchedule{
		FieldID:        1,
		OperatingDays:  domain.AllDays,
		OpeningTime:    "08:00",
		ClosingTime:    "18:00",
		SlotDuration:   domain.SlotOneHour,
		MaxDogsPerSlot: 2,
	}
	svc := NewService(&stubScheduleRepo{schedule: stored}, &stubFieldClient{}, nopLogger{})

	fs, err := svc.ResolveForField(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, stored, fs)
}

func TestResolveForFieldFallsBackToCatalogue(t *testing.T) {
	field := &fieldClient.Field{
		ID:                  1,
		OwnerID:             10,
		IsActive:            true,
		OperatingDays:       []string{"Saturday", "Sunday"},
		OpeningTime:         "8:00AM",
		ClosingTime:         "6:00PM",
		SlotDurationMinutes: 30,
		BufferMinutes:       10,
		MaxDogsPerSlot:      6,
	}
	svc := NewService(
		&stubScheduleRepo{getErr: scheduleRepo.ErrScheduleNotFound},
		&stubFieldClient{field: field},
		nopLogger{},
	)

	fs, err := svc.ResolveForField(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, fs.OperatingDays.Has(time.Sunday))
	assert.True(t, fs.OperatingDays.Has(time.Saturday))
	assert.False(t, fs.OperatingDays.Has(time.Monday))
	assert.Equal(t, "08:00", fs.OpeningTime.String())
	assert.Equal(t, "18:00", fs.ClosingTime.String())
	assert.Equal(t, domain.SlotThirtyMinutes, fs.SlotDuration)
	assert.Equal(t, 10, fs.BufferMinutes)
	assert.Equal(t, 6, fs.MaxDogsPerSlot)
}

func TestResolveForFieldDefaultsEmptyCatalogueProfile(t *testing.T) {
	// A catalogue profile with nothing filled in must still resolve: absent
	// data falls back to the marketplace defaults.
	field := &fieldClient.Field{ID: 1, OwnerID: 10, IsActive: true}
	svc := NewService(
		&stubScheduleRepo{getErr: scheduleRepo.ErrScheduleNotFound},
		&stubFieldClient{field: field},
		nopLogger{},
	)

	fs, err := svc.ResolveForField(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, domain.AllDays, fs.OperatingDays)
	assert.Equal(t, domain.DefaultOpeningTime, fs.OpeningTime.String())
	assert.Equal(t, domain.DefaultClosingTime, fs.ClosingTime.String())
	assert.Equal(t, domain.DefaultSlotDuration, fs.SlotDuration)
	assert.Equal(t, domain.DefaultBufferMinutes, fs.BufferMinutes)
	assert.Equal(t, domain.DefaultMaxDogsPerSlot, fs.MaxDogsPerSlot)
}

func TestResolveForFieldRejectsMalformedCatalogueProfile(t *testing.T) {
	// Present-but-broken catalogue data must surface as an error, not turn
	// a misconfigured field into one that is open every day.
	tests := []struct {
		name   string
		mutate func(*fieldClient.Field)
	}{
		{
			name:   "unrecognized operating day",
			mutate: func(f *fieldClient.Field) { f.OperatingDays = []string{"holidays"} },
		},
		{
			name:   "unparseable opening time",
			mutate: func(f *fieldClient.Field) { f.OpeningTime = "dawn" },
		},
		{
			name:   "unparseable closing time",
			mutate: func(f *fieldClient.Field) { f.ClosingTime = "dusk" },
		},
		{
			name:   "opening after closing",
			mutate: func(f *fieldClient.Field) { f.OpeningTime, f.ClosingTime = "18:00", "08:00" },
		},
		{
			name:   "unsupported slot duration",
			mutate: func(f *fieldClient.Field) { f.SlotDurationMinutes = 45 },
		},
		{
			name:   "negative buffer",
			mutate: func(f *fieldClient.Field) { f.BufferMinutes = -10 },
		},
		{
			name:   "capacity over the limit",
			mutate: func(f *fieldClient.Field) { f.MaxDogsPerSlot = 500 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field := &fieldClient.Field{ID: 1, OwnerID: 10, IsActive: true}
			tt.mutate(field)

			svc := NewService(
				&stubScheduleRepo{getErr: scheduleRepo.ErrScheduleNotFound},
				&stubFieldClient{field: field},
				nopLogger{},
			)

			_, err := svc.ResolveForField(context.Background(), 1)
			assert.ErrorIs(t, err, ErrInvalidScheduleConfig)
		})
	}
}

func TestDeleteRemovesOwnerOverride(t *testing.T) {
	repo := &stubScheduleRepo{}
	svc := NewService(repo, &stubFieldClient{field: &fieldClient.Field{ID: 1, OwnerID: 10}}, nopLogger{})

	err := svc.Delete(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.deletedFieldID)
}

func TestDeleteRejectsNonOwner(t *testing.T) {
	svc := NewService(&stubScheduleRepo{}, &stubFieldClient{field: &fieldClient.Field{ID: 1, OwnerID: 99}}, nopLogger{})

	err := svc.Delete(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestDeleteWithoutStoredOverride(t *testing.T) {
	repo := &stubScheduleRepo{deleteErr: scheduleRepo.ErrScheduleNotFound}
	svc := NewService(repo, &stubFieldClient{field: &fieldClient.Field{ID: 1, OwnerID: 10}}, nopLogger{})

	err := svc.Delete(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestResolveForFieldUnknownField(t *testing.T) {
	svc := NewService(
		&stubScheduleRepo{getErr: scheduleRepo.ErrScheduleNotFound},
		&stubFieldClient{err: fieldClient.ErrFieldNotFound},
		nopLogger{},
	)

	_, err := svc.ResolveForField(context.Background(), 404)
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestUpsertStoresValidatedSchedule(t *testing.T) {
	repo := &stubScheduleRepo{}
	svc := NewService(repo, &stubFieldClient{field: &fieldClient.Field{ID: 1, OwnerID: 10}}, nopLogger{})

	resp, err := svc.Upsert(context.Background(), validUpsertRequest())
	require.NoError(t, err)

	require.NotNil(t, repo.upserted)
	assert.Equal(t, int64(1), repo.upserted.FieldID)
	assert.Equal(t, []string{"Monday", "Wednesday", "Friday"}, resp.OperatingDays)
	assert.Equal(t, "07:00", resp.OpeningTime)
	assert.Equal(t, 60, resp.SlotDurationMinutes)
}

func TestUpsertRejectsNonOwner(t *testing.T) {
	svc := NewService(&stubScheduleRepo{}, &stubFieldClient{field: &fieldClient.Field{ID: 1, OwnerID: 99}}, nopLogger{})

	_, err := svc.Upsert(context.Background(), validUpsertRequest())
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpsertValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.UpsertScheduleRequest)
		wantErr error
	}{
		{
			name:    "empty operating days",
			mutate:  func(r *models.UpsertScheduleRequest) { r.OperatingDays = nil },
			wantErr: ErrInvalidOperatingDays,
		},
		{
			name:    "unknown day name",
			mutate:  func(r *models.UpsertScheduleRequest) { r.OperatingDays = []string{"Funday"} },
			wantErr: ErrInvalidOperatingDays,
		},
		{
			name:    "opening after closing",
			mutate:  func(r *models.UpsertScheduleRequest) { r.OpeningTime, r.ClosingTime = "19:00", "07:00" },
			wantErr: ErrInvalidOperatingHours,
		},
		{
			name:    "opening equals closing",
			mutate:  func(r *models.UpsertScheduleRequest) { r.ClosingTime = r.OpeningTime },
			wantErr: ErrInvalidOperatingHours,
		},
		{
			name:    "unparseable opening time",
			mutate:  func(r *models.UpsertScheduleRequest) { r.OpeningTime = "early" },
			wantErr: ErrInvalidOperatingHours,
		},
		{
			name:    "unsupported slot duration",
			mutate:  func(r *models.UpsertScheduleRequest) { r.SlotDurationMinutes = 45 },
			wantErr: ErrInvalidSlotDuration,
		},
		{
			name:    "negative buffer",
			mutate:  func(r *models.UpsertScheduleRequest) { r.BufferMinutes = -5 },
			wantErr: ErrInvalidBuffer,
		},
		{
			name:    "zero capacity",
			mutate:  func(r *models.UpsertScheduleRequest) { r.MaxDogsPerSlot = 0 },
			wantErr: ErrInvalidCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&stubScheduleRepo{}, &stubFieldClient{field: &fieldClient.Field{ID: 1, OwnerID: 10}}, nopLogger{})

			req := validUpsertRequest()
			tt.mutate(req)

			_, err := svc.Upsert(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpsertAcceptsTwelveHourTimes(t *testing.T) {
	repo := &stubScheduleRepo{}
	svc := NewService(repo, &stubFieldClient{field: &fieldClient.Field{ID: 1, OwnerID: 10}}, nopLogger{})

	req := validUpsertRequest()
	req.OpeningTime = "7:00AM"
	req.ClosingTime = "7:00PM"

	resp, err := svc.Upsert(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "07:00", resp.OpeningTime)
	assert.Equal(t, "19:00", resp.ClosingTime)
}

package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vinender/fieldsy-scheduling-service/internal/domain"
	"github.com/vinender/fieldsy-scheduling-service/pkg/dbmetrics"
	"github.com/vinender/fieldsy-scheduling-service/pkg/psqlbuilder"
)

var scheduleColumns = []string{
	"id",
	"field_id",
	"operating_days",
	"opening_time",
	"closing_time",
	"slot_duration_minutes",
	"buffer_minutes",
	"max_dogs_per_slot",
	"created_at",
	"updated_at",
}

// Repository persists per-field operating schedules in PostgreSQL.
// Operating days are stored as a seven-bit mask, bit i = time.Weekday(i).
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByFieldID returns the schedule of a field.
func (r *Repository) GetByFieldID(ctx context.Context, fieldID int64) (*domain.FieldSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("field_schedules").
		Where(squirrel.Eq{"field_id": fieldID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByFieldID - build select query: %v", ErrBuildQuery, err)
	}

	fs, err := scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFieldID - scan schedule: %v", ErrScanRow, err)
	}

	return fs, nil
}

// Upsert writes the schedule of a field, inserting or replacing in one
// statement. Field owners edit their schedule through a single form, so the
// caller never needs to know whether a row already exists.
func (r *Repository) Upsert(ctx context.Context, fs *domain.FieldSchedule) (*domain.FieldSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("field_schedules").
		Columns(
			"field_id",
			"operating_days",
			"opening_time",
			"closing_time",
			"slot_duration_minutes",
			"buffer_minutes",
			"max_dogs_per_slot",
		).
		Values(
			fs.FieldID,
			int(fs.OperatingDays),
			fs.OpeningTime,
			fs.ClosingTime,
			fs.SlotDuration.Minutes(),
			fs.BufferMinutes,
			fs.MaxDogsPerSlot,
		).
		Suffix(`ON CONFLICT (field_id) DO UPDATE SET
			operating_days = EXCLUDED.operating_days,
			opening_time = EXCLUDED.opening_time,
			closing_time = EXCLUDED.closing_time,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			buffer_minutes = EXCLUDED.buffer_minutes,
			max_dogs_per_slot = EXCLUDED.max_dogs_per_slot,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&fs.ID, &createdAt, &updatedAt)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	fs.CreatedAt = createdAt.Time
	fs.UpdatedAt = updatedAt.Time

	return fs, nil
}

// Delete removes the schedule of a field.
func (r *Repository) Delete(ctx context.Context, fieldID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("field_schedules").
		Where(squirrel.Eq{"field_id": fieldID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSchedule(row rowScanner) (*domain.FieldSchedule, error) {
	var fs domain.FieldSchedule
	var operatingDays int
	var slotDuration int
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&fs.ID,
		&fs.FieldID,
		&operatingDays,
		&fs.OpeningTime,
		&fs.ClosingTime,
		&slotDuration,
		&fs.BufferMinutes,
		&fs.MaxDogsPerSlot,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	fs.OperatingDays = domain.DaySet(operatingDays)
	fs.SlotDuration = domain.SlotDuration(slotDuration)
	fs.CreatedAt = createdAt.Time
	fs.UpdatedAt = updatedAt.Time

	return &fs, nil
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"hospital-service/internal/models"
	"hospital-service/pkg/response"
)

// #### weekly schedules ####

func (s *Storage) CreateSchedule(ctx context.Context, schedule *models.WeeklySchedule) (string, error) {
	const op = "storage.postgres.CreateSchedule"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO weekly_schedules (id, doctor_id, day_of_week, start_time, end_time, slot_minutes, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		schedule.ID, schedule.DoctorID, schedule.DayOfWeek, schedule.StartTime, schedule.EndTime,
		schedule.SlotMinutes, schedule.Active,
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return schedule.ID, nil
}

const scheduleColumns = `id, doctor_id, day_of_week, start_time, end_time, slot_minutes, active`

func scanSchedule(row interface{ Scan(...any) error }) (*models.WeeklySchedule, error) {
	var schedule models.WeeklySchedule

	err := row.Scan(
		&schedule.ID, &schedule.DoctorID, &schedule.DayOfWeek, &schedule.StartTime,
		&schedule.EndTime, &schedule.SlotMinutes, &schedule.Active,
	)
	if err != nil {
		return nil, err
	}

	return &schedule, nil
}

func (s *Storage) GetSchedule(ctx context.Context, id string) (*models.WeeklySchedule, error) {
	const op = "storage.postgres.GetSchedule"

	row := s.db.QueryRowContext(ctx, `SELECT `+scheduleColumns+` FROM weekly_schedules WHERE id=$1`, id)

	schedule, err := scanSchedule(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return schedule, nil
}

func (s *Storage) ListSchedules(ctx context.Context, doctorID *string) ([]*models.WeeklySchedule, error) {
	const op = "storage.postgres.ListSchedules"

	query := `SELECT ` + scheduleColumns + ` FROM weekly_schedules`
	var args []any

	if doctorID != nil {
		query += ` WHERE doctor_id=$1`
		args = append(args, *doctorID)
	}

	query += ` ORDER BY doctor_id, day_of_week, start_time`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.WeeklySchedule
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, schedule)
	}

	return result, rows.Err()
}

func (s *Storage) ListActiveSchedulesForDay(ctx context.Context, doctorID string, dayOfWeek int) ([]*models.WeeklySchedule, error) {
	const op = "storage.postgres.ListActiveSchedulesForDay"

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+scheduleColumns+` FROM weekly_schedules
		WHERE doctor_id=$1 AND day_of_week=$2 AND active
		ORDER BY start_time`,
		doctorID, dayOfWeek,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.WeeklySchedule
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, schedule)
	}

	return result, rows.Err()
}

func (s *Storage) UpdateSchedule(ctx context.Context, schedule *models.WeeklySchedule) error {
	const op = "storage.postgres.UpdateSchedule"

	res, err := s.db.ExecContext(ctx, `
		UPDATE weekly_schedules
		SET doctor_id=$1, day_of_week=$2, start_time=$3, end_time=$4, slot_minutes=$5, active=$6
		WHERE id=$7`,
		schedule.DoctorID, schedule.DayOfWeek, schedule.StartTime, schedule.EndTime,
		schedule.SlotMinutes, schedule.Active, schedule.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(res, op)
}

func (s *Storage) DeleteSchedule(ctx context.Context, id string) error {
	const op = "storage.postgres.DeleteSchedule"

	res, err := s.db.ExecContext(ctx, `DELETE FROM weekly_schedules WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(res, op)
}

// #### schedule exceptions ####

// UpsertScheduleException replaces any existing exception for the same
// (doctor, date), keeping the one-exception-per-date invariant.
func (s *Storage) UpsertScheduleException(ctx context.Context, exc *models.ScheduleException) (string, error) {
	const op = "storage.postgres.UpsertScheduleException"

	var id string

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO schedule_exceptions (id, doctor_id, date, is_available, custom_start_time, custom_end_time, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (doctor_id, date)
		DO UPDATE
		SET is_available = EXCLUDED.is_available,
			custom_start_time = EXCLUDED.custom_start_time,
			custom_end_time = EXCLUDED.custom_end_time,
			notes = EXCLUDED.notes
		RETURNING id`,
		exc.ID, exc.DoctorID, exc.Date, exc.IsAvailable, exc.CustomStartTime, exc.CustomEndTime, exc.Notes,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

const exceptionColumns = `id, doctor_id, date, is_available, custom_start_time, custom_end_time, notes`

func scanException(row interface{ Scan(...any) error }) (*models.ScheduleException, error) {
	var exc models.ScheduleException

	err := row.Scan(
		&exc.ID, &exc.DoctorID, &exc.Date, &exc.IsAvailable,
		&exc.CustomStartTime, &exc.CustomEndTime, &exc.Notes,
	)
	if err != nil {
		return nil, err
	}

	return &exc, nil
}

func (s *Storage) GetScheduleException(ctx context.Context, id string) (*models.ScheduleException, error) {
	const op = "storage.postgres.GetScheduleException"

	row := s.db.QueryRowContext(ctx, `SELECT `+exceptionColumns+` FROM schedule_exceptions WHERE id=$1`, id)

	exc, err := scanException(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return exc, nil
}

func (s *Storage) GetExceptionByDate(ctx context.Context, doctorID, date string) (*models.ScheduleException, error) {
	const op = "storage.postgres.GetExceptionByDate"

	row := s.db.QueryRowContext(ctx, `
		SELECT `+exceptionColumns+` FROM schedule_exceptions WHERE doctor_id=$1 AND date=$2`,
		doctorID, date,
	)

	exc, err := scanException(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return exc, nil
}

func (s *Storage) ListScheduleExceptions(ctx context.Context, doctorID *string) ([]*models.ScheduleException, error) {
	const op = "storage.postgres.ListScheduleExceptions"

	query := `SELECT ` + exceptionColumns + ` FROM schedule_exceptions`
	var args []any

	if doctorID != nil {
		query += ` WHERE doctor_id=$1`
		args = append(args, *doctorID)
	}

	query += ` ORDER BY date`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.ScheduleException
	for rows.Next() {
		exc, err := scanException(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, exc)
	}

	return result, rows.Err()
}

func (s *Storage) DeleteScheduleException(ctx context.Context, id string) error {
	const op = "storage.postgres.DeleteScheduleException"

	res, err := s.db.ExecContext(ctx, `DELETE FROM schedule_exceptions WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(res, op)
}

package postgres

import (
	"context"
	"fmt"

	"hospital-service/internal/models"
)

// #### dashboard counters ####

func (s *Storage) countRow(ctx context.Context, op, query string, args ...any) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (s *Storage) CountActiveDoctors(ctx context.Context) (int, error) {
	const op = "storage.postgres.CountActiveDoctors"

	return s.countRow(ctx, op, `SELECT COUNT(*) FROM doctors WHERE active`)
}

func (s *Storage) CountActiveDiagnosticTests(ctx context.Context) (int, error) {
	const op = "storage.postgres.CountActiveDiagnosticTests"

	return s.countRow(ctx, op, `SELECT COUNT(*) FROM diagnostic_tests WHERE active`)
}

func (s *Storage) CountAppointmentsOnDate(ctx context.Context, date string) (int, error) {
	const op = "storage.postgres.CountAppointmentsOnDate"

	return s.countRow(ctx, op, `SELECT COUNT(*) FROM appointments WHERE date_time LIKE $1`, date+`%`)
}

func (s *Storage) CountDiagnosticBookingsOnDate(ctx context.Context, date string) (int, error) {
	const op = "storage.postgres.CountDiagnosticBookingsOnDate"

	return s.countRow(ctx, op, `SELECT COUNT(*) FROM diagnostic_bookings WHERE date_time LIKE $1`, date+`%`)
}

func (s *Storage) CountUnreadContactMessages(ctx context.Context) (int, error) {
	const op = "storage.postgres.CountUnreadContactMessages"

	return s.countRow(ctx, op, `SELECT COUNT(*) FROM contact_messages WHERE NOT read`)
}

func (s *Storage) CountAppointmentsByStatus(ctx context.Context) (map[models.BookingStatus]int, error) {
	const op = "storage.postgres.CountAppointmentsByStatus"

	rows, err := s.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM appointments GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	result := make(map[models.BookingStatus]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result[models.BookingStatus(status)] = n
	}

	return result, rows.Err()
}

func (s *Storage) ListRecentAppointments(ctx context.Context, limit int) ([]*models.Appointment, error) {
	const op = "storage.postgres.ListRecentAppointments"

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.Appointment
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, appointment)
	}

	return result, rows.Err()
}

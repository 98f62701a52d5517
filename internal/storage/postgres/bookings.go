package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"hospital-service/internal/models"
	"hospital-service/internal/service"
	"hospital-service/pkg/response"
)

// #### appointments ####

// CreateAppointment runs the insert in its own transaction. A violation of
// the appointments_slot_guard index means a concurrent booking won the slot.
func (s *Storage) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	const op = "storage.postgres.CreateAppointment"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("%s: begin tx: %w", op, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO appointments (id, reference_number, doctor_id, date_time, patient_name, patient_phone, patient_email, patient_gender, patient_dob, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		appointment.ID, appointment.ReferenceNumber, appointment.DoctorID, appointment.DateTime,
		appointment.PatientName, appointment.PatientPhone, appointment.PatientEmail,
		string(appointment.PatientGender), appointment.PatientDOB, string(appointment.Status), appointment.Notes,
	)
	if err != nil {
		_ = tx.Rollback()
		if isUniqueViolation(err) {
			return "", fmt.Errorf("%s: %w", op, response.ErrSlotNotAvailable)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("%s: commit: %w", op, err)
	}

	return appointment.ID, nil
}

const appointmentColumns = `id, reference_number, doctor_id, date_time, patient_name, patient_phone, patient_email, patient_gender, patient_dob, status, notes, created_at`

func scanAppointment(row interface{ Scan(...any) error }) (*models.Appointment, error) {
	var a models.Appointment

	err := row.Scan(
		&a.ID, &a.ReferenceNumber, &a.DoctorID, &a.DateTime, &a.PatientName, &a.PatientPhone,
		&a.PatientEmail, &a.PatientGender, &a.PatientDOB, &a.Status, &a.Notes, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (s *Storage) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	const op = "storage.postgres.GetAppointment"

	row := s.db.QueryRowContext(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id=$1`, id)

	appointment, err := scanAppointment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return appointment, nil
}

func (s *Storage) ListAppointments(ctx context.Context, filters *service.AppointmentFilters) ([]*models.Appointment, error) {
	const op = "storage.postgres.ListAppointments"

	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE 1=1`
	var args []any

	if filters != nil {
		if filters.DoctorID != nil {
			args = append(args, *filters.DoctorID)
			query += fmt.Sprintf(` AND doctor_id=$%d`, len(args))
		}
		if filters.Status != nil {
			args = append(args, *filters.Status)
			query += fmt.Sprintf(` AND status=$%d`, len(args))
		}
		if filters.Date != nil {
			args = append(args, *filters.Date+`%`)
			query += fmt.Sprintf(` AND date_time LIKE $%d`, len(args))
		}
	}

	query += ` ORDER BY date_time DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
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

// ListBookedTimes returns the date_time of every live booking the doctor has
// on the date. Cancelled, completed and no-show rows do not hold the slot.
func (s *Storage) ListBookedTimes(ctx context.Context, doctorID, date string) ([]string, error) {
	const op = "storage.postgres.ListBookedTimes"

	rows, err := s.db.QueryContext(ctx, `
		SELECT date_time FROM appointments
		WHERE doctor_id=$1 AND date_time LIKE $2 AND status IN ('new', 'confirmed')`,
		doctorID, date+`%`,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var dt string
		if err := rows.Scan(&dt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, dt)
	}

	return result, rows.Err()
}

func (s *Storage) UpdateAppointmentStatus(ctx context.Context, id string, status models.BookingStatus) error {
	const op = "storage.postgres.UpdateAppointmentStatus"

	res, err := s.db.ExecContext(ctx, `UPDATE appointments SET status=$1 WHERE id=$2`, string(status), id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(res, op)
}

// UpdateAppointmentDateTime moves a booking to a new slot. The partial
// unique index fires on UPDATE the same as on INSERT, so a taken slot
// surfaces as ErrSlotNotAvailable.
func (s *Storage) UpdateAppointmentDateTime(ctx context.Context, id string, dateTime string) error {
	const op = "storage.postgres.UpdateAppointmentDateTime"

	res, err := s.db.ExecContext(ctx, `UPDATE appointments SET date_time=$1 WHERE id=$2`, dateTime, id)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, response.ErrSlotNotAvailable)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(res, op)
}

func (s *Storage) UpdateAppointmentNotes(ctx context.Context, id string, notes string) error {
	const op = "storage.postgres.UpdateAppointmentNotes"

	res, err := s.db.ExecContext(ctx, `UPDATE appointments SET notes=$1 WHERE id=$2`, notes, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(res, op)
}

// #### diagnostic tests ####

func (s *Storage) CreateDiagnosticTest(ctx context.Context, test *models.DiagnosticTest) (string, error) {
	const op = "storage.postgres.CreateDiagnosticTest"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO diagnostic_tests (id, name, category, description, preparation, price, report_time, duration_minutes, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		test.ID, test.Name, string(test.Category), test.Description, test.Preparation,
		test.Price, test.ReportTime, test.DurationMinutes, test.Active,
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return test.ID, nil
}

const testColumns = `id, name, category, description, preparation, price, report_time, duration_minutes, active, created_at`

func scanDiagnosticTest(row interface{ Scan(...any) error }) (*models.DiagnosticTest, error) {
	var t models.DiagnosticTest

	err := row.Scan(
		&t.ID, &t.Name, &t.Category, &t.Description, &t.Preparation,
		&t.Price, &t.ReportTime, &t.DurationMinutes, &t.Active, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (s *Storage) GetDiagnosticTest(ctx context.Context, id string) (*models.DiagnosticTest, error) {
	const op = "storage.postgres.GetDiagnosticTest"

	row := s.db.QueryRowContext(ctx, `SELECT `+testColumns+` FROM diagnostic_tests WHERE id=$1`, id)

	test, err := scanDiagnosticTest(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return test, nil
}

func (s *Storage) ListDiagnosticTests(ctx context.Context, category *string, activeOnly bool) ([]*models.DiagnosticTest, error) {
	const op = "storage.postgres.ListDiagnosticTests"

	query := `SELECT ` + testColumns + ` FROM diagnostic_tests WHERE 1=1`
	var args []any

	if activeOnly {
		query += ` AND active`
	}
	if category != nil {
		args = append(args, *category)
		query += fmt.Sprintf(` AND category=$%d`, len(args))
	}

	query += ` ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.DiagnosticTest
	for rows.Next() {
		test, err := scanDiagnosticTest(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, test)
	}

	return result, rows.Err()
}

func (s *Storage) UpdateDiagnosticTest(ctx context.Context, test *models.DiagnosticTest) error {
	const op = "storage.postgres.UpdateDiagnosticTest"

	res, err := s.db.ExecContext(ctx, `
		UPDATE diagnostic_tests
		SET name=$1, category=$2, description=$3, preparation=$4, price=$5, report_time=$6, duration_minutes=$7, active=$8
		WHERE id=$9`,
		test.Name, string(test.Category), test.Description, test.Preparation, test.Price,
		test.ReportTime, test.DurationMinutes, test.Active, test.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(res, op)
}

func (s *Storage) DeleteDiagnosticTest(ctx context.Context, id string) error {
	const op = "storage.postgres.DeleteDiagnosticTest"

	res, err := s.db.ExecContext(ctx, `UPDATE diagnostic_tests SET active=FALSE WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(res, op)
}

// #### diagnostic bookings ####

func (s *Storage) CreateDiagnosticBooking(ctx context.Context, booking *models.DiagnosticBooking) (string, error) {
	const op = "storage.postgres.CreateDiagnosticBooking"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO diagnostic_bookings (id, reference_number, test_id, date_time, patient_name, patient_phone, patient_email, patient_gender, patient_dob, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		booking.ID, booking.ReferenceNumber, booking.TestID, booking.DateTime,
		booking.PatientName, booking.PatientPhone, booking.PatientEmail,
		string(booking.PatientGender), booking.PatientDOB, string(booking.Status), booking.Notes,
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return booking.ID, nil
}

const diagnosticBookingColumns = `id, reference_number, test_id, date_time, patient_name, patient_phone, patient_email, patient_gender, patient_dob, status, notes, created_at`

func scanDiagnosticBooking(row interface{ Scan(...any) error }) (*models.DiagnosticBooking, error) {
	var b models.DiagnosticBooking

	err := row.Scan(
		&b.ID, &b.ReferenceNumber, &b.TestID, &b.DateTime, &b.PatientName, &b.PatientPhone,
		&b.PatientEmail, &b.PatientGender, &b.PatientDOB, &b.Status, &b.Notes, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (s *Storage) GetDiagnosticBooking(ctx context.Context, id string) (*models.DiagnosticBooking, error) {
	const op = "storage.postgres.GetDiagnosticBooking"

	row := s.db.QueryRowContext(ctx, `SELECT `+diagnosticBookingColumns+` FROM diagnostic_bookings WHERE id=$1`, id)

	booking, err := scanDiagnosticBooking(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return booking, nil
}

func (s *Storage) ListDiagnosticBookings(ctx context.Context, filters *service.DiagnosticBookingFilters) ([]*models.DiagnosticBooking, error) {
	const op = "storage.postgres.ListDiagnosticBookings"

	query := `SELECT ` + diagnosticBookingColumns + ` FROM diagnostic_bookings WHERE 1=1`
	var args []any

	if filters != nil {
		if filters.TestID != nil {
			args = append(args, *filters.TestID)
			query += fmt.Sprintf(` AND test_id=$%d`, len(args))
		}
		if filters.Status != nil {
			args = append(args, *filters.Status)
			query += fmt.Sprintf(` AND status=$%d`, len(args))
		}
		if filters.Date != nil {
			args = append(args, *filters.Date+`%`)
			query += fmt.Sprintf(` AND date_time LIKE $%d`, len(args))
		}
	}

	query += ` ORDER BY date_time DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.DiagnosticBooking
	for rows.Next() {
		booking, err := scanDiagnosticBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, booking)
	}

	return result, rows.Err()
}

func (s *Storage) UpdateDiagnosticBookingStatus(ctx context.Context, id string, status models.BookingStatus) error {
	const op = "storage.postgres.UpdateDiagnosticBookingStatus"

	res, err := s.db.ExecContext(ctx, `UPDATE diagnostic_bookings SET status=$1 WHERE id=$2`, string(status), id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(res, op)
}

func (s *Storage) UpdateDiagnosticBookingNotes(ctx context.Context, id string, notes string) error {
	const op = "storage.postgres.UpdateDiagnosticBookingNotes"

	res, err := s.db.ExecContext(ctx, `UPDATE diagnostic_bookings SET notes=$1 WHERE id=$2`, notes, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(res, op)
}

func (s *Storage) UpdateDiagnosticBookingDateTime(ctx context.Context, id string, dateTime string) error {
	const op = "storage.postgres.UpdateDiagnosticBookingDateTime"

	res, err := s.db.ExecContext(ctx, `UPDATE diagnostic_bookings SET date_time=$1 WHERE id=$2`, dateTime, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(res, op)
}

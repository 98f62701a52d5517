package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"hospital-service/internal/models"
	"hospital-service/internal/service"
	"hospital-service/pkg/response"
)

// #### users ####

func (s *Storage) CreateUser(ctx context.Context, user *models.User) (string, error) {
	const op = "storage.postgres.CreateUser"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, role, name)
		VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.PasswordHash, string(user.Role), user.Name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("%s: %w", op, response.ErrConflict)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return user.ID, nil
}

func (s *Storage) GetUser(ctx context.Context, id string) (*models.User, error) {
	const op = "storage.postgres.GetUser"

	return s.scanUser(ctx, op, `SELECT id, username, password_hash, role, name, created_at FROM users WHERE id=$1`, id)
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.postgres.GetUserByUsername"

	return s.scanUser(ctx, op, `SELECT id, username, password_hash, role, name, created_at FROM users WHERE username=$1`, username)
}

func (s *Storage) scanUser(ctx context.Context, op, query string, arg any) (*models.User, error) {
	var user models.User

	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.Name, &user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

// #### specialties ####

func (s *Storage) CreateSpecialty(ctx context.Context, specialty *models.Specialty) (string, error) {
	const op = "storage.postgres.CreateSpecialty"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO specialties (id, name, description, icon, active)
		VALUES ($1, $2, $3, $4, $5)`,
		specialty.ID, specialty.Name, specialty.Description, specialty.Icon, specialty.Active,
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return specialty.ID, nil
}

func (s *Storage) GetSpecialty(ctx context.Context, id string) (*models.Specialty, error) {
	const op = "storage.postgres.GetSpecialty"

	var specialty models.Specialty

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, description, icon, active, created_at FROM specialties WHERE id=$1`, id,
	).Scan(&specialty.ID, &specialty.Name, &specialty.Description, &specialty.Icon, &specialty.Active, &specialty.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &specialty, nil
}

func (s *Storage) ListSpecialties(ctx context.Context, activeOnly bool) ([]*models.Specialty, error) {
	const op = "storage.postgres.ListSpecialties"

	query := `SELECT id, name, description, icon, active, created_at FROM specialties`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.Specialty
	for rows.Next() {
		var specialty models.Specialty
		if err := rows.Scan(&specialty.ID, &specialty.Name, &specialty.Description, &specialty.Icon, &specialty.Active, &specialty.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &specialty)
	}

	return result, rows.Err()
}

func (s *Storage) UpdateSpecialty(ctx context.Context, specialty *models.Specialty) error {
	const op = "storage.postgres.UpdateSpecialty"

	res, err := s.db.ExecContext(ctx, `
		UPDATE specialties SET name=$1, description=$2, icon=$3, active=$4 WHERE id=$5`,
		specialty.Name, specialty.Description, specialty.Icon, specialty.Active, specialty.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(res, op)
}

func (s *Storage) DeleteSpecialty(ctx context.Context, id string) error {
	const op = "storage.postgres.DeleteSpecialty"

	res, err := s.db.ExecContext(ctx, `DELETE FROM specialties WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(res, op)
}

// #### doctors ####

func (s *Storage) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	const op = "storage.postgres.CreateDoctor"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO doctors (id, name, specialty_id, qualifications, bio, photo, fee, tags, gender, languages, experience_years, phone, email, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		doctor.ID, doctor.Name, doctor.SpecialtyID, doctor.Qualifications, doctor.Bio, doctor.Photo,
		doctor.Fee, pq.Array(doctor.Tags), string(doctor.Gender), pq.Array(doctor.Languages),
		doctor.ExperienceYears, doctor.Phone, doctor.Email, doctor.Active,
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return doctor.ID, nil
}

const doctorColumns = `id, name, specialty_id, qualifications, bio, photo, fee, tags, gender, languages, experience_years, phone, email, active, created_at`

func scanDoctor(row interface{ Scan(...any) error }) (*models.Doctor, error) {
	var doctor models.Doctor
	var tags, languages pq.StringArray

	err := row.Scan(
		&doctor.ID, &doctor.Name, &doctor.SpecialtyID, &doctor.Qualifications, &doctor.Bio,
		&doctor.Photo, &doctor.Fee, &tags, &doctor.Gender, &languages,
		&doctor.ExperienceYears, &doctor.Phone, &doctor.Email, &doctor.Active, &doctor.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	doctor.Tags = tags
	doctor.Languages = languages

	return &doctor, nil
}

func (s *Storage) GetDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	const op = "storage.postgres.GetDoctor"

	row := s.db.QueryRowContext(ctx, `SELECT `+doctorColumns+` FROM doctors WHERE id=$1`, id)

	doctor, err := scanDoctor(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return doctor, nil
}

func (s *Storage) ListDoctors(ctx context.Context, filters *service.DoctorFilters) ([]*models.Doctor, error) {
	const op = "storage.postgres.ListDoctors"

	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE 1=1`
	var args []any

	if filters != nil {
		if filters.ActiveOnly {
			query += ` AND active`
		}
		if filters.SpecialtyID != nil {
			args = append(args, *filters.SpecialtyID)
			query += fmt.Sprintf(` AND specialty_id=$%d`, len(args))
		}
		if filters.Q != nil {
			args = append(args, "%"+*filters.Q+"%")
			query += fmt.Sprintf(` AND (name ILIKE $%d OR qualifications ILIKE $%d)`, len(args), len(args))
		}
	}

	query += ` ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.Doctor
	for rows.Next() {
		doctor, err := scanDoctor(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, doctor)
	}

	return result, rows.Err()
}

func (s *Storage) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	const op = "storage.postgres.UpdateDoctor"

	res, err := s.db.ExecContext(ctx, `
		UPDATE doctors
		SET name=$1, specialty_id=$2, qualifications=$3, bio=$4, photo=$5, fee=$6, tags=$7,
			gender=$8, languages=$9, experience_years=$10, phone=$11, email=$12, active=$13
		WHERE id=$14`,
		doctor.Name, doctor.SpecialtyID, doctor.Qualifications, doctor.Bio, doctor.Photo,
		doctor.Fee, pq.Array(doctor.Tags), string(doctor.Gender), pq.Array(doctor.Languages),
		doctor.ExperienceYears, doctor.Phone, doctor.Email, doctor.Active, doctor.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(res, op)
}

func (s *Storage) DeactivateDoctor(ctx context.Context, id string) error {
	const op = "storage.postgres.DeactivateDoctor"

	res, err := s.db.ExecContext(ctx, `UPDATE doctors SET active=FALSE WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(res, op)
}

func checkAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	return nil
}

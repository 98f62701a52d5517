package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type Storage struct {
	db *sql.DB
}

func New(storagePath string) (*Storage, error) {
	const op = "storage.postgres.New"

	db, err := sql.Open("postgres", storagePath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("%s: init schema: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL,
	name          TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS specialties (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	icon        TEXT NOT NULL DEFAULT '',
	active      BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS doctors (
	id               TEXT PRIMARY KEY,
	name             TEXT NOT NULL,
	specialty_id     TEXT NOT NULL REFERENCES specialties(id),
	qualifications   TEXT NOT NULL DEFAULT '',
	bio              TEXT NOT NULL DEFAULT '',
	photo            TEXT NOT NULL DEFAULT '',
	fee              TEXT NOT NULL DEFAULT 'Call for price',
	tags             TEXT[] NOT NULL DEFAULT '{}',
	gender           TEXT NOT NULL DEFAULT '',
	languages        TEXT[] NOT NULL DEFAULT '{}',
	experience_years INTEGER NOT NULL DEFAULT 0,
	phone            TEXT NOT NULL DEFAULT '',
	email            TEXT NOT NULL DEFAULT '',
	active           BOOLEAN NOT NULL DEFAULT TRUE,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS weekly_schedules (
	id           TEXT PRIMARY KEY,
	doctor_id    TEXT NOT NULL REFERENCES doctors(id),
	day_of_week  INTEGER NOT NULL CHECK (day_of_week BETWEEN 0 AND 6),
	start_time   TEXT NOT NULL,
	end_time     TEXT NOT NULL,
	slot_minutes INTEGER NOT NULL DEFAULT 15,
	active       BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS schedule_exceptions (
	id                TEXT PRIMARY KEY,
	doctor_id         TEXT NOT NULL REFERENCES doctors(id),
	date              TEXT NOT NULL,
	is_available      BOOLEAN NOT NULL DEFAULT FALSE,
	custom_start_time TEXT NOT NULL DEFAULT '',
	custom_end_time   TEXT NOT NULL DEFAULT '',
	notes             TEXT NOT NULL DEFAULT '',
	UNIQUE (doctor_id, date)
);

CREATE TABLE IF NOT EXISTS appointments (
	id               TEXT PRIMARY KEY,
	reference_number TEXT NOT NULL UNIQUE,
	doctor_id        TEXT NOT NULL REFERENCES doctors(id),
	date_time        TEXT NOT NULL,
	patient_name     TEXT NOT NULL,
	patient_phone    TEXT NOT NULL,
	patient_email    TEXT NOT NULL DEFAULT '',
	patient_gender   TEXT NOT NULL DEFAULT '',
	patient_dob      TEXT NOT NULL DEFAULT '',
	status           TEXT NOT NULL DEFAULT 'new',
	notes            TEXT NOT NULL DEFAULT '',
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

-- Double-booking guard: one live appointment per doctor per slot.
CREATE UNIQUE INDEX IF NOT EXISTS appointments_slot_guard
	ON appointments (doctor_id, date_time)
	WHERE status IN ('new', 'confirmed');

CREATE TABLE IF NOT EXISTS diagnostic_tests (
	id               TEXT PRIMARY KEY,
	name             TEXT NOT NULL,
	category         TEXT NOT NULL,
	description      TEXT NOT NULL DEFAULT '',
	preparation      TEXT NOT NULL DEFAULT '',
	price            TEXT NOT NULL DEFAULT 'Call for price',
	report_time      TEXT NOT NULL DEFAULT '',
	duration_minutes INTEGER NOT NULL DEFAULT 0,
	active           BOOLEAN NOT NULL DEFAULT TRUE,
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS diagnostic_bookings (
	id               TEXT PRIMARY KEY,
	reference_number TEXT NOT NULL UNIQUE,
	test_id          TEXT NOT NULL REFERENCES diagnostic_tests(id),
	date_time        TEXT NOT NULL,
	patient_name     TEXT NOT NULL,
	patient_phone    TEXT NOT NULL,
	patient_email    TEXT NOT NULL DEFAULT '',
	patient_gender   TEXT NOT NULL DEFAULT '',
	patient_dob      TEXT NOT NULL DEFAULT '',
	status           TEXT NOT NULL DEFAULT 'new',
	notes            TEXT NOT NULL DEFAULT '',
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS blog_posts (
	id               TEXT PRIMARY KEY,
	title            TEXT NOT NULL,
	slug             TEXT NOT NULL UNIQUE,
	content          TEXT NOT NULL DEFAULT '',
	excerpt          TEXT NOT NULL DEFAULT '',
	category         TEXT NOT NULL DEFAULT '',
	tags             TEXT[] NOT NULL DEFAULT '{}',
	author           TEXT NOT NULL DEFAULT 'Admin',
	featured_image   TEXT NOT NULL DEFAULT '',
	meta_title       TEXT NOT NULL DEFAULT '',
	meta_description TEXT NOT NULL DEFAULT '',
	published        BOOLEAN NOT NULL DEFAULT TRUE,
	views            INTEGER NOT NULL DEFAULT 0,
	published_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS contact_messages (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	phone      TEXT NOT NULL DEFAULT '',
	subject    TEXT NOT NULL,
	message    TEXT NOT NULL,
	read       BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS site_settings (
	id                TEXT PRIMARY KEY DEFAULT 'site_settings',
	hospital_name     TEXT NOT NULL DEFAULT 'Sadiqabad Medical Complex',
	tagline           TEXT NOT NULL DEFAULT 'Your Health, Our Priority',
	phone             TEXT NOT NULL DEFAULT '+92-300-1234567',
	whatsapp          TEXT NOT NULL DEFAULT '+92-300-1234567',
	email             TEXT NOT NULL DEFAULT 'info@sadiqabadmedical.com',
	address           TEXT NOT NULL DEFAULT 'Main Hospital Road, Sadiqabad, Punjab, Pakistan',
	working_hours     TEXT NOT NULL DEFAULT 'Mon-Sat: 8:00 AM - 10:00 PM, Sun: 9:00 AM - 5:00 PM',
	emergency_hours   TEXT NOT NULL DEFAULT '24/7 Emergency Services',
	google_maps_embed TEXT NOT NULL DEFAULT '',
	facebook_url      TEXT NOT NULL DEFAULT '',
	twitter_url       TEXT NOT NULL DEFAULT '',
	instagram_url     TEXT NOT NULL DEFAULT '',
	about_text        TEXT NOT NULL DEFAULT '',
	mission_text      TEXT NOT NULL DEFAULT '',
	adsense_enabled   BOOLEAN NOT NULL DEFAULT FALSE,
	adsense_client_id TEXT NOT NULL DEFAULT ''
);

INSERT INTO site_settings (id) VALUES ('site_settings') ON CONFLICT DO NOTHING;
`

package models

import "time"

type BookingStatus string

const (
	BookingNew       BookingStatus = "new"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
	BookingNoShow    BookingStatus = "no_show"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleReception UserRole = "reception"
)

type User struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Role         UserRole  `db:"role"`
	Name         string    `db:"name"`
	CreatedAt    time.Time `db:"created_at"`
}

type Specialty struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Icon        string    `db:"icon"`
	Active      bool      `db:"active"`
	CreatedAt   time.Time `db:"created_at"`
}

type Doctor struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	SpecialtyID     string    `db:"specialty_id"`
	Qualifications  string    `db:"qualifications"`
	Bio             string    `db:"bio"`
	Photo           string    `db:"photo"`
	Fee             string    `db:"fee"`
	Tags            []string  `db:"tags"`
	Gender          Gender    `db:"gender"`
	Languages       []string  `db:"languages"`
	ExperienceYears int       `db:"experience_years"`
	Phone           string    `db:"phone"`
	Email           string    `db:"email"`
	Active          bool      `db:"active"`
	CreatedAt       time.Time `db:"created_at"`
}

// WeeklySchedule is a recurring availability template for one doctor.
// DayOfWeek is Monday-first: 0=Monday .. 6=Sunday.
type WeeklySchedule struct {
	ID          string `db:"id"`
	DoctorID    string `db:"doctor_id"`
	DayOfWeek   int    `db:"day_of_week"`
	StartTime   string `db:"start_time"` // "09:00"
	EndTime     string `db:"end_time"`   // "17:00"
	SlotMinutes int    `db:"slot_minutes"`
	Active      bool   `db:"active"`
}

// ScheduleException overrides the weekly template for one calendar date.
// IsAvailable=false blacks the date out entirely; IsAvailable=true with
// custom times replaces the day's hours.
type ScheduleException struct {
	ID              string `db:"id"`
	DoctorID        string `db:"doctor_id"`
	Date            string `db:"date"` // "2025-01-15"
	IsAvailable     bool   `db:"is_available"`
	CustomStartTime string `db:"custom_start_time"`
	CustomEndTime   string `db:"custom_end_time"`
	Notes           string `db:"notes"`
}

type Appointment struct {
	ID              string        `db:"id"`
	ReferenceNumber string        `db:"reference_number"`
	DoctorID        string        `db:"doctor_id"`
	DateTime        string        `db:"date_time"` // "2025-01-15 09:30", facility local time
	PatientName     string        `db:"patient_name"`
	PatientPhone    string        `db:"patient_phone"`
	PatientEmail    string        `db:"patient_email"`
	PatientGender   Gender        `db:"patient_gender"`
	PatientDOB      string        `db:"patient_dob"`
	Status          BookingStatus `db:"status"`
	Notes           string        `db:"notes"`
	CreatedAt       time.Time     `db:"created_at"`
}

type DiagnosticCategory string

const (
	CategoryLabTests   DiagnosticCategory = "lab_tests"
	CategoryImaging    DiagnosticCategory = "imaging"
	CategoryCardiology DiagnosticCategory = "cardiology"
	CategoryOther      DiagnosticCategory = "other"
)

type DiagnosticTest struct {
	ID              string             `db:"id"`
	Name            string             `db:"name"`
	Category        DiagnosticCategory `db:"category"`
	Description     string             `db:"description"`
	Preparation     string             `db:"preparation"`
	Price           string             `db:"price"`
	ReportTime      string             `db:"report_time"`
	DurationMinutes int                `db:"duration_minutes"`
	Active          bool               `db:"active"`
	CreatedAt       time.Time          `db:"created_at"`
}

type DiagnosticBooking struct {
	ID              string        `db:"id"`
	ReferenceNumber string        `db:"reference_number"`
	TestID          string        `db:"test_id"`
	DateTime        string        `db:"date_time"`
	PatientName     string        `db:"patient_name"`
	PatientPhone    string        `db:"patient_phone"`
	PatientEmail    string        `db:"patient_email"`
	PatientGender   Gender        `db:"patient_gender"`
	PatientDOB      string        `db:"patient_dob"`
	Status          BookingStatus `db:"status"`
	Notes           string        `db:"notes"`
	CreatedAt       time.Time     `db:"created_at"`
}

type BlogPost struct {
	ID              string    `db:"id"`
	Title           string    `db:"title"`
	Slug            string    `db:"slug"`
	Content         string    `db:"content"`
	Excerpt         string    `db:"excerpt"`
	Category        string    `db:"category"`
	Tags            []string  `db:"tags"`
	Author          string    `db:"author"`
	FeaturedImage   string    `db:"featured_image"`
	MetaTitle       string    `db:"meta_title"`
	MetaDescription string    `db:"meta_description"`
	Published       bool      `db:"published"`
	Views           int       `db:"views"`
	PublishedAt     time.Time `db:"published_at"`
	CreatedAt       time.Time `db:"created_at"`
}

type ContactMessage struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Subject   string    `db:"subject"`
	Message   string    `db:"message"`
	Read      bool      `db:"read"`
	CreatedAt time.Time `db:"created_at"`
}

type SiteSettings struct {
	HospitalName    string `db:"hospital_name" json:"hospital_name"`
	Tagline         string `db:"tagline" json:"tagline"`
	Phone           string `db:"phone" json:"phone"`
	Whatsapp        string `db:"whatsapp" json:"whatsapp"`
	Email           string `db:"email" json:"email"`
	Address         string `db:"address" json:"address"`
	WorkingHours    string `db:"working_hours" json:"working_hours"`
	EmergencyHours  string `db:"emergency_hours" json:"emergency_hours"`
	GoogleMapsEmbed string `db:"google_maps_embed" json:"google_maps_embed"`
	FacebookURL     string `db:"facebook_url" json:"facebook_url"`
	TwitterURL      string `db:"twitter_url" json:"twitter_url"`
	InstagramURL    string `db:"instagram_url" json:"instagram_url"`
	AboutText       string `db:"about_text" json:"about_text"`
	MissionText     string `db:"mission_text" json:"mission_text"`
	AdsenseEnabled  bool   `db:"adsense_enabled" json:"adsense_enabled"`
	AdsenseClientID string `db:"adsense_client_id" json:"adsense_client_id"`
}

package service

import (
	"context"
	"fmt"
	"time"

	"hospital-service/internal/auth"
	"hospital-service/internal/lock"
	"hospital-service/internal/models"
	"hospital-service/internal/notify"
)

// DateTimeLayout is the canonical slot timestamp format, always in the
// facility's local time zone.
const (
	DateTimeLayout = "2006-01-02 15:04"
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
)

type Service struct {
	store    Store
	locker   lock.Locker
	tokens   *auth.TokenManager
	notifier *notify.Notifier
	loc      *time.Location

	now func() time.Time
}

func NewService(store Store, locker lock.Locker, tokens *auth.TokenManager, notifier *notify.Notifier, timezone string) (*Service, error) {
	const op = "service.NewService"

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%s: load timezone: %w", op, err)
	}

	return &Service{
		store:    store,
		locker:   locker,
		tokens:   tokens,
		notifier: notifier,
		loc:      loc,
		now:      time.Now,
	}, nil
}

type Store interface {
	// Users
	CreateUser(ctx context.Context, user *models.User) (string, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// Specialties
	CreateSpecialty(ctx context.Context, specialty *models.Specialty) (string, error)
	GetSpecialty(ctx context.Context, id string) (*models.Specialty, error)
	ListSpecialties(ctx context.Context, activeOnly bool) ([]*models.Specialty, error)
	UpdateSpecialty(ctx context.Context, specialty *models.Specialty) error
	DeleteSpecialty(ctx context.Context, id string) error

	// Doctors
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error)
	GetDoctor(ctx context.Context, id string) (*models.Doctor, error)
	ListDoctors(ctx context.Context, filters *DoctorFilters) ([]*models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
	DeactivateDoctor(ctx context.Context, id string) error

	// Weekly Schedules
	CreateSchedule(ctx context.Context, schedule *models.WeeklySchedule) (string, error)
	GetSchedule(ctx context.Context, id string) (*models.WeeklySchedule, error)
	ListSchedules(ctx context.Context, doctorID *string) ([]*models.WeeklySchedule, error)
	ListActiveSchedulesForDay(ctx context.Context, doctorID string, dayOfWeek int) ([]*models.WeeklySchedule, error)
	UpdateSchedule(ctx context.Context, schedule *models.WeeklySchedule) error
	DeleteSchedule(ctx context.Context, id string) error

	// Schedule Exceptions
	UpsertScheduleException(ctx context.Context, exc *models.ScheduleException) (string, error)
	GetScheduleException(ctx context.Context, id string) (*models.ScheduleException, error)
	GetExceptionByDate(ctx context.Context, doctorID, date string) (*models.ScheduleException, error)
	ListScheduleExceptions(ctx context.Context, doctorID *string) ([]*models.ScheduleException, error)
	DeleteScheduleException(ctx context.Context, id string) error

	// Appointments
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	ListAppointments(ctx context.Context, filters *AppointmentFilters) ([]*models.Appointment, error)
	ListBookedTimes(ctx context.Context, doctorID, date string) ([]string, error)
	UpdateAppointmentStatus(ctx context.Context, id string, status models.BookingStatus) error
	UpdateAppointmentNotes(ctx context.Context, id string, notes string) error
	UpdateAppointmentDateTime(ctx context.Context, id string, dateTime string) error

	// Diagnostic Tests
	CreateDiagnosticTest(ctx context.Context, test *models.DiagnosticTest) (string, error)
	GetDiagnosticTest(ctx context.Context, id string) (*models.DiagnosticTest, error)
	ListDiagnosticTests(ctx context.Context, category *string, activeOnly bool) ([]*models.DiagnosticTest, error)
	UpdateDiagnosticTest(ctx context.Context, test *models.DiagnosticTest) error
	DeleteDiagnosticTest(ctx context.Context, id string) error

	// Diagnostic Bookings
	CreateDiagnosticBooking(ctx context.Context, booking *models.DiagnosticBooking) (string, error)
	GetDiagnosticBooking(ctx context.Context, id string) (*models.DiagnosticBooking, error)
	ListDiagnosticBookings(ctx context.Context, filters *DiagnosticBookingFilters) ([]*models.DiagnosticBooking, error)
	UpdateDiagnosticBookingStatus(ctx context.Context, id string, status models.BookingStatus) error
	UpdateDiagnosticBookingNotes(ctx context.Context, id string, notes string) error
	UpdateDiagnosticBookingDateTime(ctx context.Context, id string, dateTime string) error

	// Blog
	CreateBlogPost(ctx context.Context, post *models.BlogPost) (string, error)
	GetBlogPost(ctx context.Context, id string) (*models.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	ListBlogPosts(ctx context.Context, filters *BlogFilters) ([]*models.BlogPost, error)
	UpdateBlogPost(ctx context.Context, post *models.BlogPost) error
	DeleteBlogPost(ctx context.Context, id string) error
	IncrementBlogViews(ctx context.Context, id string) error
	ListBlogCategories(ctx context.Context) ([]string, error)

	// Contact Messages
	CreateContactMessage(ctx context.Context, msg *models.ContactMessage) (string, error)
	GetContactMessage(ctx context.Context, id string) (*models.ContactMessage, error)
	ListContactMessages(ctx context.Context, unreadOnly bool) ([]*models.ContactMessage, error)
	MarkContactMessageRead(ctx context.Context, id string) error

	// Settings
	GetSettings(ctx context.Context) (*models.SiteSettings, error)
	UpdateSettings(ctx context.Context, settings *models.SiteSettings) error

	// Analytics
	CountActiveDoctors(ctx context.Context) (int, error)
	CountActiveDiagnosticTests(ctx context.Context) (int, error)
	CountAppointmentsOnDate(ctx context.Context, date string) (int, error)
	CountDiagnosticBookingsOnDate(ctx context.Context, date string) (int, error)
	CountAppointmentsByStatus(ctx context.Context) (map[models.BookingStatus]int, error)
	ListRecentAppointments(ctx context.Context, limit int) ([]*models.Appointment, error)
	CountUnreadContactMessages(ctx context.Context) (int, error)
}

type DoctorFilters struct {
	SpecialtyID *string
	Q           *string
	ActiveOnly  bool
}

type AppointmentFilters struct {
	DoctorID *string
	Status   *string
	Date     *string
}

type DiagnosticBookingFilters struct {
	TestID *string
	Status *string
	Date   *string
}

type BlogFilters struct {
	Category      *string
	Tag           *string
	Q             *string
	PublishedOnly bool
}

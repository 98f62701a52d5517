package service

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hospital-service/internal/auth"
	"hospital-service/internal/config"
	"hospital-service/internal/models"
	"hospital-service/internal/notify"
	"hospital-service/pkg/response"
)

const testTimezone = "Asia/Karachi"

// memLocker is a process-local stand-in for the redis lock.
type memLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func newMemLocker() *memLocker {
	return &memLocker{held: make(map[string]struct{})}
}

func (l *memLocker) Lock(_ context.Context, key string, _ time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.held[key]; ok {
		return false, nil
	}
	l.held[key] = struct{}{}
	return true, nil
}

func (l *memLocker) Unlock(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.held, key)
	return nil
}

// memStore implements Store over mutex-protected maps, including the
// one-live-booking-per-slot guard the partial unique index provides in
// postgres.
type memStore struct {
	mu sync.Mutex

	users        map[string]*models.User
	specialties  map[string]*models.Specialty
	doctors      map[string]*models.Doctor
	schedules    map[string]*models.WeeklySchedule
	exceptions   map[string]*models.ScheduleException
	appointments map[string]*models.Appointment
	tests        map[string]*models.DiagnosticTest
	diagBookings map[string]*models.DiagnosticBooking
	posts        map[string]*models.BlogPost
	contacts     map[string]*models.ContactMessage
	settings     models.SiteSettings
}

func newMemStore() *memStore {
	return &memStore{
		users:        make(map[string]*models.User),
		specialties:  make(map[string]*models.Specialty),
		doctors:      make(map[string]*models.Doctor),
		schedules:    make(map[string]*models.WeeklySchedule),
		exceptions:   make(map[string]*models.ScheduleException),
		appointments: make(map[string]*models.Appointment),
		tests:        make(map[string]*models.DiagnosticTest),
		diagBookings: make(map[string]*models.DiagnosticBooking),
		posts:        make(map[string]*models.BlogPost),
		contacts:     make(map[string]*models.ContactMessage),
	}
}

// Users

func (m *memStore) CreateUser(_ context.Context, user *models.User) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == user.Username {
			return "", response.ErrConflict
		}
	}

	cp := *user
	cp.CreatedAt = time.Now()
	m.users[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memStore) GetUser(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, response.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, response.ErrNotFound
}

// Specialties

func (m *memStore) CreateSpecialty(_ context.Context, specialty *models.Specialty) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *specialty
	m.specialties[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memStore) GetSpecialty(_ context.Context, id string) (*models.Specialty, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sp, ok := m.specialties[id]
	if !ok {
		return nil, response.ErrNotFound
	}
	cp := *sp
	return &cp, nil
}

func (m *memStore) ListSpecialties(_ context.Context, activeOnly bool) ([]*models.Specialty, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []*models.Specialty
	for _, sp := range m.specialties {
		if activeOnly && !sp.Active {
			continue
		}
		cp := *sp
		result = append(result, &cp)
	}
	return result, nil
}

func (m *memStore) UpdateSpecialty(_ context.Context, specialty *models.Specialty) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.specialties[specialty.ID]; !ok {
		return response.ErrNotFound
	}
	cp := *specialty
	m.specialties[cp.ID] = &cp
	return nil
}

func (m *memStore) DeleteSpecialty(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.specialties[id]; !ok {
		return response.ErrNotFound
	}
	delete(m.specialties, id)
	return nil
}

// Doctors

func (m *memStore) CreateDoctor(_ context.Context, doctor *models.Doctor) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *doctor
	m.doctors[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memStore) GetDoctor(_ context.Context, id string) (*models.Doctor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.doctors[id]
	if !ok {
		return nil, response.ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (m *memStore) ListDoctors(_ context.Context, filters *DoctorFilters) ([]*models.Doctor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []*models.Doctor
	for _, d := range m.doctors {
		if filters != nil {
			if filters.ActiveOnly && !d.Active {
				continue
			}
			if filters.SpecialtyID != nil && d.SpecialtyID != *filters.SpecialtyID {
				continue
			}
			if filters.Q != nil && !strings.Contains(strings.ToLower(d.Name), strings.ToLower(*filters.Q)) {
				continue
			}
		}
		cp := *d
		result = append(result, &cp)
	}
	return result, nil
}

func (m *memStore) UpdateDoctor(_ context.Context, doctor *models.Doctor) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.doctors[doctor.ID]; !ok {
		return response.ErrNotFound
	}
	cp := *doctor
	m.doctors[cp.ID] = &cp
	return nil
}

func (m *memStore) DeactivateDoctor(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	d, ok := m.doctors[id]
	if !ok {
		return response.ErrNotFound
	}
	d.Active = false
	return nil
}

// Weekly Schedules

func (m *memStore) CreateSchedule(_ context.Context, schedule *models.WeeklySchedule) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *schedule
	m.schedules[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memStore) GetSchedule(_ context.Context, id string) (*models.WeeklySchedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sch, ok := m.schedules[id]
	if !ok {
		return nil, response.ErrNotFound
	}
	cp := *sch
	return &cp, nil
}

func (m *memStore) ListSchedules(_ context.Context, doctorID *string) ([]*models.WeeklySchedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []*models.WeeklySchedule
	for _, sch := range m.schedules {
		if doctorID != nil && sch.DoctorID != *doctorID {
			continue
		}
		cp := *sch
		result = append(result, &cp)
	}
	return result, nil
}

func (m *memStore) ListActiveSchedulesForDay(_ context.Context, doctorID string, dayOfWeek int) ([]*models.WeeklySchedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []*models.WeeklySchedule
	for _, sch := range m.schedules {
		if sch.DoctorID != doctorID || sch.DayOfWeek != dayOfWeek || !sch.Active {
			continue
		}
		cp := *sch
		result = append(result, &cp)
	}
	return result, nil
}

func (m *memStore) UpdateSchedule(_ context.Context, schedule *models.WeeklySchedule) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.schedules[schedule.ID]; !ok {
		return response.ErrNotFound
	}
	cp := *schedule
	m.schedules[cp.ID] = &cp
	return nil
}

func (m *memStore) DeleteSchedule(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.schedules[id]; !ok {
		return response.ErrNotFound
	}
	delete(m.schedules, id)
	return nil
}

// Schedule Exceptions

func (m *memStore) UpsertScheduleException(_ context.Context, exc *models.ScheduleException) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.exceptions {
		if existing.DoctorID == exc.DoctorID && existing.Date == exc.Date {
			cp := *exc
			cp.ID = existing.ID
			m.exceptions[cp.ID] = &cp
			return cp.ID, nil
		}
	}

	cp := *exc
	m.exceptions[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memStore) GetScheduleException(_ context.Context, id string) (*models.ScheduleException, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	exc, ok := m.exceptions[id]
	if !ok {
		return nil, response.ErrNotFound
	}
	cp := *exc
	return &cp, nil
}

func (m *memStore) GetExceptionByDate(_ context.Context, doctorID, date string) (*models.ScheduleException, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, exc := range m.exceptions {
		if exc.DoctorID == doctorID && exc.Date == date {
			cp := *exc
			return &cp, nil
		}
	}
	return nil, response.ErrNotFound
}

func (m *memStore) ListScheduleExceptions(_ context.Context, doctorID *string) ([]*models.ScheduleException, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []*models.ScheduleException
	for _, exc := range m.exceptions {
		if doctorID != nil && exc.DoctorID != *doctorID {
			continue
		}
		cp := *exc
		result = append(result, &cp)
	}
	return result, nil
}

func (m *memStore) DeleteScheduleException(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.exceptions[id]; !ok {
		return response.ErrNotFound
	}
	delete(m.exceptions, id)
	return nil
}

// Appointments

func (m *memStore) CreateAppointment(_ context.Context, appointment *models.Appointment) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.appointments {
		if a.DoctorID == appointment.DoctorID && a.DateTime == appointment.DateTime &&
			(a.Status == models.BookingNew || a.Status == models.BookingConfirmed) {
			return "", response.ErrSlotNotAvailable
		}
	}

	cp := *appointment
	cp.CreatedAt = time.Now()
	m.appointments[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memStore) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.appointments[id]
	if !ok {
		return nil, response.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memStore) ListAppointments(_ context.Context, filters *AppointmentFilters) ([]*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []*models.Appointment
	for _, a := range m.appointments {
		if filters != nil {
			if filters.DoctorID != nil && a.DoctorID != *filters.DoctorID {
				continue
			}
			if filters.Status != nil && string(a.Status) != *filters.Status {
				continue
			}
			if filters.Date != nil && !strings.HasPrefix(a.DateTime, *filters.Date) {
				continue
			}
		}
		cp := *a
		result = append(result, &cp)
	}
	return result, nil
}

func (m *memStore) ListBookedTimes(_ context.Context, doctorID, date string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []string
	for _, a := range m.appointments {
		if a.DoctorID != doctorID || !strings.HasPrefix(a.DateTime, date) {
			continue
		}
		if a.Status != models.BookingNew && a.Status != models.BookingConfirmed {
			continue
		}
		result = append(result, a.DateTime)
	}
	return result, nil
}

func (m *memStore) UpdateAppointmentStatus(_ context.Context, id string, status models.BookingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.appointments[id]
	if !ok {
		return response.ErrNotFound
	}
	a.Status = status
	return nil
}

func (m *memStore) UpdateAppointmentNotes(_ context.Context, id string, notes string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.appointments[id]
	if !ok {
		return response.ErrNotFound
	}
	a.Notes = notes
	return nil
}

func (m *memStore) UpdateAppointmentDateTime(_ context.Context, id string, dateTime string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.appointments[id]
	if !ok {
		return response.ErrNotFound
	}

	for _, other := range m.appointments {
		if other.ID != id && other.DoctorID == a.DoctorID && other.DateTime == dateTime &&
			(other.Status == models.BookingNew || other.Status == models.BookingConfirmed) {
			return response.ErrSlotNotAvailable
		}
	}

	a.DateTime = dateTime
	return nil
}

// Diagnostic Tests

func (m *memStore) CreateDiagnosticTest(_ context.Context, test *models.DiagnosticTest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *test
	m.tests[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memStore) GetDiagnosticTest(_ context.Context, id string) (*models.DiagnosticTest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tests[id]
	if !ok {
		return nil, response.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *memStore) ListDiagnosticTests(_ context.Context, category *string, activeOnly bool) ([]*models.DiagnosticTest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []*models.DiagnosticTest
	for _, t := range m.tests {
		if activeOnly && !t.Active {
			continue
		}
		if category != nil && string(t.Category) != *category {
			continue
		}
		cp := *t
		result = append(result, &cp)
	}
	return result, nil
}

func (m *memStore) UpdateDiagnosticTest(_ context.Context, test *models.DiagnosticTest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tests[test.ID]; !ok {
		return response.ErrNotFound
	}
	cp := *test
	m.tests[cp.ID] = &cp
	return nil
}

func (m *memStore) DeleteDiagnosticTest(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.tests[id]
	if !ok {
		return response.ErrNotFound
	}
	t.Active = false
	return nil
}

// Diagnostic Bookings

func (m *memStore) CreateDiagnosticBooking(_ context.Context, booking *models.DiagnosticBooking) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *booking
	cp.CreatedAt = time.Now()
	m.diagBookings[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memStore) GetDiagnosticBooking(_ context.Context, id string) (*models.DiagnosticBooking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.diagBookings[id]
	if !ok {
		return nil, response.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *memStore) ListDiagnosticBookings(_ context.Context, filters *DiagnosticBookingFilters) ([]*models.DiagnosticBooking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []*models.DiagnosticBooking
	for _, b := range m.diagBookings {
		if filters != nil {
			if filters.TestID != nil && b.TestID != *filters.TestID {
				continue
			}
			if filters.Status != nil && string(b.Status) != *filters.Status {
				continue
			}
			if filters.Date != nil && !strings.HasPrefix(b.DateTime, *filters.Date) {
				continue
			}
		}
		cp := *b
		result = append(result, &cp)
	}
	return result, nil
}

func (m *memStore) UpdateDiagnosticBookingStatus(_ context.Context, id string, status models.BookingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.diagBookings[id]
	if !ok {
		return response.ErrNotFound
	}
	b.Status = status
	return nil
}

func (m *memStore) UpdateDiagnosticBookingNotes(_ context.Context, id string, notes string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.diagBookings[id]
	if !ok {
		return response.ErrNotFound
	}
	b.Notes = notes
	return nil
}

func (m *memStore) UpdateDiagnosticBookingDateTime(_ context.Context, id string, dateTime string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.diagBookings[id]
	if !ok {
		return response.ErrNotFound
	}
	b.DateTime = dateTime
	return nil
}

// Blog

func (m *memStore) CreateBlogPost(_ context.Context, post *models.BlogPost) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.posts {
		if p.Slug == post.Slug {
			return "", response.ErrConflict
		}
	}

	cp := *post
	m.posts[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memStore) GetBlogPost(_ context.Context, id string) (*models.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.posts[id]
	if !ok {
		return nil, response.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memStore) GetBlogPostBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.posts {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, response.ErrNotFound
}

func (m *memStore) ListBlogPosts(_ context.Context, filters *BlogFilters) ([]*models.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []*models.BlogPost
	for _, p := range m.posts {
		if filters != nil {
			if filters.PublishedOnly && !p.Published {
				continue
			}
			if filters.Category != nil && p.Category != *filters.Category {
				continue
			}
			if filters.Tag != nil {
				found := false
				for _, tag := range p.Tags {
					if tag == *filters.Tag {
						found = true
						break
					}
				}
				if !found {
					continue
				}
			}
			if filters.Q != nil && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(*filters.Q)) {
				continue
			}
		}
		cp := *p
		result = append(result, &cp)
	}
	return result, nil
}

func (m *memStore) UpdateBlogPost(_ context.Context, post *models.BlogPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[post.ID]; !ok {
		return response.ErrNotFound
	}
	for _, p := range m.posts {
		if p.ID != post.ID && p.Slug == post.Slug {
			return response.ErrConflict
		}
	}
	cp := *post
	m.posts[cp.ID] = &cp
	return nil
}

func (m *memStore) DeleteBlogPost(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[id]; !ok {
		return response.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *memStore) IncrementBlogViews(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.posts[id]
	if !ok {
		return response.ErrNotFound
	}
	p.Views++
	return nil
}

func (m *memStore) ListBlogCategories(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[string]struct{})
	var result []string
	for _, p := range m.posts {
		if !p.Published || p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		result = append(result, p.Category)
	}
	sort.Strings(result)
	return result, nil
}

// Contact Messages

func (m *memStore) CreateContactMessage(_ context.Context, msg *models.ContactMessage) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *msg
	cp.CreatedAt = time.Now()
	m.contacts[cp.ID] = &cp
	return cp.ID, nil
}

func (m *memStore) GetContactMessage(_ context.Context, id string) (*models.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	msg, ok := m.contacts[id]
	if !ok {
		return nil, response.ErrNotFound
	}
	cp := *msg
	return &cp, nil
}

func (m *memStore) ListContactMessages(_ context.Context, unreadOnly bool) ([]*models.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []*models.ContactMessage
	for _, msg := range m.contacts {
		if unreadOnly && msg.Read {
			continue
		}
		cp := *msg
		result = append(result, &cp)
	}
	return result, nil
}

func (m *memStore) MarkContactMessageRead(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	msg, ok := m.contacts[id]
	if !ok {
		return response.ErrNotFound
	}
	msg.Read = true
	return nil
}

// Settings

func (m *memStore) GetSettings(_ context.Context) (*models.SiteSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := m.settings
	return &cp, nil
}

func (m *memStore) UpdateSettings(_ context.Context, settings *models.SiteSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings = *settings
	return nil
}

// Analytics

func (m *memStore) CountActiveDoctors(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, d := range m.doctors {
		if d.Active {
			n++
		}
	}
	return n, nil
}

func (m *memStore) CountActiveDiagnosticTests(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.tests {
		if t.Active {
			n++
		}
	}
	return n, nil
}

func (m *memStore) CountAppointmentsOnDate(_ context.Context, date string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, a := range m.appointments {
		if strings.HasPrefix(a.DateTime, date) {
			n++
		}
	}
	return n, nil
}

func (m *memStore) CountDiagnosticBookingsOnDate(_ context.Context, date string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, b := range m.diagBookings {
		if strings.HasPrefix(b.DateTime, date) {
			n++
		}
	}
	return n, nil
}

func (m *memStore) CountAppointmentsByStatus(_ context.Context) (map[models.BookingStatus]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make(map[models.BookingStatus]int)
	for _, a := range m.appointments {
		result[a.Status]++
	}
	return result, nil
}

func (m *memStore) ListRecentAppointments(_ context.Context, limit int) ([]*models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var all []*models.Appointment
	for _, a := range m.appointments {
		cp := *a
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *memStore) CountUnreadContactMessages(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, msg := range m.contacts {
		if !msg.Read {
			n++
		}
	}
	return n, nil
}

// newTestService wires a Service over the in-memory store with a fixed
// clock, so same-day past-slot filtering is deterministic.
func newTestService(t *testing.T, store Store) *Service {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	notifier := notify.New(log, config.Hospital{
		Name:  "Sadiqabad Medical Complex",
		Phone: "+92-300-1234567",
		Email: "info@sadiqabadmedical.com",
	})
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	svc, err := NewService(store, newMemLocker(), tokens, notifier, testTimezone)
	require.NoError(t, err)

	loc, err := time.LoadLocation(testTimezone)
	require.NoError(t, err)

	svc.now = func() time.Time {
		return time.Date(2025, 1, 1, 12, 0, 0, 0, loc)
	}

	return svc
}

func seedDoctor(t *testing.T, store *memStore, id string) *models.Doctor {
	t.Helper()

	doctor := &models.Doctor{
		ID:          id,
		Name:        "Dr. Ayesha Khan",
		SpecialtyID: "spec-1",
		Fee:         "1500",
		Active:      true,
	}
	_, err := store.CreateDoctor(context.Background(), doctor)
	require.NoError(t, err)

	return doctor
}

func seedSchedule(t *testing.T, store *memStore, id, doctorID string, day int, start, end string, slotMinutes int) {
	t.Helper()

	_, err := store.CreateSchedule(context.Background(), &models.WeeklySchedule{
		ID:          id,
		DoctorID:    doctorID,
		DayOfWeek:   day,
		StartTime:   start,
		EndTime:     end,
		SlotMinutes: slotMinutes,
		Active:      true,
	})
	require.NoError(t, err)
}

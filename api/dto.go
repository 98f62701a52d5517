package api

import "time"

// Auth

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// Specialties

type SpecialtyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Active      *bool  `json:"active,omitempty"`
}

type SpecialtyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Active      bool   `json:"active"`
}

// Doctors

type DoctorRequest struct {
	Name            string   `json:"name"`
	SpecialtyID     string   `json:"specialty_id"`
	Qualifications  string   `json:"qualifications"`
	Bio             string   `json:"bio,omitempty"`
	Photo           string   `json:"photo,omitempty"`
	Fee             string   `json:"fee,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	Gender          string   `json:"gender,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Email           string   `json:"email,omitempty"`
	Active          *bool    `json:"active,omitempty"`
}

type DoctorResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	SpecialtyID     string   `json:"specialty_id"`
	Specialty       string   `json:"specialty,omitempty"`
	Qualifications  string   `json:"qualifications"`
	Bio             string   `json:"bio,omitempty"`
	Photo           string   `json:"photo,omitempty"`
	Fee             string   `json:"fee"`
	Tags            []string `json:"tags,omitempty"`
	Gender          string   `json:"gender,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	Email           string   `json:"email,omitempty"`
	Active          bool     `json:"active"`
}

// Schedules

type ScheduleRequest struct {
	DoctorID    string `json:"doctor_id"`
	DayOfWeek   int    `json:"day_of_week"` // 0=Monday .. 6=Sunday
	StartTime   string `json:"start_time"`  // "09:00"
	EndTime     string `json:"end_time"`    // "17:00"
	SlotMinutes int    `json:"slot_minutes,omitempty"`
	Active      *bool  `json:"active,omitempty"`
}

type ScheduleResponse struct {
	ID          string `json:"id"`
	DoctorID    string `json:"doctor_id"`
	DayOfWeek   int    `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	SlotMinutes int    `json:"slot_minutes"`
	Active      bool   `json:"active"`
}

// Schedule Exceptions

type ScheduleExceptionRequest struct {
	DoctorID        string `json:"doctor_id"`
	Date            string `json:"date"` // "2025-01-15"
	IsAvailable     bool   `json:"is_available"`
	CustomStartTime string `json:"custom_start_time,omitempty"`
	CustomEndTime   string `json:"custom_end_time,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

type ScheduleExceptionResponse struct {
	ID              string `json:"id"`
	DoctorID        string `json:"doctor_id"`
	Date            string `json:"date"`
	IsAvailable     bool   `json:"is_available"`
	CustomStartTime string `json:"custom_start_time,omitempty"`
	CustomEndTime   string `json:"custom_end_time,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// Slots

type SlotResponse struct {
	Time     string `json:"time"`     // "09:30"
	DateTime string `json:"datetime"` // "2025-01-15 09:30"
}

// Appointments

type AppointmentRequest struct {
	DoctorID      string `json:"doctor_id"`
	DateTime      string `json:"date_time"`
	PatientName   string `json:"patient_name"`
	PatientPhone  string `json:"patient_phone"`
	PatientEmail  string `json:"patient_email,omitempty"`
	PatientGender string `json:"patient_gender,omitempty"`
	PatientDOB    string `json:"patient_dob,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type AppointmentResponse struct {
	ID              string    `json:"id"`
	ReferenceNumber string    `json:"reference_number"`
	DoctorID        string    `json:"doctor_id"`
	DoctorName      string    `json:"doctor_name,omitempty"`
	DateTime        string    `json:"date_time"`
	PatientName     string    `json:"patient_name"`
	PatientPhone    string    `json:"patient_phone"`
	PatientEmail    string    `json:"patient_email,omitempty"`
	PatientGender   string    `json:"patient_gender,omitempty"`
	PatientDOB      string    `json:"patient_dob,omitempty"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// BookingConfirmation is returned from the booking transaction: the stored
// record plus the staff-facing message template.
type BookingConfirmation struct {
	ReferenceNumber  string               `json:"reference_number"`
	Appointment      *AppointmentResponse `json:"appointment,omitempty"`
	WhatsappTemplate string               `json:"whatsapp_template"`
}

// AppointmentUpdateRequest carries admin edits. A date_time change is a
// reschedule and runs through the same availability check as a new booking.
type AppointmentUpdateRequest struct {
	Status   *string `json:"status,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	DateTime *string `json:"date_time,omitempty"`
}

// Diagnostic Tests

type DiagnosticTestRequest struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	Description     string `json:"description,omitempty"`
	Preparation     string `json:"preparation,omitempty"`
	Price           string `json:"price,omitempty"`
	ReportTime      string `json:"report_time,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Active          *bool  `json:"active,omitempty"`
}

type DiagnosticTestResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	Description     string `json:"description,omitempty"`
	Preparation     string `json:"preparation,omitempty"`
	Price           string `json:"price"`
	ReportTime      string `json:"report_time,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Active          bool   `json:"active"`
}

// Diagnostic Bookings

type DiagnosticBookingRequest struct {
	TestID        string `json:"test_id"`
	DateTime      string `json:"date_time"`
	PatientName   string `json:"patient_name"`
	PatientPhone  string `json:"patient_phone"`
	PatientEmail  string `json:"patient_email,omitempty"`
	PatientGender string `json:"patient_gender,omitempty"`
	PatientDOB    string `json:"patient_dob,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type DiagnosticBookingResponse struct {
	ID              string    `json:"id"`
	ReferenceNumber string    `json:"reference_number"`
	TestID          string    `json:"test_id"`
	TestName        string    `json:"test_name,omitempty"`
	DateTime        string    `json:"date_time"`
	PatientName     string    `json:"patient_name"`
	PatientPhone    string    `json:"patient_phone"`
	PatientEmail    string    `json:"patient_email,omitempty"`
	PatientGender   string    `json:"patient_gender,omitempty"`
	PatientDOB      string    `json:"patient_dob,omitempty"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type DiagnosticConfirmation struct {
	ReferenceNumber  string                     `json:"reference_number"`
	Booking          *DiagnosticBookingResponse `json:"booking,omitempty"`
	WhatsappTemplate string                     `json:"whatsapp_template"`
	Preparation      string                     `json:"preparation,omitempty"`
}

// Blog

type BlogPostRequest struct {
	Title           string   `json:"title"`
	Slug            string   `json:"slug"`
	Content         string   `json:"content"`
	Excerpt         string   `json:"excerpt,omitempty"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags,omitempty"`
	Author          string   `json:"author,omitempty"`
	FeaturedImage   string   `json:"featured_image,omitempty"`
	MetaTitle       string   `json:"meta_title,omitempty"`
	MetaDescription string   `json:"meta_description,omitempty"`
	Published       *bool    `json:"published,omitempty"`
}

type BlogPostResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Content         string    `json:"content,omitempty"`
	Excerpt         string    `json:"excerpt,omitempty"`
	Category        string    `json:"category"`
	Tags            []string  `json:"tags,omitempty"`
	Author          string    `json:"author"`
	FeaturedImage   string    `json:"featured_image,omitempty"`
	MetaTitle       string    `json:"meta_title,omitempty"`
	MetaDescription string    `json:"meta_description,omitempty"`
	Published       bool      `json:"published"`
	Views           int       `json:"views"`
	PublishedAt     time.Time `json:"published_at"`
}

// Contact

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Analytics

type DashboardResponse struct {
	TotalDoctors       int                    `json:"total_doctors"`
	TotalTests         int                    `json:"total_tests"`
	TodayAppointments  int                    `json:"today_appointments"`
	TodayDiagnostics   int                    `json:"today_diagnostics"`
	AppointmentStats   map[string]int         `json:"appointment_stats"`
	RecentAppointments []*AppointmentResponse `json:"recent_appointments"`
	UnreadMessages     int                    `json:"unread_messages"`
}

// BookingTrendPoint is one day of the booking trend series, chronological.
type BookingTrendPoint struct {
	Date         string `json:"date"`
	Appointments int    `json:"appointments"`
	Diagnostics  int    `json:"diagnostics"`
}

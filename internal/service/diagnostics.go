package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hospital-service/api"
	"hospital-service/internal/models"
	"hospital-service/internal/notify"
	"hospital-service/pkg/response"
)

func validCategory(c models.DiagnosticCategory) bool {
	switch c {
	case models.CategoryLabTests, models.CategoryImaging, models.CategoryCardiology, models.CategoryOther:
		return true
	}
	return false
}

// Diagnostic Tests

func (s *Service) CreateDiagnosticTest(ctx context.Context, req *api.DiagnosticTestRequest) (*api.DiagnosticTestResponse, error) {
	const op = "service.CreateDiagnosticTest"

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%s: name is required: %w", op, response.ErrValidation)
	}
	if !validCategory(models.DiagnosticCategory(req.Category)) {
		return nil, fmt.Errorf("%s: unknown category %q: %w", op, req.Category, response.ErrValidation)
	}

	price := req.Price
	if price == "" {
		price = "Call for price"
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	test := &models.DiagnosticTest{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Category:        models.DiagnosticCategory(req.Category),
		Description:     req.Description,
		Preparation:     req.Preparation,
		Price:           price,
		ReportTime:      req.ReportTime,
		DurationMinutes: req.DurationMinutes,
		Active:          active,
	}

	id, err := s.store.CreateDiagnosticTest(ctx, test)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetDiagnosticTest(ctx, id)
}

func (s *Service) GetDiagnosticTest(ctx context.Context, id string) (*api.DiagnosticTestResponse, error) {
	const op = "service.GetDiagnosticTest"

	test, err := s.store.GetDiagnosticTest(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return diagnosticTestResponse(test), nil
}

func (s *Service) ListDiagnosticTests(ctx context.Context, category *string, activeOnly bool) ([]*api.DiagnosticTestResponse, error) {
	const op = "service.ListDiagnosticTests"

	tests, err := s.store.ListDiagnosticTests(ctx, category, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*api.DiagnosticTestResponse, 0, len(tests))
	for _, test := range tests {
		result = append(result, diagnosticTestResponse(test))
	}

	return result, nil
}

func (s *Service) UpdateDiagnosticTest(ctx context.Context, id string, req *api.DiagnosticTestRequest) (*api.DiagnosticTestResponse, error) {
	const op = "service.UpdateDiagnosticTest"

	test, err := s.store.GetDiagnosticTest(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !validCategory(models.DiagnosticCategory(req.Category)) {
		return nil, fmt.Errorf("%s: unknown category %q: %w", op, req.Category, response.ErrValidation)
	}

	test.Name = req.Name
	test.Category = models.DiagnosticCategory(req.Category)
	test.Description = req.Description
	test.Preparation = req.Preparation
	if req.Price != "" {
		test.Price = req.Price
	}
	test.ReportTime = req.ReportTime
	test.DurationMinutes = req.DurationMinutes
	if req.Active != nil {
		test.Active = *req.Active
	}

	if err := s.store.UpdateDiagnosticTest(ctx, test); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetDiagnosticTest(ctx, id)
}

func (s *Service) DeleteDiagnosticTest(ctx context.Context, id string) error {
	const op = "service.DeleteDiagnosticTest"

	if err := s.store.DeleteDiagnosticTest(ctx, id); err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Diagnostic Bookings
//
// Tests run off a fixed time list with no per-resource capacity, so unlike
// doctor appointments there is no slot membership check and no double-booking
// guard here.

func (s *Service) CreateDiagnosticBooking(ctx context.Context, req *api.DiagnosticBookingRequest) (*api.DiagnosticConfirmation, error) {
	const op = "service.CreateDiagnosticBooking"

	if strings.TrimSpace(req.PatientName) == "" || strings.TrimSpace(req.PatientPhone) == "" {
		return nil, fmt.Errorf("%s: patient name and phone are required: %w", op, response.ErrValidation)
	}
	requested, err := time.ParseInLocation(DateTimeLayout, req.DateTime, s.loc)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid date_time: %w", op, response.ErrValidation)
	}
	dateTime := requested.Format(DateTimeLayout)

	test, err := s.store.GetDiagnosticTest(ctx, req.TestID)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	booking := &models.DiagnosticBooking{
		ID:              uuid.NewString(),
		ReferenceNumber: newReferenceNumber("DGN"),
		TestID:          req.TestID,
		DateTime:        dateTime,
		PatientName:     req.PatientName,
		PatientPhone:    req.PatientPhone,
		PatientEmail:    req.PatientEmail,
		PatientGender:   models.Gender(req.PatientGender),
		PatientDOB:      req.PatientDOB,
		Status:          models.BookingNew,
		Notes:           req.Notes,
	}

	id, err := s.store.CreateDiagnosticBooking(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	additional := ""
	if test.Preparation != "" {
		additional = fmt.Sprintf("\nPreparation: %s", test.Preparation)
	}

	n := notify.Booking{
		Kind:            notify.KindDiagnostic,
		PatientName:     req.PatientName,
		PatientEmail:    req.PatientEmail,
		ReferenceNumber: booking.ReferenceNumber,
		DateTime:        dateTime,
		ServiceName:     test.Name,
		AdditionalInfo:  additional,
	}
	s.notifier.SendConfirmationEmail(n)

	created, err := s.GetDiagnosticBooking(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &api.DiagnosticConfirmation{
		ReferenceNumber:  booking.ReferenceNumber,
		Booking:          created,
		WhatsappTemplate: s.notifier.WhatsappMessage(n),
		Preparation:      test.Preparation,
	}, nil
}

func (s *Service) GetDiagnosticBooking(ctx context.Context, id string) (*api.DiagnosticBookingResponse, error) {
	const op = "service.GetDiagnosticBooking"

	booking, err := s.store.GetDiagnosticBooking(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := diagnosticBookingResponse(booking)

	if test, err := s.store.GetDiagnosticTest(ctx, booking.TestID); err == nil {
		resp.TestName = test.Name
	}

	return resp, nil
}

func (s *Service) ListDiagnosticBookings(ctx context.Context, filters *DiagnosticBookingFilters) ([]*api.DiagnosticBookingResponse, error) {
	const op = "service.ListDiagnosticBookings"

	bookings, err := s.store.ListDiagnosticBookings(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*api.DiagnosticBookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, diagnosticBookingResponse(booking))
	}

	return result, nil
}

// UpdateDiagnosticBooking shares the appointment status machine. A date_time
// change needs no slot check: lab capacity is not slot-bound.
func (s *Service) UpdateDiagnosticBooking(ctx context.Context, id string, req *api.AppointmentUpdateRequest) (*api.DiagnosticBookingResponse, error) {
	const op = "service.UpdateDiagnosticBooking"

	booking, err := s.store.GetDiagnosticBooking(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if req.DateTime != nil {
		requested, err := time.ParseInLocation(DateTimeLayout, *req.DateTime, s.loc)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid date_time: %w", op, response.ErrValidation)
		}

		if booking.Status != models.BookingNew && booking.Status != models.BookingConfirmed {
			return nil, fmt.Errorf("%s: cannot reschedule a %s booking: %w", op, booking.Status, response.ErrInvalidTransition)
		}

		if err := s.store.UpdateDiagnosticBookingDateTime(ctx, id, requested.Format(DateTimeLayout)); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if req.Status != nil {
		newStatus := models.BookingStatus(*req.Status)
		if !validStatus(newStatus) {
			return nil, fmt.Errorf("%s: unknown status %q: %w", op, *req.Status, response.ErrValidation)
		}
		if !canTransition(booking.Status, newStatus) {
			return nil, fmt.Errorf("%s: %s -> %s: %w", op, booking.Status, newStatus, response.ErrInvalidTransition)
		}

		if err := s.store.UpdateDiagnosticBookingStatus(ctx, id, newStatus); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if req.Notes != nil {
		if err := s.store.UpdateDiagnosticBookingNotes(ctx, id, *req.Notes); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return s.GetDiagnosticBooking(ctx, id)
}

func diagnosticTestResponse(t *models.DiagnosticTest) *api.DiagnosticTestResponse {
	return &api.DiagnosticTestResponse{
		ID:              t.ID,
		Name:            t.Name,
		Category:        string(t.Category),
		Description:     t.Description,
		Preparation:     t.Preparation,
		Price:           t.Price,
		ReportTime:      t.ReportTime,
		DurationMinutes: t.DurationMinutes,
		Active:          t.Active,
	}
}

func diagnosticBookingResponse(b *models.DiagnosticBooking) *api.DiagnosticBookingResponse {
	return &api.DiagnosticBookingResponse{
		ID:              b.ID,
		ReferenceNumber: b.ReferenceNumber,
		TestID:          b.TestID,
		DateTime:        b.DateTime,
		PatientName:     b.PatientName,
		PatientPhone:    b.PatientPhone,
		PatientEmail:    b.PatientEmail,
		PatientGender:   string(b.PatientGender),
		PatientDOB:      b.PatientDOB,
		Status:          string(b.Status),
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
	}
}

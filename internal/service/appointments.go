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

const bookingLockTTL = 10 * time.Second

// newReferenceNumber returns a short, shareable booking reference such as
// "APT-3F2A91BC". Uniqueness is backed by the unique column constraint.
func newReferenceNumber(prefix string) string {
	u := uuid.New()
	return fmt.Sprintf("%s-%X", prefix, u[:4])
}

var allowedTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingNew:       {models.BookingConfirmed, models.BookingCancelled, models.BookingNoShow},
	models.BookingConfirmed: {models.BookingCompleted, models.BookingCancelled, models.BookingNoShow},
}

func canTransition(from, to models.BookingStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func validStatus(s models.BookingStatus) bool {
	switch s {
	case models.BookingNew, models.BookingConfirmed, models.BookingCompleted,
		models.BookingCancelled, models.BookingNoShow:
		return true
	}
	return false
}

// holdSlot takes the per-slot lock and re-checks that the slot is still
// offered. The returned unlock must run after the insert or update commits;
// until then concurrent attempts on the same slot get ErrLocked.
func (s *Service) holdSlot(ctx context.Context, op, doctorID, dateTime string, requested time.Time) (func(), error) {
	lockKey := fmt.Sprintf("appointment:%s:%s", doctorID, dateTime)

	locked, err := s.locker.Lock(ctx, lockKey, bookingLockTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: lock error: %w", op, err)
	}
	if !locked {
		return nil, fmt.Errorf("%s: %w", op, response.ErrLocked)
	}

	unlock := func() {
		_ = s.locker.Unlock(ctx, lockKey)
	}

	slots, err := s.GetAvailableSlots(ctx, doctorID, requested.Format(DateLayout))
	if err != nil {
		unlock()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, slot := range slots {
		if slot.DateTime == dateTime {
			return unlock, nil
		}
	}

	unlock()
	return nil, fmt.Errorf("%s: %w", op, response.ErrSlotNotAvailable)
}

// CreateAppointment is the booking transaction: it re-checks the requested
// slot against the generated availability under a per-slot lock and inserts
// the appointment. The partial unique index on (doctor_id, date_time) is the
// hard guard underneath, so two concurrent attempts for the same slot yield
// exactly one success.
func (s *Service) CreateAppointment(ctx context.Context, req *api.AppointmentRequest) (*api.BookingConfirmation, error) {
	const op = "service.CreateAppointment"

	if strings.TrimSpace(req.PatientName) == "" || strings.TrimSpace(req.PatientPhone) == "" {
		return nil, fmt.Errorf("%s: patient name and phone are required: %w", op, response.ErrValidation)
	}

	requested, err := time.ParseInLocation(DateTimeLayout, req.DateTime, s.loc)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid date_time: %w", op, response.ErrValidation)
	}

	// time.Parse accepts unpadded components ("9:30"); reformatting gives
	// the canonical string slots are generated and stored in.
	dateTime := requested.Format(DateTimeLayout)

	doctor, err := s.store.GetDoctor(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	unlock, err := s.holdSlot(ctx, op, req.DoctorID, dateTime, requested)
	if err != nil {
		return nil, err
	}
	defer unlock()

	appointment := &models.Appointment{
		ID:              uuid.NewString(),
		ReferenceNumber: newReferenceNumber("APT"),
		DoctorID:        req.DoctorID,
		DateTime:        dateTime,
		PatientName:     req.PatientName,
		PatientPhone:    req.PatientPhone,
		PatientEmail:    req.PatientEmail,
		PatientGender:   models.Gender(req.PatientGender),
		PatientDOB:      req.PatientDOB,
		Status:          models.BookingNew,
		Notes:           req.Notes,
	}

	id, err := s.store.CreateAppointment(ctx, appointment)
	if err != nil {
		if errors.Is(err, response.ErrSlotNotAvailable) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrSlotNotAvailable)
		}
		return nil, fmt.Errorf("%s: create appointment: %w", op, err)
	}

	booking := notify.Booking{
		Kind:            notify.KindAppointment,
		PatientName:     req.PatientName,
		PatientEmail:    req.PatientEmail,
		ReferenceNumber: appointment.ReferenceNumber,
		DateTime:        dateTime,
		ServiceName:     doctor.Name,
	}
	s.notifier.SendConfirmationEmail(booking)

	created, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &api.BookingConfirmation{
		ReferenceNumber:  appointment.ReferenceNumber,
		Appointment:      created,
		WhatsappTemplate: s.notifier.WhatsappMessage(booking),
	}, nil
}

func (s *Service) GetAppointment(ctx context.Context, id string) (*api.AppointmentResponse, error) {
	const op = "service.GetAppointment"

	appointment, err := s.store.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp := appointmentResponse(appointment)

	if doctor, err := s.store.GetDoctor(ctx, appointment.DoctorID); err == nil {
		resp.DoctorName = doctor.Name
	}

	return resp, nil
}

func (s *Service) ListAppointments(ctx context.Context, filters *AppointmentFilters) ([]*api.AppointmentResponse, error) {
	const op = "service.ListAppointments"

	appointments, err := s.store.ListAppointments(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*api.AppointmentResponse, 0, len(appointments))
	for _, appointment := range appointments {
		result = append(result, appointmentResponse(appointment))
	}

	return result, nil
}

// UpdateAppointment applies admin edits: a date_time change is a reschedule
// and revalidates the new slot the way a fresh booking would, a status
// change runs through the transition table, notes are replaced as-is.
func (s *Service) UpdateAppointment(ctx context.Context, id string, req *api.AppointmentUpdateRequest) (*api.AppointmentResponse, error) {
	const op = "service.UpdateAppointment"

	appointment, err := s.store.GetAppointment(ctx, id)
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
		dateTime := requested.Format(DateTimeLayout)

		if appointment.Status != models.BookingNew && appointment.Status != models.BookingConfirmed {
			return nil, fmt.Errorf("%s: cannot reschedule a %s appointment: %w", op, appointment.Status, response.ErrInvalidTransition)
		}

		if dateTime != appointment.DateTime {
			unlock, err := s.holdSlot(ctx, op, appointment.DoctorID, dateTime, requested)
			if err != nil {
				return nil, err
			}

			err = s.store.UpdateAppointmentDateTime(ctx, id, dateTime)
			unlock()
			if err != nil {
				if errors.Is(err, response.ErrSlotNotAvailable) {
					return nil, fmt.Errorf("%s: %w", op, response.ErrSlotNotAvailable)
				}
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	if req.Status != nil {
		newStatus := models.BookingStatus(*req.Status)
		if !validStatus(newStatus) {
			return nil, fmt.Errorf("%s: unknown status %q: %w", op, *req.Status, response.ErrValidation)
		}
		if !canTransition(appointment.Status, newStatus) {
			return nil, fmt.Errorf("%s: %s -> %s: %w", op, appointment.Status, newStatus, response.ErrInvalidTransition)
		}

		if err := s.store.UpdateAppointmentStatus(ctx, id, newStatus); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	if req.Notes != nil {
		if err := s.store.UpdateAppointmentNotes(ctx, id, *req.Notes); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return s.GetAppointment(ctx, id)
}

// CancelAppointment frees the slot: cancelled bookings are excluded from the
// availability filter, so the timestamp becomes bookable again.
func (s *Service) CancelAppointment(ctx context.Context, id string) (*api.AppointmentResponse, error) {
	const op = "service.CancelAppointment"

	appointment, err := s.store.GetAppointment(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !canTransition(appointment.Status, models.BookingCancelled) {
		return nil, fmt.Errorf("%s: %s -> %s: %w", op, appointment.Status, models.BookingCancelled, response.ErrInvalidTransition)
	}

	if err := s.store.UpdateAppointmentStatus(ctx, id, models.BookingCancelled); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetAppointment(ctx, id)
}

func appointmentResponse(a *models.Appointment) *api.AppointmentResponse {
	return &api.AppointmentResponse{
		ID:              a.ID,
		ReferenceNumber: a.ReferenceNumber,
		DoctorID:        a.DoctorID,
		DateTime:        a.DateTime,
		PatientName:     a.PatientName,
		PatientPhone:    a.PatientPhone,
		PatientEmail:    a.PatientEmail,
		PatientGender:   string(a.PatientGender),
		PatientDOB:      a.PatientDOB,
		Status:          string(a.Status),
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
	}
}

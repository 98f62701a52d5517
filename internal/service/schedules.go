package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hospital-service/api"
	"hospital-service/internal/models"
	"hospital-service/pkg/response"
)

func validateScheduleRequest(req *api.ScheduleRequest) error {
	if req.DoctorID == "" {
		return fmt.Errorf("doctor_id is required: %w", response.ErrValidation)
	}
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return fmt.Errorf("day_of_week must be 0..6: %w", response.ErrValidation)
	}

	start, err := time.Parse(TimeLayout, req.StartTime)
	if err != nil {
		return fmt.Errorf("invalid start_time: %w", response.ErrValidation)
	}
	end, err := time.Parse(TimeLayout, req.EndTime)
	if err != nil {
		return fmt.Errorf("invalid end_time: %w", response.ErrValidation)
	}
	if !start.Before(end) {
		return fmt.Errorf("start_time must be before end_time: %w", response.ErrValidation)
	}
	// Zero means "use the default"; only negatives are nonsense.
	if req.SlotMinutes < 0 {
		return fmt.Errorf("slot_minutes must not be negative: %w", response.ErrValidation)
	}

	return nil
}

func (s *Service) CreateSchedule(ctx context.Context, req *api.ScheduleRequest) (*api.ScheduleResponse, error) {
	const op = "service.CreateSchedule"

	if err := validateScheduleRequest(req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.store.GetDoctor(ctx, req.DoctorID); err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	slotMinutes := req.SlotMinutes
	if slotMinutes == 0 {
		slotMinutes = defaultSlotMinutes
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	schedule := &models.WeeklySchedule{
		ID:          uuid.NewString(),
		DoctorID:    req.DoctorID,
		DayOfWeek:   req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		SlotMinutes: slotMinutes,
		Active:      active,
	}

	id, err := s.store.CreateSchedule(ctx, schedule)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetSchedule(ctx, id)
}

func (s *Service) GetSchedule(ctx context.Context, id string) (*api.ScheduleResponse, error) {
	const op = "service.GetSchedule"

	schedule, err := s.store.GetSchedule(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return scheduleResponse(schedule), nil
}

func (s *Service) ListSchedules(ctx context.Context, doctorID *string) ([]*api.ScheduleResponse, error) {
	const op = "service.ListSchedules"

	schedules, err := s.store.ListSchedules(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*api.ScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		result = append(result, scheduleResponse(schedule))
	}

	return result, nil
}

func (s *Service) UpdateSchedule(ctx context.Context, id string, req *api.ScheduleRequest) (*api.ScheduleResponse, error) {
	const op = "service.UpdateSchedule"

	schedule, err := s.store.GetSchedule(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := validateScheduleRequest(req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	schedule.DoctorID = req.DoctorID
	schedule.DayOfWeek = req.DayOfWeek
	schedule.StartTime = req.StartTime
	schedule.EndTime = req.EndTime
	if req.SlotMinutes != 0 {
		schedule.SlotMinutes = req.SlotMinutes
	}
	if req.Active != nil {
		schedule.Active = *req.Active
	}

	if err := s.store.UpdateSchedule(ctx, schedule); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetSchedule(ctx, id)
}

func (s *Service) DeleteSchedule(ctx context.Context, id string) error {
	const op = "service.DeleteSchedule"

	if err := s.store.DeleteSchedule(ctx, id); err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Schedule Exceptions

// UpsertScheduleException creates the date override, replacing any existing
// exception for the same (doctor, date). At most one exception per date.
func (s *Service) UpsertScheduleException(ctx context.Context, req *api.ScheduleExceptionRequest) (*api.ScheduleExceptionResponse, error) {
	const op = "service.UpsertScheduleException"

	if req.DoctorID == "" {
		return nil, fmt.Errorf("%s: doctor_id is required: %w", op, response.ErrValidation)
	}
	if _, err := time.Parse(DateLayout, req.Date); err != nil {
		return nil, fmt.Errorf("%s: invalid date: %w", op, response.ErrValidation)
	}

	if (req.CustomStartTime == "") != (req.CustomEndTime == "") {
		return nil, fmt.Errorf("%s: custom times must be set together: %w", op, response.ErrValidation)
	}
	if req.CustomStartTime != "" {
		start, err := time.Parse(TimeLayout, req.CustomStartTime)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid custom_start_time: %w", op, response.ErrValidation)
		}
		end, err := time.Parse(TimeLayout, req.CustomEndTime)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid custom_end_time: %w", op, response.ErrValidation)
		}
		if !start.Before(end) {
			return nil, fmt.Errorf("%s: custom_start_time must be before custom_end_time: %w", op, response.ErrValidation)
		}
	}

	if _, err := s.store.GetDoctor(ctx, req.DoctorID); err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exc := &models.ScheduleException{
		ID:              uuid.NewString(),
		DoctorID:        req.DoctorID,
		Date:            req.Date,
		IsAvailable:     req.IsAvailable,
		CustomStartTime: req.CustomStartTime,
		CustomEndTime:   req.CustomEndTime,
		Notes:           req.Notes,
	}

	id, err := s.store.UpsertScheduleException(ctx, exc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetScheduleException(ctx, id)
}

func (s *Service) GetScheduleException(ctx context.Context, id string) (*api.ScheduleExceptionResponse, error) {
	const op = "service.GetScheduleException"

	exc, err := s.store.GetScheduleException(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return exceptionResponse(exc), nil
}

func (s *Service) ListScheduleExceptions(ctx context.Context, doctorID *string) ([]*api.ScheduleExceptionResponse, error) {
	const op = "service.ListScheduleExceptions"

	excs, err := s.store.ListScheduleExceptions(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*api.ScheduleExceptionResponse, 0, len(excs))
	for _, exc := range excs {
		result = append(result, exceptionResponse(exc))
	}

	return result, nil
}

func (s *Service) DeleteScheduleException(ctx context.Context, id string) error {
	const op = "service.DeleteScheduleException"

	if err := s.store.DeleteScheduleException(ctx, id); err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func scheduleResponse(sch *models.WeeklySchedule) *api.ScheduleResponse {
	return &api.ScheduleResponse{
		ID:          sch.ID,
		DoctorID:    sch.DoctorID,
		DayOfWeek:   sch.DayOfWeek,
		StartTime:   sch.StartTime,
		EndTime:     sch.EndTime,
		SlotMinutes: sch.SlotMinutes,
		Active:      sch.Active,
	}
}

func exceptionResponse(exc *models.ScheduleException) *api.ScheduleExceptionResponse {
	return &api.ScheduleExceptionResponse{
		ID:              exc.ID,
		DoctorID:        exc.DoctorID,
		Date:            exc.Date,
		IsAvailable:     exc.IsAvailable,
		CustomStartTime: exc.CustomStartTime,
		CustomEndTime:   exc.CustomEndTime,
		Notes:           exc.Notes,
	}
}

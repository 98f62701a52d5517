package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"hospital-service/api"
	"hospital-service/internal/models"
	"hospital-service/pkg/response"
)

const defaultSlotMinutes = 15

// dayWindow is one bookable stretch of a single day.
type dayWindow struct {
	start       time.Time
	end         time.Time
	slotMinutes int
}

// mondayFirstWeekday maps time.Weekday (Sunday=0) onto the schedule
// convention 0=Monday .. 6=Sunday.
func mondayFirstWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func parseTimeOfDay(date time.Time, hhmm string, loc *time.Location) (time.Time, error) {
	tod, err := time.Parse(TimeLayout, hhmm)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(date.Year(), date.Month(), date.Day(), tod.Hour(), tod.Minute(), 0, 0, loc), nil
}

// generateSlots combines the weekly templates and the date's exception into
// the ordered candidate slot starts for that date. Pure: no knowledge of
// existing bookings, no clock.
func generateSlots(date time.Time, schedules []*models.WeeklySchedule, exc *models.ScheduleException, loc *time.Location) []time.Time {
	if exc != nil && !exc.IsAvailable {
		return nil
	}

	var windows []dayWindow

	if exc != nil && exc.IsAvailable && exc.CustomStartTime != "" && exc.CustomEndTime != "" {
		// Custom hours replace the weekly template for this date. Slot
		// granularity still comes from the template when one exists.
		slotMinutes := defaultSlotMinutes
		for _, sch := range schedules {
			if sch.Active && sch.SlotMinutes > 0 {
				slotMinutes = sch.SlotMinutes
				break
			}
		}

		start, err := parseTimeOfDay(date, exc.CustomStartTime, loc)
		if err != nil {
			return nil
		}
		end, err := parseTimeOfDay(date, exc.CustomEndTime, loc)
		if err != nil {
			return nil
		}

		windows = append(windows, dayWindow{start: start, end: end, slotMinutes: slotMinutes})
	} else {
		for _, sch := range schedules {
			if !sch.Active {
				continue
			}

			start, err := parseTimeOfDay(date, sch.StartTime, loc)
			if err != nil {
				continue
			}
			end, err := parseTimeOfDay(date, sch.EndTime, loc)
			if err != nil {
				continue
			}

			slotMinutes := sch.SlotMinutes
			if slotMinutes <= 0 {
				slotMinutes = defaultSlotMinutes
			}

			windows = append(windows, dayWindow{start: start, end: end, slotMinutes: slotMinutes})
		}
	}

	seen := make(map[int64]struct{})
	var slots []time.Time

	for _, w := range windows {
		dur := time.Duration(w.slotMinutes) * time.Minute

		// A slot must end within the window: no trailing partial slot.
		for cur := w.start; !cur.Add(dur).After(w.end); cur = cur.Add(dur) {
			key := cur.Unix()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			slots = append(slots, cur)
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })

	return slots
}

// filterAvailable drops candidates already taken by a non-cancelled booking
// and candidates strictly in the past. Order is preserved.
func filterAvailable(candidates []time.Time, bookedTimes []string, now time.Time) []time.Time {
	booked := make(map[string]struct{}, len(bookedTimes))
	for _, bt := range bookedTimes {
		booked[bt] = struct{}{}
	}

	available := make([]time.Time, 0, len(candidates))
	for _, c := range candidates {
		if c.Before(now) {
			continue
		}
		if _, ok := booked[c.Format(DateTimeLayout)]; ok {
			continue
		}
		available = append(available, c)
	}

	return available
}

// GetAvailableSlots returns the bookable slot starts for one doctor on one
// date, ascending.
func (s *Service) GetAvailableSlots(ctx context.Context, doctorID, dateStr string) ([]*api.SlotResponse, error) {
	const op = "service.GetAvailableSlots"

	date, err := time.ParseInLocation(DateLayout, dateStr, s.loc)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid date: %w", op, response.ErrValidation)
	}

	if _, err := s.store.GetDoctor(ctx, doctorID); err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exc, err := s.store.GetExceptionByDate(ctx, doctorID, dateStr)
	if err != nil && !errors.Is(err, response.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	schedules, err := s.store.ListActiveSchedulesForDay(ctx, doctorID, mondayFirstWeekday(date))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bookedTimes, err := s.store.ListBookedTimes(ctx, doctorID, dateStr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	candidates := generateSlots(date, schedules, exc, s.loc)
	available := filterAvailable(candidates, bookedTimes, s.now().In(s.loc))

	result := make([]*api.SlotResponse, 0, len(available))
	for _, slot := range available {
		result = append(result, &api.SlotResponse{
			Time:     slot.Format(TimeLayout),
			DateTime: slot.Format(DateTimeLayout),
		})
	}

	return result, nil
}

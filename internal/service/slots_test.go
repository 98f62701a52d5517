package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-service/internal/models"
	"hospital-service/pkg/response"
)

func TestMondayFirstWeekday(t *testing.T) {
	loc, err := time.LoadLocation(testTimezone)
	require.NoError(t, err)

	cases := []struct {
		date string
		want int
	}{
		{"2025-01-13", 0}, // Monday
		{"2025-01-14", 1},
		{"2025-01-17", 4},
		{"2025-01-18", 5},
		{"2025-01-19", 6}, // Sunday
	}

	for _, tc := range cases {
		date, err := time.ParseInLocation(DateLayout, tc.date, loc)
		require.NoError(t, err)
		assert.Equal(t, tc.want, mondayFirstWeekday(date), tc.date)
	}
}

func TestGenerateSlots(t *testing.T) {
	loc, err := time.LoadLocation(testTimezone)
	require.NoError(t, err)

	monday, err := time.ParseInLocation(DateLayout, "2025-01-13", loc)
	require.NoError(t, err)

	template := func(start, end string, slotMinutes int) *models.WeeklySchedule {
		return &models.WeeklySchedule{
			ID:          "sch-1",
			DoctorID:    "doc-1",
			DayOfWeek:   0,
			StartTime:   start,
			EndTime:     end,
			SlotMinutes: slotMinutes,
			Active:      true,
		}
	}

	t.Run("full day every 15 minutes", func(t *testing.T) {
		slots := generateSlots(monday, []*models.WeeklySchedule{template("09:00", "17:00", 15)}, nil, loc)

		require.Len(t, slots, 32)
		assert.Equal(t, "09:00", slots[0].Format(TimeLayout))
		assert.Equal(t, "16:45", slots[len(slots)-1].Format(TimeLayout))
	})

	t.Run("no trailing partial slot", func(t *testing.T) {
		slots := generateSlots(monday, []*models.WeeklySchedule{template("09:00", "09:50", 20)}, nil, loc)

		require.Len(t, slots, 2)
		assert.Equal(t, "09:00", slots[0].Format(TimeLayout))
		assert.Equal(t, "09:20", slots[1].Format(TimeLayout))
	})

	t.Run("no templates means no slots", func(t *testing.T) {
		slots := generateSlots(monday, nil, nil, loc)
		assert.Empty(t, slots)
	})

	t.Run("inactive template is skipped", func(t *testing.T) {
		sch := template("09:00", "17:00", 15)
		sch.Active = false

		slots := generateSlots(monday, []*models.WeeklySchedule{sch}, nil, loc)
		assert.Empty(t, slots)
	})

	t.Run("blackout exception empties the day", func(t *testing.T) {
		exc := &models.ScheduleException{DoctorID: "doc-1", Date: "2025-01-13", IsAvailable: false}

		slots := generateSlots(monday, []*models.WeeklySchedule{template("09:00", "17:00", 15)}, exc, loc)
		assert.Empty(t, slots)
	})

	t.Run("custom hours replace the template window", func(t *testing.T) {
		exc := &models.ScheduleException{
			DoctorID:        "doc-1",
			Date:            "2025-01-13",
			IsAvailable:     true,
			CustomStartTime: "14:00",
			CustomEndTime:   "16:00",
		}

		slots := generateSlots(monday, []*models.WeeklySchedule{template("09:00", "17:00", 30)}, exc, loc)

		require.Len(t, slots, 4)
		assert.Equal(t, "14:00", slots[0].Format(TimeLayout))
		assert.Equal(t, "15:30", slots[len(slots)-1].Format(TimeLayout))
	})

	t.Run("custom hours without any template use the default granularity", func(t *testing.T) {
		exc := &models.ScheduleException{
			DoctorID:        "doc-1",
			Date:            "2025-01-13",
			IsAvailable:     true,
			CustomStartTime: "10:00",
			CustomEndTime:   "11:00",
		}

		slots := generateSlots(monday, nil, exc, loc)

		require.Len(t, slots, 4)
		assert.Equal(t, "10:00", slots[0].Format(TimeLayout))
		assert.Equal(t, "10:45", slots[len(slots)-1].Format(TimeLayout))
	})

	t.Run("overlapping templates union and dedup", func(t *testing.T) {
		morning := template("09:00", "12:00", 30)
		overlap := &models.WeeklySchedule{
			ID: "sch-2", DoctorID: "doc-1", DayOfWeek: 0,
			StartTime: "11:00", EndTime: "13:00", SlotMinutes: 30, Active: true,
		}

		slots := generateSlots(monday, []*models.WeeklySchedule{morning, overlap}, nil, loc)

		// 09:00..11:30 from the first, 12:00 and 12:30 new from the second;
		// 11:00 and 11:30 appear once.
		require.Len(t, slots, 8)
		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i-1].Before(slots[i]), "slots must be strictly ascending")
		}
		assert.Equal(t, "12:30", slots[len(slots)-1].Format(TimeLayout))
	})
}

func TestFilterAvailable(t *testing.T) {
	loc, err := time.LoadLocation(testTimezone)
	require.NoError(t, err)

	at := func(hhmm string) time.Time {
		tod, err := time.Parse(TimeLayout, hhmm)
		require.NoError(t, err)
		return time.Date(2025, 1, 13, tod.Hour(), tod.Minute(), 0, 0, loc)
	}

	candidates := []time.Time{at("09:00"), at("09:15"), at("09:30"), at("09:45")}

	t.Run("booked times are dropped", func(t *testing.T) {
		got := filterAvailable(candidates, []string{"2025-01-13 09:15"}, at("00:00"))

		require.Len(t, got, 3)
		for _, slot := range got {
			assert.NotEqual(t, "09:15", slot.Format(TimeLayout))
		}
	})

	t.Run("past slots are dropped", func(t *testing.T) {
		got := filterAvailable(candidates, nil, at("09:20"))

		require.Len(t, got, 2)
		assert.Equal(t, "09:30", got[0].Format(TimeLayout))
	})

	t.Run("slot starting exactly now is kept", func(t *testing.T) {
		got := filterAvailable(candidates, nil, at("09:45"))

		require.Len(t, got, 1)
		assert.Equal(t, "09:45", got[0].Format(TimeLayout))
	})
}

func TestGetAvailableSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("monday template yields 32 slots", func(t *testing.T) {
		store := newMemStore()
		seedDoctor(t, store, "doc-1")
		seedSchedule(t, store, "sch-1", "doc-1", 0, "09:00", "17:00", 15)
		svc := newTestService(t, store)

		slots, err := svc.GetAvailableSlots(ctx, "doc-1", "2025-01-13")
		require.NoError(t, err)

		require.Len(t, slots, 32)
		assert.Equal(t, "09:00", slots[0].Time)
		assert.Equal(t, "2025-01-13 09:00", slots[0].DateTime)
		assert.Equal(t, "16:45", slots[len(slots)-1].Time)
	})

	t.Run("repeated reads are identical", func(t *testing.T) {
		store := newMemStore()
		seedDoctor(t, store, "doc-1")
		seedSchedule(t, store, "sch-1", "doc-1", 0, "09:00", "12:00", 30)
		svc := newTestService(t, store)

		first, err := svc.GetAvailableSlots(ctx, "doc-1", "2025-01-13")
		require.NoError(t, err)
		second, err := svc.GetAvailableSlots(ctx, "doc-1", "2025-01-13")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("day without template is empty", func(t *testing.T) {
		store := newMemStore()
		seedDoctor(t, store, "doc-1")
		seedSchedule(t, store, "sch-1", "doc-1", 0, "09:00", "17:00", 15)
		svc := newTestService(t, store)

		// 2025-01-14 is a Tuesday; only Monday has a template.
		slots, err := svc.GetAvailableSlots(ctx, "doc-1", "2025-01-14")
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("blackout exception removes all slots", func(t *testing.T) {
		store := newMemStore()
		seedDoctor(t, store, "doc-1")
		seedSchedule(t, store, "sch-1", "doc-1", 0, "09:00", "17:00", 15)
		_, err := store.UpsertScheduleException(ctx, &models.ScheduleException{
			ID: "exc-1", DoctorID: "doc-1", Date: "2025-01-13", IsAvailable: false,
		})
		require.NoError(t, err)
		svc := newTestService(t, store)

		slots, err := svc.GetAvailableSlots(ctx, "doc-1", "2025-01-13")
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("booked slot is excluded", func(t *testing.T) {
		store := newMemStore()
		seedDoctor(t, store, "doc-1")
		seedSchedule(t, store, "sch-1", "doc-1", 0, "09:00", "10:00", 15)
		_, err := store.CreateAppointment(ctx, &models.Appointment{
			ID: "apt-1", ReferenceNumber: "APT-AAAA0001", DoctorID: "doc-1",
			DateTime: "2025-01-13 09:30", PatientName: "Ali", PatientPhone: "0300",
			Status: models.BookingNew,
		})
		require.NoError(t, err)
		svc := newTestService(t, store)

		slots, err := svc.GetAvailableSlots(ctx, "doc-1", "2025-01-13")
		require.NoError(t, err)

		require.Len(t, slots, 3)
		for _, slot := range slots {
			assert.NotEqual(t, "09:30", slot.Time)
		}
	})

	t.Run("cancelled booking frees the slot", func(t *testing.T) {
		store := newMemStore()
		seedDoctor(t, store, "doc-1")
		seedSchedule(t, store, "sch-1", "doc-1", 0, "09:00", "10:00", 15)
		_, err := store.CreateAppointment(ctx, &models.Appointment{
			ID: "apt-1", ReferenceNumber: "APT-AAAA0001", DoctorID: "doc-1",
			DateTime: "2025-01-13 09:30", PatientName: "Ali", PatientPhone: "0300",
			Status: models.BookingCancelled,
		})
		require.NoError(t, err)
		svc := newTestService(t, store)

		slots, err := svc.GetAvailableSlots(ctx, "doc-1", "2025-01-13")
		require.NoError(t, err)
		assert.Len(t, slots, 4)
	})

	t.Run("same-day query hides past slots", func(t *testing.T) {
		store := newMemStore()
		seedDoctor(t, store, "doc-1")
		// 2025-01-01 is a Wednesday (day index 2). The test clock is fixed
		// at 12:00 that day.
		seedSchedule(t, store, "sch-1", "doc-1", 2, "09:00", "17:00", 60)
		svc := newTestService(t, store)

		slots, err := svc.GetAvailableSlots(ctx, "doc-1", "2025-01-01")
		require.NoError(t, err)

		require.Len(t, slots, 5)
		assert.Equal(t, "12:00", slots[0].Time)
	})

	t.Run("invalid date", func(t *testing.T) {
		store := newMemStore()
		seedDoctor(t, store, "doc-1")
		svc := newTestService(t, store)

		_, err := svc.GetAvailableSlots(ctx, "doc-1", "13-01-2025")
		assert.ErrorIs(t, err, response.ErrValidation)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		svc := newTestService(t, newMemStore())

		_, err := svc.GetAvailableSlots(ctx, "nope", "2025-01-13")
		assert.ErrorIs(t, err, response.ErrNotFound)
	})
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-service/api"
	"hospital-service/pkg/response"
)

func TestCreateSchedule(t *testing.T) {
	ctx := context.Background()

	valid := func() *api.ScheduleRequest {
		return &api.ScheduleRequest{
			DoctorID:    "doc-1",
			DayOfWeek:   0,
			StartTime:   "09:00",
			EndTime:     "17:00",
			SlotMinutes: 15,
		}
	}

	t.Run("creates with defaults", func(t *testing.T) {
		store := newMemStore()
		seedDoctor(t, store, "doc-1")
		svc := newTestService(t, store)

		req := valid()
		req.SlotMinutes = 0

		schedule, err := svc.CreateSchedule(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, 15, schedule.SlotMinutes, "slot_minutes defaults")
		assert.True(t, schedule.Active)
	})

	t.Run("rejects negative slot_minutes", func(t *testing.T) {
		store := newMemStore()
		seedDoctor(t, store, "doc-1")
		svc := newTestService(t, store)

		req := valid()
		req.SlotMinutes = -5

		_, err := svc.CreateSchedule(ctx, req)
		assert.ErrorIs(t, err, response.ErrValidation)
	})

	t.Run("rejects bad day_of_week", func(t *testing.T) {
		store := newMemStore()
		seedDoctor(t, store, "doc-1")
		svc := newTestService(t, store)

		for _, day := range []int{-1, 7, 12} {
			req := valid()
			req.DayOfWeek = day

			_, err := svc.CreateSchedule(ctx, req)
			assert.ErrorIs(t, err, response.ErrValidation)
		}
	})

	t.Run("rejects inverted window", func(t *testing.T) {
		store := newMemStore()
		seedDoctor(t, store, "doc-1")
		svc := newTestService(t, store)

		req := valid()
		req.StartTime = "17:00"
		req.EndTime = "09:00"

		_, err := svc.CreateSchedule(ctx, req)
		assert.ErrorIs(t, err, response.ErrValidation)
	})

	t.Run("rejects malformed times", func(t *testing.T) {
		store := newMemStore()
		seedDoctor(t, store, "doc-1")
		svc := newTestService(t, store)

		req := valid()
		req.StartTime = "9am"

		_, err := svc.CreateSchedule(ctx, req)
		assert.ErrorIs(t, err, response.ErrValidation)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		svc := newTestService(t, newMemStore())

		_, err := svc.CreateSchedule(ctx, valid())
		assert.ErrorIs(t, err, response.ErrNotFound)
	})
}

func TestUpsertScheduleException(t *testing.T) {
	ctx := context.Background()

	t.Run("second upsert for the same date replaces the first", func(t *testing.T) {
		store := newMemStore()
		seedDoctor(t, store, "doc-1")
		svc := newTestService(t, store)

		first, err := svc.UpsertScheduleException(ctx, &api.ScheduleExceptionRequest{
			DoctorID: "doc-1", Date: "2025-01-13", IsAvailable: false, Notes: "public holiday",
		})
		require.NoError(t, err)

		second, err := svc.UpsertScheduleException(ctx, &api.ScheduleExceptionRequest{
			DoctorID: "doc-1", Date: "2025-01-13", IsAvailable: true,
			CustomStartTime: "10:00", CustomEndTime: "13:00",
		})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID, "one exception per (doctor, date)")
		assert.True(t, second.IsAvailable)

		all, err := svc.ListScheduleExceptions(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("custom times must come together", func(t *testing.T) {
		store := newMemStore()
		seedDoctor(t, store, "doc-1")
		svc := newTestService(t, store)

		_, err := svc.UpsertScheduleException(ctx, &api.ScheduleExceptionRequest{
			DoctorID: "doc-1", Date: "2025-01-13", IsAvailable: true, CustomStartTime: "10:00",
		})
		assert.ErrorIs(t, err, response.ErrValidation)
	})

	t.Run("custom window must be ordered", func(t *testing.T) {
		store := newMemStore()
		seedDoctor(t, store, "doc-1")
		svc := newTestService(t, store)

		_, err := svc.UpsertScheduleException(ctx, &api.ScheduleExceptionRequest{
			DoctorID: "doc-1", Date: "2025-01-13", IsAvailable: true,
			CustomStartTime: "13:00", CustomEndTime: "10:00",
		})
		assert.ErrorIs(t, err, response.ErrValidation)
	})

	t.Run("invalid date", func(t *testing.T) {
		store := newMemStore()
		seedDoctor(t, store, "doc-1")
		svc := newTestService(t, store)

		_, err := svc.UpsertScheduleException(ctx, &api.ScheduleExceptionRequest{
			DoctorID: "doc-1", Date: "Jan 13", IsAvailable: false,
		})
		assert.ErrorIs(t, err, response.ErrValidation)
	})

	t.Run("delete restores the weekly template", func(t *testing.T) {
		store := newMemStore()
		seedDoctor(t, store, "doc-1")
		seedSchedule(t, store, "sch-1", "doc-1", 0, "09:00", "10:00", 30)
		svc := newTestService(t, store)

		exc, err := svc.UpsertScheduleException(ctx, &api.ScheduleExceptionRequest{
			DoctorID: "doc-1", Date: "2025-01-13", IsAvailable: false,
		})
		require.NoError(t, err)

		slots, err := svc.GetAvailableSlots(ctx, "doc-1", "2025-01-13")
		require.NoError(t, err)
		require.Empty(t, slots)

		require.NoError(t, svc.DeleteScheduleException(ctx, exc.ID))

		slots, err = svc.GetAvailableSlots(ctx, "doc-1", "2025-01-13")
		require.NoError(t, err)
		assert.Len(t, slots, 2)
	})
}

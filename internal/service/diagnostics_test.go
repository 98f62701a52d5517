package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-service/api"
	"hospital-service/internal/models"
	"hospital-service/pkg/response"
)

func seedTest(t *testing.T, store *memStore) *models.DiagnosticTest {
	t.Helper()

	test := &models.DiagnosticTest{
		ID:          "test-1",
		Name:        "Complete Blood Count",
		Category:    models.CategoryLabTests,
		Preparation: "Fasting for 8 hours required",
		Price:       "800",
		Active:      true,
	}
	_, err := store.CreateDiagnosticTest(context.Background(), test)
	require.NoError(t, err)

	return test
}

func TestCreateDiagnosticTest(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with price default", func(t *testing.T) {
		svc := newTestService(t, newMemStore())

		test, err := svc.CreateDiagnosticTest(ctx, &api.DiagnosticTestRequest{
			Name:     "ECG",
			Category: "cardiology",
		})
		require.NoError(t, err)

		assert.Equal(t, "Call for price", test.Price)
		assert.True(t, test.Active)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		svc := newTestService(t, newMemStore())

		_, err := svc.CreateDiagnosticTest(ctx, &api.DiagnosticTestRequest{
			Name:     "ECG",
			Category: "surgery",
		})
		assert.ErrorIs(t, err, response.ErrValidation)
	})

	t.Run("delete deactivates instead of removing", func(t *testing.T) {
		store := newMemStore()
		seedTest(t, store)
		svc := newTestService(t, store)

		require.NoError(t, svc.DeleteDiagnosticTest(ctx, "test-1"))

		active, err := svc.ListDiagnosticTests(ctx, nil, true)
		require.NoError(t, err)
		assert.Empty(t, active)

		all, err := svc.ListDiagnosticTests(ctx, nil, false)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestCreateDiagnosticBooking(t *testing.T) {
	ctx := context.Background()

	valid := func() *api.DiagnosticBookingRequest {
		return &api.DiagnosticBookingRequest{
			TestID:       "test-1",
			DateTime:     "2025-01-13 10:00",
			PatientName:  "Sana Malik",
			PatientPhone: "0300-2222222",
		}
	}

	t.Run("books and returns preparation", func(t *testing.T) {
		store := newMemStore()
		seedTest(t, store)
		svc := newTestService(t, store)

		confirmation, err := svc.CreateDiagnosticBooking(ctx, valid())
		require.NoError(t, err)

		assert.Regexp(t, regexp.MustCompile(`^DGN-[0-9A-F]{8}$`), confirmation.ReferenceNumber)
		assert.Equal(t, "Fasting for 8 hours required", confirmation.Preparation)
		assert.Contains(t, confirmation.WhatsappTemplate, "Complete Blood Count")
		require.NotNil(t, confirmation.Booking)
		assert.Equal(t, "new", confirmation.Booking.Status)
		assert.Equal(t, "Complete Blood Count", confirmation.Booking.TestName)
	})

	t.Run("same time twice is allowed", func(t *testing.T) {
		store := newMemStore()
		seedTest(t, store)
		svc := newTestService(t, store)

		_, err := svc.CreateDiagnosticBooking(ctx, valid())
		require.NoError(t, err)
		_, err = svc.CreateDiagnosticBooking(ctx, valid())
		assert.NoError(t, err, "diagnostic capacity is not slot-bound")
	})

	t.Run("unknown test", func(t *testing.T) {
		svc := newTestService(t, newMemStore())

		_, err := svc.CreateDiagnosticBooking(ctx, valid())
		assert.ErrorIs(t, err, response.ErrNotFound)
	})

	t.Run("missing patient details", func(t *testing.T) {
		store := newMemStore()
		seedTest(t, store)
		svc := newTestService(t, store)

		req := valid()
		req.PatientPhone = ""

		_, err := svc.CreateDiagnosticBooking(ctx, req)
		assert.ErrorIs(t, err, response.ErrValidation)
	})
}

func TestUpdateDiagnosticBooking(t *testing.T) {
	ctx := context.Background()

	strPtr := func(s string) *string { return &s }

	store := newMemStore()
	seedTest(t, store)
	svc := newTestService(t, store)

	confirmation, err := svc.CreateDiagnosticBooking(ctx, &api.DiagnosticBookingRequest{
		TestID: "test-1", DateTime: "2025-01-13 10:00",
		PatientName: "Sana Malik", PatientPhone: "0300-2222222",
	})
	require.NoError(t, err)

	id := confirmation.Booking.ID

	updated, err := svc.UpdateDiagnosticBooking(ctx, id, &api.AppointmentUpdateRequest{Status: strPtr("confirmed")})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", updated.Status)

	updated, err = svc.UpdateDiagnosticBooking(ctx, id, &api.AppointmentUpdateRequest{Status: strPtr("completed")})
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)

	_, err = svc.UpdateDiagnosticBooking(ctx, id, &api.AppointmentUpdateRequest{Status: strPtr("cancelled")})
	assert.ErrorIs(t, err, response.ErrInvalidTransition, "completed is terminal")
}

func TestRescheduleDiagnosticBooking(t *testing.T) {
	ctx := context.Background()

	strPtr := func(s string) *string { return &s }

	newBooking := func(t *testing.T) (*Service, string) {
		t.Helper()

		store := newMemStore()
		seedTest(t, store)
		svc := newTestService(t, store)

		confirmation, err := svc.CreateDiagnosticBooking(ctx, &api.DiagnosticBookingRequest{
			TestID: "test-1", DateTime: "2025-01-13 10:00",
			PatientName: "Sana Malik", PatientPhone: "0300-2222222",
		})
		require.NoError(t, err)

		return svc, confirmation.Booking.ID
	}

	t.Run("moves and normalizes", func(t *testing.T) {
		svc, id := newBooking(t)

		updated, err := svc.UpdateDiagnosticBooking(ctx, id,
			&api.AppointmentUpdateRequest{DateTime: strPtr("2025-01-14 8:30")})
		require.NoError(t, err)
		assert.Equal(t, "2025-01-14 08:30", updated.DateTime)
	})

	t.Run("malformed date_time", func(t *testing.T) {
		svc, id := newBooking(t)

		_, err := svc.UpdateDiagnosticBooking(ctx, id,
			&api.AppointmentUpdateRequest{DateTime: strPtr("tomorrow")})
		assert.ErrorIs(t, err, response.ErrValidation)
	})

	t.Run("terminal bookings cannot move", func(t *testing.T) {
		svc, id := newBooking(t)

		_, err := svc.UpdateDiagnosticBooking(ctx, id, &api.AppointmentUpdateRequest{Status: strPtr("cancelled")})
		require.NoError(t, err)

		_, err = svc.UpdateDiagnosticBooking(ctx, id,
			&api.AppointmentUpdateRequest{DateTime: strPtr("2025-01-14 08:30")})
		assert.ErrorIs(t, err, response.ErrInvalidTransition)
	})
}

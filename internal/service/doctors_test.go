package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-service/api"
	"hospital-service/internal/models"
	"hospital-service/pkg/response"
)

func seedSpecialty(t *testing.T, store *memStore, id string) *models.Specialty {
	t.Helper()

	specialty := &models.Specialty{
		ID:     id,
		Name:   "Cardiology",
		Icon:   "heart",
		Active: true,
	}
	_, err := store.CreateSpecialty(context.Background(), specialty)
	require.NoError(t, err)

	return specialty
}

func TestSpecialties(t *testing.T) {
	ctx := context.Background()

	t.Run("create requires name", func(t *testing.T) {
		svc := newTestService(t, newMemStore())

		_, err := svc.CreateSpecialty(ctx, &api.SpecialtyRequest{Name: "  "})
		assert.ErrorIs(t, err, response.ErrValidation)
	})

	t.Run("active listing hides deactivated", func(t *testing.T) {
		store := newMemStore()
		seedSpecialty(t, store, "spec-1")
		svc := newTestService(t, store)

		inactive := false
		_, err := svc.UpdateSpecialty(ctx, "spec-1", &api.SpecialtyRequest{
			Name:   "Cardiology",
			Active: &inactive,
		})
		require.NoError(t, err)

		active, err := svc.ListSpecialties(ctx, true)
		require.NoError(t, err)
		assert.Empty(t, active)

		all, err := svc.ListSpecialties(ctx, false)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("delete unknown", func(t *testing.T) {
		svc := newTestService(t, newMemStore())

		err := svc.DeleteSpecialty(ctx, "missing")
		assert.ErrorIs(t, err, response.ErrNotFound)
	})
}

func TestDoctors(t *testing.T) {
	ctx := context.Background()

	request := func() *api.DoctorRequest {
		return &api.DoctorRequest{
			Name:        "Dr. Ayesha Khan",
			SpecialtyID: "spec-1",
			Gender:      "female",
			Languages:   []string{"Urdu", "English"},
		}
	}

	t.Run("create resolves specialty and defaults fee", func(t *testing.T) {
		store := newMemStore()
		seedSpecialty(t, store, "spec-1")
		svc := newTestService(t, store)

		doctor, err := svc.CreateDoctor(ctx, request())
		require.NoError(t, err)

		assert.Equal(t, "Call for price", doctor.Fee)
		assert.Equal(t, "Cardiology", doctor.Specialty)
		assert.True(t, doctor.Active)
	})

	t.Run("create rejects unknown specialty", func(t *testing.T) {
		svc := newTestService(t, newMemStore())

		_, err := svc.CreateDoctor(ctx, request())
		assert.ErrorIs(t, err, response.ErrNotFound)
	})

	t.Run("list filters by specialty and name", func(t *testing.T) {
		store := newMemStore()
		seedSpecialty(t, store, "spec-1")
		svc := newTestService(t, store)

		_, err := svc.CreateDoctor(ctx, request())
		require.NoError(t, err)

		other := request()
		other.Name = "Dr. Bilal Ahmed"
		_, err = svc.CreateDoctor(ctx, other)
		require.NoError(t, err)

		specID := "spec-1"
		bySpecialty, err := svc.ListDoctors(ctx, &DoctorFilters{ActiveOnly: true, SpecialtyID: &specID})
		require.NoError(t, err)
		assert.Len(t, bySpecialty, 2)

		q := "ayesha"
		byName, err := svc.ListDoctors(ctx, &DoctorFilters{ActiveOnly: true, Q: &q})
		require.NoError(t, err)
		require.Len(t, byName, 1)
		assert.Equal(t, "Dr. Ayesha Khan", byName[0].Name)
	})

	t.Run("delete deactivates", func(t *testing.T) {
		store := newMemStore()
		seedSpecialty(t, store, "spec-1")
		svc := newTestService(t, store)

		doctor, err := svc.CreateDoctor(ctx, request())
		require.NoError(t, err)

		require.NoError(t, svc.DeleteDoctor(ctx, doctor.ID))

		active, err := svc.ListDoctors(ctx, &DoctorFilters{ActiveOnly: true})
		require.NoError(t, err)
		assert.Empty(t, active)

		got, err := svc.GetDoctor(ctx, doctor.ID)
		require.NoError(t, err)
		assert.False(t, got.Active)
	})
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-service/internal/models"
)

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newMemStore())

	updated, err := svc.UpdateSettings(ctx, &models.SiteSettings{
		HospitalName: "Sadiqabad Medical Complex",
		Phone:        "+92-300-1234567",
		WorkingHours: "Mon-Sat 9:00-21:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sadiqabad Medical Complex", updated.HospitalName)

	got, err := svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mon-Sat 9:00-21:00", got.WorkingHours)
}

package notify

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"hospital-service/internal/config"
)

func newTestNotifier() *Notifier {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), config.Hospital{
		Name:  "Sadiqabad Medical Complex",
		Phone: "+92-300-1234567",
		Email: "info@sadiqabadmedical.com",
	})
}

func TestWhatsappMessage(t *testing.T) {
	n := newTestNotifier()

	t.Run("appointment", func(t *testing.T) {
		msg := n.WhatsappMessage(Booking{
			Kind:            KindAppointment,
			PatientName:     "Ali Raza",
			ReferenceNumber: "APT-3F2A91BC",
			DateTime:        "2025-01-13 09:30",
			ServiceName:     "Dr. Ayesha Khan",
		})

		assert.Contains(t, msg, "Dear Ali Raza")
		assert.Contains(t, msg, "Ref: APT-3F2A91BC")
		assert.Contains(t, msg, "Doctor: Dr. Ayesha Khan")
		assert.Contains(t, msg, "Date/Time: 2025-01-13 09:30")
		assert.Contains(t, msg, "Sadiqabad Medical Complex")
		assert.Contains(t, msg, "arrive 15 mins early")
	})

	t.Run("diagnostic", func(t *testing.T) {
		msg := n.WhatsappMessage(Booking{
			Kind:            KindDiagnostic,
			PatientName:     "Sana Malik",
			ReferenceNumber: "DGN-11223344",
			DateTime:        "2025-01-13 10:00",
			ServiceName:     "Complete Blood Count",
		})

		assert.Contains(t, msg, "Test: Complete Blood Count")
		assert.Contains(t, msg, "Ref: DGN-11223344")
		assert.NotContains(t, msg, "Doctor:")
	})
}

func TestEmailBody(t *testing.T) {
	n := newTestNotifier()

	t.Run("appointment", func(t *testing.T) {
		body := n.EmailBody(Booking{
			Kind:            KindAppointment,
			PatientName:     "Ali Raza",
			ReferenceNumber: "APT-3F2A91BC",
			DateTime:        "2025-01-13 09:30",
			ServiceName:     "Dr. Ayesha Khan",
		})

		assert.Contains(t, body, "Reference Number: APT-3F2A91BC")
		assert.Contains(t, body, "Doctor: Dr. Ayesha Khan")
		assert.Contains(t, body, "Phone: +92-300-1234567")
		assert.Contains(t, body, "Email: info@sadiqabadmedical.com")
		assert.Contains(t, body, "15 minutes before")
	})

	t.Run("diagnostic with preparation", func(t *testing.T) {
		body := n.EmailBody(Booking{
			Kind:            KindDiagnostic,
			PatientName:     "Sana Malik",
			ReferenceNumber: "DGN-11223344",
			DateTime:        "2025-01-13 10:00",
			ServiceName:     "Complete Blood Count",
			AdditionalInfo:  "\nPreparation: Fasting for 8 hours required",
		})

		assert.Contains(t, body, "Test: Complete Blood Count")
		assert.Contains(t, body, "Preparation: Fasting for 8 hours required")
		assert.Contains(t, body, "preparation instructions")
	})
}

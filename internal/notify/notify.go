package notify

import (
	"fmt"
	"log/slog"

	"hospital-service/internal/config"
)

type BookingKind string

const (
	KindAppointment BookingKind = "appointment"
	KindDiagnostic  BookingKind = "diagnostic"
)

// Notifier renders the patient-facing confirmation messages. Email delivery
// is not wired to an SMTP gateway; the prepared body is logged so reception
// staff can resend it manually.
type Notifier struct {
	log      *slog.Logger
	hospital config.Hospital
}

func New(log *slog.Logger, hospital config.Hospital) *Notifier {
	return &Notifier{log: log, hospital: hospital}
}

type Booking struct {
	Kind            BookingKind
	PatientName     string
	PatientEmail    string
	ReferenceNumber string
	DateTime        string
	ServiceName     string // doctor name or test name
	AdditionalInfo  string
}

func (n *Notifier) WhatsappMessage(b Booking) string {
	if b.Kind == KindAppointment {
		return fmt.Sprintf(`Dear %s, your appointment at %s is confirmed.

Ref: %s
Doctor: %s
Date/Time: %s

Please arrive 15 mins early. For queries: %s`,
			b.PatientName, n.hospital.Name, b.ReferenceNumber, b.ServiceName, b.DateTime, n.hospital.Phone)
	}

	return fmt.Sprintf(`Dear %s, your diagnostic test at %s is confirmed.

Ref: %s
Test: %s
Date/Time: %s

For queries: %s`,
		b.PatientName, n.hospital.Name, b.ReferenceNumber, b.ServiceName, b.DateTime, n.hospital.Phone)
}

func (n *Notifier) EmailBody(b Booking) string {
	if b.Kind == KindAppointment {
		return fmt.Sprintf(`Dear %s,

Thank you for booking an appointment at %s.

Booking Details:
- Reference Number: %s
- Doctor: %s
- Date & Time: %s
%s
Please arrive 15 minutes before your scheduled appointment.

For any queries or to reschedule, please contact us:
Phone: %s
Email: %s

Best regards,
%s`,
			b.PatientName, n.hospital.Name, b.ReferenceNumber, b.ServiceName, b.DateTime,
			b.AdditionalInfo, n.hospital.Phone, n.hospital.Email, n.hospital.Name)
	}

	return fmt.Sprintf(`Dear %s,

Thank you for booking a diagnostic test at %s.

Booking Details:
- Reference Number: %s
- Test: %s
- Date & Time: %s
%s
Please follow any preparation instructions provided for your test.

For any queries, please contact us:
Phone: %s
Email: %s

Best regards,
%s`,
		b.PatientName, n.hospital.Name, b.ReferenceNumber, b.ServiceName, b.DateTime,
		b.AdditionalInfo, n.hospital.Phone, n.hospital.Email, n.hospital.Name)
}

// SendConfirmationEmail prepares the confirmation body and logs it. Skipped
// when the patient left no email address.
func (n *Notifier) SendConfirmationEmail(b Booking) {
	if b.PatientEmail == "" {
		return
	}

	subject := fmt.Sprintf("Booking Confirmation - %s | %s", b.ReferenceNumber, n.hospital.Name)

	n.log.Info("Email notification prepared",
		slog.String("to", b.PatientEmail),
		slog.String("subject", subject),
		slog.String("body", n.EmailBody(b)),
	)
}

package get

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"hospital-service/api"
	"hospital-service/internal/service"
	"hospital-service/pkg/response"
	"hospital-service/pkg/sl"
)

type AppointmentGetter interface {
	GetAppointment(ctx context.Context, id string) (*api.AppointmentResponse, error)
	ListAppointments(ctx context.Context, filters *service.AppointmentFilters) ([]*api.AppointmentResponse, error)
}

type Response struct {
	response.Response
	Appointments []api.AppointmentResponse `json:"appointments,omitempty"`
	Appointment  *api.AppointmentResponse  `json:"appointment,omitempty"`
}

func New(log *slog.Logger, getter AppointmentGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.appointments.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			appointment, err := getter.GetAppointment(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("appointment not found", slog.String("id", id))
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "appointment not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get appointment", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get appointment"))
				return
			}

			render.JSON(w, r, Response{Appointment: appointment})
			return
		}

		filters := &service.AppointmentFilters{}

		if doctorID := r.URL.Query().Get("doctor_id"); doctorID != "" {
			filters.DoctorID = &doctorID
		}
		if status := r.URL.Query().Get("status"); status != "" {
			filters.Status = &status
		}
		if date := r.URL.Query().Get("date"); date != "" {
			filters.Date = &date
		}

		appointments, err := getter.ListAppointments(r.Context(), filters)
		if err != nil {
			log.Error("Failed to list appointments", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list appointments"))
			return
		}

		log.Info("Appointments retrieved", slog.Int("count", len(appointments)))

		result := make([]api.AppointmentResponse, len(appointments))
		for i, appointment := range appointments {
			result[i] = *appointment
		}

		render.JSON(w, r, Response{Appointments: result})
	}
}

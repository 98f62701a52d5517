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

type BookingGetter interface {
	GetDiagnosticBooking(ctx context.Context, id string) (*api.DiagnosticBookingResponse, error)
	ListDiagnosticBookings(ctx context.Context, filters *service.DiagnosticBookingFilters) ([]*api.DiagnosticBookingResponse, error)
}

type Response struct {
	response.Response
	Bookings []api.DiagnosticBookingResponse `json:"bookings,omitempty"`
	Booking  *api.DiagnosticBookingResponse  `json:"booking,omitempty"`
}

func New(log *slog.Logger, getter BookingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.diagnostics.bookings.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			booking, err := getter.GetDiagnosticBooking(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("booking not found", slog.String("id", id))
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "booking not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get booking", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get booking"))
				return
			}

			render.JSON(w, r, Response{Booking: booking})
			return
		}

		filters := &service.DiagnosticBookingFilters{}
		if v := r.URL.Query().Get("test_id"); v != "" {
			filters.TestID = &v
		}
		if v := r.URL.Query().Get("status"); v != "" {
			filters.Status = &v
		}
		if v := r.URL.Query().Get("date"); v != "" {
			filters.Date = &v
		}

		bookings, err := getter.ListDiagnosticBookings(r.Context(), filters)
		if err != nil {
			log.Error("Failed to list bookings", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list bookings"))
			return
		}

		result := make([]api.DiagnosticBookingResponse, len(bookings))
		for i, booking := range bookings {
			result[i] = *booking
		}

		render.JSON(w, r, Response{Bookings: result})
	}
}

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
	"hospital-service/pkg/response"
	"hospital-service/pkg/sl"
)

type SlotGetter interface {
	GetAvailableSlots(ctx context.Context, doctorID, date string) ([]*api.SlotResponse, error)
}

type Response struct {
	response.Response
	Date  string             `json:"date,omitempty"`
	Slots []api.SlotResponse `json:"slots"`
}

func New(log *slog.Logger, getter SlotGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.slots.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		doctorID := chi.URLParam(r, "doctor_id")
		date := r.URL.Query().Get("date")

		if doctorID == "" || date == "" {
			log.Error("doctor_id or date is empty")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.VALIDATION_ERROR), "doctor_id and date are required"))
			return
		}

		slots, err := getter.GetAvailableSlots(r.Context(), doctorID, date)

		if errors.Is(err, response.ErrValidation) {
			log.Error("invalid date", slog.String("date", date))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.VALIDATION_ERROR), "invalid date format, use YYYY-MM-DD"))
			return
		}

		if errors.Is(err, response.ErrNotFound) {
			log.Error("doctor not found", slog.String("doctor_id", doctorID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "doctor not found"))
			return
		}

		if err != nil {
			log.Error("Failed to get available slots", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get available slots"))
			return
		}

		log.Info("Available slots computed",
			slog.String("doctor_id", doctorID),
			slog.String("date", date),
			slog.Int("count", len(slots)),
		)

		result := make([]api.SlotResponse, len(slots))
		for i, slot := range slots {
			result[i] = *slot
		}

		render.JSON(w, r, Response{
			Date:  date,
			Slots: result,
		})
	}
}

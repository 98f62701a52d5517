package update

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

type DoctorUpdater interface {
	UpdateDoctor(ctx context.Context, id string, req *api.DoctorRequest) (*api.DoctorResponse, error)
}

type Request struct {
	api.DoctorRequest
}

type Response struct {
	response.Response
	Doctor *api.DoctorResponse `json:"doctor,omitempty"`
}

func New(log *slog.Logger, updater DoctorUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.doctors.update.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("Failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to decode request"))
			return
		}

		doctor, err := updater.UpdateDoctor(r.Context(), id, &req.DoctorRequest)

		if errors.Is(err, response.ErrValidation) {
			log.Error("invalid doctor", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.VALIDATION_ERROR), "name and specialty_id are required"))
			return
		}

		if errors.Is(err, response.ErrNotFound) {
			log.Error("doctor not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "doctor not found"))
			return
		}

		if err != nil {
			log.Error("Failed to update doctor", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to update doctor"))
			return
		}

		log.Info("Doctor updated", slog.String("id", id))

		render.JSON(w, r, Response{Doctor: doctor})
	}
}

package create

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"hospital-service/api"
	"hospital-service/pkg/response"
	"hospital-service/pkg/sl"
)

type DoctorCreator interface {
	CreateDoctor(ctx context.Context, req *api.DoctorRequest) (*api.DoctorResponse, error)
}

type Request struct {
	api.DoctorRequest
}

type Response struct {
	response.Response
	Doctor *api.DoctorResponse `json:"doctor,omitempty"`
}

func New(log *slog.Logger, creator DoctorCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.doctors.create.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("Failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to decode request"))
			return
		}

		doctor, err := creator.CreateDoctor(r.Context(), &req.DoctorRequest)

		if errors.Is(err, response.ErrValidation) {
			log.Error("invalid doctor", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.VALIDATION_ERROR), "name and specialty_id are required"))
			return
		}

		if errors.Is(err, response.ErrNotFound) {
			log.Error("specialty not found", slog.String("specialty_id", req.SpecialtyID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "specialty not found"))
			return
		}

		if err != nil {
			log.Error("Failed to create doctor", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to create doctor"))
			return
		}

		log.Info("Doctor created", slog.String("id", doctor.ID), slog.String("name", doctor.Name))

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, Response{Doctor: doctor})
	}
}

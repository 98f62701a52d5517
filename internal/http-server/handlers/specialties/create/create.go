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

type SpecialtyCreator interface {
	CreateSpecialty(ctx context.Context, req *api.SpecialtyRequest) (*api.SpecialtyResponse, error)
}

type Request struct {
	api.SpecialtyRequest
}

type Response struct {
	response.Response
	Specialty *api.SpecialtyResponse `json:"specialty,omitempty"`
}

func New(log *slog.Logger, creator SpecialtyCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.specialties.create.New"

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

		specialty, err := creator.CreateSpecialty(r.Context(), &req.SpecialtyRequest)

		if errors.Is(err, response.ErrValidation) {
			log.Error("invalid specialty", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.VALIDATION_ERROR), "name is required"))
			return
		}

		if err != nil {
			log.Error("Failed to create specialty", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to create specialty"))
			return
		}

		log.Info("Specialty created", slog.String("id", specialty.ID), slog.String("name", specialty.Name))

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, Response{Specialty: specialty})
	}
}

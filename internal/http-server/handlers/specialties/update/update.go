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

type SpecialtyUpdater interface {
	UpdateSpecialty(ctx context.Context, id string, req *api.SpecialtyRequest) (*api.SpecialtyResponse, error)
}

type Request struct {
	api.SpecialtyRequest
}

type Response struct {
	response.Response
	Specialty *api.SpecialtyResponse `json:"specialty,omitempty"`
}

func New(log *slog.Logger, updater SpecialtyUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.specialties.update.New"

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

		specialty, err := updater.UpdateSpecialty(r.Context(), id, &req.SpecialtyRequest)

		if errors.Is(err, response.ErrValidation) {
			log.Error("invalid specialty", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.VALIDATION_ERROR), "name is required"))
			return
		}

		if errors.Is(err, response.ErrNotFound) {
			log.Error("specialty not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "specialty not found"))
			return
		}

		if err != nil {
			log.Error("Failed to update specialty", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to update specialty"))
			return
		}

		log.Info("Specialty updated", slog.String("id", id))

		render.JSON(w, r, Response{Specialty: specialty})
	}
}

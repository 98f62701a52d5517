package delete

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"hospital-service/pkg/response"
	"hospital-service/pkg/sl"
)

type SpecialtyDeleter interface {
	DeleteSpecialty(ctx context.Context, id string) error
}

func New(log *slog.Logger, deleter SpecialtyDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.specialties.delete.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		err := deleter.DeleteSpecialty(r.Context(), id)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("specialty not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "specialty not found"))
			return
		}

		if err != nil {
			log.Error("Failed to delete specialty", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to delete specialty"))
			return
		}

		log.Info("Specialty deleted", slog.String("id", id))

		render.JSON(w, r, response.Response{})
	}
}

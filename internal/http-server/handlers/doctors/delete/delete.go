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

type DoctorDeleter interface {
	DeleteDoctor(ctx context.Context, id string) error
}

func New(log *slog.Logger, deleter DoctorDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.doctors.delete.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		err := deleter.DeleteDoctor(r.Context(), id)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("doctor not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "doctor not found"))
			return
		}

		if err != nil {
			log.Error("Failed to deactivate doctor", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to deactivate doctor"))
			return
		}

		log.Info("Doctor deactivated", slog.String("id", id))

		render.JSON(w, r, response.Response{})
	}
}

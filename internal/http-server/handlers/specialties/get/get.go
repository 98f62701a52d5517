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

type SpecialtyGetter interface {
	GetSpecialty(ctx context.Context, id string) (*api.SpecialtyResponse, error)
	ListSpecialties(ctx context.Context, activeOnly bool) ([]*api.SpecialtyResponse, error)
}

type Response struct {
	response.Response
	Specialties []api.SpecialtyResponse `json:"specialties,omitempty"`
	Specialty   *api.SpecialtyResponse  `json:"specialty,omitempty"`
}

func New(log *slog.Logger, getter SpecialtyGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.specialties.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			specialty, err := getter.GetSpecialty(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("specialty not found", slog.String("id", id))
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "specialty not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get specialty", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get specialty"))
				return
			}

			render.JSON(w, r, Response{Specialty: specialty})
			return
		}

		activeOnly := r.URL.Query().Get("all") == ""

		specialties, err := getter.ListSpecialties(r.Context(), activeOnly)
		if err != nil {
			log.Error("Failed to list specialties", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list specialties"))
			return
		}

		result := make([]api.SpecialtyResponse, len(specialties))
		for i, specialty := range specialties {
			result[i] = *specialty
		}

		render.JSON(w, r, Response{Specialties: result})
	}
}

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

type DoctorGetter interface {
	GetDoctor(ctx context.Context, id string) (*api.DoctorResponse, error)
	ListDoctors(ctx context.Context, filters *service.DoctorFilters) ([]*api.DoctorResponse, error)
}

type Response struct {
	response.Response
	Doctors []api.DoctorResponse `json:"doctors,omitempty"`
	Doctor  *api.DoctorResponse  `json:"doctor,omitempty"`
}

func New(log *slog.Logger, getter DoctorGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.doctors.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			doctor, err := getter.GetDoctor(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("doctor not found", slog.String("id", id))
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "doctor not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get doctor", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get doctor"))
				return
			}

			render.JSON(w, r, Response{Doctor: doctor})
			return
		}

		filters := &service.DoctorFilters{
			ActiveOnly: r.URL.Query().Get("all") == "",
		}
		if v := r.URL.Query().Get("specialty_id"); v != "" {
			filters.SpecialtyID = &v
		}
		if v := r.URL.Query().Get("q"); v != "" {
			filters.Q = &v
		}

		doctors, err := getter.ListDoctors(r.Context(), filters)
		if err != nil {
			log.Error("Failed to list doctors", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list doctors"))
			return
		}

		result := make([]api.DoctorResponse, len(doctors))
		for i, doctor := range doctors {
			result[i] = *doctor
		}

		render.JSON(w, r, Response{Doctors: result})
	}
}

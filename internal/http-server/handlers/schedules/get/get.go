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

type ScheduleGetter interface {
	GetSchedule(ctx context.Context, id string) (*api.ScheduleResponse, error)
	ListSchedules(ctx context.Context, doctorID *string) ([]*api.ScheduleResponse, error)
}

type Response struct {
	response.Response
	Schedules []api.ScheduleResponse `json:"schedules,omitempty"`
	Schedule  *api.ScheduleResponse  `json:"schedule,omitempty"`
}

func New(log *slog.Logger, getter ScheduleGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.schedules.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			schedule, err := getter.GetSchedule(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("schedule not found", slog.String("id", id))
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "schedule not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get schedule", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get schedule"))
				return
			}

			render.JSON(w, r, Response{Schedule: schedule})
			return
		}

		var doctorID *string
		if v := r.URL.Query().Get("doctor_id"); v != "" {
			doctorID = &v
		}

		schedules, err := getter.ListSchedules(r.Context(), doctorID)
		if err != nil {
			log.Error("Failed to list schedules", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list schedules"))
			return
		}

		result := make([]api.ScheduleResponse, len(schedules))
		for i, schedule := range schedules {
			result[i] = *schedule
		}

		render.JSON(w, r, Response{Schedules: result})
	}
}

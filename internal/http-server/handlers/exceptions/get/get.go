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

type ExceptionGetter interface {
	GetScheduleException(ctx context.Context, id string) (*api.ScheduleExceptionResponse, error)
	ListScheduleExceptions(ctx context.Context, doctorID *string) ([]*api.ScheduleExceptionResponse, error)
}

type Response struct {
	response.Response
	Exceptions []api.ScheduleExceptionResponse `json:"exceptions,omitempty"`
	Exception  *api.ScheduleExceptionResponse  `json:"exception,omitempty"`
}

func New(log *slog.Logger, getter ExceptionGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.exceptions.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			exception, err := getter.GetScheduleException(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("exception not found", slog.String("id", id))
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "exception not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get exception", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get exception"))
				return
			}

			render.JSON(w, r, Response{Exception: exception})
			return
		}

		var doctorID *string
		if v := r.URL.Query().Get("doctor_id"); v != "" {
			doctorID = &v
		}

		exceptions, err := getter.ListScheduleExceptions(r.Context(), doctorID)
		if err != nil {
			log.Error("Failed to list exceptions", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list exceptions"))
			return
		}

		result := make([]api.ScheduleExceptionResponse, len(exceptions))
		for i, exception := range exceptions {
			result[i] = *exception
		}

		render.JSON(w, r, Response{Exceptions: result})
	}
}

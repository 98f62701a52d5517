package save

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

type ExceptionSaver interface {
	UpsertScheduleException(ctx context.Context, req *api.ScheduleExceptionRequest) (*api.ScheduleExceptionResponse, error)
}

type Request struct {
	api.ScheduleExceptionRequest
}

type Response struct {
	response.Response
	Exception *api.ScheduleExceptionResponse `json:"exception,omitempty"`
}

func New(log *slog.Logger, saver ExceptionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.exceptions.save.New"

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

		exception, err := saver.UpsertScheduleException(r.Context(), &req.ScheduleExceptionRequest)

		if errors.Is(err, response.ErrValidation) {
			log.Error("invalid exception", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.VALIDATION_ERROR), "invalid exception"))
			return
		}

		if errors.Is(err, response.ErrNotFound) {
			log.Error("doctor not found", slog.String("doctor_id", req.DoctorID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "doctor not found"))
			return
		}

		if err != nil {
			log.Error("Failed to save exception", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to save exception"))
			return
		}

		log.Info("Exception saved",
			slog.String("id", exception.ID),
			slog.String("doctor_id", exception.DoctorID),
			slog.String("date", exception.Date),
		)

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, Response{Exception: exception})
	}
}

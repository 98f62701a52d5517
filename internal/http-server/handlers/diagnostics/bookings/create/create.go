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

type BookingCreator interface {
	CreateDiagnosticBooking(ctx context.Context, req *api.DiagnosticBookingRequest) (*api.DiagnosticConfirmation, error)
}

type Request struct {
	api.DiagnosticBookingRequest
}

type Response struct {
	response.Response
	api.DiagnosticConfirmation
}

func New(log *slog.Logger, creator BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.diagnostics.bookings.create.New"

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

		confirmation, err := creator.CreateDiagnosticBooking(r.Context(), &req.DiagnosticBookingRequest)

		if errors.Is(err, response.ErrValidation) {
			log.Error("invalid booking", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.VALIDATION_ERROR), "invalid booking"))
			return
		}

		if errors.Is(err, response.ErrNotFound) {
			log.Error("test not found", slog.String("test_id", req.TestID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "test not found"))
			return
		}

		if err != nil {
			log.Error("Failed to create booking", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to create booking"))
			return
		}

		log.Info("Diagnostic booking created",
			slog.String("reference_number", confirmation.ReferenceNumber),
			slog.String("test_id", req.TestID),
		)

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, Response{DiagnosticConfirmation: *confirmation})
	}
}

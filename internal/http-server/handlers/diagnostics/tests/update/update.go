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

type TestUpdater interface {
	UpdateDiagnosticTest(ctx context.Context, id string, req *api.DiagnosticTestRequest) (*api.DiagnosticTestResponse, error)
}

type Request struct {
	api.DiagnosticTestRequest
}

type Response struct {
	response.Response
	Test *api.DiagnosticTestResponse `json:"test,omitempty"`
}

func New(log *slog.Logger, updater TestUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.diagnostics.tests.update.New"

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

		test, err := updater.UpdateDiagnosticTest(r.Context(), id, &req.DiagnosticTestRequest)

		if errors.Is(err, response.ErrValidation) {
			log.Error("invalid test", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.VALIDATION_ERROR), "name and a valid category are required"))
			return
		}

		if errors.Is(err, response.ErrNotFound) {
			log.Error("test not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "test not found"))
			return
		}

		if err != nil {
			log.Error("Failed to update test", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to update test"))
			return
		}

		log.Info("Diagnostic test updated", slog.String("id", id))

		render.JSON(w, r, Response{Test: test})
	}
}

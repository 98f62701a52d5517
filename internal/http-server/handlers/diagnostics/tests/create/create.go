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

type TestCreator interface {
	CreateDiagnosticTest(ctx context.Context, req *api.DiagnosticTestRequest) (*api.DiagnosticTestResponse, error)
}

type Request struct {
	api.DiagnosticTestRequest
}

type Response struct {
	response.Response
	Test *api.DiagnosticTestResponse `json:"test,omitempty"`
}

func New(log *slog.Logger, creator TestCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.diagnostics.tests.create.New"

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

		test, err := creator.CreateDiagnosticTest(r.Context(), &req.DiagnosticTestRequest)

		if errors.Is(err, response.ErrValidation) {
			log.Error("invalid test", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.VALIDATION_ERROR), "name and a valid category are required"))
			return
		}

		if err != nil {
			log.Error("Failed to create test", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to create test"))
			return
		}

		log.Info("Diagnostic test created", slog.String("id", test.ID), slog.String("name", test.Name))

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, Response{Test: test})
	}
}

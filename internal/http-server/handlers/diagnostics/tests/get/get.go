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

type TestGetter interface {
	GetDiagnosticTest(ctx context.Context, id string) (*api.DiagnosticTestResponse, error)
	ListDiagnosticTests(ctx context.Context, category *string, activeOnly bool) ([]*api.DiagnosticTestResponse, error)
}

type Response struct {
	response.Response
	Tests []api.DiagnosticTestResponse `json:"tests,omitempty"`
	Test  *api.DiagnosticTestResponse  `json:"test,omitempty"`
}

func New(log *slog.Logger, getter TestGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.diagnostics.tests.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			test, err := getter.GetDiagnosticTest(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("test not found", slog.String("id", id))
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "test not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get test", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get test"))
				return
			}

			render.JSON(w, r, Response{Test: test})
			return
		}

		var category *string
		if v := r.URL.Query().Get("category"); v != "" {
			category = &v
		}
		activeOnly := r.URL.Query().Get("all") == ""

		tests, err := getter.ListDiagnosticTests(r.Context(), category, activeOnly)
		if err != nil {
			log.Error("Failed to list tests", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list tests"))
			return
		}

		result := make([]api.DiagnosticTestResponse, len(tests))
		for i, test := range tests {
			result[i] = *test
		}

		render.JSON(w, r, Response{Tests: result})
	}
}

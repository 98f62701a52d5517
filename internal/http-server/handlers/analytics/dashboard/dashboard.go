package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"hospital-service/api"
	"hospital-service/pkg/response"
	"hospital-service/pkg/sl"
)

type DashboardGetter interface {
	DashboardAnalytics(ctx context.Context) (*api.DashboardResponse, error)
}

type Response struct {
	response.Response
	Dashboard *api.DashboardResponse `json:"dashboard,omitempty"`
}

func New(log *slog.Logger, getter DashboardGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.analytics.dashboard.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		dashboard, err := getter.DashboardAnalytics(r.Context())
		if err != nil {
			log.Error("Failed to compute dashboard analytics", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to compute dashboard analytics"))
			return
		}

		render.JSON(w, r, Response{Dashboard: dashboard})
	}
}

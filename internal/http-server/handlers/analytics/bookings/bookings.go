package bookings

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"hospital-service/api"
	"hospital-service/pkg/response"
	"hospital-service/pkg/sl"
)

type TrendGetter interface {
	BookingTrends(ctx context.Context, days int) ([]*api.BookingTrendPoint, error)
}

type Response struct {
	response.Response
	Trends []api.BookingTrendPoint `json:"trends"`
}

func New(log *slog.Logger, getter TrendGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.analytics.bookings.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		days := 0
		if raw := r.URL.Query().Get("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				log.Error("invalid days", slog.String("days", raw))
				w.WriteHeader(http.StatusBadRequest)
				render.JSON(w, r, response.Error(string(response.VALIDATION_ERROR), "days must be a number"))
				return
			}
			days = parsed
		}

		trends, err := getter.BookingTrends(r.Context(), days)
		if err != nil {
			log.Error("Failed to compute booking trends", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to compute booking trends"))
			return
		}

		result := make([]api.BookingTrendPoint, len(trends))
		for i, point := range trends {
			result[i] = *point
		}

		render.JSON(w, r, Response{Trends: result})
	}
}

package update

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"hospital-service/internal/models"
	"hospital-service/pkg/response"
	"hospital-service/pkg/sl"
)

type SettingsUpdater interface {
	UpdateSettings(ctx context.Context, settings *models.SiteSettings) (*models.SiteSettings, error)
}

type Request struct {
	models.SiteSettings
}

type Response struct {
	response.Response
	Settings *models.SiteSettings `json:"settings,omitempty"`
}

func New(log *slog.Logger, updater SettingsUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.settings.update.New"

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

		settings, err := updater.UpdateSettings(r.Context(), &req.SiteSettings)
		if err != nil {
			log.Error("Failed to update settings", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to update settings"))
			return
		}

		log.Info("Settings updated")

		render.JSON(w, r, Response{Settings: settings})
	}
}

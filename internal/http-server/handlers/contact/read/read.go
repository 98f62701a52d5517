package read

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

type MessageReader interface {
	MarkContactMessageRead(ctx context.Context, id string) (*api.ContactMessageResponse, error)
}

type Response struct {
	response.Response
	Message *api.ContactMessageResponse `json:"contact_message,omitempty"`
}

func New(log *slog.Logger, reader MessageReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contact.read.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		message, err := reader.MarkContactMessageRead(r.Context(), id)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("message not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "message not found"))
			return
		}

		if err != nil {
			log.Error("Failed to mark message read", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to mark message read"))
			return
		}

		log.Info("Contact message read", slog.String("id", id))

		render.JSON(w, r, Response{Message: message})
	}
}

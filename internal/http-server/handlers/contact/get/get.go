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

type MessageGetter interface {
	GetContactMessage(ctx context.Context, id string) (*api.ContactMessageResponse, error)
	ListContactMessages(ctx context.Context, unreadOnly bool) ([]*api.ContactMessageResponse, error)
}

type Response struct {
	response.Response
	Messages []api.ContactMessageResponse `json:"contact_messages,omitempty"`
	Message  *api.ContactMessageResponse  `json:"contact_message,omitempty"`
}

func New(log *slog.Logger, getter MessageGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contact.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			message, err := getter.GetContactMessage(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("message not found", slog.String("id", id))
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "message not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get message", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get message"))
				return
			}

			render.JSON(w, r, Response{Message: message})
			return
		}

		unreadOnly := r.URL.Query().Get("unread") != ""

		messages, err := getter.ListContactMessages(r.Context(), unreadOnly)
		if err != nil {
			log.Error("Failed to list messages", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list messages"))
			return
		}

		result := make([]api.ContactMessageResponse, len(messages))
		for i, message := range messages {
			result[i] = *message
		}

		render.JSON(w, r, Response{Messages: result})
	}
}

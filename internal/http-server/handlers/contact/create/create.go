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

type MessageCreator interface {
	CreateContactMessage(ctx context.Context, req *api.ContactRequest) (*api.ContactMessageResponse, error)
}

type Request struct {
	api.ContactRequest
}

type Response struct {
	response.Response
	Message *api.ContactMessageResponse `json:"contact_message,omitempty"`
}

func New(log *slog.Logger, creator MessageCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contact.create.New"

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

		message, err := creator.CreateContactMessage(r.Context(), &req.ContactRequest)

		if errors.Is(err, response.ErrValidation) {
			log.Error("invalid message", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.VALIDATION_ERROR), "name, email, subject and message are required"))
			return
		}

		if err != nil {
			log.Error("Failed to create message", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to create message"))
			return
		}

		log.Info("Contact message received", slog.String("id", message.ID))

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, Response{Message: message})
	}
}

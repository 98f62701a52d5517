package register

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

type UserRegistrar interface {
	Register(ctx context.Context, req *api.RegisterRequest) (*api.UserResponse, error)
}

type Request struct {
	api.RegisterRequest
}

type Response struct {
	response.Response
	User *api.UserResponse `json:"user,omitempty"`
}

func New(log *slog.Logger, svc UserRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.register.New"

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

		user, err := svc.Register(r.Context(), &req.RegisterRequest)

		if errors.Is(err, response.ErrValidation) {
			log.Error("invalid registration request")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.VALIDATION_ERROR), "username and password are required"))
			return
		}

		if errors.Is(err, response.ErrConflict) {
			log.Error("username taken", slog.String("username", req.Username))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error(string(response.CONFLICT), "username already exists"))
			return
		}

		if err != nil {
			log.Error("Failed to register user", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to register user"))
			return
		}

		log.Info("User registered", slog.String("username", user.Username))

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, Response{User: user})
	}
}

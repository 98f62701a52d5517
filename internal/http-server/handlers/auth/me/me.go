package me

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"hospital-service/api"
	"hospital-service/internal/http-server/middleware/authmw"
	"hospital-service/pkg/response"
	"hospital-service/pkg/sl"
)

type UserGetter interface {
	GetUser(ctx context.Context, id string) (*api.UserResponse, error)
}

type Response struct {
	response.Response
	User *api.UserResponse `json:"user,omitempty"`
}

func New(log *slog.Logger, svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.me.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		claims, ok := authmw.ClaimsFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error(string(response.UNAUTHORIZED), "authorization required"))
			return
		}

		user, err := svc.GetUser(r.Context(), claims.UserID)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("user not found", slog.String("user_id", claims.UserID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "user not found"))
			return
		}

		if err != nil {
			log.Error("Failed to get user", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get user"))
			return
		}

		render.JSON(w, r, Response{User: user})
	}
}

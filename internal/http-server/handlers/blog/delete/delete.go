package delete

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"hospital-service/pkg/response"
	"hospital-service/pkg/sl"
)

type PostDeleter interface {
	DeleteBlogPost(ctx context.Context, id string) error
}

func New(log *slog.Logger, deleter PostDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blog.delete.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		err := deleter.DeleteBlogPost(r.Context(), id)

		if errors.Is(err, response.ErrNotFound) {
			log.Error("post not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "post not found"))
			return
		}

		if err != nil {
			log.Error("Failed to delete post", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to delete post"))
			return
		}

		log.Info("Blog post deleted", slog.String("id", id))

		render.JSON(w, r, response.Response{})
	}
}

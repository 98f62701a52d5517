package update

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

type PostUpdater interface {
	UpdateBlogPost(ctx context.Context, id string, req *api.BlogPostRequest) (*api.BlogPostResponse, error)
}

type Request struct {
	api.BlogPostRequest
}

type Response struct {
	response.Response
	Post *api.BlogPostResponse `json:"post,omitempty"`
}

func New(log *slog.Logger, updater PostUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blog.update.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("Failed to decode request body", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.BAD_REQUEST), "failed to decode request"))
			return
		}

		post, err := updater.UpdateBlogPost(r.Context(), id, &req.BlogPostRequest)

		if errors.Is(err, response.ErrValidation) {
			log.Error("invalid post", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.VALIDATION_ERROR), "title, slug, content and category are required"))
			return
		}

		if errors.Is(err, response.ErrNotFound) {
			log.Error("post not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error(string(response.NOT_FOUND), "post not found"))
			return
		}

		if errors.Is(err, response.ErrConflict) {
			log.Error("slug already exists", slog.String("slug", req.Slug))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error(string(response.CONFLICT), "slug already exists"))
			return
		}

		if err != nil {
			log.Error("Failed to update post", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to update post"))
			return
		}

		log.Info("Blog post updated", slog.String("id", id))

		render.JSON(w, r, Response{Post: post})
	}
}

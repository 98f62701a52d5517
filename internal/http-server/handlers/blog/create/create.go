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

type PostCreator interface {
	CreateBlogPost(ctx context.Context, req *api.BlogPostRequest) (*api.BlogPostResponse, error)
}

type Request struct {
	api.BlogPostRequest
}

type Response struct {
	response.Response
	Post *api.BlogPostResponse `json:"post,omitempty"`
}

func New(log *slog.Logger, creator PostCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blog.create.New"

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

		post, err := creator.CreateBlogPost(r.Context(), &req.BlogPostRequest)

		if errors.Is(err, response.ErrValidation) {
			log.Error("invalid post", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(string(response.VALIDATION_ERROR), "title, slug, content and category are required"))
			return
		}

		if errors.Is(err, response.ErrConflict) {
			log.Error("slug already exists", slog.String("slug", req.Slug))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error(string(response.CONFLICT), "slug already exists"))
			return
		}

		if err != nil {
			log.Error("Failed to create post", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to create post"))
			return
		}

		log.Info("Blog post created", slog.String("id", post.ID), slog.String("slug", post.Slug))

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, Response{Post: post})
	}
}

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
	"hospital-service/internal/service"
	"hospital-service/pkg/response"
	"hospital-service/pkg/sl"
)

type PostGetter interface {
	GetBlogPost(ctx context.Context, id string) (*api.BlogPostResponse, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*api.BlogPostResponse, error)
	ListBlogPosts(ctx context.Context, filters *service.BlogFilters) ([]*api.BlogPostResponse, error)
}

type Response struct {
	response.Response
	Posts []api.BlogPostResponse `json:"posts,omitempty"`
	Post  *api.BlogPostResponse  `json:"post,omitempty"`
}

// New serves the public blog surface: list published posts and fetch a
// single post by slug. Fetching by slug counts a view.
func New(log *slog.Logger, getter PostGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blog.get.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		slug := chi.URLParam(r, "slug")

		if slug != "" {
			post, err := getter.GetBlogPostBySlug(r.Context(), slug)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("post not found", slog.String("slug", slug))
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "post not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get post", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get post"))
				return
			}

			render.JSON(w, r, Response{Post: post})
			return
		}

		filters := &service.BlogFilters{PublishedOnly: true}
		if v := r.URL.Query().Get("category"); v != "" {
			filters.Category = &v
		}
		if v := r.URL.Query().Get("tag"); v != "" {
			filters.Tag = &v
		}
		if v := r.URL.Query().Get("q"); v != "" {
			filters.Q = &v
		}

		posts, err := getter.ListBlogPosts(r.Context(), filters)
		if err != nil {
			log.Error("Failed to list posts", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list posts"))
			return
		}

		result := make([]api.BlogPostResponse, len(posts))
		for i, post := range posts {
			result[i] = *post
		}

		render.JSON(w, r, Response{Posts: result})
	}
}

// Admin serves the staff view: posts are addressed by id and drafts are
// included in listings.
func Admin(log *slog.Logger, getter PostGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blog.get.Admin"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		id := chi.URLParam(r, "id")

		if id != "" {
			post, err := getter.GetBlogPost(r.Context(), id)

			if errors.Is(err, response.ErrNotFound) {
				log.Error("post not found", slog.String("id", id))
				w.WriteHeader(http.StatusNotFound)
				render.JSON(w, r, response.Error(string(response.NOT_FOUND), "post not found"))
				return
			}

			if err != nil {
				log.Error("Failed to get post", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to get post"))
				return
			}

			render.JSON(w, r, Response{Post: post})
			return
		}

		filters := &service.BlogFilters{}
		if v := r.URL.Query().Get("category"); v != "" {
			filters.Category = &v
		}

		posts, err := getter.ListBlogPosts(r.Context(), filters)
		if err != nil {
			log.Error("Failed to list posts", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list posts"))
			return
		}

		result := make([]api.BlogPostResponse, len(posts))
		for i, post := range posts {
			result[i] = *post
		}

		render.JSON(w, r, Response{Posts: result})
	}
}

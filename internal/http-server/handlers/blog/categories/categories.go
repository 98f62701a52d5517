package categories

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"hospital-service/pkg/response"
	"hospital-service/pkg/sl"
)

type CategoryLister interface {
	ListBlogCategories(ctx context.Context) ([]string, error)
}

type Response struct {
	response.Response
	Categories []string `json:"categories"`
}

func New(log *slog.Logger, lister CategoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.blog.categories.New"

		log = log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		categories, err := lister.ListBlogCategories(r.Context())
		if err != nil {
			log.Error("Failed to list categories", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error(string(response.FAILED_REQUEST), "failed to list categories"))
			return
		}

		if categories == nil {
			categories = []string{}
		}

		render.JSON(w, r, Response{Categories: categories})
	}
}

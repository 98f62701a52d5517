package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"hospital-service/api"
	"hospital-service/internal/models"
	"hospital-service/pkg/response"
)

func (s *Service) CreateBlogPost(ctx context.Context, req *api.BlogPostRequest) (*api.BlogPostResponse, error) {
	const op = "service.CreateBlogPost"

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Slug) == "" {
		return nil, fmt.Errorf("%s: title and slug are required: %w", op, response.ErrValidation)
	}

	author := req.Author
	if author == "" {
		author = "Admin"
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	post := &models.BlogPost{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Slug:            req.Slug,
		Content:         req.Content,
		Excerpt:         req.Excerpt,
		Category:        req.Category,
		Tags:            req.Tags,
		Author:          author,
		FeaturedImage:   req.FeaturedImage,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Published:       published,
	}

	id, err := s.store.CreateBlogPost(ctx, post)
	if err != nil {
		if errors.Is(err, response.ErrConflict) {
			return nil, fmt.Errorf("%s: slug taken: %w", op, response.ErrConflict)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetBlogPost(ctx, id)
}

func (s *Service) GetBlogPost(ctx context.Context, id string) (*api.BlogPostResponse, error) {
	const op = "service.GetBlogPost"

	post, err := s.store.GetBlogPost(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return blogPostResponse(post), nil
}

// GetBlogPostBySlug serves the public post page and bumps the view counter.
func (s *Service) GetBlogPostBySlug(ctx context.Context, slug string) (*api.BlogPostResponse, error) {
	const op = "service.GetBlogPostBySlug"

	post, err := s.store.GetBlogPostBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !post.Published {
		return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
	}

	if err := s.store.IncrementBlogViews(ctx, post.ID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	post.Views++

	return blogPostResponse(post), nil
}

func (s *Service) ListBlogPosts(ctx context.Context, filters *BlogFilters) ([]*api.BlogPostResponse, error) {
	const op = "service.ListBlogPosts"

	posts, err := s.store.ListBlogPosts(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]*api.BlogPostResponse, 0, len(posts))
	for _, post := range posts {
		resp := blogPostResponse(post)
		// List views omit the body.
		resp.Content = ""
		result = append(result, resp)
	}

	return result, nil
}

// ListBlogCategories returns the distinct categories of published posts,
// sorted.
func (s *Service) ListBlogCategories(ctx context.Context) ([]string, error) {
	const op = "service.ListBlogCategories"

	categories, err := s.store.ListBlogCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return categories, nil
}

func (s *Service) UpdateBlogPost(ctx context.Context, id string, req *api.BlogPostRequest) (*api.BlogPostResponse, error) {
	const op = "service.UpdateBlogPost"

	post, err := s.store.GetBlogPost(ctx, id)
	if err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	post.Title = req.Title
	post.Slug = req.Slug
	post.Content = req.Content
	post.Excerpt = req.Excerpt
	post.Category = req.Category
	post.Tags = req.Tags
	if req.Author != "" {
		post.Author = req.Author
	}
	post.FeaturedImage = req.FeaturedImage
	post.MetaTitle = req.MetaTitle
	post.MetaDescription = req.MetaDescription
	if req.Published != nil {
		post.Published = *req.Published
	}

	if err := s.store.UpdateBlogPost(ctx, post); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetBlogPost(ctx, id)
}

func (s *Service) DeleteBlogPost(ctx context.Context, id string) error {
	const op = "service.DeleteBlogPost"

	if err := s.store.DeleteBlogPost(ctx, id); err != nil {
		if errors.Is(err, response.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func blogPostResponse(p *models.BlogPost) *api.BlogPostResponse {
	return &api.BlogPostResponse{
		ID:              p.ID,
		Title:           p.Title,
		Slug:            p.Slug,
		Content:         p.Content,
		Excerpt:         p.Excerpt,
		Category:        p.Category,
		Tags:            p.Tags,
		Author:          p.Author,
		FeaturedImage:   p.FeaturedImage,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		Published:       p.Published,
		Views:           p.Views,
		PublishedAt:     p.PublishedAt,
	}
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-service/api"
	"hospital-service/pkg/response"
)

func TestBlogPosts(t *testing.T) {
	ctx := context.Background()

	post := func(slug string, published bool) *api.BlogPostRequest {
		return &api.BlogPostRequest{
			Title:     "Seasonal Flu Advice",
			Slug:      slug,
			Content:   "Wash your hands.",
			Category:  "health-tips",
			Tags:      []string{"flu", "prevention"},
			Published: &published,
		}
	}

	t.Run("slug must be unique", func(t *testing.T) {
		svc := newTestService(t, newMemStore())

		_, err := svc.CreateBlogPost(ctx, post("flu-advice", true))
		require.NoError(t, err)

		_, err = svc.CreateBlogPost(ctx, post("flu-advice", true))
		assert.ErrorIs(t, err, response.ErrConflict)
	})

	t.Run("slug fetch counts views and hides drafts", func(t *testing.T) {
		svc := newTestService(t, newMemStore())

		_, err := svc.CreateBlogPost(ctx, post("flu-advice", true))
		require.NoError(t, err)
		_, err = svc.CreateBlogPost(ctx, post("draft-post", false))
		require.NoError(t, err)

		got, err := svc.GetBlogPostBySlug(ctx, "flu-advice")
		require.NoError(t, err)
		assert.Equal(t, 1, got.Views)

		got, err = svc.GetBlogPostBySlug(ctx, "flu-advice")
		require.NoError(t, err)
		assert.Equal(t, 2, got.Views)

		_, err = svc.GetBlogPostBySlug(ctx, "draft-post")
		assert.ErrorIs(t, err, response.ErrNotFound)
	})

	t.Run("public list excludes drafts and bodies", func(t *testing.T) {
		svc := newTestService(t, newMemStore())

		_, err := svc.CreateBlogPost(ctx, post("flu-advice", true))
		require.NoError(t, err)
		_, err = svc.CreateBlogPost(ctx, post("draft-post", false))
		require.NoError(t, err)

		posts, err := svc.ListBlogPosts(ctx, &BlogFilters{PublishedOnly: true})
		require.NoError(t, err)

		require.Len(t, posts, 1)
		assert.Equal(t, "flu-advice", posts[0].Slug)
		assert.Empty(t, posts[0].Content)

		tag := "flu"
		tagged, err := svc.ListBlogPosts(ctx, &BlogFilters{PublishedOnly: true, Tag: &tag})
		require.NoError(t, err)
		assert.Len(t, tagged, 1)
	})

	t.Run("defaults author", func(t *testing.T) {
		svc := newTestService(t, newMemStore())

		created, err := svc.CreateBlogPost(ctx, post("flu-advice", true))
		require.NoError(t, err)
		assert.Equal(t, "Admin", created.Author)
	})

	t.Run("categories are distinct, published-only and sorted", func(t *testing.T) {
		svc := newTestService(t, newMemStore())

		first := post("flu-advice", true)
		second := post("more-flu-advice", true)
		nutrition := post("eating-well", true)
		nutrition.Category = "nutrition"
		draft := post("draft-post", false)
		draft.Category = "announcements"

		for _, req := range []*api.BlogPostRequest{first, second, nutrition, draft} {
			_, err := svc.CreateBlogPost(ctx, req)
			require.NoError(t, err)
		}

		categories, err := svc.ListBlogCategories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"health-tips", "nutrition"}, categories)
	})
}

func TestContactMessages(t *testing.T) {
	ctx := context.Background()

	valid := func() *api.ContactRequest {
		return &api.ContactRequest{
			Name:    "Ali Raza",
			Email:   "ali@example.com",
			Subject: "Visiting hours",
			Message: "What are the weekend visiting hours?",
		}
	}

	t.Run("create then mark read", func(t *testing.T) {
		svc := newTestService(t, newMemStore())

		created, err := svc.CreateContactMessage(ctx, valid())
		require.NoError(t, err)
		assert.False(t, created.Read)

		unread, err := svc.ListContactMessages(ctx, true)
		require.NoError(t, err)
		require.Len(t, unread, 1)

		read, err := svc.MarkContactMessageRead(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, read.Read)

		unread, err = svc.ListContactMessages(ctx, true)
		require.NoError(t, err)
		assert.Empty(t, unread)
	})

	t.Run("required fields", func(t *testing.T) {
		svc := newTestService(t, newMemStore())

		req := valid()
		req.Message = ""

		_, err := svc.CreateContactMessage(ctx, req)
		assert.ErrorIs(t, err, response.ErrValidation)
	})
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"hospital-service/internal/models"
	"hospital-service/internal/service"
	"hospital-service/pkg/response"
)

// #### blog posts ####

func (s *Storage) CreateBlogPost(ctx context.Context, post *models.BlogPost) (string, error) {
	const op = "storage.postgres.CreateBlogPost"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blog_posts (id, title, slug, content, excerpt, category, tags, author, featured_image, meta_title, meta_description, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		post.ID, post.Title, post.Slug, post.Content, post.Excerpt, post.Category,
		pq.Array(post.Tags), post.Author, post.FeaturedImage, post.MetaTitle,
		post.MetaDescription, post.Published,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", fmt.Errorf("%s: %w", op, response.ErrConflict)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return post.ID, nil
}

const blogColumns = `id, title, slug, content, excerpt, category, tags, author, featured_image, meta_title, meta_description, published, views, published_at, created_at`

func scanBlogPost(row interface{ Scan(...any) error }) (*models.BlogPost, error) {
	var p models.BlogPost
	var tags pq.StringArray

	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.Category, &tags, &p.Author,
		&p.FeaturedImage, &p.MetaTitle, &p.MetaDescription, &p.Published, &p.Views,
		&p.PublishedAt, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Tags = tags

	return &p, nil
}

func (s *Storage) GetBlogPost(ctx context.Context, id string) (*models.BlogPost, error) {
	const op = "storage.postgres.GetBlogPost"

	row := s.db.QueryRowContext(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE id=$1`, id)

	post, err := scanBlogPost(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return post, nil
}

func (s *Storage) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	const op = "storage.postgres.GetBlogPostBySlug"

	row := s.db.QueryRowContext(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE slug=$1`, slug)

	post, err := scanBlogPost(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return post, nil
}

func (s *Storage) ListBlogPosts(ctx context.Context, filters *service.BlogFilters) ([]*models.BlogPost, error) {
	const op = "storage.postgres.ListBlogPosts"

	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE 1=1`
	var args []any

	if filters != nil {
		if filters.PublishedOnly {
			query += ` AND published`
		}
		if filters.Category != nil {
			args = append(args, *filters.Category)
			query += fmt.Sprintf(` AND category=$%d`, len(args))
		}
		if filters.Tag != nil {
			args = append(args, *filters.Tag)
			query += fmt.Sprintf(` AND $%d = ANY(tags)`, len(args))
		}
		if filters.Q != nil {
			args = append(args, "%"+*filters.Q+"%")
			query += fmt.Sprintf(` AND (title ILIKE $%d OR content ILIKE $%d)`, len(args), len(args))
		}
	}

	query += ` ORDER BY published_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.BlogPost
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, post)
	}

	return result, rows.Err()
}

func (s *Storage) UpdateBlogPost(ctx context.Context, post *models.BlogPost) error {
	const op = "storage.postgres.UpdateBlogPost"

	res, err := s.db.ExecContext(ctx, `
		UPDATE blog_posts
		SET title=$1, slug=$2, content=$3, excerpt=$4, category=$5, tags=$6, author=$7,
			featured_image=$8, meta_title=$9, meta_description=$10, published=$11
		WHERE id=$12`,
		post.Title, post.Slug, post.Content, post.Excerpt, post.Category, pq.Array(post.Tags),
		post.Author, post.FeaturedImage, post.MetaTitle, post.MetaDescription, post.Published, post.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%s: %w", op, response.ErrConflict)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(res, op)
}

func (s *Storage) DeleteBlogPost(ctx context.Context, id string) error {
	const op = "storage.postgres.DeleteBlogPost"

	res, err := s.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(res, op)
}

func (s *Storage) IncrementBlogViews(ctx context.Context, id string) error {
	const op = "storage.postgres.IncrementBlogViews"

	res, err := s.db.ExecContext(ctx, `UPDATE blog_posts SET views = views + 1 WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(res, op)
}

// ListBlogCategories returns the distinct categories across published posts.
func (s *Storage) ListBlogCategories(ctx context.Context) ([]string, error) {
	const op = "storage.postgres.ListBlogCategories"

	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT category FROM blog_posts WHERE published AND category <> '' ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, category)
	}

	return result, rows.Err()
}

// #### contact messages ####

func (s *Storage) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) (string, error) {
	const op = "storage.postgres.CreateContactMessage"

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_messages (id, name, email, phone, subject, message)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		msg.ID, msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message,
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return msg.ID, nil
}

func (s *Storage) GetContactMessage(ctx context.Context, id string) (*models.ContactMessage, error) {
	const op = "storage.postgres.GetContactMessage"

	var msg models.ContactMessage

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, subject, message, read, created_at
		FROM contact_messages WHERE id=$1`, id,
	).Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Phone, &msg.Subject, &msg.Message, &msg.Read, &msg.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%s: %w", op, response.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &msg, nil
}

func (s *Storage) ListContactMessages(ctx context.Context, unreadOnly bool) ([]*models.ContactMessage, error) {
	const op = "storage.postgres.ListContactMessages"

	query := `SELECT id, name, email, phone, subject, message, read, created_at FROM contact_messages`
	if unreadOnly {
		query += ` WHERE NOT read`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.ContactMessage
	for rows.Next() {
		var msg models.ContactMessage
		if err := rows.Scan(&msg.ID, &msg.Name, &msg.Email, &msg.Phone, &msg.Subject, &msg.Message, &msg.Read, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &msg)
	}

	return result, rows.Err()
}

func (s *Storage) MarkContactMessageRead(ctx context.Context, id string) error {
	const op = "storage.postgres.MarkContactMessageRead"

	res, err := s.db.ExecContext(ctx, `UPDATE contact_messages SET read=TRUE WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return checkAffected(res, op)
}

// #### site settings ####

func (s *Storage) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	const op = "storage.postgres.GetSettings"

	var settings models.SiteSettings

	err := s.db.QueryRowContext(ctx, `
		SELECT hospital_name, tagline, phone, whatsapp, email, address, working_hours,
			emergency_hours, google_maps_embed, facebook_url, twitter_url, instagram_url,
			about_text, mission_text, adsense_enabled, adsense_client_id
		FROM site_settings WHERE id='site_settings'`,
	).Scan(
		&settings.HospitalName, &settings.Tagline, &settings.Phone, &settings.Whatsapp,
		&settings.Email, &settings.Address, &settings.WorkingHours, &settings.EmergencyHours,
		&settings.GoogleMapsEmbed, &settings.FacebookURL, &settings.TwitterURL,
		&settings.InstagramURL, &settings.AboutText, &settings.MissionText,
		&settings.AdsenseEnabled, &settings.AdsenseClientID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &settings, nil
}

func (s *Storage) UpdateSettings(ctx context.Context, settings *models.SiteSettings) error {
	const op = "storage.postgres.UpdateSettings"

	_, err := s.db.ExecContext(ctx, `
		UPDATE site_settings
		SET hospital_name=$1, tagline=$2, phone=$3, whatsapp=$4, email=$5, address=$6,
			working_hours=$7, emergency_hours=$8, google_maps_embed=$9, facebook_url=$10,
			twitter_url=$11, instagram_url=$12, about_text=$13, mission_text=$14,
			adsense_enabled=$15, adsense_client_id=$16
		WHERE id='site_settings'`,
		settings.HospitalName, settings.Tagline, settings.Phone, settings.Whatsapp,
		settings.Email, settings.Address, settings.WorkingHours, settings.EmergencyHours,
		settings.GoogleMapsEmbed, settings.FacebookURL, settings.TwitterURL,
		settings.InstagramURL, settings.AboutText, settings.MissionText,
		settings.AdsenseEnabled, settings.AdsenseClientID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

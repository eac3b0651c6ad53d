package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/scholaredit/scholaredit/internal/models"
	"github.com/scholaredit/scholaredit/internal/server/storage"
)

// ListBlogs returns all posts ordered by creation time
func (s *Storage) ListBlogs(ctx context.Context) ([]*models.BlogPost, error) {
	query := `
		SELECT id, title, content, author, category, created_at, updated_at
		FROM blogs
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}
	defer rows.Close()

	var posts []*models.BlogPost
	for rows.Next() {
		post := &models.BlogPost{}
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.Author,
			&post.Category,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan blog post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate blog posts: %w", err)
	}

	return posts, nil
}

// GetBlogByID retrieves a post by ID
func (s *Storage) GetBlogByID(ctx context.Context, blogID string) (*models.BlogPost, error) {
	query := `
		SELECT id, title, content, author, category, created_at, updated_at
		FROM blogs
		WHERE id = ?
	`

	post := &models.BlogPost{}
	err := s.db.QueryRowContext(ctx, query, blogID).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Author,
		&post.Category,
		&post.CreatedAt,
		&post.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}

	return post, nil
}

// CreateBlog stores a new post
func (s *Storage) CreateBlog(ctx context.Context, post *models.BlogPost) error {
	query := `
		INSERT INTO blogs (id, title, content, author, category, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		post.ID,
		post.Title,
		post.Content,
		post.Author,
		post.Category,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert blog post: %w", err)
	}

	return nil
}

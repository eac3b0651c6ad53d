package sqlite

import (
	"context"
	"fmt"

	"github.com/scholaredit/scholaredit/internal/models"
)

// ListFAQs returns every FAQ entry
func (s *Storage) ListFAQs(ctx context.Context) ([]*models.FAQ, error) {
	query := `
		SELECT id, question, answer, category, created_at
		FROM faqs
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	defer rows.Close()

	var faqs []*models.FAQ
	for rows.Next() {
		faq := &models.FAQ{}
		if err := rows.Scan(
			&faq.ID,
			&faq.Question,
			&faq.Answer,
			&faq.Category,
			&faq.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan faq: %w", err)
		}
		faqs = append(faqs, faq)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate faqs: %w", err)
	}

	return faqs, nil
}

// CreateFAQ stores a new FAQ entry
func (s *Storage) CreateFAQ(ctx context.Context, faq *models.FAQ) error {
	query := `
		INSERT INTO faqs (id, question, answer, category, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		faq.ID,
		faq.Question,
		faq.Answer,
		faq.Category,
		faq.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert faq: %w", err)
	}

	return nil
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/scholaredit/scholaredit/internal/models"
	"github.com/scholaredit/scholaredit/internal/server/storage"
)

// ListServices returns every service in the catalog
func (s *Storage) ListServices(ctx context.Context) ([]*models.Service, error) {
	query := `
		SELECT id, name, description, category, price_cents, created_at
		FROM services
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	var services []*models.Service
	for rows.Next() {
		svc := &models.Service{}
		if err := rows.Scan(
			&svc.ID,
			&svc.Name,
			&svc.Description,
			&svc.Category,
			&svc.PriceCents,
			&svc.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate services: %w", err)
	}

	return services, nil
}

// GetServiceByID retrieves a service by ID
func (s *Storage) GetServiceByID(ctx context.Context, serviceID string) (*models.Service, error) {
	query := `
		SELECT id, name, description, category, price_cents, created_at
		FROM services
		WHERE id = ?
	`

	svc := &models.Service{}
	err := s.db.QueryRowContext(ctx, query, serviceID).Scan(
		&svc.ID,
		&svc.Name,
		&svc.Description,
		&svc.Category,
		&svc.PriceCents,
		&svc.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return svc, nil
}

// CreateService adds a service to the catalog
func (s *Storage) CreateService(ctx context.Context, service *models.Service) error {
	query := `
		INSERT INTO services (id, name, description, category, price_cents, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		service.ID,
		service.Name,
		service.Description,
		service.Category,
		service.PriceCents,
		service.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}

	return nil
}

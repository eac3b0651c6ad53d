package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/scholaredit/scholaredit/internal/models"
	"github.com/scholaredit/scholaredit/internal/server/storage"
)

// CreateRequest stores a new service request.
// Список файлов сериализуется в JSON-колонку (как в исходной схеме).
func (s *Storage) CreateRequest(ctx context.Context, req *models.ServiceRequest) error {
	files, err := encodeFiles(req.Files)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO service_requests (id, user_id, service_id, status, details, files, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		req.ID,
		req.UserID,
		req.ServiceID,
		string(req.Status),
		req.Details,
		files,
		req.CreatedAt,
		req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert service request: %w", err)
	}

	return nil
}

// GetRequestByID retrieves a request by ID
func (s *Storage) GetRequestByID(ctx context.Context, requestID string) (*models.ServiceRequest, error) {
	query := selectRequest + ` WHERE id = ?`

	req, err := scanRequest(s.db.QueryRowContext(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRequestNotFound
		}
		return nil, err
	}

	return req, nil
}

// ListRequestsByUser returns requests created by the given user
func (s *Storage) ListRequestsByUser(ctx context.Context, userID string) ([]*models.ServiceRequest, error) {
	query := selectRequest + ` WHERE user_id = ? ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list service requests: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

// ListRequests returns every request (admin view)
func (s *Storage) ListRequests(ctx context.Context) ([]*models.ServiceRequest, error) {
	query := selectRequest + ` ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list service requests: %w", err)
	}
	defer rows.Close()

	return collectRequests(rows)
}

// UpdateRequestStatus moves a request to a new status
func (s *Storage) UpdateRequestStatus(ctx context.Context, requestID string, status models.RequestStatus) error {
	query := `UPDATE service_requests SET status = ?, updated_at = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, string(status), time.Now(), requestID)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrRequestNotFound
	}

	return nil
}

const selectRequest = `
	SELECT id, user_id, service_id, status, details, files, created_at, updated_at
	FROM service_requests`

// scanner покрывает *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanRequest(row scanner) (*models.ServiceRequest, error) {
	req := &models.ServiceRequest{}
	var status string
	var details, files sql.NullString

	err := row.Scan(
		&req.ID,
		&req.UserID,
		&req.ServiceID,
		&status,
		&details,
		&files,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan service request: %w", err)
	}

	req.Status = models.RequestStatus(status)
	if details.Valid {
		req.Details = details.String
	}
	if files.Valid && files.String != "" {
		if err := json.Unmarshal([]byte(files.String), &req.Files); err != nil {
			return nil, fmt.Errorf("failed to decode files list: %w", err)
		}
	}

	return req, nil
}

func collectRequests(rows *sql.Rows) ([]*models.ServiceRequest, error) {
	var requests []*models.ServiceRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate service requests: %w", err)
	}

	return requests, nil
}

// encodeFiles сериализует список файлов в JSON; пустой список хранится как NULL
func encodeFiles(files []string) (any, error) {
	if len(files) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(files)
	if err != nil {
		return nil, fmt.Errorf("failed to encode files list: %w", err)
	}
	return string(data), nil
}

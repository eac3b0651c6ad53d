package storage

import (
	"context"

	"github.com/scholaredit/scholaredit/internal/models"
)

// ServiceStorage defines interface for the service catalog
type ServiceStorage interface {
	// ListServices returns every service in the catalog
	ListServices(ctx context.Context) ([]*models.Service, error)

	// GetServiceByID retrieves a service by ID
	// Returns ErrServiceNotFound if it doesn't exist
	GetServiceByID(ctx context.Context, serviceID string) (*models.Service, error)

	// CreateService adds a service to the catalog (used by the seeder)
	CreateService(ctx context.Context, service *models.Service) error
}

// BlogStorage defines interface for blog posts
type BlogStorage interface {
	// ListBlogs returns all posts ordered by creation time
	ListBlogs(ctx context.Context) ([]*models.BlogPost, error)

	// GetBlogByID retrieves a post by ID
	// Returns ErrBlogNotFound if it doesn't exist
	GetBlogByID(ctx context.Context, blogID string) (*models.BlogPost, error)

	// CreateBlog stores a new post
	CreateBlog(ctx context.Context, post *models.BlogPost) error
}

// FAQStorage defines interface for FAQ entries
type FAQStorage interface {
	// ListFAQs returns every FAQ entry
	ListFAQs(ctx context.Context) ([]*models.FAQ, error)

	// CreateFAQ stores a new FAQ entry (used by the seeder)
	CreateFAQ(ctx context.Context, faq *models.FAQ) error
}

// RequestStorage defines interface for service requests (order intake)
type RequestStorage interface {
	// CreateRequest stores a new service request
	CreateRequest(ctx context.Context, req *models.ServiceRequest) error

	// GetRequestByID retrieves a request by ID
	// Returns ErrRequestNotFound if it doesn't exist
	GetRequestByID(ctx context.Context, requestID string) (*models.ServiceRequest, error)

	// ListRequestsByUser returns requests created by the given user
	ListRequestsByUser(ctx context.Context, userID string) ([]*models.ServiceRequest, error)

	// ListRequests returns every request (admin view)
	ListRequests(ctx context.Context) ([]*models.ServiceRequest, error)

	// UpdateRequestStatus moves a request to a new status.
	// Returns ErrRequestNotFound if it doesn't exist.
	UpdateRequestStatus(ctx context.Context, requestID string, status models.RequestStatus) error
}

package handlers

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/scholaredit/scholaredit/internal/models"
	"github.com/scholaredit/scholaredit/internal/server/storage"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockUserStorage хранит пользователей в памяти; err подменяет любой
// вызов для имитации отказа хранилища
type mockUserStorage struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by ID
	err   error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return storage.ErrUserAlreadyExists
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserStorage) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) GetUserByID(_ context.Context, userID string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if u, ok := m.users[userID]; ok {
		return u, nil
	}
	return nil, storage.ErrUserNotFound
}

type mockServiceStorage struct {
	services map[string]*models.Service
	err      error
}

func newMockServiceStorage() *mockServiceStorage {
	return &mockServiceStorage{services: make(map[string]*models.Service)}
}

func (m *mockServiceStorage) ListServices(_ context.Context) ([]*models.Service, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*models.Service
	for _, s := range m.services {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockServiceStorage) GetServiceByID(_ context.Context, serviceID string) (*models.Service, error) {
	if m.err != nil {
		return nil, m.err
	}
	if s, ok := m.services[serviceID]; ok {
		return s, nil
	}
	return nil, storage.ErrServiceNotFound
}

func (m *mockServiceStorage) CreateService(_ context.Context, service *models.Service) error {
	if m.err != nil {
		return m.err
	}
	m.services[service.ID] = service
	return nil
}

type mockBlogStorage struct {
	posts map[string]*models.BlogPost
	err   error
}

func newMockBlogStorage() *mockBlogStorage {
	return &mockBlogStorage{posts: make(map[string]*models.BlogPost)}
}

func (m *mockBlogStorage) ListBlogs(_ context.Context) ([]*models.BlogPost, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*models.BlogPost
	for _, p := range m.posts {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockBlogStorage) GetBlogByID(_ context.Context, blogID string) (*models.BlogPost, error) {
	if m.err != nil {
		return nil, m.err
	}
	if p, ok := m.posts[blogID]; ok {
		return p, nil
	}
	return nil, storage.ErrBlogNotFound
}

func (m *mockBlogStorage) CreateBlog(_ context.Context, post *models.BlogPost) error {
	if m.err != nil {
		return m.err
	}
	m.posts[post.ID] = post
	return nil
}

type mockFAQStorage struct {
	faqs []*models.FAQ
	err  error
}

func (m *mockFAQStorage) ListFAQs(_ context.Context) ([]*models.FAQ, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.faqs, nil
}

func (m *mockFAQStorage) CreateFAQ(_ context.Context, faq *models.FAQ) error {
	if m.err != nil {
		return m.err
	}
	m.faqs = append(m.faqs, faq)
	return nil
}

type mockRequestStorage struct {
	requests map[string]*models.ServiceRequest
	err      error
}

func newMockRequestStorage() *mockRequestStorage {
	return &mockRequestStorage{requests: make(map[string]*models.ServiceRequest)}
}

func (m *mockRequestStorage) CreateRequest(_ context.Context, req *models.ServiceRequest) error {
	if m.err != nil {
		return m.err
	}
	m.requests[req.ID] = req
	return nil
}

func (m *mockRequestStorage) GetRequestByID(_ context.Context, requestID string) (*models.ServiceRequest, error) {
	if m.err != nil {
		return nil, m.err
	}
	if r, ok := m.requests[requestID]; ok {
		return r, nil
	}
	return nil, storage.ErrRequestNotFound
}

func (m *mockRequestStorage) ListRequestsByUser(_ context.Context, userID string) ([]*models.ServiceRequest, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*models.ServiceRequest
	for _, r := range m.requests {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRequestStorage) ListRequests(_ context.Context) ([]*models.ServiceRequest, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*models.ServiceRequest
	for _, r := range m.requests {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRequestStorage) UpdateRequestStatus(_ context.Context, requestID string, status models.RequestStatus) error {
	if m.err != nil {
		return m.err
	}
	r, ok := m.requests[requestID]
	if !ok {
		return storage.ErrRequestNotFound
	}
	r.Status = status
	r.UpdatedAt = time.Now()
	return nil
}

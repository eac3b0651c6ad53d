package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholaredit/scholaredit/internal/auth"
	"github.com/scholaredit/scholaredit/internal/models"
	"github.com/scholaredit/scholaredit/pkg/api"
)

func setupCatalogHandler() (*CatalogHandler, *mockServiceStorage, *mockBlogStorage, *mockFAQStorage, *mockUserStorage) {
	services := newMockServiceStorage()
	blogs := newMockBlogStorage()
	faqs := &mockFAQStorage{}
	users := newMockUserStorage()
	h := NewCatalogHandler(newTestLogger(), services, blogs, faqs, users)
	return h, services, blogs, faqs, users
}

func TestCatalogHandler_ListServices(t *testing.T) {
	h, services, _, _, _ := setupCatalogHandler()

	services.services["svc-1"] = &models.Service{
		ID:         "svc-1",
		Name:       "Proofreading",
		Category:   "editing",
		PriceCents: 9900,
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/services", nil)
	w := httptest.NewRecorder()
	h.ListServices(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    []*models.Service `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Proofreading", resp.Data[0].Name)
}

func TestCatalogHandler_GetBlog(t *testing.T) {
	h, _, blogs, _, _ := setupCatalogHandler()

	blogs.posts["blog-1"] = &models.BlogPost{
		ID:    "blog-1",
		Title: "Choosing a target journal",
	}

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/blogs/blog-1", nil)
		req.SetPathValue("id", "blog-1")

		w := httptest.NewRecorder()
		h.GetBlog(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Choosing a target journal")
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/blogs/missing", nil)
		req.SetPathValue("id", "missing")

		w := httptest.NewRecorder()
		h.GetBlog(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCatalogHandler_CreateBlog(t *testing.T) {
	h, _, blogs, _, users := setupCatalogHandler()

	admin := &models.User{
		ID:        "admin-1",
		Email:     "admin@x.com",
		Name:      "Site Admin",
		Role:      models.RoleAdmin,
		CreatedAt: time.Now(),
	}
	require.NoError(t, users.CreateUser(context.Background(), admin))

	body, err := json.Marshal(api.CreateBlogRequest{
		Title:    "New post",
		Content:  "Body text",
		Category: "news",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/blogs", bytes.NewReader(body))
	req = req.WithContext(WithCaller(req.Context(), &auth.Caller{
		ID:    admin.ID,
		Email: admin.Email,
		Role:  admin.Role,
	}))

	w := httptest.NewRecorder()
	h.CreateBlog(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool            `json:"success"`
		Data    models.BlogPost `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.ID)

	// Автор берется из профиля, а не из claims
	assert.Equal(t, "Site Admin", resp.Data.Author)

	// Пост действительно сохранен
	stored, err := blogs.GetBlogByID(context.Background(), resp.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, "New post", stored.Title)
}

func TestCatalogHandler_CreateBlog_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  api.CreateBlogRequest
	}{
		{name: "empty title", req: api.CreateBlogRequest{Content: "x", Category: "news"}},
		{name: "empty content", req: api.CreateBlogRequest{Title: "x", Category: "news"}},
		{name: "empty category", req: api.CreateBlogRequest{Title: "x", Content: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _, _, _, _ := setupCatalogHandler()

			body, err := json.Marshal(tt.req)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/blogs", bytes.NewReader(body))
			req = req.WithContext(WithCaller(req.Context(), &auth.Caller{
				ID:   "admin-1",
				Role: models.RoleAdmin,
			}))

			w := httptest.NewRecorder()
			h.CreateBlog(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCatalogHandler_ListFAQs(t *testing.T) {
	h, _, _, faqs, _ := setupCatalogHandler()

	faqs.faqs = []*models.FAQ{
		{ID: "faq-1", Question: "How long?", Answer: "Three days."},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/faq", nil)
	w := httptest.NewRecorder()
	h.ListFAQs(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "How long?")
}

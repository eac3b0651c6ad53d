package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scholaredit/scholaredit/internal/models"
	"github.com/scholaredit/scholaredit/internal/server/storage"
	"github.com/scholaredit/scholaredit/pkg/api"
)

// CatalogHandler отдает публичный контент сайта: услуги, блог, FAQ
type CatalogHandler struct {
	logger   *slog.Logger
	services storage.ServiceStorage
	blogs    storage.BlogStorage
	faqs     storage.FAQStorage
	users    storage.UserStorage
}

// NewCatalogHandler создает новый handler для контента
func NewCatalogHandler(
	logger *slog.Logger,
	services storage.ServiceStorage,
	blogs storage.BlogStorage,
	faqs storage.FAQStorage,
	users storage.UserStorage,
) *CatalogHandler {
	return &CatalogHandler{
		logger:   logger,
		services: services,
		blogs:    blogs,
		faqs:     faqs,
		users:    users,
	}
}

// ListServices обрабатывает GET /api/v1/services
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	services, err := h.services.ListServices(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list services", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendData(h.logger, w, services, http.StatusOK)
}

// ListBlogs обрабатывает GET /api/v1/blogs
func (h *CatalogHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	posts, err := h.blogs.ListBlogs(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list blogs", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendData(h.logger, w, posts, http.StatusOK)
}

// GetBlog обрабатывает GET /api/v1/blogs/{id}
func (h *CatalogHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	blogID := r.PathValue("id")
	if blogID == "" {
		sendError(h.logger, w, "blog id is required", http.StatusBadRequest)
		return
	}

	post, err := h.blogs.GetBlogByID(ctx, blogID)
	if err != nil {
		if errors.Is(err, storage.ErrBlogNotFound) {
			sendError(h.logger, w, "blog post not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get blog post", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendData(h.logger, w, post, http.StatusOK)
}

// CreateBlog обрабатывает POST /api/v1/blogs (только admin, гейт в middleware)
// Автором статьи записываем отображаемое имя из профиля, не из claims.
func (h *CatalogHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := GetCaller(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CreateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode blog request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		sendError(h.logger, w, "title is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		sendError(h.logger, w, "content is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Category) == "" {
		sendError(h.logger, w, "category is required", http.StatusBadRequest)
		return
	}

	author, err := h.users.GetUserByID(ctx, caller.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get author", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	post := &models.BlogPost{
		ID:        uuid.New().String(),
		Title:     req.Title,
		Content:   req.Content,
		Author:    author.Name,
		Category:  req.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.blogs.CreateBlog(ctx, post); err != nil {
		h.logger.ErrorContext(ctx, "failed to create blog post", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "blog post created",
		slog.String("blog_id", post.ID),
		slog.String("author_id", caller.ID))

	sendData(h.logger, w, post, http.StatusOK)
}

// ListFAQs обрабатывает GET /api/v1/faq
func (h *CatalogHandler) ListFAQs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	faqs, err := h.faqs.ListFAQs(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list faqs", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendData(h.logger, w, faqs, http.StatusOK)
}

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/scholaredit/scholaredit/internal/models"
	"github.com/scholaredit/scholaredit/internal/server/storage"
	"github.com/scholaredit/scholaredit/pkg/api"
)

// RequestsHandler обрабатывает заявки на услуги (прием заказов)
type RequestsHandler struct {
	logger   *slog.Logger
	requests storage.RequestStorage
	services storage.ServiceStorage
}

// NewRequestsHandler создает новый handler для заявок
func NewRequestsHandler(logger *slog.Logger, requests storage.RequestStorage, services storage.ServiceStorage) *RequestsHandler {
	return &RequestsHandler{
		logger:   logger,
		requests: requests,
		services: services,
	}
}

// Create обрабатывает POST /api/v1/requests (требуется аутентификация)
func (h *RequestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := GetCaller(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.ServiceID == "" {
		sendError(h.logger, w, "service_id is required", http.StatusBadRequest)
		return
	}

	// Заявка должна ссылаться на существующую услугу
	if _, err := h.services.GetServiceByID(ctx, req.ServiceID); err != nil {
		if errors.Is(err, storage.ErrServiceNotFound) {
			sendError(h.logger, w, "unknown service", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get service", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	now := time.Now()
	request := &models.ServiceRequest{
		ID:        uuid.New().String(),
		UserID:    caller.ID,
		ServiceID: req.ServiceID,
		Status:    models.StatusPending,
		Details:   req.Details,
		Files:     req.Files,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.requests.CreateRequest(ctx, request); err != nil {
		h.logger.ErrorContext(ctx, "failed to create service request", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "service request created",
		slog.String("request_id", request.ID),
		slog.String("user_id", caller.ID),
		slog.String("service_id", req.ServiceID))

	sendData(h.logger, w, request, http.StatusOK)
}

// List обрабатывает GET /api/v1/requests (требуется аутентификация)
// По умолчанию отдает заявки самого пользователя;
// ?all=true доступен только админам и отдает все заявки.
func (h *RequestsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, ok := GetCaller(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if r.URL.Query().Get("all") == "true" {
		if caller.Role != models.RoleAdmin {
			sendError(h.logger, w, "admin role required", http.StatusForbidden)
			return
		}

		requests, err := h.requests.ListRequests(ctx)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to list requests", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
			return
		}

		sendData(h.logger, w, requests, http.StatusOK)
		return
	}

	requests, err := h.requests.ListRequestsByUser(ctx, caller.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list user requests", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendData(h.logger, w, requests, http.StatusOK)
}

// UpdateStatus обрабатывает PATCH /api/v1/requests/{id} (только admin, гейт в middleware)
func (h *RequestsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requestID := r.PathValue("id")
	if requestID == "" {
		sendError(h.logger, w, "request id is required", http.StatusBadRequest)
		return
	}

	var req api.UpdateRequestStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode status request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	status := models.RequestStatus(req.Status)
	if !status.Valid() {
		sendError(h.logger, w, "unknown status", http.StatusBadRequest)
		return
	}

	if err := h.requests.UpdateRequestStatus(ctx, requestID, status); err != nil {
		if errors.Is(err, storage.ErrRequestNotFound) {
			sendError(h.logger, w, "service request not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update request status", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	request, err := h.requests.GetRequestByID(ctx, requestID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get request", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "request status updated",
		slog.String("request_id", requestID),
		slog.String("status", req.Status))

	sendData(h.logger, w, request, http.StatusOK)
}

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/scholaredit/scholaredit/pkg/api"
)

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendData оборачивает данные в success-конверт {"success": true, "data": ...}
func sendData(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	sendJSON(logger, w, api.Response{Success: true, Data: data}, statusCode)
}

// sendError отправляет JSON ответ с ошибкой
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(logger, w, resp, statusCode)
}

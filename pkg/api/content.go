package api

// CreateRequestRequest представляет запрос на создание заявки на услугу
type CreateRequestRequest struct {
	ServiceID string   `json:"service_id"`
	Details   string   `json:"details,omitempty"`
	Files     []string `json:"files,omitempty"` // ссылки на приложенные файлы
}

// UpdateRequestStatusRequest представляет смену статуса заявки (только admin)
type UpdateRequestStatusRequest struct {
	Status string `json:"status"`
}

// CreateBlogRequest представляет запрос на публикацию статьи (только admin)
type CreateBlogRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

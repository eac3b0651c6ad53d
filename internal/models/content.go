package models

import "time"

// Service представляет услугу редактирования из каталога
type Service struct {
	ID          string    `json:"id"`          // UUID услуги
	Name        string    `json:"name"`        // название услуги
	Description string    `json:"description"` // описание
	Category    string    `json:"category"`    // категория (editing, proofreading, ...)
	PriceCents  int64     `json:"price_cents"` // цена в центах
	CreatedAt   time.Time `json:"created_at"`
}

// RequestStatus определяет статус заявки на услугу (закрытый enum)
type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusInProgress RequestStatus = "in_progress"
	StatusCompleted  RequestStatus = "completed"
	StatusCancelled  RequestStatus = "cancelled"
)

// Valid reports whether the status is one of the known values.
func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ServiceRequest представляет заявку пользователя на услугу
type ServiceRequest struct {
	ID        string        `json:"id"`      // UUID заявки
	UserID    string        `json:"user_id"` // автор заявки
	ServiceID string        `json:"service_id"`
	Status    RequestStatus `json:"status"`
	Details   string        `json:"details,omitempty"` // свободный текст от клиента
	Files     []string      `json:"files,omitempty"`   // ссылки на приложенные файлы
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// BlogPost представляет статью блога
type BlogPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"` // отображаемое имя автора
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FAQ представляет вопрос-ответ для страницы FAQ
type FAQ struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

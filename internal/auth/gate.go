package auth

import (
	"net/http"
	"strings"

	"github.com/scholaredit/scholaredit/internal/models"
)

// Caller is the authenticated-identity view reconstructed from a verified
// token for the duration of one request. It is built from the claims alone,
// without a store round-trip: within the token's validity window the claims
// are the source of truth for id, email and role.
type Caller struct {
	ID    string
	Email string
	Role  models.Role
}

// Gate answers "who is calling" and "is this caller allowed" for a request.
type Gate struct {
	tokens *TokenService
}

// NewGate creates an auth gate on top of the token service.
func NewGate(tokens *TokenService) *Gate {
	return &Gate{tokens: tokens}
}

// CallerFromRequest извлекает аутентифицированного пользователя из запроса.
// Нет заголовка, не bearer-схема или невалидный токен — возвращает nil.
func (g *Gate) CallerFromRequest(r *http.Request) *Caller {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil
	}

	// Ожидаем формат: "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil
	}

	claims, err := g.tokens.VerifyToken(parts[1])
	if err != nil {
		return nil
	}

	return &Caller{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  models.Role(claims.Role),
	}
}

// RequireCaller возвращает ErrUnauthorized, если запрос не аутентифицирован.
func (g *Gate) RequireCaller(r *http.Request) (*Caller, error) {
	caller := g.CallerFromRequest(r)
	if caller == nil {
		return nil, ErrUnauthorized
	}
	return caller, nil
}

// RequireRole requires an authenticated caller with exactly the given role.
// Missing or invalid credentials yield ErrUnauthorized; valid credentials
// with a different role yield ErrForbidden. The distinction is part of the
// contract (401 vs 403 at the HTTP boundary).
func (g *Gate) RequireRole(r *http.Request, role models.Role) (*Caller, error) {
	caller, err := g.RequireCaller(r)
	if err != nil {
		return nil, err
	}
	if caller.Role != role {
		return nil, ErrForbidden
	}
	return caller, nil
}

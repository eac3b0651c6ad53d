package handlers

import (
	"context"

	"github.com/scholaredit/scholaredit/internal/auth"
)

// contextKey тип для ключей контекста (чтобы не пересекаться с другими пакетами)
type contextKey string

// CallerKey ключ контекста с аутентифицированным пользователем
const CallerKey contextKey = "caller"

// WithCaller returns a context carrying the authenticated caller.
// Used by the auth middleware; handlers read it back with GetCaller.
func WithCaller(ctx context.Context, caller *auth.Caller) context.Context {
	return context.WithValue(ctx, CallerKey, caller)
}

// GetCaller extracts the authenticated caller from the context.
func GetCaller(ctx context.Context) (*auth.Caller, bool) {
	caller, ok := ctx.Value(CallerKey).(*auth.Caller)
	return caller, ok && caller != nil
}

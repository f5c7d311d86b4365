package auth

import (
	"context"

	"github.com/xela07ax/mrfashion-backend/internal/domain"
)

type ctxKey int

const principalKey ctxKey = iota

// WithPrincipal кладёт аутентифицированную личность в контекст запроса.
func WithPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext достаёт личность, положенную middleware.
// Возвращает false для запросов, прошедших мимо защищённого периметра.
func PrincipalFromContext(ctx context.Context) (*domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(*domain.Principal)
	return p, ok
}

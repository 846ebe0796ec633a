package middleware

import (
	"context"

	"voidslab-service/models"
)

type ctxKey string

const userContextKey ctxKey = "voidslab.auth.user"

func withUserContext(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, u)
}

// UserFromContext returns the user attached by the auth guard, if any
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userContextKey).(*models.User)
	return u, ok
}

package api

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/services"
)

type keyType string

const userIDKey keyType = "userID"

// ctxWithUserID adds the authenticated user's ID to the context
func ctxWithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// ctxGetUserID retrieves the authenticated user's ID from the context.
// Returns AnonymousID when no identity was established.
func ctxGetUserID(ctx context.Context) uint {
	if ctxValue := ctx.Value(userIDKey); ctxValue != nil {
		if userID, ok := ctxValue.(uint); ok {
			return userID
		}
	}
	return services.AnonymousID
}

package services

import (
	"context"

	"nimbus-chat/pkg/logger"
)

type ctxKey string

const userIDKey ctxKey = "auth_user_id"

// WithUserContext stores the verified caller id on the context. The
// logger key is set alongside so request logs carry the user id.
func WithUserContext(ctx context.Context, userID string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, logger.UserIdKey, userID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

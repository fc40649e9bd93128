package common

import "context"

// ContextKey represents a context key type
type ContextKey string

// Context keys
const (
	ContextKeyUserID ContextKey = "user_id"
	ContextKeyAPIKey ContextKey = "api_key"
)

// WithUserID adds the authenticated user ID to context
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ContextKeyUserID, userID)
}

// GetUserID extracts the authenticated user ID from context
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(ContextKeyUserID).(string)
	return userID, ok
}

// WithAPIKey adds the presented API key to context
func WithAPIKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, ContextKeyAPIKey, key)
}

// GetAPIKey extracts the presented API key from context
func GetAPIKey(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(ContextKeyAPIKey).(string)
	return key, ok
}

package http

import "context"

type contextKey string

const activityNameContextKey contextKey = "activity_name"

// ContextWithActivityName injects the activity name resolved from the
// request path.
func ContextWithActivityName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, activityNameContextKey, name)
}

// ActivityNameFromContext extracts an activity name previously associated
// with the context.
func ActivityNameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(activityNameContextKey).(string)
	return name, ok
}

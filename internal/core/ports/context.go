package ports

import "context"

type contextKey int

const upstreamTokenKey contextKey = iota

// ContextWithUpstreamToken attaches the session's upstream bearer token so
// outbound backend clients can authenticate on the user's behalf.
func ContextWithUpstreamToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, upstreamTokenKey, token)
}

// UpstreamTokenFromContext returns the attached token, or "" when absent.
func UpstreamTokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(upstreamTokenKey).(string); ok {
		return token
	}
	return ""
}

package gateway

import "context"

type tokenContextKey struct{}

// WithToken returns a context carrying the caller's bearer token. Gateway
// clients forward it to the core API on every request.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext returns the bearer token stored by WithToken, or "".
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey{}).(string)
	return token
}

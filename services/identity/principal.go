// Package identity adapts the external identity provider and the core
// API's user profile into a request principal. Sign-up, sign-in, and token
// refresh happen entirely in the provider; this service only verifies
// tokens and resolves who they belong to.
package identity

import (
	"context"

	"infinity8/models"
)

// Principal is the authenticated caller of one request.
type Principal struct {
	User  *models.User
	Token string
}

type principalContextKey struct{}

// WithPrincipal returns a context carrying the resolved principal.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext returns the request principal, or nil for an
// anonymous caller.
func PrincipalFromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalContextKey{}).(*Principal)
	return p
}

// ContextAuthState exposes the request principal as the workflow
// controller's authentication collaborator.
type ContextAuthState struct{}

func (ContextAuthState) Authenticated(ctx context.Context) bool {
	p := PrincipalFromContext(ctx)
	return p != nil && p.User != nil
}

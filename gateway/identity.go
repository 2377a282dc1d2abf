package gateway

import (
	"context"
	"net/http"

	"infinity8/models"
)

// IdentityAPI resolves the application user behind an identity-provider
// token. The provider itself (sign-up, sign-in, refresh) is out of scope.
type IdentityAPI interface {
	Me(ctx context.Context) (*models.User, error)
	Sync(ctx context.Context, email, fullName string) (*models.User, error)
}

// IdentityClient implements IdentityAPI against the core API.
type IdentityClient struct {
	*Client
}

func NewIdentityClient(c *Client) *IdentityClient {
	return &IdentityClient{Client: c}
}

// Me returns the profile of the token's owner. The token travels on the
// context (see WithToken).
func (i *IdentityClient) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := i.do(ctx, http.MethodGet, "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Sync creates the application profile for a freshly provisioned identity,
// or returns the existing one.
func (i *IdentityClient) Sync(ctx context.Context, email, fullName string) (*models.User, error) {
	payload := map[string]string{"email": email, "full_name": fullName}
	var user models.User
	if err := i.do(ctx, http.MethodPost, "/auth/sync", nil, payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

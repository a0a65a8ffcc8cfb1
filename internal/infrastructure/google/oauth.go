package google

import (
	"context"
	"fmt"

	"github.com/Kush146/note-app-Backend/internal/config"
	"github.com/Kush146/note-app-Backend/internal/domain"
	"golang.org/x/oauth2"
	oauth2google "golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// Identity holds the verified claims extracted from a Google ID token.
type Identity struct {
	Sub   string
	Email string
	Name  string
}

// Client runs the Google OAuth redirect flow: AuthURL sends the browser to
// the consent page, Exchange trades the returned code for tokens and
// validates the ID token against the configured client ID.
type Client struct {
	oauth *oauth2.Config
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleCallbackURL,
			Endpoint:     oauth2google.Endpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
	}
}

// AuthURL returns the Google consent page URL for the given state value.
// The state is not correlated server-side: the flow is stateless and the
// provider's own round-trip state is trusted.
func (c *Client) AuthURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// Exchange trades the authorization code for tokens and returns the identity
// asserted by the validated ID token. Returns a domain.ErrUnauthorized-wrapped
// error when the exchange or validation fails.
func (c *Client) Exchange(ctx context.Context, code string) (*Identity, error) {
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google code exchange failed: %w", domain.ErrUnauthorized)
	}
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("google response missing id token: %w", domain.ErrUnauthorized)
	}
	payload, err := idtoken.Validate(ctx, rawIDToken, c.oauth.ClientID)
	if err != nil {
		return nil, fmt.Errorf("invalid google id token: %w", domain.ErrUnauthorized)
	}
	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	return &Identity{
		Sub:   payload.Subject,
		Email: email,
		Name:  name,
	}, nil
}

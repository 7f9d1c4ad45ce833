// Package auth is the gateway for login and profile calls. It speaks the
// backend's auth endpoints and hands the result to the session store; it
// never keeps token state of its own.
package auth

import (
	"context"
	"strconv"

	"github.com/caredesk/caredesk/internal/platform/api"
	"github.com/caredesk/caredesk/internal/platform/normalize"
	"github.com/caredesk/caredesk/internal/platform/session"
)

type Gateway struct {
	api *api.Client
}

func NewGateway(c *api.Client) *Gateway {
	return &Gateway{api: c}
}

// Login exchanges credentials for tokens and the user's identity.
func (g *Gateway) Login(ctx context.Context, email, password string) (session.Tokens, session.User, error) {
	raw, err := g.api.Post(ctx, "/auth/login", map[string]any{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return session.Tokens{}, session.User{}, err
	}
	obj, err := api.DecodeObject(raw)
	if err != nil {
		return session.Tokens{}, session.User{}, err
	}

	tokens := session.Tokens{
		AccessToken:  normalize.Str(obj, "accessToken", "tokens.accessToken", "token"),
		RefreshToken: normalize.Str(obj, "refreshToken", "tokens.refreshToken"),
	}
	user := session.User{
		UserID: userID(obj),
		Email:  normalize.Str(obj, "user.email", "email"),
		Role:   normalize.Str(obj, "user.role", "role"),
	}
	return tokens, user, nil
}

// Profile fetches the authenticated user's identity.
func (g *Gateway) Profile(ctx context.Context) (session.User, error) {
	raw, err := g.api.Get(ctx, "/auth/me", nil)
	if err != nil {
		return session.User{}, err
	}
	obj, err := api.DecodeObject(raw)
	if err != nil {
		return session.User{}, err
	}
	return session.User{
		UserID: userID(obj),
		Email:  normalize.Str(obj, "user.email", "email"),
		Role:   normalize.Str(obj, "user.role", "role"),
	}, nil
}

// userID tolerates both numeric and string user ids across backend versions.
func userID(obj map[string]any) string {
	if s := normalize.Str(obj, "user.user_id", "user.id", "user_id"); s != "" {
		return s
	}
	if n := normalize.Int(obj, "user.user_id", "user.id", "user_id", "id"); n != 0 {
		return strconv.Itoa(n)
	}
	return ""
}

// Package session implements the session gateway: the single owner of the
// authenticated session. Screens receive it as an injected dependency and
// only ever read "who is signed in"; all mutation happens through the
// sign-in/sign-up/sign-out operations.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/plantcare-app/plantcare/internal/backend"
	"github.com/plantcare-app/plantcare/internal/common"
)

// User is the signed-in identity as the screens see it.
type User struct {
	ID    string
	Email string
	Name  string
}

// Session holds the live token pair. Opaque to everything outside this
// package except for the access token handed to the record store.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Gateway exposes session state and auth operations to the screens.
//
// CurrentUser returns common.ErrNoSession when nobody is signed in or the
// session could not be refreshed. Sign-in and sign-up failures carry the
// backend's message verbatim.
type Gateway interface {
	CurrentUser(ctx context.Context) (*User, error)
	CurrentSession() *Session
	AccessToken() string
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password, name string) error
	SignOut(ctx context.Context) error
}

type gateway struct {
	auth *backend.AuthClient

	mu      sync.Mutex
	session *Session
	user    *User

	now func() time.Time
}

// NewGateway builds a Gateway over the backend auth client. The process
// starts signed out; no session survives a restart.
func NewGateway(auth *backend.AuthClient) Gateway {
	return &gateway{auth: auth, now: time.Now}
}

func (g *gateway) SignIn(ctx context.Context, email, password string) error {
	resp, err := g.auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		return err
	}
	return g.adoptSession(resp)
}

func (g *gateway) SignUp(ctx context.Context, email, password, name string) error {
	_, err := g.auth.SignUp(ctx, email, password, map[string]any{"name": name})
	return err
}

func (g *gateway) SignOut(ctx context.Context) error {
	g.mu.Lock()
	s := g.session
	g.mu.Unlock()

	if s != nil {
		if err := g.auth.SignOut(ctx, s.AccessToken); err != nil {
			return err
		}
	}

	g.mu.Lock()
	g.session = nil
	g.user = nil
	g.mu.Unlock()
	return nil
}

// CurrentUser returns the signed-in user. An expired session gets one
// refresh attempt; if that fails the session is dropped and
// common.ErrNoSession is returned.
func (g *gateway) CurrentUser(ctx context.Context) (*User, error) {
	g.mu.Lock()
	s, u := g.session, g.user
	g.mu.Unlock()

	if s == nil {
		return nil, common.ErrNoSession
	}

	if !s.ExpiresAt.IsZero() && !g.now().Before(s.ExpiresAt) {
		if err := g.refresh(ctx, s.RefreshToken); err != nil {
			g.mu.Lock()
			g.session = nil
			g.user = nil
			g.mu.Unlock()
			return nil, common.ErrNoSession
		}
		g.mu.Lock()
		u = g.user
		g.mu.Unlock()
	}

	return u, nil
}

func (g *gateway) CurrentSession() *Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.session == nil {
		return nil
	}
	if !g.session.ExpiresAt.IsZero() && !g.now().Before(g.session.ExpiresAt) {
		return nil
	}
	s := *g.session
	return &s
}

// AccessToken returns the live access token, or "" when signed out. The
// plant record store uses it as the bearer for owner-scoped queries.
func (g *gateway) AccessToken() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.session == nil {
		return ""
	}
	return g.session.AccessToken
}

func (g *gateway) refresh(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return common.ErrNoSession
	}
	resp, err := g.auth.RefreshSession(ctx, refreshToken)
	if err != nil {
		return err
	}
	return g.adoptSession(resp)
}

func (g *gateway) adoptSession(resp *backend.AuthResponse) error {
	user, expiresAt, err := identityFromToken(resp.AccessToken)
	if err != nil {
		return err
	}

	// The token response embeds the user object; prefer its fields where
	// present, the claims otherwise.
	if resp.User != nil {
		if resp.User.ID != "" {
			user.ID = resp.User.ID
		}
		if resp.User.Email != "" {
			user.Email = resp.User.Email
		}
		if name, ok := resp.User.UserMetadata["name"].(string); ok && name != "" {
			user.Name = name
		}
	}

	if expiresAt.IsZero() && resp.ExpiresIn > 0 {
		expiresAt = g.now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}

	g.mu.Lock()
	g.session = &Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    expiresAt,
	}
	g.user = user
	g.mu.Unlock()
	return nil
}

// identityFromToken decodes the access token claims without verifying the
// signature: the client holds no signing secret, trust lives in the backend.
// The subject must be a UUID, matching the backend's user identifiers.
func identityFromToken(token string) (*User, time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, time.Time{}, common.ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, time.Time{}, common.ErrInvalidToken
	}
	if _, err := uuid.Parse(sub); err != nil {
		return nil, time.Time{}, common.ErrInvalidToken
	}

	user := &User{ID: sub}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if md, ok := claims["user_metadata"].(map[string]any); ok {
		if name, ok := md["name"].(string); ok {
			user.Name = name
		}
	}

	var expiresAt time.Time
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
	}
	return user, expiresAt, nil
}

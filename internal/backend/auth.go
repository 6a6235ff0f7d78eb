package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Auth returns the authentication surface of the backend.
func (c *Client) Auth() *AuthClient {
	return &AuthClient{client: c}
}

// AuthClient wraps the backend's auth endpoints. Sessions themselves are
// owned by the session gateway; this type only moves credentials and tokens
// over the wire.
type AuthClient struct {
	client *Client
}

// AuthResponse is the token payload returned by sign-in and refresh.
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         *User  `json:"user"`
}

// User is the backend's user object.
type User struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	CreatedAt    string         `json:"created_at"`
	UserMetadata map[string]any `json:"user_metadata"`
}

// SignUp registers a new user. The metadata map travels in the "data" field
// and ends up in the user's user_metadata (the app stores the display name
// there). The account typically requires e-mail confirmation before sign-in.
func (a *AuthClient) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*User, error) {
	payload := map[string]any{
		"email":    email,
		"password": password,
	}
	if len(metadata) > 0 {
		payload["data"] = metadata
	}

	resp, err := a.post(ctx, "/auth/v1/signup", payload, "")
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	var user User
	if err := resp.JSON(&user); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &user, nil
}

// SignInWithPassword performs the password grant and returns the session
// tokens.
func (a *AuthClient) SignInWithPassword(ctx context.Context, email, password string) (*AuthResponse, error) {
	payload := map[string]string{
		"email":    email,
		"password": password,
	}

	resp, err := a.post(ctx, "/auth/v1/token?grant_type=password", payload, "")
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	var authResp AuthResponse
	if err := resp.JSON(&authResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &authResp, nil
}

// RefreshSession exchanges a refresh token for a fresh token pair.
func (a *AuthClient) RefreshSession(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	payload := map[string]string{
		"refresh_token": refreshToken,
	}

	resp, err := a.post(ctx, "/auth/v1/token?grant_type=refresh_token", payload, "")
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	var authResp AuthResponse
	if err := resp.JSON(&authResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &authResp, nil
}

// GetUser fetches the user behind an access token.
func (a *AuthClient) GetUser(ctx context.Context, accessToken string) (*User, error) {
	reqURL := a.client.baseURL + "/auth/v1/user"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	a.client.setHeaders(req, accessToken)

	resp, err := a.client.do(req)
	if err != nil {
		return nil, err
	}
	if err := resp.Err(); err != nil {
		return nil, err
	}

	var user User
	if err := resp.JSON(&user); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &user, nil
}

// SignOut revokes the session behind the access token.
func (a *AuthClient) SignOut(ctx context.Context, accessToken string) error {
	resp, err := a.post(ctx, "/auth/v1/logout", nil, accessToken)
	if err != nil {
		return err
	}
	return resp.Err()
}

func (a *AuthClient) post(ctx context.Context, path string, payload any, bearer string) (*Response, error) {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.client.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	a.client.setHeaders(req, bearer)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return a.client.do(req)
}

package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// AuthUser is the GoTrue user record, trimmed to what the admin panel needs.
type AuthUser struct {
	ID               string         `json:"id"`
	Email            string         `json:"email"`
	EmailConfirmedAt string         `json:"email_confirmed_at"`
	UserMetadata     map[string]any `json:"user_metadata"`
}

// Session is an authenticated GoTrue session. User may be set without tokens
// when signup requires email confirmation before a session is issued.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	User         *AuthUser `json:"user"`
}

// SignInWithPassword performs the password grant against GoTrue.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}
	return c.authRequest(ctx, c.authURL+"/token?grant_type=password", body)
}

// SignUp registers a new auth user. Metadata lands in user_metadata.
func (c *Client) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*Session, error) {
	body := map[string]any{"email": email, "password": password}
	if len(metadata) > 0 {
		body["data"] = metadata
	}
	return c.authRequest(ctx, c.authURL+"/signup", body)
}

func (c *Client) authRequest(ctx context.Context, endpoint string, body any) (*Session, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("supabase: encode auth body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase: auth request: %w", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("supabase: read auth response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, newAPIError(resp.StatusCode, data)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("supabase: decode auth response: %w", err)
	}
	if session.User == nil && session.AccessToken == "" {
		// Signup with confirmation enabled returns the bare user object.
		var user AuthUser
		if err := json.Unmarshal(data, &user); err == nil && user.ID != "" {
			session.User = &user
		}
	}
	return &session, nil
}

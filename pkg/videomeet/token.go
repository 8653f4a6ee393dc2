package videomeet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// accessToken returns a usable access token, refreshing through the token
// endpoint when the stored one has expired.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cred, err := c.store.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("videomeet: load credential: %w", err)
	}
	if !cred.Expired(c.now()) {
		return cred.AccessToken, nil
	}
	refreshed, err := c.refresh(ctx, cred)
	if err != nil {
		return "", err
	}
	if err := c.store.Save(ctx, refreshed); err != nil {
		return "", fmt.Errorf("videomeet: save credential: %w", err)
	}
	return refreshed.AccessToken, nil
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	Error        string `json:"error"`
}

func (c *Client) refresh(ctx context.Context, cred Credential) (Credential, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {cred.RefreshToken},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Credential{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.clientID, c.clientSecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return Credential{}, fmt.Errorf("videomeet: refresh token: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return Credential{}, fmt.Errorf("videomeet: refresh token: %w", err)
	}

	var token tokenResponse
	// Some providers return invalid_grant with a 200, so decode first and
	// inspect both the body and the status.
	if err := json.Unmarshal(payload, &token); err != nil && resp.StatusCode < http.StatusBadRequest {
		return Credential{}, fmt.Errorf("videomeet: refresh token: decode: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest || token.Error == "invalid_grant" {
		if markErr := c.store.MarkInvalid(ctx); markErr != nil {
			c.logger.Warn("videomeet: marking credential invalid failed", "error", markErr)
		}
		if token.Error != "" {
			return Credential{}, fmt.Errorf("%w: %s", ErrInvalidGrant, token.Error)
		}
		return Credential{}, fmt.Errorf("%w: status %d", ErrInvalidGrant, resp.StatusCode)
	}

	refreshToken := token.RefreshToken
	if refreshToken == "" {
		refreshToken = cred.RefreshToken
	}
	return Credential{
		AccessToken:  token.AccessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    c.now().Add(time.Duration(token.ExpiresIn) * time.Second),
	}, nil
}

// Package videomeet is a standalone client for a video-conferencing REST API.
// It shares no types with the field engine: it authenticates with an OAuth
// access/refresh token pair persisted by the caller, refreshes on expiry, and
// marks the stored credential invalid when the provider rejects the grant.
package videomeet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// ErrInvalidGrant reports a refresh token the provider no longer accepts. The
// stored credential has been marked invalid by the time it is returned.
var ErrInvalidGrant = errors.New("videomeet: refresh token rejected")

// Credential is the OAuth token pair persisted outside this package.
type Credential struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Expired reports whether the access token needs a refresh. A small skew
// keeps tokens from expiring mid-request.
func (c Credential) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now.Add(30 * time.Second))
}

// CredentialStore persists the token pair between calls.
type CredentialStore interface {
	Load(ctx context.Context) (Credential, error)
	Save(ctx context.Context, cred Credential) error
	// MarkInvalid flags the credential so the owning integration can prompt
	// for a reconnect.
	MarkInvalid(ctx context.Context) error
}

// Event is the meeting payload sent to the provider.
type Event struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"topic"`
	Description string    `json:"agenda,omitempty"`
	Start       time.Time `json:"start_time"`
	End         time.Time `json:"end_time"`
	Timezone    string    `json:"timezone,omitempty"`
}

// Meeting is the provider's view of a scheduled meeting.
type Meeting struct {
	ID       string `json:"id"`
	URL      string `json:"join_url"`
	Password string `json:"password,omitempty"`
}

// Slot is one availability window.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Option customises the client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithBaseURL overrides the API base URL. Useful for tests.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// WithAuthURL overrides the token endpoint.
func WithAuthURL(auth string) Option {
	return func(c *Client) { c.authURL = auth }
}

// WithLogger sets the logger used for log-not-throw paths.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock overrides the time source. Tests only.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// Client talks to the provider API. Safe for concurrent use; token refreshes
// are serialized.
type Client struct {
	http         *http.Client
	baseURL      string
	authURL      string
	clientID     string
	clientSecret string
	store        CredentialStore
	logger       *slog.Logger
	now          func() time.Time

	mu sync.Mutex
}

const (
	defaultBaseURL = "https://api.zoom.us/v2"
	defaultAuthURL = "https://zoom.us/oauth/token"
)

// New creates a client. The store is required; everything else has defaults.
func New(clientID, clientSecret string, store CredentialStore, opts ...Option) (*Client, error) {
	if store == nil {
		return nil, errors.New("videomeet: credential store is required")
	}
	c := &Client{
		http:         &http.Client{Timeout: 30 * time.Second},
		baseURL:      defaultBaseURL,
		authURL:      defaultAuthURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		store:        store,
		logger:       slog.Default(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetAvailability returns the user's availability windows. Failures are
// logged and produce an empty slice: availability is advisory and must not
// block booking flows.
func (c *Client) GetAvailability(ctx context.Context) []Slot {
	var payload struct {
		Meetings []struct {
			StartTime time.Time `json:"start_time"`
			Duration  int       `json:"duration"`
		} `json:"meetings"`
	}
	if err := c.call(ctx, http.MethodGet, "/users/me/meetings", nil, &payload); err != nil {
		c.logger.Warn("videomeet: availability lookup failed", "error", err)
		return []Slot{}
	}
	slots := make([]Slot, 0, len(payload.Meetings))
	for _, m := range payload.Meetings {
		slots = append(slots, Slot{
			Start: m.StartTime,
			End:   m.StartTime.Add(time.Duration(m.Duration) * time.Minute),
		})
	}
	return slots
}

// CreateMeeting schedules a meeting for the event.
func (c *Client) CreateMeeting(ctx context.Context, event Event) (Meeting, error) {
	var meeting Meeting
	if err := c.call(ctx, http.MethodPost, "/users/me/meetings", event, &meeting); err != nil {
		return Meeting{}, fmt.Errorf("videomeet: create meeting: %w", err)
	}
	return meeting, nil
}

// UpdateMeeting reschedules an existing meeting and returns its current state.
func (c *Client) UpdateMeeting(ctx context.Context, event Event) (Meeting, error) {
	if event.ID == "" {
		return Meeting{}, errors.New("videomeet: update meeting: id is required")
	}
	if err := c.call(ctx, http.MethodPatch, "/meetings/"+url.PathEscape(event.ID), event, nil); err != nil {
		return Meeting{}, fmt.Errorf("videomeet: update meeting: %w", err)
	}
	var meeting Meeting
	if err := c.call(ctx, http.MethodGet, "/meetings/"+url.PathEscape(event.ID), nil, &meeting); err != nil {
		return Meeting{}, fmt.Errorf("videomeet: update meeting: %w", err)
	}
	return meeting, nil
}

// DeleteMeeting removes a meeting.
func (c *Client) DeleteMeeting(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("videomeet: delete meeting: id is required")
	}
	if err := c.call(ctx, http.MethodDelete, "/meetings/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("videomeet: delete meeting: %w", err)
	}
	return nil
}

func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Success is the 2xx window; see the status-check note in DESIGN.md.
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if resp.StatusCode == http.StatusUnauthorized {
			if markErr := c.store.MarkInvalid(ctx); markErr != nil {
				c.logger.Warn("videomeet: marking credential invalid failed", "error", markErr)
			}
		}
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

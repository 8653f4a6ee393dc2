package videomeet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

type memoryStore struct {
	mu      sync.Mutex
	cred    Credential
	invalid bool
}

func (s *memoryStore) Load(context.Context) (Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cred, nil
}

func (s *memoryStore) Save(_ context.Context, cred Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = cred
	return nil
}

func (s *memoryStore) MarkInvalid(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalid = true
	return nil
}

func newTestClient(t *testing.T, api http.HandlerFunc, auth http.HandlerFunc, store *memoryStore) *Client {
	t.Helper()
	apiSrv := httptest.NewServer(api)
	t.Cleanup(apiSrv.Close)
	authSrv := httptest.NewServer(auth)
	t.Cleanup(authSrv.Close)

	client, err := New("id", "secret", store,
		WithBaseURL(apiSrv.URL),
		WithAuthURL(authSrv.URL),
		WithHTTPClient(apiSrv.Client()),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return client
}

func validStore() *memoryStore {
	return &memoryStore{cred: Credential{
		AccessToken:  "live-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(time.Hour),
	}}
}

func TestCreateMeeting(t *testing.T) {
	store := validStore()
	api := func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer live-token" {
			t.Errorf("authorization = %q", got)
		}
		if r.Method != http.MethodPost || r.URL.Path != "/users/me/meetings" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var event Event
		if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
			t.Errorf("decode event: %v", err)
		}
		if event.Title != "Standup" {
			t.Errorf("topic = %q", event.Title)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Meeting{ID: "m1", URL: "https://meet.example/m1", Password: "pw"})
	}
	auth := func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("token endpoint should not be hit with a live token")
	}

	client := newTestClient(t, api, auth, store)
	meeting, err := client.CreateMeeting(context.Background(), Event{Title: "Standup"})
	if err != nil {
		t.Fatalf("CreateMeeting failed: %v", err)
	}
	if meeting.ID != "m1" || meeting.URL != "https://meet.example/m1" {
		t.Fatalf("unexpected meeting: %+v", meeting)
	}
}

func TestExpiredTokenRefreshesOnce(t *testing.T) {
	store := validStore()
	store.cred.ExpiresAt = time.Now().Add(-time.Minute)

	refreshes := 0
	auth := func(w http.ResponseWriter, r *http.Request) {
		refreshes++
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if got := r.PostFormValue("grant_type"); got != "refresh_token" {
			t.Errorf("grant_type = %q", got)
		}
		if got := r.PostFormValue("refresh_token"); got != "refresh-token" {
			t.Errorf("refresh_token = %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "fresh-token",
			"refresh_token": "fresh-refresh",
			"expires_in":    3600,
		})
	}
	api := func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer fresh-token" {
			t.Errorf("authorization = %q", got)
		}
		json.NewEncoder(w).Encode(Meeting{ID: "m1"})
	}

	client := newTestClient(t, api, auth, store)
	if _, err := client.CreateMeeting(context.Background(), Event{Title: "x"}); err != nil {
		t.Fatalf("CreateMeeting failed: %v", err)
	}
	if _, err := client.CreateMeeting(context.Background(), Event{Title: "y"}); err != nil {
		t.Fatalf("second CreateMeeting failed: %v", err)
	}
	if refreshes != 1 {
		t.Fatalf("refreshes = %d, want 1", refreshes)
	}
	if store.cred.RefreshToken != "fresh-refresh" {
		t.Fatalf("rotated refresh token not persisted: %+v", store.cred)
	}
}

func TestInvalidGrantMarksCredential(t *testing.T) {
	store := validStore()
	store.cred.ExpiresAt = time.Now().Add(-time.Minute)

	auth := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
	}
	api := func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("api should not be reached without a token")
	}

	client := newTestClient(t, api, auth, store)
	_, err := client.CreateMeeting(context.Background(), Event{Title: "x"})
	if err == nil {
		t.Fatalf("expected refresh to fail")
	}
	if !store.invalid {
		t.Fatalf("credential should be marked invalid")
	}
}

func TestAvailabilityLogsAndReturnsEmptyOnFailure(t *testing.T) {
	store := validStore()
	api := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}
	auth := func(w http.ResponseWriter, r *http.Request) {}

	client := newTestClient(t, api, auth, store)
	slots := client.GetAvailability(context.Background())
	if slots == nil || len(slots) != 0 {
		t.Fatalf("availability = %v, want empty non-nil slice", slots)
	}
}

func TestAvailabilityComputesWindows(t *testing.T) {
	store := validStore()
	start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	api := func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"meetings": []map[string]any{
				{"start_time": start.Format(time.RFC3339), "duration": 30},
			},
		})
	}
	auth := func(w http.ResponseWriter, r *http.Request) {}

	client := newTestClient(t, api, auth, store)
	slots := client.GetAvailability(context.Background())
	if len(slots) != 1 {
		t.Fatalf("slots = %v", slots)
	}
	if !slots[0].Start.Equal(start) || !slots[0].End.Equal(start.Add(30*time.Minute)) {
		t.Fatalf("slot window = %+v", slots[0])
	}
}

func TestDeleteMeeting(t *testing.T) {
	store := validStore()
	api := func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/meetings/m1" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}
	auth := func(w http.ResponseWriter, r *http.Request) {}

	client := newTestClient(t, api, auth, store)
	if err := client.DeleteMeeting(context.Background(), "m1"); err != nil {
		t.Fatalf("DeleteMeeting failed: %v", err)
	}
	if err := client.DeleteMeeting(context.Background(), ""); err == nil {
		t.Fatalf("empty id should fail")
	}
}

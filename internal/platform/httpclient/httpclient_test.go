package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func TestResolveBaseURL_Chain(t *testing.T) {
	if got := ResolveBaseURL("http://custom:9000/api/", false); got != "http://custom:9000/api" {
		t.Fatalf("explicit override must win (trimmed), got %q", got)
	}
	if got := ResolveBaseURL("", true); got != ProductionBaseURL {
		t.Fatalf("expected production default, got %q", got)
	}
	if got := ResolveBaseURL("  ", false); got != DevBaseURL {
		t.Fatalf("expected dev default, got %q", got)
	}
}

func TestDoJSON_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL, Tokens: staticToken("tok-123")})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	var out struct {
		OK bool `json:"ok"`
	}
	if err := c.DoJSON(context.Background(), http.MethodGet, "/ping", nil, &out); err != nil {
		t.Fatalf("DoJSON returned error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Fatalf("unexpected Authorization header: %q", gotAuth)
	}
	if !out.OK {
		t.Fatalf("response not decoded")
	}
}

func TestDoJSON_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
	}))
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL, Tokens: staticToken("")})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := c.DoJSON(context.Background(), http.MethodGet, "/ping", nil, nil); err != nil {
		t.Fatalf("DoJSON returned error: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("empty token must not send a header, got %q", gotAuth)
	}
}

func TestDoJSON_SendsJSONBody(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("unexpected content type: %q", ct)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
	}))
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	in := map[string]string{"email": "ana@vet.com"}
	if err := c.DoJSON(context.Background(), http.MethodPost, "/auth/login", in, nil); err != nil {
		t.Fatalf("DoJSON returned error: %v", err)
	}
	if got["email"] != "ana@vet.com" {
		t.Fatalf("body not sent: %v", got)
	}
}

func TestDoJSON_NonSuccessIsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	err = c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil)
	if !IsStatus(err, http.StatusInternalServerError) {
		t.Fatalf("expected 500 HTTPError, got %v", err)
	}
	if IsStatus(err, http.StatusNotFound) {
		t.Fatalf("IsStatus must match the exact status")
	}
}

func TestOnUnauthorized_FiresOncePerResponse(t *testing.T) {
	status := http.StatusUnauthorized
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	c, err := New(Config{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	fired := 0
	c.OnUnauthorized(func() { fired++ })

	_ = c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil)
	_ = c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil)
	if fired != 2 {
		t.Fatalf("expected one firing per 401, got %d", fired)
	}

	// Other error statuses never fire the hooks.
	status = http.StatusForbidden
	_ = c.DoJSON(context.Background(), http.MethodGet, "/x", nil, nil)
	if fired != 2 {
		t.Fatalf("403 must not fire the hook, got %d", fired)
	}
}

func TestNew_RejectsInvalidBaseURL(t *testing.T) {
	if _, err := New(Config{BaseURL: "::not-a-url"}); err == nil {
		t.Fatalf("expected error for invalid base url")
	}
}

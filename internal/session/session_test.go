package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"vetcare-pro/internal/platform/storage"
)

// -------------------------
// Helpers
// -------------------------

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": exp.Unix(),
	})
	// La firma no se verifica del lado del cliente; cualquier secreto sirve.
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func storedPrincipal(t *testing.T, store storage.Store, p Principal) {
	t.Helper()
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal principal: %v", err)
	}
	if err := store.Set("user", string(b)); err != nil {
		t.Fatalf("store principal: %v", err)
	}
}

type fakeAPI struct {
	creds      Credentials
	err        error
	registered *RegisterInput
}

func (a *fakeAPI) Login(ctx context.Context, email, password string) (Credentials, error) {
	if a.err != nil {
		return Credentials{}, a.err
	}
	return a.creds, nil
}

func (a *fakeAPI) Register(ctx context.Context, in RegisterInput) (Principal, error) {
	if a.err != nil {
		return Principal{}, a.err
	}
	a.registered = &in
	return Principal{ID: "user-2", Name: in.Name, Email: in.Email, Role: in.Role}, nil
}

// -------------------------
// Tests
// -------------------------

func TestSession_RestoresPersistedSession(t *testing.T) {
	store := storage.NewMemory()
	if err := store.Set("token", signedToken(t, time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	storedPrincipal(t, store, Principal{ID: "user-1", Name: "Dra. Ana", Role: RoleVeterinarian})

	s := New(store)

	p, ok := s.Current()
	if !ok {
		t.Fatalf("expected restored session")
	}
	if p.Name != "Dra. Ana" || p.Role != RoleVeterinarian {
		t.Fatalf("unexpected principal: %+v", p)
	}
	if s.Token() == "" {
		t.Fatalf("expected token for the gateway")
	}
}

func TestSession_Restore_DropsExpiredToken(t *testing.T) {
	store := storage.NewMemory()
	if err := store.Set("token", signedToken(t, time.Now().Add(-time.Hour))); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	storedPrincipal(t, store, Principal{ID: "user-1", Name: "Dra. Ana", Role: RoleVeterinarian})

	s := New(store)

	if _, ok := s.Current(); ok {
		t.Fatalf("expired token must not restore a session")
	}
	// The stale credential is also wiped from the store.
	if _, err := store.Get("token"); err != storage.ErrNotFound {
		t.Fatalf("expected token removed, got %v", err)
	}
}

func TestSession_Restore_KeepsOpaqueToken(t *testing.T) {
	// A non-JWT token has no readable expiry; the backend's 401 decides.
	store := storage.NewMemory()
	if err := store.Set("token", "opaque-session-token"); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	storedPrincipal(t, store, Principal{ID: "user-1", Name: "Dra. Ana", Role: RoleVeterinarian})

	s := New(store)
	if _, ok := s.Current(); !ok {
		t.Fatalf("opaque token must restore the session")
	}
}

func TestSession_Restore_CorruptPrincipalClears(t *testing.T) {
	store := storage.NewMemory()
	if err := store.Set("token", signedToken(t, time.Now().Add(time.Hour))); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	if err := store.Set("user", "{not json"); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	s := New(store)
	if _, ok := s.Current(); ok {
		t.Fatalf("corrupt principal must not restore a session")
	}
	if _, err := store.Get("token"); err != storage.ErrNotFound {
		t.Fatalf("expected cleanup, got %v", err)
	}
}

func TestSession_Login_PersistsCredentials(t *testing.T) {
	store := storage.NewMemory()
	s := New(store)
	s.AttachAPI(&fakeAPI{creds: Credentials{
		Token:     "tok-123",
		Principal: Principal{ID: "user-1", Name: "Dra. Ana", Email: "ana@vet.com", Role: RoleVeterinarian},
	}})

	p, err := s.Login(context.Background(), "ana@vet.com", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if p.Name != "Dra. Ana" {
		t.Fatalf("unexpected principal: %+v", p)
	}
	if s.Token() != "tok-123" {
		t.Fatalf("unexpected token: %q", s.Token())
	}

	if tok, err := store.Get("token"); err != nil || tok != "tok-123" {
		t.Fatalf("token not persisted: %q %v", tok, err)
	}
	raw, err := store.Get("user")
	if err != nil {
		t.Fatalf("principal not persisted: %v", err)
	}
	var stored Principal
	if err := json.Unmarshal([]byte(raw), &stored); err != nil || stored.ID != "user-1" {
		t.Fatalf("bad persisted principal: %q %v", raw, err)
	}
}

func TestSession_Login_ValidatesInput(t *testing.T) {
	s := New(storage.NewMemory())
	s.AttachAPI(&fakeAPI{})

	if _, err := s.Login(context.Background(), "  ", "secret"); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := s.Login(context.Background(), "ana@vet.com", ""); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSession_Login_FailureLeavesNoSession(t *testing.T) {
	wantErr := errors.New("bad credentials")
	store := storage.NewMemory()
	s := New(store)
	s.AttachAPI(&fakeAPI{err: wantErr})

	if _, err := s.Login(context.Background(), "ana@vet.com", "wrong"); err != wantErr {
		t.Fatalf("expected backend error, got %v", err)
	}
	if _, ok := s.Current(); ok {
		t.Fatalf("failed login must not create a session")
	}
	if _, err := store.Get("token"); err != storage.ErrNotFound {
		t.Fatalf("failed login must not persist anything")
	}
}

func TestSession_Register_ValidatesRole(t *testing.T) {
	s := New(storage.NewMemory())
	api := &fakeAPI{}
	s.AttachAPI(api)

	if _, err := s.Register(context.Background(), RegisterInput{
		Name: "Carlos", Email: "c@vet.com", Password: "x", Role: "wizard",
	}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	if _, err := s.Register(context.Background(), RegisterInput{
		Name: "Carlos", Email: "c@vet.com", Password: "x", Role: RoleTutor,
	}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if api.registered == nil || api.registered.Role != RoleTutor {
		t.Fatalf("register input did not reach the backend")
	}

	// Registering does not log in.
	if _, ok := s.Current(); ok {
		t.Fatalf("register must not create a session")
	}
}

func TestSession_Clear_WipesMemoryAndStore(t *testing.T) {
	store := storage.NewMemory()
	s := New(store)
	s.AttachAPI(&fakeAPI{creds: Credentials{
		Token:     "tok-123",
		Principal: Principal{ID: "user-1", Name: "Dra. Ana", Role: RoleVeterinarian},
	}})
	if _, err := s.Login(context.Background(), "ana@vet.com", "secret"); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	s.Clear()

	if _, ok := s.Current(); ok {
		t.Fatalf("expected no session after clear")
	}
	if s.Token() != "" {
		t.Fatalf("expected empty token after clear")
	}
	if _, err := store.Get("token"); err != storage.ErrNotFound {
		t.Fatalf("expected persisted token removed, got %v", err)
	}
	if _, err := store.Get("user"); err != storage.ErrNotFound {
		t.Fatalf("expected persisted principal removed, got %v", err)
	}
}

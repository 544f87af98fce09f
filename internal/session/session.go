package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"vetcare-pro/internal/platform/storage"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Claves del Store, las mismas del localStorage original.
const (
	keyToken = "token"
	keyUser  = "user"
)

// Credentials es lo que devuelve el backend en un login exitoso.
type Credentials struct {
	Token     string
	Principal Principal
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
	Phone    string
}

// API es el contrato de autenticación contra el backend.
// La implementa internal/adapters/backend; los tests usan fakes.
type API interface {
	Login(ctx context.Context, email, password string) (Credentials, error)
	Register(ctx context.Context, in RegisterInput) (Principal, error)
}

// Session mantiene el principal autenticado y su credencial,
// persistidos entre ejecuciones. Implementa httpclient.TokenSource.
type Session struct {
	api   API
	store storage.Store
	now   func() time.Time

	mu        sync.RWMutex
	token     string
	principal *Principal
}

func New(store storage.Store) *Session {
	s := &Session{
		store: store,
		now:   time.Now,
	}
	s.restore()
	return s
}

// AttachAPI engancha el cliente de autenticación. Va en dos fases porque
// el gateway necesita la sesión como TokenSource antes de poder construir
// el cliente que la sesión usa para loguearse.
func (s *Session) AttachAPI(api API) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.api = api
}

// restore levanta la sesión persistida, descartándola si el token ya venció.
func (s *Session) restore() {
	if s.store == nil {
		return
	}

	tok, err := s.store.Get(keyToken)
	if err != nil || strings.TrimSpace(tok) == "" {
		return
	}
	if tokenExpired(tok, s.now()) {
		s.Clear()
		return
	}

	raw, err := s.store.Get(keyUser)
	if err != nil {
		return
	}
	var p Principal
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		// Principal corrupto: sesión inutilizable, mejor limpiar.
		s.Clear()
		return
	}

	s.mu.Lock()
	s.token = tok
	s.principal = &p
	s.mu.Unlock()
}

func (s *Session) Login(ctx context.Context, email, password string) (Principal, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Principal{}, ErrInvalidInput
	}

	s.mu.RLock()
	api := s.api
	s.mu.RUnlock()
	if api == nil {
		return Principal{}, errors.New("session: no auth api attached")
	}

	creds, err := api.Login(ctx, email, password)
	if err != nil {
		return Principal{}, err
	}

	s.mu.Lock()
	s.token = creds.Token
	p := creds.Principal
	s.principal = &p
	s.mu.Unlock()

	s.persist(creds)
	return creds.Principal, nil
}

func (s *Session) Register(ctx context.Context, in RegisterInput) (Principal, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return Principal{}, ErrInvalidInput
	}
	if _, ok := ParseRole(string(in.Role)); !ok {
		return Principal{}, ErrInvalidInput
	}

	s.mu.RLock()
	api := s.api
	s.mu.RUnlock()
	if api == nil {
		return Principal{}, errors.New("session: no auth api attached")
	}
	return api.Register(ctx, in)
}

func (s *Session) Logout() {
	s.Clear()
}

// Clear borra credencial y principal, en memoria y persistidos.
// Registrada como hook OnUnauthorized del gateway: cualquier 401
// del backend fuerza re-autenticación.
func (s *Session) Clear() {
	s.mu.Lock()
	s.token = ""
	s.principal = nil
	s.mu.Unlock()

	if s.store != nil {
		_ = s.store.Delete(keyToken)
		_ = s.store.Delete(keyUser)
	}
}

// Current devuelve el principal autenticado, si hay sesión viva.
func (s *Session) Current() (Principal, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.principal == nil {
		return Principal{}, false
	}
	return *s.principal, true
}

// Token implementa httpclient.TokenSource.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) persist(creds Credentials) {
	if s.store == nil {
		return
	}

	_ = s.store.Set(keyToken, creds.Token)
	if b, err := json.Marshal(creds.Principal); err == nil {
		_ = s.store.Set(keyUser, string(b))
	}
}

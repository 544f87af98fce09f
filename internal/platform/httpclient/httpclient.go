package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	// Defaults de base URL (mismos del deploy original).
	ProductionBaseURL = "https://ivet-project.onrender.com/api"
	DevBaseURL        = "http://localhost:3001/api"
)

// TokenSource entrega el bearer token vigente, si existe.
// La sesión lo implementa; token vacío significa "sin credencial".
type TokenSource interface {
	Token() string
}

// Client es el gateway hacia el backend de la clínica.
// Se construye explícitamente y se inyecta en los adapters;
// nunca es un singleton de paquete.
type Client struct {
	HTTP    *http.Client
	BaseURL string

	tokens TokenSource

	mu             sync.RWMutex
	onUnauthorized []func()
}

// Config del gateway.
// BaseURL explícita gana; si no, Production decide entre prod y dev local.
type Config struct {
	BaseURL    string
	Production bool
	Timeout    time.Duration

	Tokens TokenSource
}

// ResolveBaseURL aplica la cadena: override explícito > prod > dev local.
func ResolveBaseURL(explicit string, production bool) string {
	if v := strings.TrimRight(strings.TrimSpace(explicit), "/"); v != "" {
		return v
	}
	if production {
		return ProductionBaseURL
	}
	return DevBaseURL
}

func New(cfg Config) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	base := ResolveBaseURL(cfg.BaseURL, cfg.Production)
	if _, err := url.ParseRequestURI(base); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}

	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: base,
		tokens:  cfg.Tokens,
	}, nil
}

// NewWithTransport permite inyectar un Transport (p.ej. para tests).
func NewWithTransport(cfg Config, tr http.RoundTripper) (*Client, error) {
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if tr != nil {
		c.HTTP.Transport = tr
	}
	return c, nil
}

// OnUnauthorized registra un hook que corre una vez por cada respuesta 401.
// La sesión se registra acá para limpiarse; reemplaza al redirect global
// del cliente original sin acoplar módulos entre sí.
func (c *Client) OnUnauthorized(fn func()) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUnauthorized = append(c.onUnauthorized, fn)
}

func (c *Client) fireUnauthorized() {
	c.mu.RLock()
	hooks := make([]func(), len(c.onUnauthorized))
	copy(hooks, c.onUnauthorized)
	c.mu.RUnlock()

	for _, fn := range hooks {
		fn()
	}
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// IsStatus reporta si err es un *HTTPError con ese status.
func IsStatus(err error, status int) bool {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode == status
	}
	return false
}

// DoJSON hace un request JSON contra el backend.
// - in: body a enviar (opcional). Si nil => no body.
// - out: donde decodificar JSON (opcional). Si nil => ignora body.
// Adjunta el bearer token si el TokenSource tiene uno.
// Retorna *HTTPError si el status no es 2xx; un 401 además dispara
// los hooks OnUnauthorized antes de retornar.
func (c *Client) DoJSON(ctx context.Context, method, path string, in, out any) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}

	fullURL, err := c.resolveURL(path)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if tok := strings.TrimSpace(c.tokens.Token()); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	// Leer body (limitado) para errores / decode
	raw, _ := readAtMost(resp.Body, 1<<20) // 1MB max

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusUnauthorized {
			c.fireUnauthorized()
		}
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}

	return nil
}

func (c *Client) resolveURL(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("httpclient: empty path")
	}

	// URLs absolutas pasan tal cual (p.ej. tests).
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path, nil
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.BaseURL + path, nil
}

func readAtMost(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		max = 1 << 20
	}
	lr := io.LimitReader(r, max)
	return io.ReadAll(lr)
}

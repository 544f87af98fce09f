package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"vetcare-pro/internal/platform/httpclient"
	"vetcare-pro/internal/session"
)

var ErrBadCredentials = errors.New("bad credentials")

type authClient struct {
	gw *httpclient.Client
}

func NewAuthClient(gw *httpclient.Client) session.API {
	return &authClient{gw: gw}
}

type wireUser struct {
	ID    wireID `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (w wireUser) toPrincipal() session.Principal {
	role, ok := session.ParseRole(w.Role)
	if !ok {
		role = session.RoleTutor
	}
	return session.Principal{
		ID:    string(w.ID),
		Name:  w.Name,
		Email: w.Email,
		Role:  role,
	}
}

func (c *authClient) Login(ctx context.Context, email, password string) (session.Credentials, error) {
	in := map[string]string{"email": email, "password": password}

	var out struct {
		Token string   `json:"token"`
		User  wireUser `json:"user"`
	}
	err := c.gw.DoJSON(ctx, http.MethodPost, "/auth/login", in, &out)
	if err != nil {
		if httpclient.IsStatus(err, http.StatusUnauthorized) {
			return session.Credentials{}, ErrBadCredentials
		}
		return session.Credentials{}, fmt.Errorf("backend: login: %w", err)
	}
	if out.Token == "" {
		return session.Credentials{}, errors.New("backend: login response missing token")
	}

	return session.Credentials{
		Token:     out.Token,
		Principal: out.User.toPrincipal(),
	}, nil
}

func (c *authClient) Register(ctx context.Context, in session.RegisterInput) (session.Principal, error) {
	body := map[string]string{
		"name":     in.Name,
		"email":    in.Email,
		"password": in.Password,
		"role":     string(in.Role),
		"phone":    in.Phone,
	}

	var out struct {
		Message string   `json:"message"`
		User    wireUser `json:"user"`
	}
	if err := c.gw.DoJSON(ctx, http.MethodPost, "/auth/register", body, &out); err != nil {
		return session.Principal{}, fmt.Errorf("backend: register: %w", err)
	}
	return out.User.toPrincipal(), nil
}

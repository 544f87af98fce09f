package memory

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"vetcare-pro/internal/session"
)

// Auth es el modo dev sin backend: acepta cualquier credencial y emite un
// token opaco. Nunca se usa contra el backend real.
type Auth struct{}

func NewAuth() *Auth {
	return &Auth{}
}

func (a *Auth) Login(ctx context.Context, email, password string) (session.Credentials, error) {
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}

	return session.Credentials{
		Token: "offline-" + uuid.NewString(),
		Principal: session.Principal{
			ID:    uuid.NewString(),
			Name:  name,
			Email: email,
			Role:  session.RoleVeterinarian,
		},
	}, nil
}

func (a *Auth) Register(ctx context.Context, in session.RegisterInput) (session.Principal, error) {
	return session.Principal{
		ID:    uuid.NewString(),
		Name:  in.Name,
		Email: in.Email,
		Role:  in.Role,
	}, nil
}

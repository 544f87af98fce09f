package assistant

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

// API es el contrato contra el backend de IA. El modelo hosteado vive
// detrás del backend de la clínica; este cliente solo formatea y reenvía.
type API interface {
	Analyze(ctx context.Context, in CaseInput) (string, error)
	Chat(ctx context.Context, message string, history []string) (string, error)
}

// Service no guarda estado: cada análisis es un request aislado y el
// historial del chat lo lleva quien llama.
type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

// Analyze manda el caso clínico estructurado y devuelve el análisis en
// texto libre.
func (s *Service) Analyze(ctx context.Context, in CaseInput) (string, error) {
	if strings.TrimSpace(in.Species) == "" || strings.TrimSpace(in.Symptoms) == "" {
		return "", ErrInvalidInput
	}
	if in.Age < 0 {
		return "", ErrInvalidInput
	}

	in.Species = strings.TrimSpace(in.Species)
	in.Breed = strings.TrimSpace(in.Breed)
	in.Symptoms = strings.TrimSpace(in.Symptoms)
	in.History = strings.TrimSpace(in.History)

	return s.api.Analyze(ctx, in)
}

// Chat manda un mensaje más los turnos previos ya formateados.
func (s *Service) Chat(ctx context.Context, message string, history []Turn) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrInvalidInput
	}

	// El backend espera el historial como líneas "rol: contenido".
	lines := make([]string, 0, len(history))
	for _, t := range history {
		lines = append(lines, string(t.Role)+": "+t.Content)
	}

	return s.api.Chat(ctx, message, lines)
}

package memory

import (
	"context"
	"fmt"

	"vetcare-pro/internal/domain/assistant"
)

// Assistant responde en seco para el modo offline; el análisis real vive
// detrás del backend.
type Assistant struct{}

func NewAssistant() *Assistant {
	return &Assistant{}
}

func (a *Assistant) Analyze(ctx context.Context, in assistant.CaseInput) (string, error) {
	return fmt.Sprintf(
		"[offline] Caso recibido: %s %s, %d años. Síntomas: %s. Sin conexión con el modelo; consulte en modo online.",
		in.Species, in.Breed, in.Age, in.Symptoms,
	), nil
}

func (a *Assistant) Chat(ctx context.Context, message string, history []string) (string, error) {
	return fmt.Sprintf("[offline] Recibido (%d turnos previos): %s", len(history), message), nil
}

package app

import (
	"context"
	"sync"

	"vetcare-pro/internal/domain/assistant"
	"vetcare-pro/internal/platform/logger"
)

// AssistantMode selecciona entre el formulario de caso clínico y el chat.
type AssistantMode int

const (
	ModeForm AssistantMode = iota
	ModeChat
)

// Assistant es el controlador del asistente clínico.
type Assistant struct {
	svc *assistant.Service
	log logger.Logger

	mu       sync.Mutex
	mode     AssistantMode
	turns    []assistant.Turn
	analysis string
	pending  bool
}

func NewAssistant(svc *assistant.Service, log logger.Logger) *Assistant {
	if log == nil {
		log = logger.Nop{}
	}
	return &Assistant{svc: svc, log: log}
}

func (a *Assistant) Mode() AssistantMode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *Assistant) SetMode(m AssistantMode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.mode = m
}

// Analyze manda el caso clínico estructurado; el resultado queda para
// render hasta el próximo análisis.
func (a *Assistant) Analyze(ctx context.Context, in assistant.CaseInput) (string, error) {
	if err := a.acquire(); err != nil {
		return "", err
	}
	defer a.release()

	out, err := a.svc.Analyze(ctx, in)
	if err != nil {
		return "", err
	}

	a.mu.Lock()
	a.analysis = out
	a.mu.Unlock()
	return out, nil
}

func (a *Assistant) LastAnalysis() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.analysis
}

// Send agrega el turno del usuario y, si el backend responde, el del
// asistente. En fallo la conversación queda como estaba.
func (a *Assistant) Send(ctx context.Context, message string) (string, error) {
	if err := a.acquire(); err != nil {
		return "", err
	}
	defer a.release()

	a.mu.Lock()
	history := make([]assistant.Turn, len(a.turns))
	copy(history, a.turns)
	a.mu.Unlock()

	reply, err := a.svc.Chat(ctx, message, history)
	if err != nil {
		return "", err
	}

	a.mu.Lock()
	a.turns = append(a.turns,
		assistant.Turn{Role: assistant.RoleUser, Content: message},
		assistant.Turn{Role: assistant.RoleAssistant, Content: reply},
	)
	a.mu.Unlock()
	return reply, nil
}

func (a *Assistant) Turns() []assistant.Turn {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]assistant.Turn, len(a.turns))
	copy(out, a.turns)
	return out
}

func (a *Assistant) acquire() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.pending {
		return ErrPending
	}
	a.pending = true
	return nil
}

func (a *Assistant) release() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pending = false
}

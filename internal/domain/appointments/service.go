package appointments

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("appointment not found")
)

type Service struct {
	repo Repository
	loc  *time.Location
}

func NewService(repo Repository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{repo: repo, loc: loc}
}

// ListForDate trae el set completo y filtra por fecha exacta, ordenado por
// hora ascendente. El orden lexicográfico sobre el string de hora es válido
// solo porque las horas vienen siempre como HH:MM con cero a la izquierda.
func (s *Service) ListForDate(ctx context.Context, date string) ([]Appointment, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, ErrInvalidInput
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Appointment, 0)
	for _, a := range all {
		if a.Date == date {
			out = append(out, a)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out, nil
}

type CreateInput struct {
	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	PetID string
	Type  string
}

// Create compone fecha+hora en un instante y agenda. Si el instante no
// parsea o falta la referencia al pet, rechaza localmente sin tocar la red.
// Siempre nace en estado Scheduled.
func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	if strings.TrimSpace(in.PetID) == "" {
		return Appointment{}, ErrInvalidInput
	}
	typ, ok := ParseType(in.Type)
	if !ok {
		return Appointment{}, ErrInvalidInput
	}
	when, err := CombineDateTime(in.Date, in.Time, s.loc)
	if err != nil {
		return Appointment{}, ErrInvalidInput
	}

	return s.repo.Create(ctx, CreateRecord{
		PetID: strings.TrimSpace(in.PetID),
		When:  when,
		Type:  typ,
	})
}

// Complete transiciona Scheduled -> Completed (terminal).
func (s *Service) Complete(ctx context.Context, id string) (Appointment, error) {
	return s.transition(ctx, id, StatusCompleted, CanComplete)
}

// Cancel transiciona Scheduled -> Canceled (terminal).
func (s *Service) Cancel(ctx context.Context, id string) (Appointment, error) {
	return s.transition(ctx, id, StatusCanceled, CanCancel)
}

func (s *Service) transition(ctx context.Context, id string, to Status, guard func(Status) error) (Appointment, error) {
	if strings.TrimSpace(id) == "" {
		return Appointment{}, ErrInvalidInput
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, err
	}
	if err := guard(current.Status); err != nil {
		return Appointment{}, err
	}

	// Si el update falla, el estado mostrado sigue siendo el previo:
	// no hay mutación local que sobreviva a un request fallido.
	return s.repo.UpdateStatus(ctx, id, to)
}

// Location expone la zona en la que el servicio compone instantes.
func (s *Service) Location() *time.Location {
	return s.loc
}

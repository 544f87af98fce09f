package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"vetcare-pro/internal/domain/appointments"
	"vetcare-pro/internal/domain/pets"
	"vetcare-pro/internal/platform/logger"
)

// ErrUnknownPet rechaza agendar para un pet que no está en el roster
// cargado: el formulario solo ofrece pets existentes, así que esto nunca
// debería llegar al backend.
var ErrUnknownPet = errors.New("pet not in roster")

// Scheduler es el controlador de la agenda: los turnos de una única fecha,
// navegación de días y transiciones de estado.
type Scheduler struct {
	appts *appointments.Service
	pets  *pets.Service
	log   logger.Logger

	mu      sync.Mutex
	gen     uint64
	state   LoadState
	loadErr error

	date    string
	items   []appointments.Appointment
	choices []pets.Pet

	pending map[string]bool
}

func NewScheduler(appts *appointments.Service, petsSvc *pets.Service, log logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop{}
	}
	today, _ := appointments.SplitDateTime(time.Now(), appts.Location())
	return &Scheduler{
		appts:   appts,
		pets:    petsSvc,
		log:     log,
		date:    today,
		pending: make(map[string]bool),
	}
}

// Refresh trae en paralelo los turnos de la fecha y el roster (para
// poblar las opciones del formulario). Son fetches independientes: se
// lanzan juntos y se espera a ambos, no se serializan.
func (s *Scheduler) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	date := s.date
	s.state = StateLoading
	s.mu.Unlock()

	var (
		wg      sync.WaitGroup
		items   []appointments.Appointment
		choices []pets.Pet
		aErr    error
		pErr    error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		items, aErr = s.appts.ListForDate(ctx, date)
	}()
	go func() {
		defer wg.Done()
		choices, pErr = s.pets.List(ctx)
	}()
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return nil
	}
	if aErr != nil {
		s.state = StateError
		s.loadErr = aErr
		s.log.Warn("schedule refresh failed", logger.Fields{"date": date, "err": aErr.Error()})
		return aErr
	}
	// Si solo falló el roster, la lista del día igual se muestra;
	// el formulario de alta queda sin opciones hasta el próximo refresh.
	if pErr != nil {
		choices = nil
		s.log.Warn("pet choices fetch failed", logger.Fields{"err": pErr.Error()})
	}

	s.state = StateReady
	s.loadErr = nil
	s.items = items
	s.choices = choices
	return nil
}

func (s *Scheduler) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
}

func (s *Scheduler) State() (LoadState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.loadErr
}

func (s *Scheduler) Date() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.date
}

// Appointments devuelve los turnos del día cargado, ya ordenados por hora.
func (s *Scheduler) Appointments() []appointments.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]appointments.Appointment, len(s.items))
	copy(out, s.items)
	return out
}

// PetChoices son las opciones válidas del formulario de alta.
func (s *Scheduler) PetChoices() []pets.Pet {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]pets.Pet, len(s.choices))
	copy(out, s.choices)
	return out
}

func (s *Scheduler) SetDate(ctx context.Context, date string) error {
	if _, err := time.Parse(appointments.DateLayout, date); err != nil {
		return appointments.ErrInvalidInput
	}
	s.mu.Lock()
	s.date = date
	s.mu.Unlock()
	return s.Refresh(ctx)
}

func (s *Scheduler) NextDay(ctx context.Context) error { return s.step(ctx, appointments.NextDay) }
func (s *Scheduler) PrevDay(ctx context.Context) error { return s.step(ctx, appointments.PrevDay) }

func (s *Scheduler) step(ctx context.Context, fn func(string) (string, error)) error {
	s.mu.Lock()
	next, err := fn(s.date)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.date = next
	s.mu.Unlock()
	return s.Refresh(ctx)
}

// Create agenda para la fecha visible. El pet tiene que estar entre las
// opciones cargadas; de lo contrario se rechaza acá, sin round trip con
// una referencia inválida.
func (s *Scheduler) Create(ctx context.Context, tm, petID, typ string) error {
	if err := s.acquire("create"); err != nil {
		return err
	}
	defer s.release("create")

	s.mu.Lock()
	date := s.date
	known := false
	for _, p := range s.choices {
		if p.ID == petID {
			known = true
			break
		}
	}
	s.mu.Unlock()

	if !known {
		return ErrUnknownPet
	}

	if _, err := s.appts.Create(ctx, appointments.CreateInput{
		Date:  date,
		Time:  tm,
		PetID: petID,
		Type:  typ,
	}); err != nil {
		return err
	}

	// Re-fetch en vez de insertar localmente: latencia visible a cambio
	// de mostrar siempre la verdad del backend.
	return s.Refresh(ctx)
}

// CanTransition reporta si la vista debe ofrecer los controles de
// concluir/cancelar para un turno.
func (s *Scheduler) CanTransition(a appointments.Appointment) bool {
	return a.Status == appointments.StatusScheduled
}

func (s *Scheduler) Complete(ctx context.Context, id string) error {
	return s.transition(ctx, id, s.appts.Complete)
}

func (s *Scheduler) Cancel(ctx context.Context, id string) error {
	return s.transition(ctx, id, s.appts.Cancel)
}

func (s *Scheduler) transition(ctx context.Context, id string, fn func(context.Context, string) (appointments.Appointment, error)) error {
	key := "status:" + id
	if err := s.acquire(key); err != nil {
		return err
	}
	defer s.release(key)

	if _, err := fn(ctx, id); err != nil {
		// El estado previo sigue en pantalla; el error se reporta inline.
		return err
	}
	return s.Refresh(ctx)
}

func (s *Scheduler) acquire(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending[key] {
		return ErrPending
	}
	s.pending[key] = true
	return nil
}

func (s *Scheduler) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, key)
}

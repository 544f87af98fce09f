package app

import (
	"context"
	"sync"

	"vetcare-pro/internal/domain/pets"
	"vetcare-pro/internal/platform/logger"
)

// Roster es el controlador de la vista de pacientes: listado, búsqueda
// local y alta.
type Roster struct {
	svc *pets.Service
	log logger.Logger

	mu         sync.Mutex
	gen        uint64
	state      LoadState
	loadErr    error
	pets       []pets.Pet
	term       string
	dialogOpen bool
	creating   bool
}

func NewRoster(svc *pets.Service, log logger.Logger) *Roster {
	if log == nil {
		log = logger.Nop{}
	}
	return &Roster{svc: svc, log: log}
}

// Refresh trae el roster completo. Una respuesta que llega después de que
// otra carga arrancó (o la vista se invalidó) se descarta.
func (r *Roster) Refresh(ctx context.Context) error {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.state = StateLoading
	r.mu.Unlock()

	list, err := r.svc.List(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		// respuesta vieja: la pisó una carga más nueva
		return nil
	}
	if err != nil {
		r.state = StateError
		r.loadErr = err
		r.log.Warn("roster refresh failed", logger.Fields{"err": err.Error()})
		return err
	}
	r.state = StateReady
	r.loadErr = nil
	r.pets = list
	return nil
}

// Invalidate descarta cualquier respuesta en vuelo (al salir de la vista).
func (r *Roster) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
}

func (r *Roster) State() (LoadState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state, r.loadErr
}

func (r *Roster) SetSearch(term string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.term = term
}

// Visible aplica la búsqueda local sobre el set ya traído.
func (r *Roster) Visible() []pets.Pet {
	r.mu.Lock()
	defer r.mu.Unlock()
	return pets.Search(r.pets, r.term)
}

func (r *Roster) OpenDialog()      { r.mu.Lock(); r.dialogOpen = true; r.mu.Unlock() }
func (r *Roster) CloseDialog()     { r.mu.Lock(); r.dialogOpen = false; r.mu.Unlock() }
func (r *Roster) DialogOpen() bool { r.mu.Lock(); defer r.mu.Unlock(); return r.dialogOpen }

// Create valida y da de alta; en éxito cierra el diálogo y re-trae el
// roster completo en vez de insertar localmente, para que lo mostrado
// siempre refleje la verdad del backend.
func (r *Roster) Create(ctx context.Context, in pets.CreateInput) error {
	r.mu.Lock()
	if r.creating {
		r.mu.Unlock()
		return ErrPending
	}
	r.creating = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.creating = false
		r.mu.Unlock()
	}()

	if _, err := r.svc.Create(ctx, in); err != nil {
		return err
	}

	r.mu.Lock()
	r.dialogOpen = false
	r.mu.Unlock()

	return r.Refresh(ctx)
}

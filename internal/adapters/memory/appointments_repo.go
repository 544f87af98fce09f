package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"vetcare-pro/internal/domain/appointments"
)

type AppointmentsRepo struct {
	mu   sync.RWMutex
	byID map[string]appointments.Appointment

	pets *PetsRepo
	loc  *time.Location
}

// NewAppointmentsRepo denormaliza los nombres de pet y tutor contra el
// repo de pets, igual que hace el backend real al responder.
func NewAppointmentsRepo(petsRepo *PetsRepo, loc *time.Location) *AppointmentsRepo {
	if loc == nil {
		loc = time.Local
	}
	return &AppointmentsRepo{
		byID: make(map[string]appointments.Appointment),
		pets: petsRepo,
		loc:  loc,
	}
}

func (r *AppointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]appointments.Appointment, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	return a, nil
}

func (r *AppointmentsRepo) Create(ctx context.Context, rec appointments.CreateRecord) (appointments.Appointment, error) {
	petName, ownerName := "N/A", "N/A"
	if r.pets != nil {
		if p, err := r.pets.GetByID(ctx, rec.PetID); err == nil {
			petName = p.Name
			if name, ok := r.pets.OwnerName(rec.PetID); ok {
				ownerName = name
			}
		} else {
			return appointments.Appointment{}, err
		}
	}

	date, tm := appointments.SplitDateTime(rec.When, r.loc)
	a := appointments.Appointment{
		ID:        uuid.NewString(),
		PetID:     rec.PetID,
		PetName:   petName,
		OwnerName: ownerName,
		Date:      date,
		Time:      tm,
		Type:      rec.Type,
		Status:    appointments.StatusScheduled,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[a.ID] = a
	return a, nil
}

func (r *AppointmentsRepo) UpdateStatus(ctx context.Context, id string, status appointments.Status) (appointments.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return appointments.Appointment{}, appointments.ErrNotFound
	}
	a.Status = status
	r.byID[id] = a
	return a, nil
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return appointments.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// Seed inserta un turno ya formado (solo modo offline/tests).
func (r *AppointmentsRepo) Seed(a appointments.Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	r.byID[a.ID] = a
}

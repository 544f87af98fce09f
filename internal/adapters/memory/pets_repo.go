// Package memory provee implementaciones en memoria de los repositorios,
// para el modo offline y para tests. Mismo contrato que los adapters REST,
// sin red: acá los ids los acuña el propio repo.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"vetcare-pro/internal/domain/pets"
)

type PetsRepo struct {
	mu   sync.RWMutex
	byID map[string]pets.Pet

	// nombre del tutor por ownerID, para denormalizar turnos
	owners map[string]string
}

func NewPetsRepo() *PetsRepo {
	return &PetsRepo{
		byID:   make(map[string]pets.Pet),
		owners: make(map[string]string),
	}
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	// Orden estable por nombre (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.NewString()
	}
	r.byID[p.ID] = p
	return p, nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return pets.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// OwnerName resuelve el nombre del tutor de un pet, si se conoce.
func (r *PetsRepo) OwnerName(petID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[petID]
	if !ok {
		return "", false
	}
	name, ok := r.owners[p.OwnerID]
	return name, ok
}

// SetOwner registra el nombre de un tutor (solo modo offline/seed).
func (r *PetsRepo) SetOwner(ownerID, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.owners[ownerID] = name
}

package backend

import (
	"context"
	"fmt"
	"net/http"

	"vetcare-pro/internal/domain/pets"
	"vetcare-pro/internal/platform/httpclient"
)

type petsRepo struct {
	gw *httpclient.Client
}

func NewPetsRepo(gw *httpclient.Client) pets.Repository {
	return &petsRepo{gw: gw}
}

type wirePet struct {
	ID        wireID  `json:"id"`
	Name      string  `json:"name"`
	Species   string  `json:"species"`
	Breed     string  `json:"breed"`
	Age       int     `json:"age"`
	Weight    float64 `json:"weight"`
	OwnerID   wireID  `json:"ownerId"`
	LastVisit string  `json:"lastVisit,omitempty"`
	ImageURL  string  `json:"imageUrl,omitempty"`
}

func (w wirePet) toDomain() pets.Pet {
	return pets.Pet{
		ID:        string(w.ID),
		Name:      w.Name,
		Species:   speciesFromWire(w.Species),
		Breed:     w.Breed,
		Age:       w.Age,
		Weight:    w.Weight,
		OwnerID:   string(w.OwnerID),
		LastVisit: w.LastVisit,
		ImageURL:  w.ImageURL,
	}
}

func (r *petsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	var raw []wirePet
	if err := r.gw.DoJSON(ctx, http.MethodGet, "/pets", nil, &raw); err != nil {
		return nil, fmt.Errorf("backend: list pets: %w", err)
	}

	out := make([]pets.Pet, 0, len(raw))
	for _, w := range raw {
		out = append(out, w.toDomain())
	}
	return out, nil
}

func (r *petsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	var raw wirePet
	if err := r.gw.DoJSON(ctx, http.MethodGet, "/pets/"+id, nil, &raw); err != nil {
		return pets.Pet{}, notFound(err, pets.ErrNotFound)
	}
	return raw.toDomain(), nil
}

// Create manda el pet sin referencia de tutor: el backend la resuelve
// desde la sesión autenticada.
func (r *petsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	in := map[string]any{
		"name":     p.Name,
		"species":  p.Species.Label(),
		"breed":    p.Breed,
		"age":      p.Age,
		"weight":   p.Weight,
		"imageUrl": p.ImageURL,
	}

	var raw wirePet
	if err := r.gw.DoJSON(ctx, http.MethodPost, "/pets", in, &raw); err != nil {
		return pets.Pet{}, fmt.Errorf("backend: create pet: %w", err)
	}
	return raw.toDomain(), nil
}

func (r *petsRepo) Delete(ctx context.Context, id string) error {
	if err := r.gw.DoJSON(ctx, http.MethodDelete, "/pets/"+id, nil, nil); err != nil {
		return notFound(err, pets.ErrNotFound)
	}
	return nil
}

package pets

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

// Imagen asignada cuando el formulario no trae una.
const placeholderImageURL = "https://picsum.photos/200/200"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name     string
	Species  string
	Breed    string
	Age      int
	Weight   float64
	ImageURL string
}

// Create valida localmente y delega en el backend. El tutor dueño no viaja
// en el payload: lo resuelve el backend desde la sesión.
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	species, ok := ParseSpecies(in.Species)
	if !ok {
		return Pet{}, ErrInvalidInput
	}
	// El formulario original no acotaba estos campos; acá sí:
	// edad y peso nunca negativos.
	if in.Age < 0 || in.Weight < 0 {
		return Pet{}, ErrInvalidInput
	}

	image := strings.TrimSpace(in.ImageURL)
	if image == "" {
		image = placeholderImageURL
	}

	p := Pet{
		Name:     strings.TrimSpace(in.Name),
		Species:  species,
		Breed:    strings.TrimSpace(in.Breed),
		Age:      in.Age,
		Weight:   in.Weight,
		ImageURL: image,
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	if strings.TrimSpace(id) == "" {
		return Pet{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

// Search filtra por substring case-insensitive sobre nombre y raza.
// Término vacío devuelve el set completo. Opera sobre la lista ya
// traída: el backend no expone búsqueda.
func Search(all []Pet, term string) []Pet {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return all
	}

	out := make([]Pet, 0, len(all))
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Breed), term) {
			out = append(out, p)
		}
	}
	return out
}

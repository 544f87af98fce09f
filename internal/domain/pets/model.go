package pets

import "strings"

// Species define las especies soportadas.
type Species string

const (
	SpeciesCanine Species = "canine"
	SpeciesFeline Species = "feline"
	SpeciesBird   Species = "bird"
	SpeciesOther  Species = "other"
)

func ParseSpecies(s string) (Species, bool) {
	switch Species(strings.ToLower(strings.TrimSpace(s))) {
	case SpeciesCanine:
		return SpeciesCanine, true
	case SpeciesFeline:
		return SpeciesFeline, true
	case SpeciesBird:
		return SpeciesBird, true
	case SpeciesOther:
		return SpeciesOther, true
	}
	return "", false
}

// Label devuelve la etiqueta de presentación (la que habla el backend).
func (s Species) Label() string {
	switch s {
	case SpeciesCanine:
		return "Canino"
	case SpeciesFeline:
		return "Felino"
	case SpeciesBird:
		return "Ave"
	case SpeciesOther:
		return "Outro"
	default:
		return string(s)
	}
}

// Pet representa el perfil de un paciente de la clínica.
// El backend es el dueño del registro; acá solo se lee y se crea.
type Pet struct {
	ID      string
	Name    string
	Species Species
	Breed   string
	Age     int     // años
	Weight  float64 // kg

	// Referencia al tutor dueño. El backend la resuelve desde la sesión
	// autenticada; el cliente nunca la manda al crear.
	OwnerID string

	LastVisit string // YYYY-MM-DD, opcional
	ImageURL  string
}

package appointments

import (
	"errors"
	"strings"
)

// Type define los tipos de atención.
type Type string

const (
	TypeConsultation Type = "consultation"
	TypeVaccine      Type = "vaccine"
	TypeFollowUp     Type = "follow_up"
	TypeSurgery      Type = "surgery"
)

func ParseType(s string) (Type, bool) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeConsultation:
		return TypeConsultation, true
	case TypeVaccine:
		return TypeVaccine, true
	case TypeFollowUp:
		return TypeFollowUp, true
	case TypeSurgery:
		return TypeSurgery, true
	}
	return "", false
}

func (t Type) Label() string {
	switch t {
	case TypeVaccine:
		return "Vacina"
	case TypeFollowUp:
		return "Retorno"
	case TypeSurgery:
		return "Cirurgia"
	case TypeConsultation:
		return "Consulta"
	default:
		return string(t)
	}
}

// Status define el estado de un turno.
// Scheduled es el único estado no terminal.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// CanComplete define si un turno puede marcarse como concluido.
func CanComplete(current Status) error {
	if current != StatusScheduled {
		return ErrInvalidTransition
	}
	return nil
}

// CanCancel define si un turno puede cancelarse.
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return ErrInvalidTransition
	}
	return nil
}

// Terminal reporta si desde este estado no hay más transiciones.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

func (s Status) Label() string {
	switch s {
	case StatusCompleted:
		return "Concluido"
	case StatusCanceled:
		return "Cancelado"
	case StatusScheduled:
		return "Agendado"
	default:
		return string(s)
	}
}

// Appointment es la vista de un turno. PetName y OwnerName vienen
// denormalizados del backend para no resolver el pet en cada render.
type Appointment struct {
	ID        string
	PetID     string
	PetName   string
	OwnerName string

	Date string // YYYY-MM-DD
	Time string // HH:MM, siempre con cero a la izquierda

	Type   Type
	Status Status
}

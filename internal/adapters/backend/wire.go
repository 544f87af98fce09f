// Package backend implementa los repositorios de dominio contra la API REST
// de la clínica. Es el único lugar que conoce las formas de wire: etiquetas
// en portugués para especies, tipos y categorías, estados de turno en inglés
// minúscula al leer, ids que a veces llegan como número.
package backend

import (
	"bytes"
	"encoding/json"
	"net/http"

	"vetcare-pro/internal/platform/httpclient"

	"vetcare-pro/internal/domain/appointments"
	"vetcare-pro/internal/domain/pets"
	"vetcare-pro/internal/domain/products"
)

// wireID tolera ids como string o como número JSON.
type wireID string

func (w *wireID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*w = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*w = wireID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*w = wireID(n.String())
	return nil
}

func notFound(err error, sentinel error) error {
	if httpclient.IsStatus(err, http.StatusNotFound) {
		return sentinel
	}
	return err
}

// --- mapeos de enums de wire ---

func speciesFromWire(s string) pets.Species {
	switch s {
	case "Canino":
		return pets.SpeciesCanine
	case "Felino":
		return pets.SpeciesFeline
	case "Ave":
		return pets.SpeciesBird
	default:
		return pets.SpeciesOther
	}
}

func statusFromWire(s string) appointments.Status {
	switch s {
	case "completed":
		return appointments.StatusCompleted
	case "canceled":
		return appointments.StatusCanceled
	default:
		return appointments.StatusScheduled
	}
}

func typeFromWire(s string) appointments.Type {
	switch s {
	case "Vacina":
		return appointments.TypeVaccine
	case "Retorno":
		return appointments.TypeFollowUp
	case "Cirurgia":
		return appointments.TypeSurgery
	default:
		return appointments.TypeConsultation
	}
}

func categoryFromWire(s string) products.Category {
	switch s {
	case "Nutrição":
		return products.CategoryNutrition
	case "Acessórios":
		return products.CategoryAccessories
	case "Higiene":
		return products.CategoryHygiene
	default:
		return products.CategoryMedication
	}
}

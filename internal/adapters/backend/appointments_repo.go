package backend

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"vetcare-pro/internal/domain/appointments"
	"vetcare-pro/internal/platform/httpclient"
)

type appointmentsRepo struct {
	gw  *httpclient.Client
	loc *time.Location
}

// NewAppointmentsRepo necesita la zona de trabajo: el backend devuelve un
// único instante y acá se descompone en la fecha y hora de pared que el
// usuario cargó.
func NewAppointmentsRepo(gw *httpclient.Client, loc *time.Location) appointments.Repository {
	if loc == nil {
		loc = time.Local
	}
	return &appointmentsRepo{gw: gw, loc: loc}
}

// wireAppointment es la forma que devuelve el backend: instante combinado,
// status en inglés minúscula, tipo con etiqueta, pet anidado con su tutor.
type wireAppointment struct {
	ID     wireID `json:"id"`
	Date   string `json:"date"`
	PetID  wireID `json:"petId"`
	Status string `json:"status"`
	Type   string `json:"type"`
	Pet    *struct {
		Name  string `json:"name"`
		Owner *struct {
			Name string `json:"name"`
		} `json:"owner"`
	} `json:"pet"`
}

// Formato naive con el que el cliente original mandaba el instante.
const wireDateTimeLayout = "2006-01-02T15:04:05"

func (r *appointmentsRepo) toDomain(w wireAppointment) appointments.Appointment {
	a := appointments.Appointment{
		ID:        string(w.ID),
		PetID:     string(w.PetID),
		PetName:   "N/A",
		OwnerName: "N/A",
		Type:      typeFromWire(w.Type),
		Status:    statusFromWire(w.Status),
	}

	if w.Pet != nil && w.Pet.Name != "" {
		a.PetName = w.Pet.Name
		if w.Pet.Owner != nil && w.Pet.Owner.Name != "" {
			a.OwnerName = w.Pet.Owner.Name
		}
	}

	if when, err := parseWireInstant(w.Date, r.loc); err == nil {
		a.Date, a.Time = appointments.SplitDateTime(when, r.loc)
	}
	return a
}

// parseWireInstant acepta tanto el naive local como RFC3339 con offset.
func parseWireInstant(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(wireDateTimeLayout, s, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func (r *appointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	var raw []wireAppointment
	if err := r.gw.DoJSON(ctx, http.MethodGet, "/appointments", nil, &raw); err != nil {
		return nil, fmt.Errorf("backend: list appointments: %w", err)
	}

	out := make([]appointments.Appointment, 0, len(raw))
	for _, w := range raw {
		out = append(out, r.toDomain(w))
	}
	return out, nil
}

func (r *appointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	var raw wireAppointment
	if err := r.gw.DoJSON(ctx, http.MethodGet, "/appointments/"+id, nil, &raw); err != nil {
		return appointments.Appointment{}, notFound(err, appointments.ErrNotFound)
	}
	return r.toDomain(raw), nil
}

func (r *appointmentsRepo) Create(ctx context.Context, rec appointments.CreateRecord) (appointments.Appointment, error) {
	in := map[string]any{
		"date":  rec.When.In(r.loc).Format(wireDateTimeLayout),
		"petId": rec.PetID,
		"type":  rec.Type.Label(),
	}

	var raw wireAppointment
	if err := r.gw.DoJSON(ctx, http.MethodPost, "/appointments", in, &raw); err != nil {
		return appointments.Appointment{}, fmt.Errorf("backend: create appointment: %w", err)
	}
	return r.toDomain(raw), nil
}

func (r *appointmentsRepo) UpdateStatus(ctx context.Context, id string, status appointments.Status) (appointments.Appointment, error) {
	// El update viaja con la etiqueta de presentación, como en el
	// cliente original; el backend la normaliza.
	in := map[string]any{"status": status.Label()}

	var raw wireAppointment
	if err := r.gw.DoJSON(ctx, http.MethodPut, "/appointments/"+id, in, &raw); err != nil {
		return appointments.Appointment{}, notFound(err, appointments.ErrNotFound)
	}
	return r.toDomain(raw), nil
}

func (r *appointmentsRepo) Delete(ctx context.Context, id string) error {
	if err := r.gw.DoJSON(ctx, http.MethodDelete, "/appointments/"+id, nil, nil); err != nil {
		return notFound(err, appointments.ErrNotFound)
	}
	return nil
}

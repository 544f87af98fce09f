package appointments

import (
	"context"
	"time"
)

// CreateRecord es lo que viaja al backend al agendar: el instante ya
// compuesto más las referencias. Los nombres denormalizados los completa
// el backend.
type CreateRecord struct {
	PetID string
	When  time.Time
	Type  Type
}

type Repository interface {
	List(ctx context.Context) ([]Appointment, error)
	GetByID(ctx context.Context, id string) (Appointment, error)
	Create(ctx context.Context, rec CreateRecord) (Appointment, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Appointment, error)
	Delete(ctx context.Context, id string) error
}

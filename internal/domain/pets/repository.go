package pets

import "context"

type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id string) (Pet, error)
	Create(ctx context.Context, p Pet) (Pet, error)
	Delete(ctx context.Context, id string) error
}

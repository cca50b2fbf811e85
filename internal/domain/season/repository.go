package season

import "context"

// Repository describes season persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Season, error)
	GetByName(ctx context.Context, name string) (Season, bool, error)
	GetActive(ctx context.Context) (Season, bool, error)
	Upsert(ctx context.Context, item Season) error
	Delete(ctx context.Context, name string) error
}

package match

import "context"

// Repository exposes match persistence operations.
type Repository interface {
	ListBySeason(ctx context.Context, season string) ([]Match, error)
	GetByID(ctx context.Context, matchID int64) (Match, bool, error)
	Upsert(ctx context.Context, item Match) (Match, error)
	Delete(ctx context.Context, matchID int64) error
	DeleteBySeason(ctx context.Context, season string) error
}

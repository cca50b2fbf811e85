package rating

import "context"

// Repository persists replay snapshots per season. Snapshots are a
// materialized view for external consumers; reads inside the service always
// go through a fresh replay.
type Repository interface {
	ListBySeason(ctx context.Context, season string) ([]TeamRating, error)
	ReplaceBySeason(ctx context.Context, season string, ratings []TeamRating) error
}

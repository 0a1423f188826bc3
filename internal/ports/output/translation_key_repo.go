package output

import (
	"context"

	"helium/internal/domain/entities"
)

// ListFilter narrows and paginates a translation-key listing.
// Search is a case-insensitive substring match on the key name;
// Category is an exact match. Empty values disable the filter.
type ListFilter struct {
	Search   string
	Category string
	Limit    int
	Offset   int
}

type TranslationKeyRepository interface {
	List(ctx context.Context, filter ListFilter) ([]entities.TranslationKey, error)
	FindByID(ctx context.Context, keyID string) (*entities.TranslationKey, error)
	// LocalizationMap returns key -> value for every key that has a
	// translation in the given locale (keys without one are omitted).
	LocalizationMap(ctx context.Context, locale string) (map[string]string, error)
	// Upsert inserts the key if absent and returns its canonical id.
	Upsert(ctx context.Context, id, key, category, description string) (string, error)
	// Ping performs a minimal read against the keys table.
	Ping(ctx context.Context) error
}

package input

import (
	"context"

	"helium/internal/domain/entities"
)

const (
	// DefaultListLimit applies when the caller does not paginate explicitly.
	DefaultListLimit = 100
	// MaxListLimit caps one page of keys.
	MaxListLimit = 1000
)

// ListQuery carries the search/list parameters as received from the caller.
// Limit must be set; adapters fill in DefaultListLimit when the caller omits it.
type ListQuery struct {
	Search   string
	Category string
	Limit    int
	Offset   int
}

type TranslationKeyUseCase interface {
	// ListKeys returns one page of keys plus the number of items returned.
	ListKeys(ctx context.Context, query ListQuery) ([]entities.TranslationKey, int, error)
	GetKey(ctx context.Context, keyID string) (*entities.TranslationKey, error)
}

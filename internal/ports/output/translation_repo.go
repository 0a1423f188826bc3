package output

import (
	"context"
	"time"
)

type TranslationRepository interface {
	// UpdateValue sets value, updatedBy and updatedAt on one translation row.
	// Returns domain.ErrTranslationNotFound when no row matches the id.
	UpdateValue(ctx context.Context, translationID, value, updatedBy string, updatedAt time.Time) error
	// Upsert inserts or replaces the translation for (keyID, languageCode).
	// The id is only used when a new row is inserted.
	Upsert(ctx context.Context, id, keyID, languageCode, value, updatedBy string) error
}

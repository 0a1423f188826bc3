package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"helium/internal/domain"
	"helium/internal/ports/output"
)

var _ output.TranslationRepository = (*TranslationRepository)(nil)

type TranslationRepository struct {
	db Querier
}

func NewTranslationRepository(db Querier) *TranslationRepository {
	return &TranslationRepository{db: db}
}

func (r *TranslationRepository) UpdateValue(ctx context.Context, translationID, value, updatedBy string, updatedAt time.Time) error {
	if r.db == nil {
		return domain.ErrDatabaseUnavailable
	}
	tag, err := r.db.Exec(ctx,
		"UPDATE translations SET value = $2, updated_by = $3, updated_at = $4 WHERE id::text = $1",
		translationID, value, updatedBy, pgtype.Timestamptz{Time: updatedAt, Valid: true},
	)
	if err != nil {
		return fmt.Errorf("update translation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTranslationNotFound
	}
	return nil
}

func (r *TranslationRepository) Upsert(ctx context.Context, id, keyID, languageCode, value, updatedBy string) error {
	if r.db == nil {
		return domain.ErrDatabaseUnavailable
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO translations (id, translation_key_id, language_code, value, updated_at, updated_by)
		 VALUES ($1, $2, $3, $4, now(), $5)
		 ON CONFLICT (translation_key_id, language_code)
		 DO UPDATE SET value = EXCLUDED.value, updated_by = EXCLUDED.updated_by, updated_at = now()`,
		id, keyID, languageCode, value, updatedBy,
	)
	if err != nil {
		return fmt.Errorf("upsert translation: %w", err)
	}
	return nil
}

package database

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"helium/internal/domain/entities"
)

// Raw row shapes as scanned from PostgreSQL. They never leave this package:
// the mapper below is the single validation boundary between the datastore
// and the domain entities.

type translationKeyRow struct {
	ID          pgtype.Text
	Key         pgtype.Text
	Category    pgtype.Text
	Description pgtype.Text
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

type translationRow struct {
	ID           pgtype.Text
	KeyID        pgtype.Text
	LanguageCode pgtype.Text
	Value        pgtype.Text
	UpdatedAt    pgtype.Timestamptz
	UpdatedBy    pgtype.Text
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func keyRowToDomain(r translationKeyRow) (entities.TranslationKey, error) {
	if !r.ID.Valid || r.ID.String == "" {
		return entities.TranslationKey{}, fmt.Errorf("translation key row: missing id")
	}
	if !r.Key.Valid || r.Key.String == "" {
		return entities.TranslationKey{}, fmt.Errorf("translation key row %s: missing key", r.ID.String)
	}

	// A NULL category becomes the empty string; description stays optional.
	category := ""
	if r.Category.Valid {
		category = r.Category.String
	}
	var description *string
	if r.Description.Valid {
		d := r.Description.String
		description = &d
	}

	return entities.TranslationKey{
		ID:           r.ID.String,
		Key:          r.Key.String,
		Category:     category,
		Description:  description,
		Translations: []entities.Translation{},
		CreatedAt:    pgtypeTimestamptzToTime(r.CreatedAt),
		UpdatedAt:    pgtypeTimestamptzToTime(r.UpdatedAt),
	}, nil
}

func translationRowToDomain(r translationRow) (entities.Translation, error) {
	if !r.ID.Valid || r.ID.String == "" {
		return entities.Translation{}, fmt.Errorf("translation row: missing id")
	}
	if !r.LanguageCode.Valid || r.LanguageCode.String == "" {
		return entities.Translation{}, fmt.Errorf("translation row %s: missing language_code", r.ID.String)
	}

	return entities.Translation{
		ID:           r.ID.String,
		LanguageCode: r.LanguageCode.String,
		Value:        r.Value.String,
		UpdatedAt:    pgtypeTimestamptzToTime(r.UpdatedAt),
		UpdatedBy:    r.UpdatedBy.String,
	}, nil
}

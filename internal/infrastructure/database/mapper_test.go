package database

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TestKeyRowToDomain(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2025, 2, 1, 12, 30, 0, 0, time.FixedZone("CET", 3600))

	row := translationKeyRow{
		ID:          text("123e4567-e89b-12d3-a456-426614174000"),
		Key:         text("button.save"),
		Category:    text("buttons"),
		Description: text("Save button text"),
		CreatedAt:   timestamptz(created),
		UpdatedAt:   timestamptz(updated),
	}

	key, err := keyRowToDomain(row)
	require.NoError(t, err)

	assert.Equal(t, "123e4567-e89b-12d3-a456-426614174000", key.ID)
	assert.Equal(t, "button.save", key.Key)
	assert.Equal(t, "buttons", key.Category)
	require.NotNil(t, key.Description)
	assert.Equal(t, "Save button text", *key.Description)
	assert.True(t, key.CreatedAt.Equal(created))
	assert.True(t, key.UpdatedAt.Equal(updated))
	assert.NotNil(t, key.Translations)
	assert.Empty(t, key.Translations)
}

func TestKeyRowToDomain_NullCategoryBecomesEmpty(t *testing.T) {
	row := translationKeyRow{
		ID:  text("k1"),
		Key: text("button.save"),
		// Category and Description left NULL.
	}

	key, err := keyRowToDomain(row)
	require.NoError(t, err)

	assert.Equal(t, "", key.Category)
	assert.Nil(t, key.Description)
}

func TestKeyRowToDomain_MissingRequiredFields(t *testing.T) {
	_, err := keyRowToDomain(translationKeyRow{Key: text("button.save")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id")

	_, err = keyRowToDomain(translationKeyRow{ID: text("k1")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing key")
}

func TestTranslationRowToDomain(t *testing.T) {
	updated := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	row := translationRow{
		ID:           text("t1"),
		KeyID:        text("k1"),
		LanguageCode: text("en"),
		Value:        text("Save"),
		UpdatedAt:    timestamptz(updated),
		UpdatedBy:    text("system"),
	}

	translation, err := translationRowToDomain(row)
	require.NoError(t, err)

	assert.Equal(t, "t1", translation.ID)
	assert.Equal(t, "en", translation.LanguageCode)
	assert.Equal(t, "Save", translation.Value)
	assert.Equal(t, "system", translation.UpdatedBy)
	assert.True(t, translation.UpdatedAt.Equal(updated))
}

func TestTranslationRowToDomain_MissingRequiredFields(t *testing.T) {
	_, err := translationRowToDomain(translationRow{LanguageCode: text("en")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id")

	_, err = translationRowToDomain(translationRow{ID: text("t1")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing language_code")
}

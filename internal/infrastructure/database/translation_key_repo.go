package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"helium/internal/domain"
	"helium/internal/domain/entities"
	"helium/internal/ports/output"
)

var _ output.TranslationKeyRepository = (*TranslationKeyRepository)(nil)

const keyColumns = "id::text, key, category, description, created_at, updated_at"

type TranslationKeyRepository struct {
	db Querier
}

func NewTranslationKeyRepository(db Querier) *TranslationKeyRepository {
	return &TranslationKeyRepository{db: db}
}

// check distinguishes "no client at all" from a mid-query failure.
func (r *TranslationKeyRepository) check() error {
	if r.db == nil {
		return domain.ErrDatabaseUnavailable
	}
	return nil
}

func (r *TranslationKeyRepository) List(ctx context.Context, filter output.ListFilter) ([]entities.TranslationKey, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	query := "SELECT " + keyColumns + " FROM translation_keys"
	var conds []string
	var args []any

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("key ILIKE $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY key LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list translation keys: %w", err)
	}
	defer rows.Close()

	keys := []entities.TranslationKey{}
	for rows.Next() {
		var row translationKeyRow
		if err := rows.Scan(&row.ID, &row.Key, &row.Category, &row.Description, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan translation key: %w", err)
		}
		key, err := keyRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("list translation keys: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list translation keys: %w", err)
	}

	if err := r.attachTranslations(ctx, keys); err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *TranslationKeyRepository) FindByID(ctx context.Context, keyID string) (*entities.TranslationKey, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	var row translationKeyRow
	err := r.db.QueryRow(ctx,
		"SELECT "+keyColumns+" FROM translation_keys WHERE id::text = $1",
		keyID,
	).Scan(&row.ID, &row.Key, &row.Category, &row.Description, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, fmt.Errorf("get translation key by id: %w", err)
	}

	key, err := keyRowToDomain(row)
	if err != nil {
		return nil, fmt.Errorf("get translation key by id: %w", err)
	}

	keys := []entities.TranslationKey{key}
	if err := r.attachTranslations(ctx, keys); err != nil {
		return nil, err
	}
	return &keys[0], nil
}

// attachTranslations loads the translations of every key in one query and
// distributes them, preserving the datastore's row order per key.
func (r *TranslationKeyRepository) attachTranslations(ctx context.Context, keys []entities.TranslationKey) error {
	if len(keys) == 0 {
		return nil
	}
	ids := make([]string, len(keys))
	for i := range keys {
		ids[i] = keys[i].ID
	}

	rows, err := r.db.Query(ctx,
		`SELECT id::text, translation_key_id::text, language_code, value, updated_at, updated_by
		 FROM translations
		 WHERE translation_key_id::text = ANY($1)
		 ORDER BY translation_key_id, language_code`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("get translations: %w", err)
	}
	defer rows.Close()

	byKey := make(map[string][]entities.Translation, len(keys))
	for rows.Next() {
		var row translationRow
		if err := rows.Scan(&row.ID, &row.KeyID, &row.LanguageCode, &row.Value, &row.UpdatedAt, &row.UpdatedBy); err != nil {
			return fmt.Errorf("scan translation: %w", err)
		}
		translation, err := translationRowToDomain(row)
		if err != nil {
			return fmt.Errorf("get translations: %w", err)
		}
		byKey[row.KeyID.String] = append(byKey[row.KeyID.String], translation)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("get translations: %w", err)
	}

	for i := range keys {
		if translations, ok := byKey[keys[i].ID]; ok {
			keys[i].Translations = translations
		}
	}
	return nil
}

func (r *TranslationKeyRepository) LocalizationMap(ctx context.Context, locale string) (map[string]string, error) {
	if err := r.check(); err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx,
		`SELECT tk.key, t.value
		 FROM translation_keys tk
		 JOIN translations t ON t.translation_key_id = tk.id
		 WHERE t.language_code = $1
		 ORDER BY tk.key`,
		locale,
	)
	if err != nil {
		return nil, fmt.Errorf("get localizations: %w", err)
	}
	defer rows.Close()

	localizations := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan localization: %w", err)
		}
		// One translation per (key, locale) is expected; keep the first.
		if _, exists := localizations[key]; !exists {
			localizations[key] = value
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get localizations: %w", err)
	}
	return localizations, nil
}

func (r *TranslationKeyRepository) Upsert(ctx context.Context, id, key, category, description string) (string, error) {
	if err := r.check(); err != nil {
		return "", err
	}
	var canonical string
	err := r.db.QueryRow(ctx,
		`INSERT INTO translation_keys (id, key, category, description, created_at, updated_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), now(), now())
		 ON CONFLICT (key) DO UPDATE SET updated_at = now()
		 RETURNING id::text`,
		id, key, category, description,
	).Scan(&canonical)
	if err != nil {
		return "", fmt.Errorf("upsert translation key: %w", err)
	}
	return canonical, nil
}

func (r *TranslationKeyRepository) Ping(ctx context.Context) error {
	if err := r.check(); err != nil {
		return err
	}
	var id string
	err := r.db.QueryRow(ctx, "SELECT id::text FROM translation_keys LIMIT 1").Scan(&id)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("ping translation_keys: %w", err)
	}
	return nil
}

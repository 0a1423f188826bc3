package i18nimport

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"helium/internal/ports/output"
)

// ImporterUpdatedBy is the actor recorded on imported translations.
const ImporterUpdatedBy = "importer"

type Summary struct {
	Files        int
	Keys         int
	Translations int
}

// Importer upserts message files into the keys and translations tables.
type Importer struct {
	keyRepo         output.TranslationKeyRepository
	translationRepo output.TranslationRepository
	log             *slog.Logger
}

func NewImporter(keyRepo output.TranslationKeyRepository, translationRepo output.TranslationRepository, log *slog.Logger) *Importer {
	return &Importer{
		keyRepo:         keyRepo,
		translationRepo: translationRepo,
		log:             log,
	}
}

// ImportDir loads every message file under dir and upserts its contents.
// Keys are shared across files; re-importing is idempotent.
func (imp *Importer) ImportDir(ctx context.Context, dir string) (*Summary, error) {
	files, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Files: len(files)}
	seenKeys := make(map[string]string) // key name -> canonical id
	for _, file := range files {
		for _, msg := range file.Messages {
			keyID, seen := seenKeys[msg.ID]
			if !seen {
				keyID, err = imp.keyRepo.Upsert(ctx, uuid.NewString(), msg.ID, categoryOf(msg.ID), msg.Description)
				if err != nil {
					return nil, fmt.Errorf("import %s: %w", file.Path, err)
				}
				seenKeys[msg.ID] = keyID
				summary.Keys++
			}
			if err := imp.translationRepo.Upsert(ctx, uuid.NewString(), keyID, file.Language, msg.Value, ImporterUpdatedBy); err != nil {
				return nil, fmt.Errorf("import %s: %w", file.Path, err)
			}
			summary.Translations++
		}
		imp.log.Info("message file imported", "path", file.Path, "language", file.Language, "messages", len(file.Messages))
	}
	return summary, nil
}

// categoryOf derives the grouping label from the key's first dotted
// segment ("button.save" -> "button"). Keys without a namespace get none.
func categoryOf(keyName string) string {
	if idx := strings.Index(keyName, "."); idx > 0 {
		return keyName[:idx]
	}
	return ""
}

// Package i18nimport feeds go-i18n message files into the datastore. It is
// the out-of-band creation path for translation keys: the HTTP surface only
// reads and mutates existing rows.
package i18nimport

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// Message is one entry of a message file.
type Message struct {
	ID          string
	Value       string
	Description string
}

// MessageFile is one parsed active.<lang>.toml file.
type MessageFile struct {
	Path     string
	Language string
	Messages []Message
}

// LoadDir parses every active.*.toml file under dir. The language is taken
// from the filename, go-i18n style.
func LoadDir(dir string) ([]MessageFile, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("glob message files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no active.*.toml files in %s", dir)
	}
	sort.Strings(paths)

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files := make([]MessageFile, 0, len(paths))
	for _, path := range paths {
		mf, err := bundle.LoadMessageFile(path)
		if err != nil {
			return nil, fmt.Errorf("load message file %s: %w", path, err)
		}

		messages := make([]Message, 0, len(mf.Messages))
		for _, msg := range mf.Messages {
			messages = append(messages, Message{
				ID:          msg.ID,
				Value:       msg.Other,
				Description: msg.Description,
			})
		}
		sort.Slice(messages, func(i, j int) bool { return messages[i].ID < messages[j].ID })

		files = append(files, MessageFile{
			Path:     path,
			Language: mf.Tag.String(),
			Messages: messages,
		})
	}
	return files, nil
}

package entities

import "time"

type TranslationKey struct {
	ID           string        `json:"id"`
	Key          string        `json:"key"`
	Category     string        `json:"category"`
	Description  *string       `json:"description"`
	Translations []Translation `json:"translations"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

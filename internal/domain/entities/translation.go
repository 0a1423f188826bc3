package entities

import "time"

type Translation struct {
	ID           string    `json:"id"`
	LanguageCode string    `json:"language_code"`
	Value        string    `json:"value"`
	UpdatedAt    time.Time `json:"updated_at"`
	UpdatedBy    string    `json:"updated_by"`
}

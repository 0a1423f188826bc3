package httpapi

import (
	"time"

	"helium/internal/domain/entities"
	"helium/internal/ports/input"
)

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type listKeysResponse struct {
	Items []entities.TranslationKey `json:"items"`
	Total int                       `json:"total"`
}

type localizationsResponse struct {
	ProjectID     string            `json:"project_id"`
	Locale        string            `json:"locale"`
	Localizations map[string]string `json:"localizations"`
}

// Value is a pointer so "required" rejects a missing field while still
// accepting the empty string as a legitimate new value.
type updateTranslationRequest struct {
	Value     *string `json:"value" binding:"required"`
	UpdatedBy string  `json:"updated_by"`
}

type updateTranslationResponse struct {
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
	TranslationID string    `json:"translation_id"`
	UpdatedBy     string    `json:"updated_by"`
	Timestamp     time.Time `json:"timestamp"`
}

// Updates is "required" so a missing or null field is rejected at bind time;
// an explicit empty object still reaches the coordinator, which refuses it.
type bulkUpdateRequest struct {
	Updates   map[string]string `json:"updates" binding:"required"`
	UpdatedBy string            `json:"updated_by"`
}

type bulkUpdateResponse struct {
	Success   bool                            `json:"success"`
	Message   string                          `json:"message"`
	Summary   input.BulkSummary               `json:"summary"`
	Results   map[string]input.BulkItemResult `json:"results"`
	UpdatedBy string                          `json:"updated_by"`
	Timestamp time.Time                       `json:"timestamp"`
}

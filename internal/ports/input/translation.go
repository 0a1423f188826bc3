package input

import (
	"context"
	"time"
)

// UpdateReceipt reports a single applied update. Callers already know the
// new value, so only the audit trail is returned.
type UpdateReceipt struct {
	TranslationID string
	UpdatedBy     string
	UpdatedAt     time.Time
}

// BulkItemResult is the outcome for one id of a bulk update.
type BulkItemResult struct {
	Success bool   `json:"success"`
	Value   string `json:"value,omitempty"`
	Error   string `json:"error,omitempty"`
}

type BulkSummary struct {
	TotalAttempted    int `json:"total_attempted"`
	SuccessfulUpdates int `json:"successful_updates"`
	FailedUpdates     int `json:"failed_updates"`
}

// BulkReport aggregates the per-id outcomes of one bulk update.
type BulkReport struct {
	Results   map[string]BulkItemResult
	Summary   BulkSummary
	UpdatedBy string
	Timestamp time.Time
}

type TranslationUseCase interface {
	UpdateTranslation(ctx context.Context, translationID, value, updatedBy string) (*UpdateReceipt, error)
	BulkUpdate(ctx context.Context, updates map[string]string, updatedBy string) (*BulkReport, error)
}

package application

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"time"

	"helium/internal/domain"
	"helium/internal/ports/input"
	"helium/internal/ports/output"
)

const (
	// DefaultUpdatedBy is recorded when a single update names no actor.
	DefaultUpdatedBy = "user"
	// DefaultBulkUpdatedBy is recorded when a bulk update names no actor.
	DefaultBulkUpdatedBy = "bulk_user"
)

var _ input.TranslationUseCase = (*TranslationService)(nil)

type TranslationService struct {
	translationRepo output.TranslationRepository
	log             *slog.Logger
}

func NewTranslationService(translationRepo output.TranslationRepository, log *slog.Logger) *TranslationService {
	return &TranslationService{
		translationRepo: translationRepo,
		log:             log,
	}
}

func (s *TranslationService) UpdateTranslation(ctx context.Context, translationID, value, updatedBy string) (*input.UpdateReceipt, error) {
	if strings.TrimSpace(translationID) == "" {
		return nil, domain.NewValidationError("translation id is required")
	}
	if updatedBy == "" {
		updatedBy = DefaultUpdatedBy
	}

	now := time.Now()
	if err := s.translationRepo.UpdateValue(ctx, translationID, value, updatedBy, now); err != nil {
		return nil, err
	}

	s.log.Info("translation updated", "translation_id", translationID, "updated_by", updatedBy)
	return &input.UpdateReceipt{
		TranslationID: translationID,
		UpdatedBy:     updatedBy,
		UpdatedAt:     now,
	}, nil
}

// BulkUpdate applies every (id, value) pair independently: one failing row
// never aborts the rest. Partial application is the intended behavior; the
// per-id results let the caller reconcile what went through.
func (s *TranslationService) BulkUpdate(ctx context.Context, updates map[string]string, updatedBy string) (*input.BulkReport, error) {
	if len(updates) == 0 {
		return nil, domain.NewValidationError("No updates provided")
	}
	ids := make([]string, 0, len(updates))
	for id := range updates {
		if strings.TrimSpace(id) == "" {
			return nil, domain.NewValidationError("translation ids must not be empty")
		}
		ids = append(ids, id)
	}
	// Map iteration order is random; sort for a reproducible run.
	sort.Strings(ids)

	if updatedBy == "" {
		updatedBy = DefaultBulkUpdatedBy
	}

	report := &input.BulkReport{
		Results:   make(map[string]input.BulkItemResult, len(ids)),
		UpdatedBy: updatedBy,
	}
	for _, id := range ids {
		value := updates[id]
		err := s.translationRepo.UpdateValue(ctx, id, value, updatedBy, time.Now())
		switch {
		case err == nil:
			report.Results[id] = input.BulkItemResult{Success: true, Value: value}
			report.Summary.SuccessfulUpdates++
		case errors.Is(err, domain.ErrTranslationNotFound):
			report.Results[id] = input.BulkItemResult{Success: false, Error: "Translation not found"}
			report.Summary.FailedUpdates++
		default:
			s.log.Warn("bulk update row failed", "translation_id", id, "error", err)
			report.Results[id] = input.BulkItemResult{Success: false, Error: err.Error()}
			report.Summary.FailedUpdates++
		}
	}
	report.Summary.TotalAttempted = len(ids)
	report.Timestamp = time.Now()

	s.log.Info("bulk update completed",
		"successful", report.Summary.SuccessfulUpdates,
		"failed", report.Summary.FailedUpdates,
		"updated_by", updatedBy,
	)
	return report, nil
}

package application

import (
	"context"
	"log/slog"
	"time"

	"helium/internal/ports/input"
	"helium/internal/ports/output"
)

var (
	_ input.LocalizationUseCase = (*LocalizationService)(nil)
	_ input.HealthUseCase       = (*HealthService)(nil)
)

type LocalizationService struct {
	keyRepo output.TranslationKeyRepository
	log     *slog.Logger
}

func NewLocalizationService(keyRepo output.TranslationKeyRepository, log *slog.Logger) *LocalizationService {
	return &LocalizationService{keyRepo: keyRepo, log: log}
}

// Localizations is deliberately fail-soft: clients bulk-loading many
// project/locale pairs must never see a hard failure for one of them.
func (s *LocalizationService) Localizations(ctx context.Context, projectID, locale string) map[string]string {
	// project_id is accepted but not yet applied as a filter.
	localizations, err := s.keyRepo.LocalizationMap(ctx, locale)
	if err != nil {
		s.log.Error("load localizations", "project_id", projectID, "locale", locale, "error", err)
		return map[string]string{"error": "Failed to load localizations: " + err.Error()}
	}
	s.log.Info("localizations retrieved", "count", len(localizations), "project_id", projectID, "locale", locale)
	return localizations
}

type HealthService struct {
	keyRepo output.TranslationKeyRepository
	log     *slog.Logger
}

func NewHealthService(keyRepo output.TranslationKeyRepository, log *slog.Logger) *HealthService {
	return &HealthService{keyRepo: keyRepo, log: log}
}

func (s *HealthService) Check(ctx context.Context) input.HealthReport {
	report := input.HealthReport{Timestamp: time.Now()}
	if err := s.keyRepo.Ping(ctx); err != nil {
		s.log.Error("health check failed", "error", err)
		report.Error = err.Error()
		return report
	}
	report.Healthy = true
	return report
}

package application

import (
	"context"
	"io"
	"log/slog"
	"time"

	"helium/internal/domain/entities"
	"helium/internal/ports/output"
)

// Test doubles for the output ports.

type stubTranslationRepo struct {
	updateErrs map[string]error // translation id -> forced error
	calls      []string
	lastActor  string
	lastAt     time.Time
}

func (s *stubTranslationRepo) UpdateValue(_ context.Context, translationID, _, updatedBy string, updatedAt time.Time) error {
	s.calls = append(s.calls, translationID)
	s.lastActor = updatedBy
	s.lastAt = updatedAt
	return s.updateErrs[translationID]
}

func (s *stubTranslationRepo) Upsert(context.Context, string, string, string, string, string) error {
	return nil
}

type stubKeyRepo struct {
	keys       []entities.TranslationKey
	key        *entities.TranslationKey
	listErr    error
	findErr    error
	locMap     map[string]string
	locErr     error
	pingErr    error
	lastFilter output.ListFilter
	lastLocale string
}

func (s *stubKeyRepo) List(_ context.Context, filter output.ListFilter) ([]entities.TranslationKey, error) {
	s.lastFilter = filter
	return s.keys, s.listErr
}

func (s *stubKeyRepo) FindByID(context.Context, string) (*entities.TranslationKey, error) {
	return s.key, s.findErr
}

func (s *stubKeyRepo) LocalizationMap(_ context.Context, locale string) (map[string]string, error) {
	s.lastLocale = locale
	return s.locMap, s.locErr
}

func (s *stubKeyRepo) Upsert(context.Context, string, string, string, string) (string, error) {
	return "", nil
}

func (s *stubKeyRepo) Ping(context.Context) error {
	return s.pingErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

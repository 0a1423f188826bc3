package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizations(t *testing.T) {
	repo := &stubKeyRepo{locMap: map[string]string{
		"button.save":   "Save",
		"button.cancel": "Cancel",
	}}
	svc := NewLocalizationService(repo, discardLogger())

	localizations := svc.Localizations(context.Background(), "web", "en")

	assert.Equal(t, "en", repo.lastLocale)
	assert.Equal(t, map[string]string{
		"button.save":   "Save",
		"button.cancel": "Cancel",
	}, localizations)
}

func TestLocalizations_FailSoft(t *testing.T) {
	repo := &stubKeyRepo{locErr: errors.New("connection refused")}
	svc := NewLocalizationService(repo, discardLogger())

	localizations := svc.Localizations(context.Background(), "web", "en")

	// The error comes back inside the payload, never as a failure.
	assert.Len(t, localizations, 1)
	assert.Contains(t, localizations["error"], "Failed to load localizations")
	assert.Contains(t, localizations["error"], "connection refused")
}

func TestHealthCheck(t *testing.T) {
	svc := NewHealthService(&stubKeyRepo{}, discardLogger())

	report := svc.Check(context.Background())
	assert.True(t, report.Healthy)
	assert.Empty(t, report.Error)
	assert.False(t, report.Timestamp.IsZero())
}

func TestHealthCheck_DatastoreDown(t *testing.T) {
	svc := NewHealthService(&stubKeyRepo{pingErr: errors.New("dial tcp: connection refused")}, discardLogger())

	report := svc.Check(context.Background())
	assert.False(t, report.Healthy)
	assert.Contains(t, report.Error, "connection refused")
}

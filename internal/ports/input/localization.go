package input

import (
	"context"
	"time"
)

type LocalizationUseCase interface {
	// Localizations returns the flat key -> value map for one locale.
	// It never fails: datastore errors come back as a map holding a
	// single "error" entry.
	Localizations(ctx context.Context, projectID, locale string) map[string]string
}

// HealthReport is the outcome of a datastore connectivity probe.
type HealthReport struct {
	Healthy   bool
	Error     string
	Timestamp time.Time
}

type HealthUseCase interface {
	// Check never fails; an unreachable datastore yields Healthy=false.
	Check(ctx context.Context) HealthReport
}

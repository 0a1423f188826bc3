package httpapi

import (
	"helium/internal/ports/input"
)

// Handler handles HTTP requests using use cases.
type Handler struct {
	keyUseCase          input.TranslationKeyUseCase
	translationUseCase  input.TranslationUseCase
	localizationUseCase input.LocalizationUseCase
	healthUseCase       input.HealthUseCase
}

// NewHandler creates a Handler.
func NewHandler(
	keyUseCase input.TranslationKeyUseCase,
	translationUseCase input.TranslationUseCase,
	localizationUseCase input.LocalizationUseCase,
	healthUseCase input.HealthUseCase,
) *Handler {
	return &Handler{
		keyUseCase:          keyUseCase,
		translationUseCase:  translationUseCase,
		localizationUseCase: localizationUseCase,
		healthUseCase:       healthUseCase,
	}
}

package application

import (
	"context"

	"helium/internal/domain"
	"helium/internal/domain/entities"
	"helium/internal/ports/input"
	"helium/internal/ports/output"
)

var _ input.TranslationKeyUseCase = (*TranslationKeyService)(nil)

type TranslationKeyService struct {
	keyRepo output.TranslationKeyRepository
}

func NewTranslationKeyService(keyRepo output.TranslationKeyRepository) *TranslationKeyService {
	return &TranslationKeyService{keyRepo: keyRepo}
}

func (s *TranslationKeyService) ListKeys(ctx context.Context, query input.ListQuery) ([]entities.TranslationKey, int, error) {
	if query.Limit < 1 || query.Limit > input.MaxListLimit {
		return nil, 0, domain.NewValidationError("limit must be between 1 and 1000")
	}
	if query.Offset < 0 {
		return nil, 0, domain.NewValidationError("offset must not be negative")
	}

	keys, err := s.keyRepo.List(ctx, output.ListFilter{
		Search:   query.Search,
		Category: query.Category,
		Limit:    query.Limit,
		Offset:   query.Offset,
	})
	if err != nil {
		return nil, 0, err
	}
	// total reflects the returned page, not the full matching-row count.
	return keys, len(keys), nil
}

func (s *TranslationKeyService) GetKey(ctx context.Context, keyID string) (*entities.TranslationKey, error) {
	if keyID == "" {
		return nil, domain.NewValidationError("key id is required")
	}
	return s.keyRepo.FindByID(ctx, keyID)
}

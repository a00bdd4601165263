package service

import (
	"context"
	"fmt"

	"github.com/pkordes/travel-mate/backend/internal/domain"
	"github.com/pkordes/travel-mate/backend/internal/repo"
)

// TagService exposes the travel-style and interest vocabulary.
type TagService struct {
	tags repo.TagRepo
}

// NewTagService constructs a TagService backed by the provided TagRepo.
func NewTagService(tags repo.TagRepo) *TagService {
	return &TagService{tags: tags}
}

// List returns the catalog ordered by name. An empty typ lists every type.
func (s *TagService) List(ctx context.Context, typ domain.TagType) ([]domain.Tag, error) {
	if typ != "" && !typ.Valid() {
		return nil, fmt.Errorf("service.TagService.List: %w", invalid("unknown tag type %q", typ))
	}
	tags, err := s.tags.List(ctx, typ)
	if err != nil {
		return nil, fmt.Errorf("service.TagService.List: %w", err)
	}
	return tags, nil
}

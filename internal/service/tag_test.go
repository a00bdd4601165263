package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-mate/backend/internal/domain"
	"github.com/pkordes/travel-mate/backend/internal/service"
)

func TestTagService_List_All(t *testing.T) {
	var capturedType domain.TagType = "sentinel"
	svc := service.NewTagService(&mockTagRepo{
		list: func(_ context.Context, typ domain.TagType) ([]domain.Tag, error) {
			capturedType = typ
			return []domain.Tag{{ID: uuid.New(), Name: "beach", Type: domain.TagTypeTravelStyle}}, nil
		},
	})

	got, err := svc.List(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, domain.TagType(""), capturedType)
	assert.Len(t, got, 1)
}

func TestTagService_List_ByType(t *testing.T) {
	var capturedType domain.TagType
	svc := service.NewTagService(&mockTagRepo{
		list: func(_ context.Context, typ domain.TagType) ([]domain.Tag, error) {
			capturedType = typ
			return []domain.Tag{}, nil
		},
	})

	got, err := svc.List(context.Background(), domain.TagTypeInterest)

	require.NoError(t, err)
	assert.Equal(t, domain.TagTypeInterest, capturedType)
	assert.NotNil(t, got)
}

func TestTagService_List_UnknownType(t *testing.T) {
	svc := service.NewTagService(&mockTagRepo{})

	_, err := svc.List(context.Background(), "cuisine")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTagService_List_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	svc := service.NewTagService(&mockTagRepo{
		list: func(context.Context, domain.TagType) ([]domain.Tag, error) { return nil, repoErr },
	})

	_, err := svc.List(context.Background(), "")

	assert.ErrorIs(t, err, repoErr)
}

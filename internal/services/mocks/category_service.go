// Package mocks provides testify mocks for the service interfaces.
package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/catalog-manager/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CategoryService struct {
	mock.Mock
}

func (m *CategoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	args := m.Called(ctx)

	var categories []*models.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]*models.Category)
	}

	return categories, args.Error(1)
}

func (m *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)

	var category *models.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*models.Category)
	}

	return category, args.Error(1)
}

func (m *CategoryService) GetCategoryWithItems(ctx context.Context, id uuid.UUID) (*models.Category, []*models.ItemSummary, error) {
	args := m.Called(ctx, id)

	var category *models.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*models.Category)
	}

	var items []*models.ItemSummary
	if args.Get(1) != nil {
		items = args.Get(1).([]*models.ItemSummary)
	}

	return category, items, args.Error(2)
}

func (m *CategoryService) CreateCategory(ctx context.Context, draft *models.CategoryDraft) (*models.Category, error) {
	args := m.Called(ctx, draft)

	var category *models.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*models.Category)
	}

	return category, args.Error(1)
}

func (m *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, draft *models.CategoryDraft) (*models.Category, error) {
	args := m.Called(ctx, id, draft)

	var category *models.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*models.Category)
	}

	return category, args.Error(1)
}

func (m *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) ([]*models.ItemSummary, error) {
	args := m.Called(ctx, id)

	var blocking []*models.ItemSummary
	if args.Get(0) != nil {
		blocking = args.Get(0).([]*models.ItemSummary)
	}

	return blocking, args.Error(1)
}

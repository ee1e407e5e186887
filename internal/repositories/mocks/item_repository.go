package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/catalog-manager/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ItemRepository struct {
	mock.Mock
}

func (m *ItemRepository) CreateItem(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)

	return args.Error(0)
}

func (m *ItemRepository) GetItemWithCategory(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	args := m.Called(ctx, id)

	var item *models.Item
	if args.Get(0) != nil {
		item = args.Get(0).(*models.Item)
	}

	return item, args.Error(1)
}

func (m *ItemRepository) ListItems(ctx context.Context) ([]*models.Item, error) {
	args := m.Called(ctx)

	var items []*models.Item
	if args.Get(0) != nil {
		items = args.Get(0).([]*models.Item)
	}

	return items, args.Error(1)
}

func (m *ItemRepository) ListItemsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*models.ItemSummary, error) {
	args := m.Called(ctx, categoryID)

	var summaries []*models.ItemSummary
	if args.Get(0) != nil {
		summaries = args.Get(0).([]*models.ItemSummary)
	}

	return summaries, args.Error(1)
}

func (m *ItemRepository) CountItems(ctx context.Context) (int, error) {
	args := m.Called(ctx)

	return args.Int(0), args.Error(1)
}

func (m *ItemRepository) UpdateItem(ctx context.Context, item *models.Item) error {
	args := m.Called(ctx, item)

	return args.Error(0)
}

func (m *ItemRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

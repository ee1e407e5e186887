package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/catalog-manager/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ItemService struct {
	mock.Mock
}

func (m *ItemService) ListItems(ctx context.Context) ([]*models.Item, error) {
	args := m.Called(ctx)

	var items []*models.Item
	if args.Get(0) != nil {
		items = args.Get(0).([]*models.Item)
	}

	return items, args.Error(1)
}

func (m *ItemService) GetItemWithCategory(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	args := m.Called(ctx, id)

	var item *models.Item
	if args.Get(0) != nil {
		item = args.Get(0).(*models.Item)
	}

	return item, args.Error(1)
}

func (m *ItemService) CreateItem(ctx context.Context, draft *models.ItemDraft) (*models.Item, error) {
	args := m.Called(ctx, draft)

	var item *models.Item
	if args.Get(0) != nil {
		item = args.Get(0).(*models.Item)
	}

	return item, args.Error(1)
}

func (m *ItemService) UpdateItem(ctx context.Context, id uuid.UUID, draft *models.ItemDraft) (*models.Item, error) {
	args := m.Called(ctx, id, draft)

	var item *models.Item
	if args.Get(0) != nil {
		item = args.Get(0).(*models.Item)
	}

	return item, args.Error(1)
}

func (m *ItemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type CatalogService struct {
	mock.Mock
}

func (m *CatalogService) Overview(ctx context.Context) (*models.CatalogOverview, error) {
	args := m.Called(ctx)

	var overview *models.CatalogOverview
	if args.Get(0) != nil {
		overview = args.Get(0).(*models.CatalogOverview)
	}

	return overview, args.Error(1)
}

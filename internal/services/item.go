package service

import (
	"context"

	appErrors "github.com/aaravmahajanofficial/catalog-manager/internal/errors"
	"github.com/aaravmahajanofficial/catalog-manager/internal/models"
	repository "github.com/aaravmahajanofficial/catalog-manager/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ItemService interface {
	ListItems(ctx context.Context) ([]*models.Item, error)
	GetItemWithCategory(ctx context.Context, id uuid.UUID) (*models.Item, error)
	CreateItem(ctx context.Context, draft *models.ItemDraft) (*models.Item, error)
	UpdateItem(ctx context.Context, id uuid.UUID, draft *models.ItemDraft) (*models.Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type itemService struct {
	items    repository.ItemRepository
	validate *validator.Validate
}

func NewItemService(items repository.ItemRepository) ItemService {
	return &itemService{items: items, validate: validator.New()}
}

func (s *itemService) ListItems(ctx context.Context) ([]*models.Item, error) {
	items, err := s.items.ListItems(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch items").WithError(err)
	}

	return items, nil
}

func (s *itemService) GetItemWithCategory(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	item, err := s.items.GetItemWithCategory(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFoundError("Item not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch item").WithError(err)
	}

	return item, nil
}

// buildItem validates the draft and resolves its category reference.
func (s *itemService) buildItem(draft *models.ItemDraft) (*models.Item, error) {
	if err := s.validate.Struct(draft); err != nil {
		return nil, appErrors.ValidationError("Invalid item draft").WithError(err)
	}

	categoryID, err := uuid.Parse(draft.CategoryID)
	if err != nil {
		return nil, appErrors.AddValidationError("category", "must be a valid category id").WithError(err)
	}

	return &models.Item{
		CategoryID:  categoryID,
		Name:        draft.Name,
		Description: draft.Description,
		Stock:       draft.Stock,
		Price:       draft.Price,
	}, nil
}

func (s *itemService) CreateItem(ctx context.Context, draft *models.ItemDraft) (*models.Item, error) {
	item, err := s.buildItem(draft)
	if err != nil {
		return nil, err
	}

	if err := s.items.CreateItem(ctx, item); err != nil {
		if isForeignKeyViolation(err) {
			return nil, appErrors.AddValidationError("category", "must reference an existing category").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to create item").WithError(err)
	}

	return item, nil
}

// UpdateItem replaces every field under the existing id; a field missing
// from the draft fails validation rather than keeping its old value.
func (s *itemService) UpdateItem(ctx context.Context, id uuid.UUID, draft *models.ItemDraft) (*models.Item, error) {
	item, err := s.buildItem(draft)
	if err != nil {
		return nil, err
	}

	item.ID = id

	if err := s.items.UpdateItem(ctx, item); err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFoundError("Item not found").WithError(err)
		}

		if isForeignKeyViolation(err) {
			return nil, appErrors.AddValidationError("category", "must reference an existing category").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to update item").WithError(err)
	}

	return item, nil
}

// DeleteItem is unconditional; nothing references an item.
func (s *itemService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := s.items.DeleteItem(ctx, id); err != nil {
		return appErrors.DatabaseError("Failed to delete item").WithError(err)
	}

	return nil
}

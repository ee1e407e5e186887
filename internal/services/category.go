package service

import (
	"context"

	appErrors "github.com/aaravmahajanofficial/catalog-manager/internal/errors"
	"github.com/aaravmahajanofficial/catalog-manager/internal/models"
	repository "github.com/aaravmahajanofficial/catalog-manager/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*models.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetCategoryWithItems(ctx context.Context, id uuid.UUID) (*models.Category, []*models.ItemSummary, error)
	CreateCategory(ctx context.Context, draft *models.CategoryDraft) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, draft *models.CategoryDraft) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) ([]*models.ItemSummary, error)
}

type categoryService struct {
	categories repository.CategoryRepository
	items      repository.ItemRepository
	validate   *validator.Validate
}

func NewCategoryService(categories repository.CategoryRepository, items repository.ItemRepository) CategoryService {
	return &categoryService{categories: categories, items: items, validate: validator.New()}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	return categories, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.categories.GetCategoryByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFoundError("Category not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch category").WithError(err)
	}

	return category, nil
}

// GetCategoryWithItems fetches the category and its referencing items
// concurrently; the two reads have no ordering dependency.
func (s *categoryService) GetCategoryWithItems(ctx context.Context, id uuid.UUID) (*models.Category, []*models.ItemSummary, error) {
	var (
		category *models.Category
		items    []*models.ItemSummary
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		category, err = s.categories.GetCategoryByID(gCtx, id)

		return err
	})

	g.Go(func() error {
		var err error
		items, err = s.items.ListItemsByCategory(gCtx, id)

		return err
	})

	if err := g.Wait(); err != nil {
		if isNotFound(err) {
			return nil, nil, appErrors.NotFoundError("Category not found").WithError(err)
		}

		return nil, nil, appErrors.DatabaseError("Failed to fetch category").WithError(err)
	}

	return category, items, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, draft *models.CategoryDraft) (*models.Category, error) {
	// Re-check the draft; the form rules already ran upstream.
	if err := s.validate.Struct(draft); err != nil {
		return nil, appErrors.ValidationError("Invalid category draft").WithError(err)
	}

	category := &models.Category{
		Name:        draft.Name,
		Description: draft.Description,
	}

	if err := s.categories.CreateCategory(ctx, category); err != nil {
		return nil, appErrors.DatabaseError("Failed to create category").WithError(err)
	}

	return category, nil
}

// UpdateCategory replaces every field under the existing id.
func (s *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, draft *models.CategoryDraft) (*models.Category, error) {
	if err := s.validate.Struct(draft); err != nil {
		return nil, appErrors.ValidationError("Invalid category draft").WithError(err)
	}

	category := &models.Category{
		ID:          id,
		Name:        draft.Name,
		Description: draft.Description,
	}

	if err := s.categories.UpdateCategory(ctx, category); err != nil {
		if isNotFound(err) {
			return nil, appErrors.NotFoundError("Category not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to update category").WithError(err)
	}

	return category, nil
}

// DeleteCategory enforces the integrity guard. A non-empty return is the
// blocking set: the delete was refused and the caller re-renders the
// confirmation page with those items. The delete itself is a single
// conditional statement, so an item created between the read and the delete
// blocks it instead of being orphaned.
func (s *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) ([]*models.ItemSummary, error) {
	blocking, err := s.items.ListItemsByCategory(ctx, id)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch referencing items").WithError(err)
	}

	if len(blocking) > 0 {
		return blocking, nil
	}

	deleted, err := s.categories.DeleteCategoryIfUnreferenced(ctx, id)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to delete category").WithError(err)
	}

	if !deleted {
		// Either an item appeared since the read above, or the category
		// never existed. Re-read to tell the two apart.
		blocking, err = s.items.ListItemsByCategory(ctx, id)
		if err != nil {
			return nil, appErrors.DatabaseError("Failed to fetch referencing items").WithError(err)
		}

		if len(blocking) > 0 {
			return blocking, nil
		}

		return nil, appErrors.NotFoundError("Category not found")
	}

	return nil, nil
}

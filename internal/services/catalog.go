package service

import (
	"context"

	appErrors "github.com/aaravmahajanofficial/catalog-manager/internal/errors"
	"github.com/aaravmahajanofficial/catalog-manager/internal/models"
	repository "github.com/aaravmahajanofficial/catalog-manager/internal/repositories"
	"golang.org/x/sync/errgroup"
)

type CatalogService interface {
	Overview(ctx context.Context) (*models.CatalogOverview, error)
}

type catalogService struct {
	categories repository.CategoryRepository
	items      repository.ItemRepository
}

func NewCatalogService(categories repository.CategoryRepository, items repository.ItemRepository) CatalogService {
	return &catalogService{categories: categories, items: items}
}

// Overview counts both collections concurrently for the index page.
func (s *catalogService) Overview(ctx context.Context) (*models.CatalogOverview, error) {
	overview := &models.CatalogOverview{}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		overview.CategoryCount, err = s.categories.CountCategories(gCtx)

		return err
	})

	g.Go(func() error {
		var err error
		overview.ItemCount, err = s.items.CountItems(gCtx)

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch catalog overview").WithError(err)
	}

	return overview, nil
}

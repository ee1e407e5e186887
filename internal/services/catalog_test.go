package service_test

import (
	"context"
	"errors"
	"testing"

	appErrors "github.com/aaravmahajanofficial/catalog-manager/internal/errors"
	"github.com/aaravmahajanofficial/catalog-manager/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/catalog-manager/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOverview(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Both Counts Joined", func(t *testing.T) {
		// Arrange
		mockCategories := new(mocks.CategoryRepository)
		mockItems := new(mocks.ItemRepository)
		catalogService := service.NewCatalogService(mockCategories, mockItems)

		mockCategories.On("CountCategories", mock.Anything).Return(3, nil).Once()
		mockItems.On("CountItems", mock.Anything).Return(12, nil).Once()

		// Act
		overview, err := catalogService.Overview(ctx)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 3, overview.CategoryCount)
		assert.Equal(t, 12, overview.ItemCount)
		mockCategories.AssertExpectations(t)
		mockItems.AssertExpectations(t)
	})

	t.Run("Failure - Either Count Fails The Page", func(t *testing.T) {
		// Arrange
		mockCategories := new(mocks.CategoryRepository)
		mockItems := new(mocks.ItemRepository)
		catalogService := service.NewCatalogService(mockCategories, mockItems)

		mockCategories.On("CountCategories", mock.Anything).Return(0, errors.New("count failed")).Once()
		mockItems.On("CountItems", mock.Anything).Return(12, nil).Maybe()

		// Act
		overview, err := catalogService.Overview(ctx)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, overview)
		var appErr *appErrors.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		mockCategories.AssertExpectations(t)
	})
}

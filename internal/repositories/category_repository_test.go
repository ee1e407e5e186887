package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/catalog-manager/internal/models"
	repository "github.com/aaravmahajanofficial/catalog-manager/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategoryRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewCategoryRepo(db)
	assert.NotNil(t, repo, "NewCategoryRepo should return a non-nil repository")
}

func TestCategoryRepository(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewCategoryRepo(db)
	ctx := t.Context()

	t.Run("CreateCategory", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			category := &models.Category{
				Name:        "Fruit",
				Description: "Fresh fruit",
			}
			now := time.Now()

			expectedSQL := regexp.QuoteMeta(`INSERT INTO categories (id, name, description) VALUES ($1, $2, $3) RETURNING created_at, updated_at`)

			mock.ExpectQuery(expectedSQL).
				WithArgs(sqlmock.AnyArg(), category.Name, category.Description).
				WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).
					AddRow(now, now))

			// Act
			err := repo.CreateCategory(ctx, category)

			// Assert
			require.NoError(t, err, "CreateCategory should not return an error on success")
			assert.NotEqual(t, uuid.Nil, category.ID, "Category ID should be generated")
			assert.WithinDuration(t, now, category.CreatedAt, time.Second, "Category CreatedAt should be updated")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			// Arrange
			category := &models.Category{
				Name:        "Fruit",
				Description: "Fresh fruit",
			}
			dbError := errors.New("database insertion error")

			expectedSQL := regexp.QuoteMeta(`INSERT INTO categories (id, name, description) VALUES ($1, $2, $3) RETURNING created_at, updated_at`)

			mock.ExpectQuery(expectedSQL).
				WithArgs(sqlmock.AnyArg(), category.Name, category.Description).
				WillReturnError(dbError)

			// Act
			err := repo.CreateCategory(ctx, category)

			// Assert
			require.Error(t, err, "CreateCategory should return an error on database failure")
			assert.ErrorIs(t, err, dbError, "Returned error should be the database error")
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetCategoryByID", func(t *testing.T) {
		categoryID := uuid.New()
		now := time.Now()

		expectedSQL := regexp.QuoteMeta(`
		SELECT id, name, description, created_at, updated_at
		FROM categories
		WHERE id = $1`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			expectedCategory := &models.Category{
				ID:          categoryID,
				Name:        "Fruit",
				Description: "Fresh fruit",
				CreatedAt:   now.Add(-time.Hour),
				UpdatedAt:   now,
			}

			rows := sqlmock.NewRows([]string{"id", "name", "description", "created_at", "updated_at"}).
				AddRow(expectedCategory.ID, expectedCategory.Name, expectedCategory.Description, expectedCategory.CreatedAt, expectedCategory.UpdatedAt)

			mock.ExpectQuery(expectedSQL).
				WithArgs(categoryID).
				WillReturnRows(rows)

			// Act
			category, err := repo.GetCategoryByID(ctx, categoryID)

			// Assert
			require.NoError(t, err, "GetCategoryByID should not return an error when category is found")
			assert.Equal(t, expectedCategory, category, "Returned category should match the expected category")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).
				WithArgs(categoryID).
				WillReturnError(sql.ErrNoRows)

			// Act
			category, err := repo.GetCategoryByID(ctx, categoryID)

			// Assert
			require.Error(t, err, "GetCategoryByID should return an error when category is not found")
			assert.ErrorIs(t, err, sql.ErrNoRows, "Returned error should be sql.ErrNoRows")
			assert.Nil(t, category, "Returned category should be nil on error")
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("ListCategories", func(t *testing.T) {
		now := time.Now()

		expectedSQL := regexp.QuoteMeta(`
		SELECT id, name, description, created_at, updated_at
		FROM categories
		ORDER BY name ASC`)

		categoryCols := []string{"id", "name", "description", "created_at", "updated_at"}

		t.Run("Success_MultipleCategories", func(t *testing.T) {
			// Arrange
			catID1, catID2 := uuid.New(), uuid.New()

			expectedCategories := []*models.Category{
				{ID: catID1, Name: "Fruit", Description: "Fresh fruit", CreatedAt: now, UpdatedAt: now},
				{ID: catID2, Name: "Vegetables", Description: "Greens", CreatedAt: now, UpdatedAt: now},
			}

			rows := sqlmock.NewRows(categoryCols).
				AddRow(expectedCategories[0].ID, expectedCategories[0].Name, expectedCategories[0].Description, expectedCategories[0].CreatedAt, expectedCategories[0].UpdatedAt).
				AddRow(expectedCategories[1].ID, expectedCategories[1].Name, expectedCategories[1].Description, expectedCategories[1].CreatedAt, expectedCategories[1].UpdatedAt)
			mock.ExpectQuery(expectedSQL).WillReturnRows(rows)

			// Act
			categories, err := repo.ListCategories(ctx)

			// Assert
			require.NoError(t, err, "ListCategories should not return an error on success")
			assert.Equal(t, expectedCategories, categories, "Returned categories should match expected")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Success_NoCategories", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).WillReturnRows(sqlmock.NewRows(categoryCols))

			// Act
			categories, err := repo.ListCategories(ctx)

			// Assert
			require.NoError(t, err, "ListCategories should not return an error when no categories exist")
			assert.Empty(t, categories, "Returned slice should be empty")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("QueryError", func(t *testing.T) {
			// Arrange
			dbError := errors.New("list query failed")
			mock.ExpectQuery(expectedSQL).WillReturnError(dbError)

			// Act
			categories, err := repo.ListCategories(ctx)

			// Assert
			require.Error(t, err, "ListCategories should return an error if the query fails")
			assert.ErrorIs(t, err, dbError, "Returned error should be the database error")
			assert.Nil(t, categories, "Returned categories should be nil on error")
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("CountCategories", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`SELECT COUNT(*) FROM categories`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(expectedSQL).WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

			// Act
			total, err := repo.CountCategories(ctx)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, 7, total, "Returned count should match expected")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			// Arrange
			dbError := errors.New("count query failed")
			mock.ExpectQuery(expectedSQL).WillReturnError(dbError)

			// Act
			total, err := repo.CountCategories(ctx)

			// Assert
			require.Error(t, err)
			assert.Zero(t, total, "Returned count should be zero on error")
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("UpdateCategory", func(t *testing.T) {
		categoryID := uuid.New()
		now := time.Now()

		expectedSQL := regexp.QuoteMeta(`
		UPDATE categories SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at`)

		t.Run("Success", func(t *testing.T) {
			// Arrange
			categoryToUpdate := &models.Category{
				ID:          categoryID,
				Name:        "Produce",
				Description: "Fruit and vegetables",
			}

			mock.ExpectQuery(expectedSQL).
				WithArgs(categoryToUpdate.Name, categoryToUpdate.Description, categoryToUpdate.ID).
				WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

			// Act
			err := repo.UpdateCategory(ctx, categoryToUpdate)

			// Assert
			require.NoError(t, err, "UpdateCategory should not return an error on success")
			assert.WithinDuration(t, now, categoryToUpdate.UpdatedAt, time.Second, "Category UpdatedAt should be updated")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("NotFound", func(t *testing.T) {
			// Arrange
			categoryToUpdate := &models.Category{
				ID:          uuid.New(),
				Name:        "Ghost",
				Description: "Does not exist",
			}

			mock.ExpectQuery(expectedSQL).
				WithArgs(categoryToUpdate.Name, categoryToUpdate.Description, categoryToUpdate.ID).
				WillReturnError(sql.ErrNoRows)

			// Act
			err := repo.UpdateCategory(ctx, categoryToUpdate)

			// Assert
			require.Error(t, err, "UpdateCategory should return an error if the category is not found")
			assert.ErrorIs(t, err, sql.ErrNoRows, "Returned error should be sql.ErrNoRows")
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("DeleteCategoryIfUnreferenced", func(t *testing.T) {
		categoryID := uuid.New()

		expectedSQL := regexp.QuoteMeta(`
		DELETE FROM categories
		WHERE id = $1
		AND NOT EXISTS (SELECT 1 FROM items WHERE category_id = $1)`)

		t.Run("Deleted", func(t *testing.T) {
			// Arrange
			mock.ExpectExec(expectedSQL).
				WithArgs(categoryID).
				WillReturnResult(sqlmock.NewResult(0, 1))

			// Act
			deleted, err := repo.DeleteCategoryIfUnreferenced(ctx, categoryID)

			// Assert
			require.NoError(t, err)
			assert.True(t, deleted, "Category with no referencing items should be deleted")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Blocked Or Missing", func(t *testing.T) {
			// Arrange: zero rows affected means referenced or already gone.
			mock.ExpectExec(expectedSQL).
				WithArgs(categoryID).
				WillReturnResult(sqlmock.NewResult(0, 0))

			// Act
			deleted, err := repo.DeleteCategoryIfUnreferenced(ctx, categoryID)

			// Assert
			require.NoError(t, err)
			assert.False(t, deleted, "Referenced category should not be deleted")
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			// Arrange
			dbError := errors.New("delete failed")
			mock.ExpectExec(expectedSQL).
				WithArgs(categoryID).
				WillReturnError(dbError)

			// Act
			deleted, err := repo.DeleteCategoryIfUnreferenced(ctx, categoryID)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, dbError, "Returned error should be the database error")
			assert.False(t, deleted)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/catalog-manager/internal/models"
	"github.com/google/uuid"
)

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListCategories(ctx context.Context) ([]*models.Category, error)
	CountCategories(ctx context.Context) (int, error)
	UpdateCategory(ctx context.Context, category *models.Category) error
	DeleteCategoryIfUnreferenced(ctx context.Context, id uuid.UUID) (bool, error)
}

type categoryRepository struct {
	DB *sql.DB
}

func NewCategoryRepo(db *sql.DB) CategoryRepository {
	return &categoryRepository{DB: db}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	category.ID = uuid.New()

	query := `INSERT INTO categories (id, name, description)
			  VALUES ($1, $2, $3)
			  RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, category.ID, category.Name, category.Description).Scan(&category.CreatedAt, &category.UpdatedAt)
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	category := &models.Category{}

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM categories
		WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return category, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*models.Category, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM categories
		ORDER BY name ASC`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var categories []*models.Category

	for rows.Next() {
		category := &models.Category{}

		err := rows.Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt, &category.UpdatedAt)
		if err != nil {
			return nil, err
		}

		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryRepository) CountCategories(ctx context.Context) (int, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	var total int

	query := `SELECT COUNT(*) FROM categories`

	err := r.DB.QueryRowContext(dbCtx, query).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *models.Category) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE categories SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, category.Name, category.Description, category.ID).Scan(&category.UpdatedAt)
}

// DeleteCategoryIfUnreferenced removes the category only when no item
// references it, in a single conditional statement. The check and the
// delete cannot be interleaved by a concurrent item insert.
func (r *categoryRepository) DeleteCategoryIfUnreferenced(ctx context.Context, id uuid.UUID) (bool, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `
		DELETE FROM categories
		WHERE id = $1
		AND NOT EXISTS (SELECT 1 FROM items WHERE category_id = $1)`

	result, err := r.DB.ExecContext(dbCtx, query, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

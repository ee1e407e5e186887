package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/catalog-manager/internal/models"
	"github.com/google/uuid"
)

type ItemRepository interface {
	CreateItem(ctx context.Context, item *models.Item) error
	GetItemWithCategory(ctx context.Context, id uuid.UUID) (*models.Item, error)
	ListItems(ctx context.Context) ([]*models.Item, error)
	ListItemsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*models.ItemSummary, error)
	CountItems(ctx context.Context) (int, error)
	UpdateItem(ctx context.Context, item *models.Item) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type itemRepository struct {
	DB *sql.DB
}

func NewItemRepo(db *sql.DB) ItemRepository {
	return &itemRepository{DB: db}
}

func (r *itemRepository) CreateItem(ctx context.Context, item *models.Item) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	item.ID = uuid.New()

	query := `INSERT INTO items (id, category_id, name, description, stock, price)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, item.ID, item.CategoryID, item.Name, item.Description, item.Stock, item.Price).Scan(&item.CreatedAt, &item.UpdatedAt)
}

func (r *itemRepository) GetItemWithCategory(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	item := &models.Item{}

	query := `
        SELECT i.id, i.category_id, i.name, i.description, i.stock, i.price,
               i.created_at, i.updated_at,
               c.id, c.name, c.description
        FROM items i
        LEFT JOIN categories c ON i.category_id = c.id
        WHERE i.id = $1`

	var category models.Category

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&item.ID, &item.CategoryID, &item.Name, &item.Description, &item.Stock, &item.Price, &item.CreatedAt, &item.UpdatedAt, &category.ID, &category.Name, &category.Description)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	item.Category = &category

	return item, nil
}

func (r *itemRepository) ListItems(ctx context.Context) ([]*models.Item, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT i.id, i.category_id, i.name, i.description, i.stock, i.price,
		i.created_at, i.updated_at,
		c.id, c.name, c.description
		FROM items i
		LEFT JOIN categories c ON i.category_id = c.id
		ORDER BY i.name ASC
	`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var items []*models.Item

	for rows.Next() {
		item := &models.Item{}
		category := &models.Category{}

		err := rows.Scan(&item.ID, &item.CategoryID, &item.Name, &item.Description, &item.Stock, &item.Price, &item.CreatedAt, &item.UpdatedAt, &category.ID, &category.Name, &category.Description)
		if err != nil {
			return nil, err
		}

		item.Category = category
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// ListItemsByCategory returns the name+description projection of the items
// referencing a category. A non-empty result blocks that category's delete.
func (r *itemRepository) ListItemsByCategory(ctx context.Context, categoryID uuid.UUID) ([]*models.ItemSummary, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, description
		FROM items
		WHERE category_id = $1
		ORDER BY name ASC`

	rows, err := r.DB.QueryContext(dbCtx, query, categoryID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var summaries []*models.ItemSummary

	for rows.Next() {
		summary := &models.ItemSummary{}

		err := rows.Scan(&summary.ID, &summary.Name, &summary.Description)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func (r *itemRepository) CountItems(ctx context.Context) (int, error) {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	var total int

	query := `SELECT COUNT(*) FROM items`

	err := r.DB.QueryRowContext(dbCtx, query).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}

// UpdateItem replaces every field under the existing id. Partial updates do
// not exist at this layer.
func (r *itemRepository) UpdateItem(ctx context.Context, item *models.Item) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE items SET category_id = $1, name = $2, description = $3, stock = $4, price = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query, item.CategoryID, item.Name, item.Description, item.Stock, item.Price, item.ID).Scan(&item.UpdatedAt)
}

func (r *itemRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := withDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM items WHERE id = $1`

	_, err := r.DB.ExecContext(dbCtx, query, id)

	return err
}

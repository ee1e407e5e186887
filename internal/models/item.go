package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is a catalog record owned by exactly one Category.
// Stock and price are stored as submitted text, not parsed numbers.
type Item struct {
	ID          uuid.UUID `json:"id"`
	CategoryID  uuid.UUID `json:"category_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Stock       string    `json:"stock"`
	Price       string    `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Category    *Category `json:"category,omitempty"`
}

// ItemDraft holds sanitized form input for an item create or update.
// CategoryID stays a string here; the service parses it into a uuid.
type ItemDraft struct {
	Name        string `validate:"required,alphanum"`
	Description string `validate:"required"`
	Stock       string `validate:"required"`
	Price       string `validate:"required,min=5"`
	CategoryID  string `validate:"required"`
}

// ItemSummary is the name+description projection used on category pages
// and to decide whether a category can be deleted.
type ItemSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryDraft holds sanitized form input for a category create or update.
// The validate tags are a second line of defense behind the form rules.
type CategoryDraft struct {
	Name        string `validate:"required,max=50,alphanum"`
	Description string `validate:"required,max=500"`
}

// CatalogOverview carries the totals shown on the index page.
type CatalogOverview struct {
	CategoryCount int `json:"category_count"`
	ItemCount     int `json:"item_count"`
}

package forms

import (
	"net/url"

	"github.com/aaravmahajanofficial/catalog-manager/internal/models"
)

var categoryFields = []Field{
	{
		Name: "name",
		Rules: []Rule{
			{Predicate: MinLength(1), Message: "Category name must be specified."},
			{Predicate: MaxLength(50), Message: "Category name must be at most 50 characters."},
			{Predicate: Alphanumeric, Message: "Name has non-alphanumeric characters."},
		},
	},
	{
		Name: "description",
		Rules: []Rule{
			{Predicate: MinLength(1), Message: "Description must be specified."},
			{Predicate: MaxLength(500), Message: "Description must be at most 500 characters."},
		},
	},
}

var itemFields = []Field{
	{
		Name: "name",
		Rules: []Rule{
			{Predicate: MinLength(1), Message: "Item name must be specified."},
			{Predicate: Alphanumeric, Message: "Name has non-alphanumeric characters."},
		},
	},
	{
		Name: "description",
		Rules: []Rule{
			{Predicate: MinLength(1), Message: "Description must be specified."},
		},
	},
	{
		Name: "stock",
		Rules: []Rule{
			{Predicate: MinLength(1), Message: "Stock must be specified."},
		},
	},
	{
		// Price is checked by text length, matching the historical rule.
		Name: "price",
		Rules: []Rule{
			{Predicate: MinLength(5), Message: "Price must be at least 5 characters."},
		},
	},
	{
		Name: "category",
		Rules: []Rule{
			{Predicate: MinLength(1), Message: "Category must be specified."},
		},
	},
}

// ParseCategoryForm sanitizes the submitted values and runs the category
// rules. The draft is returned even when violations exist, so the caller can
// re-render the form with what the user typed.
func ParseCategoryForm(values url.Values) (*models.CategoryDraft, Violations) {
	sanitized := map[string]string{
		"name":        Sanitize(values.Get("name")),
		"description": Sanitize(values.Get("description")),
	}

	draft := &models.CategoryDraft{
		Name:        sanitized["name"],
		Description: sanitized["description"],
	}

	return draft, Validate(sanitized, categoryFields)
}

// ParseItemForm sanitizes the submitted values and runs the item rules.
func ParseItemForm(values url.Values) (*models.ItemDraft, Violations) {
	sanitized := map[string]string{
		"name":        Sanitize(values.Get("name")),
		"description": Sanitize(values.Get("description")),
		"stock":       Sanitize(values.Get("stock")),
		"price":       Sanitize(values.Get("price")),
		"category":    Sanitize(values.Get("category")),
	}

	draft := &models.ItemDraft{
		Name:        sanitized["name"],
		Description: sanitized["description"],
		Stock:       sanitized["stock"],
		Price:       sanitized["price"],
		CategoryID:  sanitized["category"],
	}

	return draft, Validate(sanitized, itemFields)
}

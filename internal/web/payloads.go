package web

import (
	"github.com/aaravmahajanofficial/catalog-manager/internal/forms"
	"github.com/aaravmahajanofficial/catalog-manager/internal/models"
)

// View payloads. Each template receives exactly one of these.

type IndexData struct {
	Title    string
	Overview *models.CatalogOverview
}

type CategoryListData struct {
	Title      string
	Categories []*models.Category
}

type CategoryDetailData struct {
	Title    string
	Category *models.Category
	Items    []*models.ItemSummary
}

// CategoryFormData backs both the create and the update form. On a failed
// submission Draft holds the escaped values the user typed.
type CategoryFormData struct {
	Title  string
	Action string
	Draft  *models.CategoryDraft
	Errors forms.Violations
}

type CategoryDeleteData struct {
	Title    string
	Category *models.Category
	Items    []*models.ItemSummary
}

type ItemListData struct {
	Title string
	Items []*models.Item
}

type ItemDetailData struct {
	Title string
	Item  *models.Item
}

type ItemFormData struct {
	Title      string
	Action     string
	Draft      *models.ItemDraft
	Categories []*models.Category
	Errors     forms.Violations
}

type ItemDeleteData struct {
	Title string
	Item  *models.Item
}

type ErrorData struct {
	Title   string
	Status  int
	Message string
}

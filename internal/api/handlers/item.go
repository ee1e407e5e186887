package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	appErrors "github.com/aaravmahajanofficial/catalog-manager/internal/errors"
	"github.com/aaravmahajanofficial/catalog-manager/internal/forms"
	"github.com/aaravmahajanofficial/catalog-manager/internal/models"
	service "github.com/aaravmahajanofficial/catalog-manager/internal/services"
	"github.com/aaravmahajanofficial/catalog-manager/internal/web"
	"golang.org/x/sync/errgroup"
)

// ItemHandler also depends on the category service: the item form needs
// the category list for its dropdown.
type ItemHandler struct {
	itemService     service.ItemService
	categoryService service.CategoryService
	renderer        *web.Renderer
}

func NewItemHandler(itemService service.ItemService, categoryService service.CategoryService, renderer *web.Renderer) *ItemHandler {
	return &ItemHandler{itemService: itemService, categoryService: categoryService, renderer: renderer}
}

func (h *ItemHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.itemService.ListItems(r.Context())
		if err != nil {
			slog.Error("Failed to fetch items", slog.String("error", err.Error()))
			h.renderer.RenderError(w, err)

			return
		}

		h.renderer.Render(w, http.StatusOK, "item_list", web.ItemListData{
			Title: "All Items",
			Items: items,
		})
	}
}

func (h *ItemHandler) Detail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.renderer.RenderError(w, err)

			return
		}

		item, err := h.itemService.GetItemWithCategory(r.Context(), id)
		if err != nil {
			h.renderer.RenderError(w, err)

			return
		}

		h.renderer.Render(w, http.StatusOK, "item_detail", web.ItemDetailData{
			Title: item.Name,
			Item:  item,
		})
	}
}

func (h *ItemHandler) CreateForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryService.ListCategories(r.Context())
		if err != nil {
			h.renderer.RenderError(w, err)

			return
		}

		h.renderer.Render(w, http.StatusOK, "item_form", web.ItemFormData{
			Title:      "Create Item",
			Action:     "/catalog/item/create",
			Draft:      &models.ItemDraft{},
			Categories: categories,
		})
	}
}

// renderItemForm re-renders a failed submission; the category dropdown is
// re-fetched because the submitted form only carries the selected id.
func (h *ItemHandler) renderItemForm(ctx context.Context, w http.ResponseWriter, title, action string, draft *models.ItemDraft, violations forms.Violations) {
	categories, err := h.categoryService.ListCategories(ctx)
	if err != nil {
		h.renderer.RenderError(w, err)

		return
	}

	h.renderer.Render(w, http.StatusOK, "item_form", web.ItemFormData{
		Title:      title,
		Action:     action,
		Draft:      draft,
		Categories: categories,
		Errors:     violations,
	})
}

func (h *ItemHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.renderer.RenderError(w, appErrors.BadRequestError("Malformed form submission").WithError(err))

			return
		}

		draft, violations := forms.ParseItemForm(r.PostForm)
		if len(violations) > 0 {
			h.renderItemForm(r.Context(), w, "Create Item", "/catalog/item/create", draft, violations)

			return
		}

		item, err := h.itemService.CreateItem(r.Context(), draft)
		if err != nil {
			slog.Error("Failed to create item", slog.String("error", err.Error()))
			h.renderer.RenderError(w, err)

			return
		}

		slog.Info("Item created", slog.String("itemId", item.ID.String()))
		http.Redirect(w, r, fmt.Sprintf("/catalog/item/%s", item.ID), http.StatusSeeOther)
	}
}

// UpdateForm composes the item and the category dropdown concurrently.
func (h *ItemHandler) UpdateForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.renderer.RenderError(w, err)

			return
		}

		var (
			item       *models.Item
			categories []*models.Category
		)

		g, gCtx := errgroup.WithContext(r.Context())

		g.Go(func() error {
			var err error
			item, err = h.itemService.GetItemWithCategory(gCtx, id)

			return err
		})

		g.Go(func() error {
			var err error
			categories, err = h.categoryService.ListCategories(gCtx)

			return err
		})

		if err := g.Wait(); err != nil {
			h.renderer.RenderError(w, err)

			return
		}

		h.renderer.Render(w, http.StatusOK, "item_form", web.ItemFormData{
			Title:  "Update Item",
			Action: fmt.Sprintf("/catalog/item/%s/update", item.ID),
			Draft: &models.ItemDraft{
				Name:        item.Name,
				Description: item.Description,
				Stock:       item.Stock,
				Price:       item.Price,
				CategoryID:  item.CategoryID.String(),
			},
			Categories: categories,
		})
	}
}

func (h *ItemHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.renderer.RenderError(w, err)

			return
		}

		if err := r.ParseForm(); err != nil {
			h.renderer.RenderError(w, appErrors.BadRequestError("Malformed form submission").WithError(err))

			return
		}

		draft, violations := forms.ParseItemForm(r.PostForm)
		if len(violations) > 0 {
			h.renderItemForm(r.Context(), w, "Update Item", fmt.Sprintf("/catalog/item/%s/update", id), draft, violations)

			return
		}

		item, err := h.itemService.UpdateItem(r.Context(), id, draft)
		if err != nil {
			slog.Error("Failed to update item", slog.String("error", err.Error()))
			h.renderer.RenderError(w, err)

			return
		}

		slog.Info("Item updated", slog.String("itemId", item.ID.String()))
		http.Redirect(w, r, fmt.Sprintf("/catalog/item/%s", item.ID), http.StatusSeeOther)
	}
}

func (h *ItemHandler) DeleteForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Redirect(w, r, "/catalog/item_list", http.StatusSeeOther)

			return
		}

		item, err := h.itemService.GetItemWithCategory(r.Context(), id)
		if err != nil {
			if appErr, ok := appErrors.IsAppError(err); ok && appErr.StatusCode == http.StatusNotFound {
				http.Redirect(w, r, "/catalog/item_list", http.StatusSeeOther)

				return
			}

			h.renderer.RenderError(w, err)

			return
		}

		h.renderer.Render(w, http.StatusOK, "item_delete", web.ItemDeleteData{
			Title: "Delete Item",
			Item:  item,
		})
	}
}

func (h *ItemHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.renderer.RenderError(w, err)

			return
		}

		if err := h.itemService.DeleteItem(r.Context(), id); err != nil {
			slog.Error("Failed to delete item", slog.String("error", err.Error()))
			h.renderer.RenderError(w, err)

			return
		}

		slog.Info("Item deleted", slog.String("itemId", id.String()))
		http.Redirect(w, r, "/catalog/item_list", http.StatusSeeOther)
	}
}

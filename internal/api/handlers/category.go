package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	appErrors "github.com/aaravmahajanofficial/catalog-manager/internal/errors"
	"github.com/aaravmahajanofficial/catalog-manager/internal/forms"
	"github.com/aaravmahajanofficial/catalog-manager/internal/metrics"
	"github.com/aaravmahajanofficial/catalog-manager/internal/models"
	service "github.com/aaravmahajanofficial/catalog-manager/internal/services"
	"github.com/aaravmahajanofficial/catalog-manager/internal/web"
	"github.com/google/uuid"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	renderer        *web.Renderer
}

func NewCategoryHandler(categoryService service.CategoryService, renderer *web.Renderer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, renderer: renderer}
}

// pathID reads the {id} segment. A malformed id behaves like a missing
// record, the url namespace simply holds nothing there.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, appErrors.NotFoundError("Record not found").WithError(err)
	}

	return id, nil
}

func (h *CategoryHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryService.ListCategories(r.Context())
		if err != nil {
			slog.Error("Failed to fetch categories", slog.String("error", err.Error()))
			h.renderer.RenderError(w, err)

			return
		}

		h.renderer.Render(w, http.StatusOK, "category_list", web.CategoryListData{
			Title:      "All Categories",
			Categories: categories,
		})
	}
}

func (h *CategoryHandler) Detail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.renderer.RenderError(w, err)

			return
		}

		category, items, err := h.categoryService.GetCategoryWithItems(r.Context(), id)
		if err != nil {
			h.renderer.RenderError(w, err)

			return
		}

		h.renderer.Render(w, http.StatusOK, "category_detail", web.CategoryDetailData{
			Title:    category.Name,
			Category: category,
			Items:    items,
		})
	}
}

func (h *CategoryHandler) CreateForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.renderer.Render(w, http.StatusOK, "category_form", web.CategoryFormData{
			Title:  "Create Category",
			Action: "/catalog/category/create",
			Draft:  &models.CategoryDraft{},
		})
	}
}

func (h *CategoryHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			h.renderer.RenderError(w, appErrors.BadRequestError("Malformed form submission").WithError(err))

			return
		}

		draft, violations := forms.ParseCategoryForm(r.PostForm)
		if len(violations) > 0 {
			h.renderer.Render(w, http.StatusOK, "category_form", web.CategoryFormData{
				Title:  "Create Category",
				Action: "/catalog/category/create",
				Draft:  draft,
				Errors: violations,
			})

			return
		}

		category, err := h.categoryService.CreateCategory(r.Context(), draft)
		if err != nil {
			slog.Error("Failed to create category", slog.String("error", err.Error()))
			h.renderer.RenderError(w, err)

			return
		}

		slog.Info("Category created", slog.String("categoryId", category.ID.String()))
		http.Redirect(w, r, fmt.Sprintf("/catalog/category/%s", category.ID), http.StatusSeeOther)
	}
}

func (h *CategoryHandler) UpdateForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.renderer.RenderError(w, err)

			return
		}

		category, err := h.categoryService.GetCategory(r.Context(), id)
		if err != nil {
			h.renderer.RenderError(w, err)

			return
		}

		h.renderer.Render(w, http.StatusOK, "category_form", web.CategoryFormData{
			Title:  "Update Category",
			Action: fmt.Sprintf("/catalog/category/%s/update", category.ID),
			Draft: &models.CategoryDraft{
				Name:        category.Name,
				Description: category.Description,
			},
		})
	}
}

func (h *CategoryHandler) Update() http.HandlerFunc {
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

		draft, violations := forms.ParseCategoryForm(r.PostForm)
		if len(violations) > 0 {
			h.renderer.Render(w, http.StatusOK, "category_form", web.CategoryFormData{
				Title:  "Update Category",
				Action: fmt.Sprintf("/catalog/category/%s/update", id),
				Draft:  draft,
				Errors: violations,
			})

			return
		}

		category, err := h.categoryService.UpdateCategory(r.Context(), id, draft)
		if err != nil {
			slog.Error("Failed to update category", slog.String("error", err.Error()))
			h.renderer.RenderError(w, err)

			return
		}

		slog.Info("Category updated", slog.String("categoryId", category.ID.String()))
		http.Redirect(w, r, fmt.Sprintf("/catalog/category/%s", category.ID), http.StatusSeeOther)
	}
}

// DeleteForm shows the confirmation page, or the blocking items when the
// category still has any. A vanished category sends the user back to the
// list instead of a dead confirmation page.
func (h *CategoryHandler) DeleteForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			http.Redirect(w, r, "/catalog/categories", http.StatusSeeOther)

			return
		}

		category, items, err := h.categoryService.GetCategoryWithItems(r.Context(), id)
		if err != nil {
			if appErr, ok := appErrors.IsAppError(err); ok && appErr.StatusCode == http.StatusNotFound {
				http.Redirect(w, r, "/catalog/categories", http.StatusSeeOther)

				return
			}

			h.renderer.RenderError(w, err)

			return
		}

		h.renderer.Render(w, http.StatusOK, "category_delete", web.CategoryDeleteData{
			Title:    "Delete Category",
			Category: category,
			Items:    items,
		})
	}
}

func (h *CategoryHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			h.renderer.RenderError(w, err)

			return
		}

		blocking, err := h.categoryService.DeleteCategory(r.Context(), id)
		if err != nil {
			slog.Error("Failed to delete category", slog.String("error", err.Error()))
			h.renderer.RenderError(w, err)

			return
		}

		if len(blocking) > 0 {
			metrics.ObserveDeleteConflict()

			category, getErr := h.categoryService.GetCategory(r.Context(), id)
			if getErr != nil {
				h.renderer.RenderError(w, getErr)

				return
			}

			h.renderer.Render(w, http.StatusOK, "category_delete", web.CategoryDeleteData{
				Title:    "Delete Category",
				Category: category,
				Items:    blocking,
			})

			return
		}

		slog.Info("Category deleted", slog.String("categoryId", id.String()))
		http.Redirect(w, r, "/catalog/categories", http.StatusSeeOther)
	}
}

package main

import (
	"errors"
	"net/http"
	"strconv"

	"gather/internal/store"

	"github.com/go-chi/chi/v5"
)

type CreateCategoryPayload struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Icon        string `json:"icon" validate:"omitempty,max=100"`
}

// createCategoryHandler godoc
//
//	@Summary		Creates a category
//	@Description	Creates an event category. Names are unique.
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			payload	body		CreateCategoryPayload	true	"Category details"
//	@Success		201		{object}	store.Category
//	@Failure		400		{object}	error
//	@Failure		409		{object}	error	"Name already taken"
//	@Router			/categories [post]
func (app *application) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateCategoryPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	category := &store.Category{
		Name:        payload.Name,
		Description: payload.Description,
		Icon:        payload.Icon,
	}

	if err := app.store.Categories.Create(r.Context(), category); err != nil {
		switch {
		case errors.Is(err, store.ErrConflict):
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, category); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCategoriesHandler godoc
//
//	@Summary		Lists categories
//	@Tags			categories
//	@Produce		json
//	@Param			search	query		string	false	"Filter by name"
//	@Success		200		{array}		store.Category
//	@Failure		500		{object}	error
//	@Router			/categories [get]
func (app *application) getCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	categories, err := app.store.Categories.List(r.Context(), search)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, categories); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getCategoryHandler godoc
//
//	@Summary		Category detail
//	@Tags			categories
//	@Produce		json
//	@Param			categoryID	path		int	true	"Category ID"
//	@Success		200			{object}	store.Category
//	@Failure		400			{object}	error
//	@Failure		404			{object}	error
//	@Router			/categories/{categoryID} [get]
func (app *application) getCategoryHandler(w http.ResponseWriter, r *http.Request) {
	categoryID, err := strconv.ParseInt(chi.URLParam(r, "categoryID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid category ID"))
		return
	}

	category, err := app.store.Categories.GetByID(r.Context(), categoryID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, category); err != nil {
		app.internalServerError(w, r, err)
	}
}

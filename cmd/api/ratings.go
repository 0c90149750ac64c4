package main

import (
	"errors"
	"net/http"
	"strconv"

	"gather/internal/store"

	"github.com/go-chi/chi/v5"
)

type RateEventPayload struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=500"`
}

// rateEventHandler godoc
//
//	@Summary		Rates an event
//	@Description	Submits a 1 to 5 rating with an optional comment. Rating the same event again replaces the previous rating.
//	@Tags			ratings
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			eventID	path		int					true	"Event ID"
//	@Param			payload	body		RateEventPayload	true	"Rating"
//	@Success		200		{object}	store.RatingSummary
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Router			/events/{eventID}/rate [post]
func (app *application) rateEventHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid event ID"))
		return
	}

	var payload RateEventPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := getUserFromContext(r)

	rating := &store.Rating{
		EventID: eventID,
		UserID:  user.ID,
		Value:   payload.Rating,
		Comment: payload.Comment,
	}

	summary, err := app.store.Ratings.Upsert(r.Context(), rating)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, summary); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getEventRatingsHandler godoc
//
//	@Summary		Lists an event's ratings
//	@Tags			ratings
//	@Produce		json
//	@Param			eventID	path		int	true	"Event ID"
//	@Success		200		{array}		store.Rating
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Router			/events/{eventID}/ratings [get]
func (app *application) getEventRatingsHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid event ID"))
		return
	}

	if _, err := app.store.Events.GetByID(r.Context(), eventID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	ratings, err := app.store.Ratings.ListByEvent(r.Context(), eventID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, ratings); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOwnRatingsHandler godoc
//
//	@Summary		Lists the caller's ratings
//	@Tags			ratings
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200	{array}		store.Rating
//	@Failure		401	{object}	error
//	@Failure		500	{object}	error
//	@Router			/ratings [get]
func (app *application) getOwnRatingsHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	ratings, err := app.store.Ratings.ListByUser(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, ratings); err != nil {
		app.internalServerError(w, r, err)
	}
}

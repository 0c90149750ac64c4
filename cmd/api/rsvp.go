package main

import (
	"errors"
	"net/http"
	"strconv"

	"gather/internal/store"

	"github.com/go-chi/chi/v5"
)

// toggleRSVPHandler godoc
//
//	@Summary		Toggles an RSVP
//	@Description	Confirms attendance on the first call and flips between confirmed and cancelled on subsequent calls. Rejects events that already ended and events at capacity.
//	@Tags			rsvps
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			eventID	path		int	true	"Event ID"
//	@Success		200		{object}	store.ToggleResult
//	@Failure		400		{object}	error	"Event already ended"
//	@Failure		404		{object}	error
//	@Failure		409		{object}	error	"Event is full"
//	@Router			/events/{eventID}/rsvp [post]
func (app *application) toggleRSVPHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid event ID"))
		return
	}

	user := getUserFromContext(r)

	result, err := app.store.RSVPs.Toggle(r.Context(), eventID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		case errors.Is(err, store.ErrEventEnded):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, store.ErrEventFull):
			app.conflictResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, result); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOwnRSVPsHandler godoc
//
//	@Summary		Lists the caller's RSVPs
//	@Tags			rsvps
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200	{array}		store.RSVP
//	@Failure		401	{object}	error
//	@Failure		500	{object}	error
//	@Router			/rsvps [get]
func (app *application) getOwnRSVPsHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	rsvps, err := app.store.RSVPs.ListByUser(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, rsvps); err != nil {
		app.internalServerError(w, r, err)
	}
}

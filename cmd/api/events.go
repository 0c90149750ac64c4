package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gather/internal/params"
	"gather/internal/store"

	"github.com/go-chi/chi/v5"
)

type CreateEventPayload struct {
	Title       string    `json:"title" validate:"required,max=255"`
	Description string    `json:"description" validate:"required"`
	CategoryID  int64     `json:"category_id" validate:"required"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	Location    string    `json:"location" validate:"required,max=255"`
	Latitude    *float64  `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64  `json:"longitude" validate:"omitempty,longitude"`
	Capacity    *int      `json:"capacity" validate:"omitempty,min=1"`
	Price       float64   `json:"price" validate:"gte=0"`
	Status      string    `json:"status" validate:"omitempty,oneof=draft published cancelled completed"`
}

// createEventHandler godoc
//
//	@Summary		Creates an event
//	@Description	Creates an event hosted by the authenticated user. Omit capacity for unlimited attendance.
//	@Tags			events
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			payload	body		CreateEventPayload	true	"Event details"
//	@Success		201		{object}	store.Event
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Failure		500		{object}	error
//	@Router			/events [post]
func (app *application) createEventHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateEventPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := getUserFromContext(r)

	event := &store.Event{
		Title:       payload.Title,
		Description: payload.Description,
		CategoryID:  payload.CategoryID,
		HostID:      user.ID,
		StartDate:   payload.StartDate,
		EndDate:     payload.EndDate,
		Location:    payload.Location,
		Latitude:    payload.Latitude,
		Longitude:   payload.Longitude,
		Capacity:    payload.Capacity,
		Price:       payload.Price,
		Status:      store.EventStatus(payload.Status),
	}

	if err := app.store.Events.Create(r.Context(), event); err != nil {
		switch {
		case errors.Is(err, store.ErrEndBeforeStart):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, store.ErrUnknownCategory):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, event); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getEventsHandler godoc
//
//	@Summary		Lists events
//	@Description	Lists events with optional filters: upcoming, category, status, search, lat/lng/radius, sort and order
//	@Tags			events
//	@Produce		json
//	@Param			upcoming	query		bool	false	"Only events that have not started yet"
//	@Param			search		query		string	false	"Text search over title, description and location"
//	@Param			lat			query		number	false	"Latitude for the location filter"
//	@Param			lng			query		number	false	"Longitude for the location filter"
//	@Param			radius		query		number	false	"Radius in kilometers (default 10)"
//	@Success		200			{object}	map[string]any
//	@Failure		400			{object}	error
//	@Failure		500			{object}	error
//	@Router			/events [get]
func (app *application) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	p := params.ParsePagination(r.URL.Query())

	fq := store.EventFilterQuery{
		Limit:  p.Limit,
		Offset: p.Offset,
		Sort:   "start_date",
		Order:  "desc",
		Radius: store.DefaultRadiusKm,
	}

	fq, err := fq.Parse(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(fq); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	events, total, err := app.store.Events.List(r.Context(), fq)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	p.ComputeMeta(total)

	response := map[string]any{
		"events":     events,
		"pagination": p,
	}

	if err := app.jsonResponse(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getEventHandler godoc
//
//	@Summary		Event detail
//	@Tags			events
//	@Produce		json
//	@Param			eventID	path		int	true	"Event ID"
//	@Success		200		{object}	store.Event
//	@Failure		400		{object}	error
//	@Failure		404		{object}	error
//	@Router			/events/{eventID} [get]
func (app *application) getEventHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid event ID"))
		return
	}

	event, err := app.store.Events.GetByID(r.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, event); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateEventPayload struct {
	Title       *string    `json:"title" validate:"omitempty,max=255"`
	Description *string    `json:"description" validate:"omitempty"`
	CategoryID  *int64     `json:"category_id"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Location    *string    `json:"location" validate:"omitempty,max=255"`
	Latitude    *float64   `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64   `json:"longitude" validate:"omitempty,longitude"`
	Capacity    *int       `json:"capacity" validate:"omitempty,min=1"`
	Price       *float64   `json:"price" validate:"omitempty,gte=0"`
	Status      *string    `json:"status" validate:"omitempty,oneof=draft published cancelled completed"`
}

// updateEventHandler godoc
//
//	@Summary		Updates an event
//	@Description	Partially updates a hosted event. Capacity may not drop below the confirmed RSVP count.
//	@Tags			events
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			eventID	path		int					true	"Event ID"
//	@Param			payload	body		UpdateEventPayload	true	"Fields to update"
//	@Success		200		{object}	store.Event
//	@Failure		400		{object}	error
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Failure		409		{object}	error
//	@Router			/events/{eventID} [patch]
func (app *application) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid event ID"))
		return
	}

	var payload UpdateEventPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	event, err := app.store.Events.GetByID(r.Context(), eventID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if payload.Title != nil {
		event.Title = *payload.Title
	}
	if payload.Description != nil {
		event.Description = *payload.Description
	}
	if payload.CategoryID != nil {
		event.CategoryID = *payload.CategoryID
	}
	if payload.StartDate != nil {
		event.StartDate = *payload.StartDate
	}
	if payload.EndDate != nil {
		event.EndDate = *payload.EndDate
	}
	if payload.Location != nil {
		event.Location = *payload.Location
	}
	if payload.Latitude != nil {
		event.Latitude = payload.Latitude
	}
	if payload.Longitude != nil {
		event.Longitude = payload.Longitude
	}
	if payload.Capacity != nil {
		event.Capacity = payload.Capacity
	}
	if payload.Price != nil {
		event.Price = *payload.Price
	}
	if payload.Status != nil {
		event.Status = store.EventStatus(*payload.Status)
	}

	if err := app.store.Events.Update(r.Context(), event); err != nil {
		switch {
		case errors.Is(err, store.ErrEndBeforeStart):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, store.ErrCapacityBelowRSVP):
			app.conflictResponse(w, r, err)
		case errors.Is(err, store.ErrUnknownCategory):
			app.notFoundResponse(w, r, err)
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, event); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteEventHandler godoc
//
//	@Summary		Deletes an event
//	@Tags			events
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			eventID	path		int	true	"Event ID"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	error
//	@Failure		403		{object}	error
//	@Failure		404		{object}	error
//	@Router			/events/{eventID} [delete]
func (app *application) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid event ID"))
		return
	}

	user := getUserFromContext(r)

	if err := app.store.Events.Delete(r.Context(), eventID, user.ID); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "event deleted"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

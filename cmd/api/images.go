package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"gather/internal/store"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/go-chi/chi/v5"
)

const maxEventPhotos = 5

// uploadEventPhotoHandler godoc
//
//	@Summary		Uploads event photos
//	@Description	Accepts up to five JPEG or PNG files under the "photos" form field and appends their URLs to the event.
//	@Tags			events
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			eventID	path		int		true	"Event ID"
//	@Param			photos	formData	file	true	"Photo files"
//	@Success		200		{object}	map[string]any
//	@Failure		400		{object}	error
//	@Failure		403		{object}	error
//	@Router			/events/{eventID}/photos [post]
func (app *application) uploadEventPhotoHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid event ID"))
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		app.badRequestResponse(w, r, errors.New("unable to parse form, file size limit is 10MB"))
		return
	}

	files := r.MultipartForm.File["photos"]
	if len(files) == 0 {
		app.badRequestResponse(w, r, errors.New("no photos provided"))
		return
	}
	if len(files) > maxEventPhotos {
		app.badRequestResponse(w, r, fmt.Errorf("at most %d photos per upload", maxEventPhotos))
		return
	}

	urls := make([]string, 0, len(files))
	for i, fileHeader := range files {
		contentType := fileHeader.Header.Get("Content-Type")
		if contentType != "image/jpeg" && contentType != "image/png" {
			app.badRequestResponse(w, r, errors.New("only JPEG and PNG images are allowed"))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			app.badRequestResponse(w, r, errors.New("unable to retrieve file"))
			return
		}

		uploadParams := uploader.UploadParams{
			PublicID:       fmt.Sprintf("event_%d_%d", eventID, i),
			Folder:         "events",
			Transformation: "w_1200,c_limit,q_auto",
		}

		uploadResult, err := app.cld.Upload.Upload(r.Context(), file, uploadParams)
		file.Close()
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}

		if err := app.store.Events.AddPhotoURL(r.Context(), eventID, uploadResult.SecureURL); err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				app.notFoundResponse(w, r, err)
			default:
				app.internalServerError(w, r, err)
			}
			return
		}

		urls = append(urls, uploadResult.SecureURL)
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]any{"photo_urls": urls}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteEventPhotoHandler godoc
//
//	@Summary		Removes an event photo
//	@Description	Removes the photo URL given in the photo_url query parameter from the event.
//	@Tags			events
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			eventID		path		int		true	"Event ID"
//	@Param			photo_url	query		string	true	"Photo URL to remove"
//	@Success		200			{object}	map[string]string
//	@Failure		400			{object}	error
//	@Failure		403			{object}	error
//	@Failure		404			{object}	error
//	@Router			/events/{eventID}/photos [delete]
func (app *application) deleteEventPhotoHandler(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, errors.New("invalid event ID"))
		return
	}

	photoURL := r.URL.Query().Get("photo_url")
	if photoURL == "" {
		app.badRequestResponse(w, r, errors.New("photo_url query parameter is required"))
		return
	}

	if err := app.store.Events.RemovePhotoURL(r.Context(), eventID, photoURL); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "photo removed"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

package main

import (
	"errors"
	"fmt"
	"net/http"

	"gather/internal/store"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// getProfileHandler godoc
//
//	@Summary		Caller's profile
//	@Description	Returns the caller's profile, creating an empty one on first access.
//	@Tags			profile
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Success		200	{object}	store.Profile
//	@Failure		401	{object}	error
//	@Failure		500	{object}	error
//	@Router			/profile [get]
func (app *application) getProfileHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	profile, err := app.store.Profiles.GetOrCreate(r.Context(), user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, profile); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateProfilePayload struct {
	Bio       *string  `json:"bio" validate:"omitempty,max=500"`
	Phone     *string  `json:"phone" validate:"omitempty,max=20"`
	Location  *string  `json:"location" validate:"omitempty,max=255"`
	Interests *[]int64 `json:"interests" validate:"omitempty,dive,gt=0"`
}

// updateProfileHandler godoc
//
//	@Summary		Updates the caller's profile
//	@Description	Partially updates bio, phone, location and the interest category set.
//	@Tags			profile
//	@Accept			json
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			payload	body		UpdateProfilePayload	true	"Fields to update"
//	@Success		200		{object}	store.Profile
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Router			/profile [patch]
func (app *application) updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var payload UpdateProfilePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user := getUserFromContext(r)
	ctx := r.Context()

	profile, err := app.store.Profiles.GetOrCreate(ctx, user.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if payload.Bio != nil {
		profile.Bio = store.NewNullString(*payload.Bio)
	}
	if payload.Phone != nil {
		profile.Phone = store.NewNullString(*payload.Phone)
	}
	if payload.Location != nil {
		profile.Location = store.NewNullString(*payload.Location)
	}

	if err := app.store.Profiles.Update(ctx, profile); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if payload.Interests != nil {
		if err := app.store.Profiles.SetInterests(ctx, user.ID, *payload.Interests); err != nil {
			app.internalServerError(w, r, err)
			return
		}

		// re-read so the response carries the new interest set
		profile, err = app.store.Profiles.GetOrCreate(ctx, user.ID)
		if err != nil {
			app.internalServerError(w, r, err)
			return
		}
	}

	if err := app.jsonResponse(w, http.StatusOK, profile); err != nil {
		app.internalServerError(w, r, err)
	}
}

// uploadAvatarHandler godoc
//
//	@Summary		Uploads a profile avatar
//	@Description	Accepts a JPEG or PNG under the "avatar" form field and stores it on Cloudinary.
//	@Tags			profile
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		ApiKeyAuth
//	@Param			avatar	formData	file	true	"Avatar image"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	error
//	@Failure		401		{object}	error
//	@Router			/profile/avatar [post]
func (app *application) uploadAvatarHandler(w http.ResponseWriter, r *http.Request) {
	user := getUserFromContext(r)

	if err := r.ParseMultipartForm(2 << 20); err != nil {
		app.badRequestResponse(w, r, errors.New("unable to parse form, file size limit is 2MB"))
		return
	}

	file, fileHeader, err := r.FormFile("avatar")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("unable to retrieve file"))
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		app.badRequestResponse(w, r, errors.New("only JPEG and PNG images are allowed"))
		return
	}

	overwrite := true
	uploadParams := uploader.UploadParams{
		PublicID:       fmt.Sprintf("avatar_%d", user.ID),
		Overwrite:      &overwrite,
		Folder:         "avatars",
		Transformation: "w_300,h_300,c_fill,q_auto",
	}

	uploadResult, err := app.cld.Upload.Upload(r.Context(), file, uploadParams)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.store.Profiles.SetAvatar(r.Context(), user.ID, uploadResult.SecureURL); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"avatar_url": uploadResult.SecureURL}); err != nil {
		app.internalServerError(w, r, err)
	}
}

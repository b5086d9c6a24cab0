package handlers

import (
	"io"
	"net/http"

	"github.com/folioforge/engine/internal/api/middleware"
	"github.com/folioforge/engine/internal/api/types"
	"github.com/folioforge/engine/internal/services"
)

type ProfileHandler struct {
	profiles services.ProfileService
}

func NewProfileHandler(profiles services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.profiles.Get(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: u})
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req types.ProfileUpdateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.profiles.Update(r.Context(), middleware.GetUserID(r.Context()), &services.UpdateProfileInput{
		Name:     req.Name,
		Headline: req.Headline,
		Bio:      req.Bio,
		Location: req.Location,
		Phone:    req.Phone,
		Website:  req.Website,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: u})
}

// UploadAvatar accepts a multipart "avatar" file and returns the stored data
// URL. The size is capped before reading the whole body into memory.
func (h *ProfileHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, services.MaxAvatarBytes+4096)
	if err := r.ParseMultipartForm(services.MaxAvatarBytes); err != nil {
		writeInvalid(w, "avatar must be at most 2 MiB")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		writeInvalid(w, "missing avatar file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeInvalid(w, "unreadable avatar file")
		return
	}

	dataURL, err := h.profiles.SetAvatar(r.Context(), middleware.GetUserID(r.Context()), header.Header.Get("Content-Type"), data)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]string{"avatar": dataURL}})
}

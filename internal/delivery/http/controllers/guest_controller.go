package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "weddinginvites/internal/delivery/http/helpers"
	"weddinginvites/internal/domain"
)

const (
	// CSVFormField is the multipart field carrying the guest list file.
	CSVFormField = "csvFile"
	// maxUploadBytes bounds a CSV upload; parts above maxMemoryBytes spill to a temp file.
	maxUploadBytes = 10 << 20
	maxMemoryBytes = 1 << 20
)

// ImportGuestsResponse is the data payload for POST /api/guests/import
type ImportGuestsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// ImportGuestsSuccessResponse is the success envelope for POST /api/guests/import (200).
type ImportGuestsSuccessResponse struct {
	Data  ImportGuestsResponse `json:"data"`
	Error *h.APIError          `json:"error"`
}

// ListGuestsSuccessResponse is the success envelope for GET /api/guests (200).
type ListGuestsSuccessResponse struct {
	Data  h.Page[*domain.Guest] `json:"data"`
	Error *h.APIError           `json:"error"`
}

// SaveImageRequest is the request body for PUT /api/guests/{guestID}/image
type SaveImageRequest struct {
	Image string `json:"image" validate:"required"`
}

// SaveInvitationTextRequest is the request body for PUT /api/guests/{guestID}/invitation-text
type SaveInvitationTextRequest struct {
	InvitationText string `json:"invitation_text" validate:"required"`
}

type GuestController struct {
	Logger  *slog.Logger
	Service domain.GuestService
}

func NewGuestController(logger *slog.Logger, svc domain.GuestService) *GuestController {
	return &GuestController{
		Logger:  logger,
		Service: svc,
	}
}

// ImportGuests godoc
// @Summary Import guests from CSV
// @Description Upload a CSV file in the csvFile field. Columns are read positionally as name, email, relation, interest; header rows and rows missing a name or email are skipped.
// @Tags guests
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param csvFile formData file true "Guest list CSV"
// @Success 200 {object} controllers.ImportGuestsSuccessResponse "data contains the inserted row count"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (no file or no valid rows)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/guests/import [post]
func (c *GuestController) ImportGuests(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxMemoryBytes); err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "no file received")
		return
	}
	// removes any temp file the upload spilled to, on every return path
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, _, err := r.FormFile(CSVFormField)
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "no file received")
		return
	}
	defer file.Close()

	count, err := c.Service.ImportCSV(r.Context(), file)
	if err != nil {
		if errors.Is(err, domain.ErrNoValidRows) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "no valid rows")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "failed to store guests")
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, ImportGuestsResponse{Success: true, Message: "import succeeded", Count: count})
}

// ListGuests godoc
// @Summary List guests
// @Description Paginated guest list, newest first.
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 50, max 500)"
// @Success 200 {object} controllers.ListGuestsSuccessResponse "data contains items and pagination"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/guests [get]
func (c *GuestController) ListGuests(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)
	guests, total, err := c.Service.List(r.Context(), params)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "failed to list guests")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, h.NewPage(guests, params, total))
}

// DeleteGuest godoc
// @Summary Delete a guest
// @Tags guests
// @Security BearerAuth
// @Param guestID path string true "Guest ID (UUID)"
// @Success 204 "No Content"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/guests/{guestID} [delete]
func (c *GuestController) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("guestID")); err != nil {
		c.writeGuestError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SaveImage godoc
// @Summary Store a guest's invitation image
// @Description Attach the rendered invitation image (a base64 data URL) to a guest. The image is mailed inline on dispatch.
// @Tags guests
// @Accept json
// @Security BearerAuth
// @Param guestID path string true "Guest ID (UUID)"
// @Param body body SaveImageRequest true "Image data URL"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/guests/{guestID}/image [put]
func (c *GuestController) SaveImage(w http.ResponseWriter, r *http.Request) {
	var req SaveImageRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.SaveInvitationImage(r.Context(), r.PathValue("guestID"), req.Image); err != nil {
		c.writeGuestError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SaveInvitationText godoc
// @Summary Store a guest's invitation text
// @Tags guests
// @Accept json
// @Security BearerAuth
// @Param guestID path string true "Guest ID (UUID)"
// @Param body body SaveInvitationTextRequest true "Invitation text"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/guests/{guestID}/invitation-text [put]
func (c *GuestController) SaveInvitationText(w http.ResponseWriter, r *http.Request) {
	var req SaveInvitationTextRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.SaveInvitationText(r.Context(), r.PathValue("guestID"), req.InvitationText); err != nil {
		c.writeGuestError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *GuestController) writeGuestError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "guest not found")
	case errors.Is(err, domain.ErrInvalidInput):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal error")
	}
}

package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "weddinginvites/internal/delivery/http/helpers"
	"weddinginvites/internal/domain"
)

// GenerateProgrammeRequest is the request body for POST /api/programme
type GenerateProgrammeRequest struct {
	Style string `json:"style" validate:"required"`
}

// ProgrammeResponse is the data payload for POST /api/programme
type ProgrammeResponse struct {
	Success bool   `json:"success"`
	Program string `json:"program"`
}

// ProgrammeSuccessResponse is the success envelope for POST /api/programme (200).
type ProgrammeSuccessResponse struct {
	Data  ProgrammeResponse `json:"data"`
	Error *h.APIError       `json:"error"`
}

type ProgrammeController struct {
	Logger  *slog.Logger
	Service domain.ProgrammeService
}

func NewProgrammeController(logger *slog.Logger, svc domain.ProgrammeService) *ProgrammeController {
	return &ProgrammeController{
		Logger:  logger,
		Service: svc,
	}
}

// Generate godoc
// @Summary Generate the wedding programme
// @Description Builds an HTML timetable from the wedding style and the deduplicated interests of all guests. Either the full programme is returned or the request fails with 500.
// @Tags programme
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body GenerateProgrammeRequest true "Wedding style"
// @Success 200 {object} controllers.ProgrammeSuccessResponse "data contains success and program"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/programme [post]
func (c *ProgrammeController) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateProgrammeRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	program, err := c.Service.Generate(r.Context(), req.Style)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		case errors.Is(err, domain.ErrGenerationFailed):
			c.Logger.WarnContext(r.Context(), "programme generation failed", "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "programme generation failed")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal error")
		}
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, ProgrammeResponse{Success: true, Program: program})
}

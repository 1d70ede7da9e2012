package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "weddinginvites/internal/delivery/http/helpers"
	"weddinginvites/internal/domain"
)

// EventDetailsRequest carries the wedding parameters shared by every invitation.
type EventDetailsRequest struct {
	Groom string `json:"groom" validate:"required"`
	Bride string `json:"bride" validate:"required"`
	Date  string `json:"date" validate:"required"`
	Place string `json:"place" validate:"required"`
	Tone  string `json:"tone"`
}

func (e EventDetailsRequest) details() domain.EventDetails {
	return domain.EventDetails{Groom: e.Groom, Bride: e.Bride, Date: e.Date, Place: e.Place, Tone: e.Tone}
}

// BatchGenerateRequest is the request body for POST /api/invitations/batch.
// GuestIDs is optional; when empty every guest is included.
type BatchGenerateRequest struct {
	EventDetailsRequest
	GuestIDs []string `json:"guest_ids" validate:"omitempty,dive,uuid"`
}

// BatchGenerateSuccessResponse is the success envelope for POST /api/invitations/batch (200).
// Entries whose generation failed carry the text "generation failed".
type BatchGenerateSuccessResponse struct {
	Data  []*domain.GeneratedInvitation `json:"data"`
	Error *h.APIError                   `json:"error"`
}

// GenerateInvitationResponse is the data payload for POST /api/invitations/generate
type GenerateInvitationResponse struct {
	InvitationText string `json:"invitation_text"`
}

// GenerateInvitationSuccessResponse is the success envelope for POST /api/invitations/generate (200).
type GenerateInvitationSuccessResponse struct {
	Data  GenerateInvitationResponse `json:"data"`
	Error *h.APIError                `json:"error"`
}

// SendTestRequest is the request body for POST /api/invitations/send-test
type SendTestRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Sender  string `json:"sender" validate:"required"`
	Subject string `json:"subject" validate:"required"`
}

// SendTestResponse is the data payload for POST /api/invitations/send-test
type SendTestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type InvitationController struct {
	Logger   *slog.Logger
	Service  domain.InvitationService
	Dispatch domain.DispatchService
}

func NewInvitationController(logger *slog.Logger, svc domain.InvitationService, dispatch domain.DispatchService) *InvitationController {
	return &InvitationController{
		Logger:   logger,
		Service:  svc,
		Dispatch: dispatch,
	}
}

// BatchGenerate godoc
// @Summary Generate invitations for many guests
// @Description Generates one personalized invitation per guest. The result always has one entry per selected guest in guest-list order; a guest whose generation failed gets the text "generation failed" instead of being dropped.
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BatchGenerateRequest true "Wedding details and optional guest subset"
// @Success 200 {object} controllers.BatchGenerateSuccessResponse "data contains one entry per guest"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/invitations/batch [post]
func (c *InvitationController) BatchGenerate(w http.ResponseWriter, r *http.Request) {
	var req BatchGenerateRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	results, err := c.Service.GenerateBatch(r.Context(), req.details(), req.GuestIDs)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "failed to read guest list")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, results)
}

// GenerateOne godoc
// @Summary Generate a single invitation
// @Description Generates one invitation that is not addressed to a particular guest. There is no partial result: a generation failure is a 500.
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EventDetailsRequest true "Wedding details"
// @Success 200 {object} controllers.GenerateInvitationSuccessResponse "data contains invitation_text"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/invitations/generate [post]
func (c *InvitationController) GenerateOne(w http.ResponseWriter, r *http.Request) {
	var req EventDetailsRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	text, err := c.Service.GenerateOne(r.Context(), req.details())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
		case errors.Is(err, domain.ErrGenerationFailed):
			c.Logger.WarnContext(r.Context(), "invitation generation failed", "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "invitation generation failed")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal error")
		}
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, GenerateInvitationResponse{InvitationText: text})
}

// SendTest godoc
// @Summary Send a test invitation
// @Description Mails the most recently stored guest invitation image to one address and waits for the transport result.
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SendTestRequest true "Test recipient"
// @Success 200 {object} helpers.APIResponse "data contains success and message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (also when no guest has an image)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/invitations/send-test [post]
func (c *InvitationController) SendTest(w http.ResponseWriter, r *http.Request) {
	var req SendTestRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	to := strings.TrimSpace(req.Email)
	if err := c.Dispatch.SendTest(r.Context(), to, req.Sender, req.Subject); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "test email could not be sent")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, SendTestResponse{Success: true, Message: "test invitation sent to " + to})
}

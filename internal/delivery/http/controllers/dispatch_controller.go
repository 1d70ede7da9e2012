package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	h "weddinginvites/internal/delivery/http/helpers"
	"weddinginvites/internal/domain"
)

// sendTimeLayouts are tried in order. The zoneless forms come from
// datetime-local inputs and are read in the server's local time zone.
var sendTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// SendInvitationsRequest is the request body for POST /api/invitations/send.
// SendTime is optional; absent or empty means send immediately. Past times
// are accepted and fire immediately.
type SendInvitationsRequest struct {
	Sender   string `json:"sender" validate:"required"`
	Subject  string `json:"subject" validate:"required"`
	SendTime string `json:"sendTime"`
}

// Validate implements Validator.
func (s SendInvitationsRequest) Validate() []string {
	if _, err := parseSendTime(s.SendTime); err != nil {
		return []string{err.Error()}
	}
	return nil
}

func parseSendTime(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range sendTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("sendTime %q is not a valid date-time", s)
}

// DispatchAckSuccessResponse is the success envelope for POST /api/invitations/send (202).
type DispatchAckSuccessResponse struct {
	Data  *domain.DispatchAck `json:"data"`
	Error *h.APIError         `json:"error"`
}

// PendingJobsSuccessResponse is the success envelope for GET /api/dispatch/jobs (200).
type PendingJobsSuccessResponse struct {
	Data  []*domain.DispatchJob `json:"data"`
	Error *h.APIError           `json:"error"`
}

type DispatchController struct {
	Logger  *slog.Logger
	Service domain.DispatchService
}

func NewDispatchController(logger *slog.Logger, svc domain.DispatchService) *DispatchController {
	return &DispatchController{
		Logger:  logger,
		Service: svc,
	}
}

// SendInvitations godoc
// @Summary Send invitations to every guest
// @Description Schedules one mail per guest that has an invitation image or text, at sendTime or immediately. Returns before any mail is sent; status is "scheduled" when sendTime was given and "sent_now" otherwise. Delivery failures are only logged and recorded in the dispatch log.
// @Tags dispatch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SendInvitationsRequest true "Sender display name, subject and optional send time (RFC 3339 or YYYY-MM-DDTHH:MM)"
// @Success 202 {object} controllers.DispatchAckSuccessResponse "data contains status, message and the scheduled jobs"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/invitations/send [post]
func (c *DispatchController) SendInvitations(w http.ResponseWriter, r *http.Request) {
	var req SendInvitationsRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	sendTime, _ := parseSendTime(req.SendTime)
	ack, err := c.Service.SendInvitations(r.Context(), domain.DispatchRequest{
		SenderName: req.Sender,
		Subject:    req.Subject,
		SendTime:   sendTime,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "failed to read guest list")
		return
	}
	h.WriteJSONSuccess(w, http.StatusAccepted, ack)
}

// ListPendingJobs godoc
// @Summary List pending dispatch jobs
// @Description Jobs that have not fired yet, earliest first. Jobs are held in memory and are lost on restart.
// @Tags dispatch
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.PendingJobsSuccessResponse "data contains the pending jobs"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /api/dispatch/jobs [get]
func (c *DispatchController) ListPendingJobs(w http.ResponseWriter, r *http.Request) {
	jobs := c.Service.PendingJobs()
	if jobs == nil {
		jobs = []*domain.DispatchJob{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, jobs)
}

// CancelJob godoc
// @Summary Cancel a pending dispatch job
// @Tags dispatch
// @Security BearerAuth
// @Param jobID path string true "Job ID"
// @Success 204 "No Content"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (already fired or unknown)"
// @Router /api/dispatch/jobs/{jobID} [delete]
func (c *DispatchController) CancelJob(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.CancelJob(r.PathValue("jobID")); err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "job not found or already fired")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"weddinginvites/internal/delivery/http/helpers"
	"weddinginvites/internal/domain"

	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// doJSON serves one request with a JSON body through handler and returns the recorder.
func doJSON(t *testing.T, handler http.HandlerFunc, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if s, ok := body.(string); ok {
		buf.WriteString(s)
	} else if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

// decodeData decodes a success envelope's data into dst.
func decodeData(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	var envelope struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Nil(t, envelope.Error)
	require.NoError(t, json.Unmarshal(envelope.Data, dst))
}

// errorCode decodes an error envelope and returns its code.
func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.NotNil(t, envelope.Error)
	return envelope.Error.Code
}

// fakeAuthService implements domain.AuthService.
type fakeAuthService struct {
	user     *domain.User
	token    string
	err      error
	gotEmail string
}

func (f *fakeAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	f.gotEmail = email
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	f.gotEmail = email
	if f.err != nil {
		return "", nil, f.err
	}
	return f.token, f.user, nil
}

// fakeGuestService implements domain.GuestService.
type fakeGuestService struct {
	imported   string
	importN    int
	importErr  error
	guests     []*domain.Guest
	total      int
	gotParams  domain.PaginationParams
	err        error
	gotID      string
	gotPayload string
}

func (f *fakeGuestService) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	b, _ := io.ReadAll(r)
	f.imported = string(b)
	return f.importN, f.importErr
}

func (f *fakeGuestService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Guest, int, error) {
	f.gotParams = params
	return f.guests, f.total, f.err
}

func (f *fakeGuestService) Delete(ctx context.Context, id string) error {
	f.gotID = id
	return f.err
}

func (f *fakeGuestService) SaveInvitationText(ctx context.Context, id, text string) error {
	f.gotID, f.gotPayload = id, text
	return f.err
}

func (f *fakeGuestService) SaveInvitationImage(ctx context.Context, id, image string) error {
	f.gotID, f.gotPayload = id, image
	return f.err
}

// fakeInvitationService implements domain.InvitationService.
type fakeInvitationService struct {
	results    []*domain.GeneratedInvitation
	text       string
	err        error
	gotDetails domain.EventDetails
	gotIDs     []string
}

func (f *fakeInvitationService) GenerateBatch(ctx context.Context, details domain.EventDetails, guestIDs []string) ([]*domain.GeneratedInvitation, error) {
	f.gotDetails, f.gotIDs = details, guestIDs
	return f.results, f.err
}

func (f *fakeInvitationService) GenerateOne(ctx context.Context, details domain.EventDetails) (string, error) {
	f.gotDetails = details
	return f.text, f.err
}

// fakeProgrammeService implements domain.ProgrammeService.
type fakeProgrammeService struct {
	program  string
	err      error
	gotStyle string
}

func (f *fakeProgrammeService) Generate(ctx context.Context, style string) (string, error) {
	f.gotStyle = style
	return f.program, f.err
}

// fakeDispatchService implements domain.DispatchService.
type fakeDispatchService struct {
	ack       *domain.DispatchAck
	err       error
	gotReq    domain.DispatchRequest
	gotTo     string
	pending   []*domain.DispatchJob
	cancelErr error
	cancelled string
}

func (f *fakeDispatchService) SendInvitations(ctx context.Context, req domain.DispatchRequest) (*domain.DispatchAck, error) {
	f.gotReq = req
	return f.ack, f.err
}

func (f *fakeDispatchService) SendTest(ctx context.Context, to, senderName, subject string) error {
	f.gotTo = to
	return f.err
}

func (f *fakeDispatchService) PendingJobs() []*domain.DispatchJob { return f.pending }

func (f *fakeDispatchService) CancelJob(jobID string) error {
	f.cancelled = jobID
	return f.cancelErr
}

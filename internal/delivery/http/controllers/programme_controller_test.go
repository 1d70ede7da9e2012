package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"weddinginvites/internal/delivery/http/helpers"
	"weddinginvites/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgrammeController_Generate(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		program    string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"generated", GenerateProgrammeRequest{Style: "rustic"}, "<table></table>", nil, http.StatusOK, ""},
		{"missing style", GenerateProgrammeRequest{}, "", nil, http.StatusBadRequest, helpers.ErrCodeBadRequest},
		{"generation failed", GenerateProgrammeRequest{Style: "rustic"}, "", fmt.Errorf("programme: %w", domain.ErrGenerationFailed), http.StatusInternalServerError, helpers.ErrCodeInternalError},
		{"store failure", GenerateProgrammeRequest{Style: "rustic"}, "", errors.New("db down"), http.StatusInternalServerError, helpers.ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeProgrammeService{program: tt.program, err: tt.err}
			rr := doJSON(t, NewProgrammeController(testLogger, svc).Generate, http.MethodPost, "/api/programme", tt.body)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rr))
				return
			}
			var resp ProgrammeResponse
			decodeData(t, rr, &resp)
			assert.True(t, resp.Success)
			assert.Equal(t, "<table></table>", resp.Program)
			assert.Equal(t, "rustic", svc.gotStyle)
		})
	}
}

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// capturingHandler records the last log record for assertions.
type capturingHandler struct {
	record slog.Record
}

func (h *capturingHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *capturingHandler) Handle(_ context.Context, r slog.Record) error {
	h.record = r.Clone()
	return nil
}

func (h *capturingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *capturingHandler) WithGroup(_ string) slog.Handler { return h }

func TestLoggingMiddleware(t *testing.T) {
	var cap capturingHandler
	logger := slog.New(&cap)

	tests := []struct {
		name          string
		handlerStatus int
		path          string
		method        string
		pattern       string
		wantRoute     string
		wantLevel     slog.Level
	}{
		{"ok status", http.StatusOK, "/api/guests", http.MethodGet, "GET /api/guests", "GET /api/guests", slog.LevelInfo},
		{"accepted", http.StatusAccepted, "/api/invitations/send", http.MethodPost, "POST /api/invitations/send", "POST /api/invitations/send", slog.LevelInfo},
		{"path parameter uses pattern", http.StatusNoContent, "/api/guests/abc", http.MethodDelete, "DELETE /api/guests/{guestID}", "DELETE /api/guests/{guestID}", slog.LevelInfo},
		{"server error", http.StatusInternalServerError, "/api/programme", http.MethodPost, "POST /api/programme", "POST /api/programme", slog.LevelError},
		{"unmatched", http.StatusNotFound, "/nope", http.MethodGet, "", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			if tt.pattern != "" {
				mux.HandleFunc(tt.pattern, func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(tt.handlerStatus)
				})
			}
			handler := LoggingMiddleware(logger, mux)
			req := httptest.NewRequest(tt.method, "http://test"+tt.path, nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Equal(t, "request", cap.record.Message)
			require.Equal(t, tt.wantLevel, cap.record.Level)
			attrs := make(map[string]slog.Value)
			cap.record.Attrs(func(a slog.Attr) bool {
				attrs[a.Key] = a.Value
				return true
			})
			require.Equal(t, tt.method, attrs["method"].String())
			require.Equal(t, tt.path, attrs["path"].String())
			require.Equal(t, tt.wantRoute, attrs["route"].String())
			require.Equal(t, int64(tt.handlerStatus), attrs["status"].Int64())
			require.GreaterOrEqual(t, attrs["duration_ms"].Int64(), int64(0))
			require.Equal(t, tt.handlerStatus, rr.Code)
		})
	}
}

func TestLoggingMiddleware_CountsBytes(t *testing.T) {
	var cap capturingHandler
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})
	rr := httptest.NewRecorder()
	LoggingMiddleware(slog.New(&cap), next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	var bytes int64
	cap.record.Attrs(func(a slog.Attr) bool {
		if a.Key == "bytes" {
			bytes = a.Value.Int64()
		}
		return true
	})
	require.Equal(t, int64(5), bytes)
	require.Equal(t, http.StatusOK, rr.Code)
}

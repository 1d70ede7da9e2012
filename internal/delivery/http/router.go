package http

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"weddinginvites/internal/delivery/http/controllers"
	"weddinginvites/internal/delivery/http/middleware"
	"weddinginvites/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Auth       *controllers.AuthController
	Guest      *controllers.GuestController
	Invitation *controllers.InvitationController
	Programme  *controllers.ProgrammeController
	Dispatch   *controllers.DispatchController
	Health     *controllers.HealthController
}

// NewRouter registers every route. Guest, generation and dispatch routes
// require a bearer token.
func NewRouter(c Controllers, verifier domain.TokenVerifier, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Auth
	mux.HandleFunc("POST /api/register", c.Auth.Register)
	mux.HandleFunc("POST /api/login", c.Auth.Login)

	// Guests
	mux.HandleFunc("POST /api/guests/import", auth(c.Guest.ImportGuests))
	mux.HandleFunc("GET /api/guests", auth(c.Guest.ListGuests))
	mux.HandleFunc("DELETE /api/guests/{guestID}", auth(c.Guest.DeleteGuest))
	mux.HandleFunc("PUT /api/guests/{guestID}/image", auth(c.Guest.SaveImage))
	mux.HandleFunc("PUT /api/guests/{guestID}/invitation-text", auth(c.Guest.SaveInvitationText))

	// Generation
	mux.HandleFunc("POST /api/invitations/batch", auth(c.Invitation.BatchGenerate))
	mux.HandleFunc("POST /api/invitations/generate", auth(c.Invitation.GenerateOne))
	mux.HandleFunc("POST /api/programme", auth(c.Programme.Generate))

	// Dispatch
	mux.HandleFunc("POST /api/invitations/send", auth(c.Dispatch.SendInvitations))
	mux.HandleFunc("POST /api/invitations/send-test", auth(c.Invitation.SendTest))
	mux.HandleFunc("GET /api/dispatch/jobs", auth(c.Dispatch.ListPendingJobs))
	mux.HandleFunc("DELETE /api/dispatch/jobs/{jobID}", auth(c.Dispatch.CancelJob))

	// Ops
	mux.HandleFunc("GET /healthz", c.Health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with the access log, metrics and CORS middleware.
func NewHandler(mux *http.ServeMux, logger *slog.Logger, allowedOrigins []string) http.Handler {
	return middleware.CORS(allowedOrigins, middleware.Metrics(middleware.LoggingMiddleware(logger, mux)))
}

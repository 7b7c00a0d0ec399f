package api

import (
	"net/http"

	"github.com/draftops/mflgate/internal/api/middleware"
	"github.com/draftops/mflgate/internal/mfl"
	"github.com/draftops/mflgate/internal/service"
	"github.com/draftops/mflgate/internal/session"
)

type Server struct {
	gateway  *service.Gateway
	sessions *session.Store
	cors     middleware.CORSPolicy
}

func NewServer(upstream *mfl.Client, sessions *session.Store, cors middleware.CORSPolicy) *Server {
	return &Server{
		gateway:  service.NewGateway(upstream, sessions),
		sessions: sessions,
		cors:     cors,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// anonymous routes: login is the only route that creates sessions, health never
	// touches them
	mux.HandleFunc("GET "+HealthCheckRoute, s.handleHealth)
	mux.HandleFunc("POST "+LoginRoute, s.handleLogin)

	// everything below requires a live session
	protected := http.NewServeMux()
	protected.HandleFunc("GET "+FreeAgentsRoute, s.handleFreeAgents)
	mux.Handle(FreeAgentsParent, middleware.SessionAuth(s.sessions)(protected))

	return middleware.Recover(
		middleware.CorrelationID(
			middleware.Logging(
				middleware.CORS(s.cors)(
					mux))))
}

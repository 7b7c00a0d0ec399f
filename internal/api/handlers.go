package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/draftops/mflgate/internal/api/presenter"
	"github.com/draftops/mflgate/internal/service"
	"github.com/draftops/mflgate/internal/session"
)

// handleHealth responds with a plain OK to indicate the gateway is up.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	LeagueID string `json:"league_id"`
	Year     string `json:"year"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func DecodePayload(r *http.Request, dest any, allowEmpty bool) error {
	switch r.Header.Get("Content-Type") {
	case "application/json", "":
		// strict encoding for JSON
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(dest); err != nil {
			if !errors.Is(err, io.EOF) || !allowEmpty {
				return err
			}
		}
		// ensure there's no extra data
		if dec.More() {
			return errors.New("extra data in request body")
		}
		return nil
	default:
		return errors.New("unsupported content type")
	}
}

// handleLogin authenticates against the upstream platform and issues a bearer token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.Ctx(ctx)

	var payload LoginPayload
	if err := DecodePayload(r, &payload, false); err != nil {
		logger.Warn().Err(err).Msg("failed to decode login payload")
		presenter.Error(w, r, "invalid request payload", http.StatusBadRequest)
		return
	}

	token, err := s.gateway.Login(ctx, service.LoginParams{
		Username: payload.Username,
		Password: payload.Password,
		LeagueID: payload.LeagueID,
		Year:     payload.Year,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("login failed")
		presenter.Err(w, r, err, "login failed")
		return
	}

	presenter.JSON(w, r, LoginResponse{Token: token}, http.StatusOK)
}

// handleFreeAgents lists a league's free agents enriched with player details.
func (s *Server) handleFreeAgents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.Ctx(ctx)

	entry, ok := session.FromContext(ctx)
	if !ok {
		// only reachable if the route was mounted without the auth middleware
		logger.Error().Msg("authenticated route executed without session context")
		presenter.Error(w, r, "session context missing", http.StatusInternalServerError)
		return
	}

	position := r.PathValue("position")
	logger.Debug().Str("position", position).Msg("fetching free agents")

	players, err := s.gateway.FreeAgents(ctx, entry, position)
	if err != nil {
		logger.Error().Err(err).Msg("free agents query failed")
		presenter.Err(w, r, err, "fetching free agents failed")
		return
	}

	presenter.JSON(w, r, players, http.StatusOK)
}

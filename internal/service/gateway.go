package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/draftops/mflgate/internal/mfl"
	"github.com/draftops/mflgate/internal/session"
)

// Player is the public response shape for the free-agents query.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Team     string `json:"team,omitempty"`
}

// LoginParams carries the credentials and league context for a login.
type LoginParams struct {
	Username string
	Password string
	LeagueID string
	Year     string
}

func (p LoginParams) validate() error {
	switch {
	case p.Username == "":
		return errors.New("username is required")
	case p.Password == "":
		return errors.New("password is required")
	case p.LeagueID == "":
		return errors.New("league_id is required")
	case p.Year == "":
		return errors.New("year is required")
	}
	return nil
}

// Gateway coordinates the upstream client and the session store. The store is written
// only by Login; all query paths read the entry the auth middleware attached to the
// request context.
type Gateway struct {
	upstream *mfl.Client
	sessions *session.Store
}

func NewGateway(upstream *mfl.Client, sessions *session.Store) *Gateway {
	return &Gateway{
		upstream: upstream,
		sessions: sessions,
	}
}

// Login authenticates against the upstream platform and, on success, issues a fresh
// bearer token bound to the acquired credential. No session state is written on any
// failure path.
func (g *Gateway) Login(ctx context.Context, params LoginParams) (string, error) {
	if err := params.validate(); err != nil {
		return "", httpError(http.StatusBadRequest, err)
	}

	cred, err := g.upstream.Login(ctx, params.Username, params.Password, params.Year)
	if err != nil {
		var transportErr *mfl.TransportError
		if errors.As(err, &transportErr) {
			return "", httpError(http.StatusBadGateway, fmt.Errorf("reaching upstream: %w", err))
		}
		// error status or missing marker: the upstream rejected the credentials
		return "", httpError(http.StatusUnauthorized, fmt.Errorf("upstream login failed: %w", err))
	}

	token := session.NewToken()
	g.sessions.Insert(token, session.Entry{
		Credential: cred,
		LeagueID:   params.LeagueID,
		Year:       params.Year,
	})

	log.Ctx(ctx).Info().
		Str("league_id", params.LeagueID).
		Str("year", params.Year).
		Msg("session created")

	return token, nil
}

// FreeAgents lists the free agents visible to the session's league, resolves their
// detail records and maps them into the public shape. A league with no free agents
// short-circuits to an empty list without issuing the detail call.
func (g *Gateway) FreeAgents(ctx context.Context, entry session.Entry, position string) ([]Player, error) {
	agents, err := g.upstream.FreeAgents(ctx, entry.Credential, entry.LeagueID, position)
	if err != nil {
		return nil, httpError(http.StatusInternalServerError, fmt.Errorf("listing free agents: %w", err))
	}

	ids := make([]string, 0, len(agents))
	for _, agent := range agents {
		ids = append(ids, agent.ID)
	}
	if len(ids) == 0 {
		return []Player{}, nil
	}

	report, err := g.upstream.Players(ctx, entry.Credential, entry.LeagueID, strings.Join(ids, ","))
	if err != nil {
		return nil, httpError(http.StatusInternalServerError, fmt.Errorf("fetching player details: %w", err))
	}

	players := make([]Player, 0, len(report.Player))
	for _, p := range report.Player {
		players = append(players, Player{
			ID:       p.ID,
			Name:     p.Name,
			Position: p.Position,
			Team:     p.Team,
		})
	}
	return players, nil
}

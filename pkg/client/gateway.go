package client

import (
	"context"
	"net/url"

	"github.com/draftops/mflgate/internal/api"
	"github.com/draftops/mflgate/internal/service"
)

// LoginParams carries the upstream credentials and league context for a login.
type LoginParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
	LeagueID string `json:"league_id"`
	Year     string `json:"year"`
}

// Login authenticates against the gateway and returns the issued bearer token along
// with the request's correlation ID.
func (c *Client) Login(ctx context.Context, params LoginParams) (string, string, error) {
	var resp api.LoginResponse
	correlation, err := c.post(ctx, c.endpoint(api.LoginRoute), params, &resp)
	if err != nil {
		return "", correlation, err
	}
	return resp.Token, correlation, nil
}

// FreeAgents lists the free agents for the authenticated session's league, filtered by
// position.
func (c *Client) FreeAgents(ctx context.Context, position string) ([]service.Player, string, error) {
	var players []service.Player
	correlation, err := c.get(ctx, c.endpoint(api.FreeAgentsParent+url.PathEscape(position)), &players)
	if err != nil {
		return nil, correlation, err
	}
	return players, correlation, nil
}

// Health reports whether the gateway answers its health check.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.get(ctx, c.endpoint(api.HealthCheckRoute), nil)
	return err
}

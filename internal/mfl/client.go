package mfl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the public MFL API host.
const DefaultBaseURL = "https://api.myfantasyleague.com"

const defaultTimeout = 30 * time.Second

// Client performs the remote MFL operations. It holds no credential state of its own;
// the credential obtained from Login is passed explicitly to every export call, so a
// single Client can safely serve concurrent sessions.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the connection-level timeout for upstream calls.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CloseIdleConnections releases any kept-alive upstream connections. Called during
// teardown after the session store has been drained.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// Login authenticates against MFL for the given season and extracts the session marker
// from the response body. MFL answers some failed logins with a 200 and no marker, which
// surfaces as ErrLoginMarkerNotFound.
func (c *Client) Login(ctx context.Context, username, password, year string) (Credential, error) {
	q := url.Values{}
	q.Set("USERNAME", username)
	q.Set("PASSWORD", password)
	q.Set("XML", "1")
	loginURL := fmt.Sprintf("%s/%s/login?%s", c.baseURL, url.PathEscape(year), q.Encode())

	body, err := c.get(ctx, "login", loginURL, "")
	if err != nil {
		return Credential{}, err
	}

	userID, ok := extractUserID(string(body))
	if !ok {
		log.Ctx(ctx).Warn().Msg("upstream login returned success status without session marker")
		return Credential{}, ErrLoginMarkerNotFound
	}
	return Credential{UserID: userID, Year: year}, nil
}

// FreeAgents fetches the free-agent report for a league, optionally filtered by
// position, and flattens the nested unit wrapper into the plain player list.
func (c *Client) FreeAgents(ctx context.Context, cred Credential, leagueID, position string) ([]FreeAgentPlayer, error) {
	q := url.Values{}
	q.Set("TYPE", "freeAgents")
	q.Set("L", leagueID)
	q.Set("JSON", "1")
	if position != "" {
		q.Set("POSITION", position)
	}

	body, err := c.export(ctx, "freeAgents", cred, q)
	if err != nil {
		return nil, err
	}

	var report freeAgentExport
	if err := json.Unmarshal(body, &report); err != nil {
		return nil, &ParseError{Err: fmt.Errorf("free agents export: %w", err)}
	}
	return report.FreeAgents.LeagueUnit.Player, nil
}

// Players fetches detail records for a comma-joined id list. An empty id list is issued
// verbatim; avoiding the degenerate request is the caller's job.
func (c *Client) Players(ctx context.Context, cred Credential, leagueID, playerIDs string) (PlayerReport, error) {
	q := url.Values{}
	q.Set("TYPE", "players")
	q.Set("L", leagueID)
	q.Set("PLAYERS", playerIDs)
	q.Set("JSON", "1")

	body, err := c.export(ctx, "players", cred, q)
	if err != nil {
		return PlayerReport{}, err
	}

	var report playersExport
	if err := json.Unmarshal(body, &report); err != nil {
		return PlayerReport{}, &ParseError{Err: fmt.Errorf("players export: %w", err)}
	}
	return report.Players, nil
}

// export issues an authenticated GET against the season-scoped export endpoint.
func (c *Client) export(ctx context.Context, op string, cred Credential, q url.Values) ([]byte, error) {
	exportURL := fmt.Sprintf("%s/%s/export?%s", c.baseURL, url.PathEscape(cred.Year), q.Encode())
	return c.get(ctx, op, exportURL, cred.UserID)
}

// get performs the request, reads the whole body and applies the shared status
// discipline: transport failures become TransportError, non-2xx becomes StatusError
// with the body preserved.
func (c *Client) get(ctx context.Context, op, rawURL, userID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("creating request: %w", err)}
	}
	if userID != "" {
		// MFL expects the login marker back as a cookie on every call.
		req.Header.Set("Cookie", "MFL_USER_ID="+userID)
	}

	log.Ctx(ctx).Debug().Str("op", op).Msg("calling upstream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

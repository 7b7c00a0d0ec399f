package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/draftops/mflgate/internal/api/middleware"
	"github.com/draftops/mflgate/internal/mfl"
	"github.com/draftops/mflgate/internal/service"
	"github.com/draftops/mflgate/internal/session"
)

// testUpstream stubs the MFL platform behind the gateway and counts every call.
type testUpstream struct {
	server     *httptest.Server
	loginBody  string
	loginCode  int
	freeAgents string
	players    string
	calls      map[string]int
}

func newTestUpstream(t *testing.T) *testUpstream {
	u := &testUpstream{
		loginCode:  http.StatusOK,
		loginBody:  `MFL_USER_ID="cookie-1">OK`,
		freeAgents: `{"freeAgents": {"leagueUnit": {"unit": "LEAGUE", "player": [{"id": "1001", "salary": "1.00", "contractStatus": "R"}]}}}`,
		players:    `{"players": {"timestamp": "1", "player": [{"id": "1001", "name": "Smith, John", "position": "QB", "team": "GBP"}]}}`,
		calls:      make(map[string]int),
	}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/login"):
			u.calls["login"]++
			w.WriteHeader(u.loginCode)
			_, _ = w.Write([]byte(u.loginBody))
		case r.URL.Query().Get("TYPE") == "freeAgents":
			u.calls["freeAgents"]++
			_, _ = w.Write([]byte(u.freeAgents))
		case r.URL.Query().Get("TYPE") == "players":
			u.calls["players"]++
			_, _ = w.Write([]byte(u.players))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(u.server.Close)
	return u
}

func (u *testUpstream) total() int {
	n := 0
	for _, c := range u.calls {
		n += c
	}
	return n
}

func newTestServer(t *testing.T, upstream *testUpstream) (http.Handler, *session.Store) {
	t.Helper()
	store := session.NewStore()
	policy, err := middleware.NewCORSPolicy(nil)
	if err != nil {
		t.Fatalf("NewCORSPolicy() error = %v", err)
	}
	srv := NewServer(mfl.New(upstream.server.URL), store, policy)
	return srv.Routes(), store
}

func doLogin(t *testing.T, handler http.Handler) string {
	t.Helper()
	body := `{"username": "coach", "password": "secret", "league_id": "555", "year": "2024"}`
	req := httptest.NewRequest(http.MethodPost, LoginRoute, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("empty token in login response")
	}
	return resp.Token
}

func TestHealth(t *testing.T) {
	handler, _ := newTestServer(t, newTestUpstream(t))

	req := httptest.NewRequest(http.MethodGet, HealthCheckRoute, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "OK")
	}
}

func TestLogin_CreatesSession(t *testing.T) {
	upstream := newTestUpstream(t)
	handler, store := newTestServer(t, upstream)

	token := doLogin(t, handler)

	entry, ok := store.Get(token)
	if !ok {
		t.Fatal("issued token not in store")
	}
	if entry.Credential.UserID != "cookie-1" {
		t.Errorf("credential = %q, want %q", entry.Credential.UserID, "cookie-1")
	}
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*testUpstream)
		wantStatus int
	}{
		{
			name:       "invalid json",
			body:       "{not json",
			setup:      func(u *testUpstream) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field rejected",
			body:       `{"username": "a", "password": "b", "league_id": "c", "year": "d", "extra": true}`,
			setup:      func(u *testUpstream) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "upstream says no marker",
			body: `{"username": "coach", "password": "wrong", "league_id": "555", "year": "2024"}`,
			setup: func(u *testUpstream) {
				u.loginBody = "<error>bad password</error>"
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "upstream error status",
			body: `{"username": "coach", "password": "secret", "league_id": "555", "year": "2024"}`,
			setup: func(u *testUpstream) {
				u.loginCode = http.StatusBadGateway
				u.loginBody = "down"
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := newTestUpstream(t)
			tt.setup(upstream)
			handler, store := newTestServer(t, upstream)

			req := httptest.NewRequest(http.MethodPost, LoginRoute, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if store.Len() != 0 {
				t.Errorf("store mutated on failed login")
			}

			var resp struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("error body is not the structured shape: %s", rec.Body.String())
			}
			if resp.Message == "" {
				t.Error("error response missing message")
			}
		})
	}
}

func TestFreeAgents_FullFlow(t *testing.T) {
	upstream := newTestUpstream(t)
	handler, _ := newTestServer(t, upstream)
	token := doLogin(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/free-agents/QB", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var players []service.Player
	if err := json.Unmarshal(rec.Body.Bytes(), &players); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(players) != 1 {
		t.Fatalf("got %d players, want 1", len(players))
	}
	want := service.Player{ID: "1001", Name: "Smith, John", Position: "QB", Team: "GBP"}
	if players[0] != want {
		t.Errorf("players[0] = %+v, want %+v", players[0], want)
	}
	if upstream.calls["players"] != 1 {
		t.Errorf("players export called %d times, want 1", upstream.calls["players"])
	}
}

func TestFreeAgents_EmptyLeagueSkipsDetailCall(t *testing.T) {
	upstream := newTestUpstream(t)
	upstream.freeAgents = `{"freeAgents": {"leagueUnit": {"unit": "LEAGUE", "player": []}}}`
	handler, _ := newTestServer(t, upstream)
	token := doLogin(t, handler)

	req := httptest.NewRequest(http.MethodGet, "/free-agents/WR", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want empty array", got)
	}
	if upstream.calls["players"] != 0 {
		t.Errorf("players export called %d times for an empty league", upstream.calls["players"])
	}
}

func TestFreeAgents_UnauthenticatedNeverReachesUpstream(t *testing.T) {
	upstream := newTestUpstream(t)
	handler, store := newTestServer(t, upstream)
	store.Insert("valid", session.Entry{LeagueID: "555"})

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header"},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "unknown token", header: "Bearer nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/free-agents/QB", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}

	if upstream.total() != 0 {
		t.Errorf("upstream invoked %d times for unauthenticated requests", upstream.total())
	}
}

func TestFreeAgents_TokenInvalidAfterStoreClear(t *testing.T) {
	upstream := newTestUpstream(t)
	handler, store := newTestServer(t, upstream)
	token := doLogin(t, handler)

	store.Clear()

	req := httptest.NewRequest(http.MethodGet, "/free-agents/QB", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRecoverMiddlewareConvertsPanic(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}
	wrapped := func() http.Handler {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /boom", handler)
		return middlewareChainForTest(mux)
	}()

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func middlewareChainForTest(next http.Handler) http.Handler {
	return middleware.Recover(middleware.CorrelationID(middleware.Logging(next)))
}

package mfl

// Credential is the upstream-issued session marker obtained at login, together with the
// season it was issued for. It is immutable once acquired and attached as a synthetic
// cookie on every subsequent export call.
type Credential struct {
	UserID string
	Year   string
}

// FreeAgentPlayer is a minimal free-agent record from the freeAgents export.
type FreeAgentPlayer struct {
	ID             string `json:"id"`
	Salary         string `json:"salary"`
	ContractStatus string `json:"contractStatus"`
}

type freeAgentUnit struct {
	Unit   string            `json:"unit"`
	Player []FreeAgentPlayer `json:"player"`
}

type freeAgentList struct {
	LeagueUnit freeAgentUnit `json:"leagueUnit"`
}

type freeAgentExport struct {
	Version    string        `json:"version"`
	FreeAgents freeAgentList `json:"freeAgents"`
	Encoding   string        `json:"encoding"`
}

// Player is a detail record from the players export. Position, team and status are not
// present for every player; absent fields decode to the empty string.
type Player struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Team     string `json:"team"`
	Status   string `json:"status"`
}

// PlayerReport is the flat player list wrapped by the players export.
type PlayerReport struct {
	Player    []Player `json:"player"`
	Timestamp string   `json:"timestamp"`
}

type playersExport struct {
	Players  PlayerReport `json:"players"`
	Encoding string       `json:"encoding"`
	Version  string       `json:"version"`
}

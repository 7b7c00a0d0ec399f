package api

const (
	HealthCheckRoute = "/health"
	LoginRoute       = "/login"

	FreeAgentsParent = "/free-agents/"
	FreeAgentsRoute  = FreeAgentsParent + "{position}"
)

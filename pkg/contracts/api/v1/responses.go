package api

// VersionResponse reports the engine version and availability. Clients use
// it as a probe before shipping work to the API.
type VersionResponse struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	Available bool   `json:"available"`
}

// HealthResponse is the liveness probe body
type HealthResponse struct {
	Status string `json:"status"`
}

// Insight is a human-readable observation derived from a series, with a
// suggested action. Type is one of "positive", "warning" or "info".
type Insight struct {
	Type           string `json:"type"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation"`
}

package dto

// Health status values.
const (
	HealthStatusHealthy  = "healthy"
	HealthStatusDegraded = "degraded"
	HealthStatusError    = "error"
)

// HealthResponse reports API and model-server health.
// @Description Health check response
type HealthResponse struct {
	Status          string  `json:"status"`
	OllamaConnected bool    `json:"ollama_connected"`
	ModelVersion    string  `json:"model_version,omitempty"`
	Version         string  `json:"version"`
	UptimeSeconds   float64 `json:"uptime_seconds"`
}

// ServiceInfoResponse is the root endpoint payload.
type ServiceInfoResponse struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Docs        string `json:"docs"`
	Health      string `json:"health"`
}

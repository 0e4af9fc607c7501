package models

// ServiceStatus is the overall health of the API.
type ServiceStatus string

const (
	ServiceStatusHealthy   ServiceStatus = "healthy"
	ServiceStatusDegraded  ServiceStatus = "degraded"
	ServiceStatusUnhealthy ServiceStatus = "unhealthy"
)

// MonitorStatus is the result of a health check.
type MonitorStatus struct {
	CheckedAt Timestamp     `json:"checkedAt"`
	Status    ServiceStatus `json:"status"`
	Version   string        `json:"version"`
}

// IsHealthy reports whether the service is fully operational.
func (m *MonitorStatus) IsHealthy() bool {
	return m.Status == ServiceStatusHealthy
}

// CheckHealth tunes a health check.
type CheckHealth struct {
	// Timeout is the server-side check timeout in milliseconds.
	Timeout *int `json:"timeout,omitempty"`
	// UseCache allows the server to answer from its last check.
	UseCache *bool `json:"useCache,omitempty"`
}

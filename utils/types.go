package utils

// Health is the current liveness status of the service.
type Health struct {
	Status  string `json:"status"` // OK, DEGRADED, ERROR, SHUTTING_DOWN
	Message string `json:"message"`
	Uptime  int64  `json:"uptime_seconds"`
}

// VersionObject breaks the version string into its parts.
type VersionObject struct {
	Major     string `json:"major"`
	Minor     string `json:"minor"`
	Patch     string `json:"patch"`
	Branch    string `json:"branch"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	Arch      string `json:"arch"`
}

// Version carries both the formatted string and the structured form.
type Version struct {
	Tag string        `json:"tag"`
	Str string        `json:"str"`
	Obj VersionObject `json:"obj"`
}

// ServiceReport is the payload of the public /service endpoint.
type ServiceReport struct {
	Version Version       `json:"version"`
	Health  Health        `json:"health"`
	Metrics SystemMetrics `json:"metrics"`
}

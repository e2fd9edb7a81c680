package utils

import (
	"sync"
	"time"
)

var (
	healthMu      sync.RWMutex
	healthStatus  = "STARTING"
	healthMessage = "Service is starting"
	startTime     = time.Now()
)

// SetHealthStatus updates the health status of the service.
func SetHealthStatus(status, message string) {
	healthMu.Lock()
	defer healthMu.Unlock()
	healthStatus = status
	healthMessage = message
}

// GetHealth returns the current health status of the service.
func GetHealth() Health {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return Health{
		Status:  healthStatus,
		Message: healthMessage,
		Uptime:  GetUptimeSeconds(),
	}
}

// GetUptimeSeconds returns the uptime in seconds.
func GetUptimeSeconds() int64 {
	return int64(time.Since(startTime).Seconds())
}

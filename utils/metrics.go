package utils

import (
	"runtime"
)

// SystemMetrics holds coarse runtime statistics for the service report.
type SystemMetrics struct {
	Goroutines int     `json:"goroutines"`
	MemoryMB   float64 `json:"memory_mb"`
}

// GetMetrics returns current runtime metrics.
func GetMetrics() SystemMetrics {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return SystemMetrics{
		Goroutines: runtime.NumGoroutine(),
		MemoryMB:   float64(m.Sys) / 1024.0 / 1024.0,
	}
}

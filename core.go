package main

import (
	"context"
	"log"
	"time"

	"github.com/ascendlabs/coach-roadmap-service/utils"
)

// RunCoreLogic is the service's background loop. The request path owns all
// the real work; this loop just keeps the health status honest by probing the
// Redis connection on an interval.
func RunCoreLogic(ctx context.Context) error {
	utils.SetHealthStatus("OK", "Service is running normally")
	log.Println("Core Logic: Initialization complete, service is healthy")

	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Core Logic: Shutdown signal received")
			utils.SetHealthStatus("SHUTTING_DOWN", "Core logic is shutting down")
			return nil

		case <-ticker.C:
			if err := probeRedis(ctx); err != nil {
				log.Printf("Core Logic: Redis probe failed: %v", err)
				utils.SetHealthStatus("DEGRADED", "Redis unreachable: "+err.Error())
			} else {
				utils.SetHealthStatus("OK", "Service is running normally")
			}
		}
	}
}

func probeRedis(ctx context.Context) error {
	probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return RedisClient.Ping(probeCtx).Err()
}

package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/ascendlabs/coach-roadmap-service/utils"
)

// ServiceHandler provides a status report for the service. It is the only
// unauthenticated endpoint and is what load balancers and the mobile client's
// reachability probe hit.
func ServiceHandler(w http.ResponseWriter, r *http.Request) {
	report := utils.ServiceReport{
		Version: utils.GetVersion(),
		Health:  utils.GetHealth(),
		Metrics: utils.GetMetrics(),
	}

	w.Header().Set("Content-Type", "application/json")
	if report.Health.Status == "OK" {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(report)
}

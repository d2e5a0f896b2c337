package eta

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rizaldy/angkut/internal/utils"
)

// OSRMEstimator performs route lookups against an OSRM HTTP server.
type OSRMEstimator struct {
	endpoint string
	client   *http.Client
}

// NewOSRMEstimator creates an estimator backed by the given OSRM endpoint.
func NewOSRMEstimator(endpoint string) *OSRMEstimator {
	return &OSRMEstimator{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 2 * time.Second},
	}
}

// Estimate queries OSRM /route between the points and returns the driving
// distance and duration of the best route.
func (o *OSRMEstimator) Estimate(ctx context.Context, from, to utils.GeoPoint) (Metrics, error) {
	// OSRM route query: /route/v1/driving/{lon1},{lat1};{lon2},{lat2}
	url := fmt.Sprintf("%s/route/v1/driving/%.6f,%.6f;%.6f,%.6f?overview=false",
		o.endpoint, from.Longitude, from.Latitude, to.Longitude, to.Latitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Metrics{}, err
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return Metrics{}, err
	}
	defer resp.Body.Close()

	var out struct {
		Routes []struct {
			Duration float64 `json:"duration"`
			Distance float64 `json:"distance"`
		} `json:"routes"`
		Code string `json:"code"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Metrics{}, err
	}
	if out.Code != "Ok" || len(out.Routes) == 0 {
		return Metrics{}, fmt.Errorf("osrm no route: %v", out.Code)
	}

	return Metrics{
		DistanceKm: out.Routes[0].Distance / 1000.0,
		Duration:   time.Duration(out.Routes[0].Duration * float64(time.Second)),
	}, nil
}

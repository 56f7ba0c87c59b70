package circuitbreaker

import "github.com/sony/gobreaker/v2"

// CreateCircuitBreaker trips after three consecutive-ish failures so a dead
// external service stops eating the lookup call budget.
func CreateCircuitBreaker(name string) *gobreaker.CircuitBreaker[[]byte] {
	var st gobreaker.Settings
	st.Name = name
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}

	return gobreaker.NewCircuitBreaker[[]byte](st)
}

package loadbalancer

import (
	"math"

	"github.com/soyroberto/roblox/internal/registry"
	"github.com/soyroberto/roblox/pkg/catalog"
	"github.com/soyroberto/roblox/pkg/formula"
)

// Ensure Formula implements the formula.Formula interface.
var _ formula.Formula = (*Formula)(nil)

// init registers the formula with the central registry.
func init() {
	registry.Register(&Formula{})
}

// Capacity constants per balancer instance.
const (
	requestsPerBalancer = 100000
	gbpsPerRequest      = 0.01
	sslShare            = 0.8
	healthCheckShare    = 0.1
)

// Formula sizes the load balancer tier from request rate.
type Formula struct{}

func (f *Formula) ComponentType() catalog.ComponentType {
	return catalog.LoadBalancer
}

func (f *Formula) Inputs() []formula.InputSpec {
	return []formula.InputSpec{
		{Name: "requests_per_second", Default: 2000000},
	}
}

func (f *Formula) Calculate(inputs map[string]float64) (map[string]float64, string) {
	rps := inputs["requests_per_second"]

	result := map[string]float64{
		"balancers_needed":         math.Ceil(rps / requestsPerBalancer),
		"bandwidth_gbps":           rps * gbpsPerRequest,
		"ssl_termination_capacity": rps * sslShare,
		"health_checks_per_second": rps * healthCheckShare,
	}
	explanation := "For " + formula.Comma(rps) + " requests/sec, you need " +
		formula.Comma(result["balancers_needed"]) + " load balancers with " +
		formula.Comma(result["bandwidth_gbps"]) + " Gbps bandwidth."
	return result, explanation
}

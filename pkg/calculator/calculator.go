package calculator

import (
	"encoding/json"

	"github.com/soyroberto/roblox/internal/registry"
	"github.com/soyroberto/roblox/pkg/apperr"
	"github.com/soyroberto/roblox/pkg/catalog"
	"github.com/soyroberto/roblox/pkg/formula"
)

// CalculationTypeBasic is the only calculation type currently defined.
// Other values are reserved for future extension.
const CalculationTypeBasic = "basic"

// Request is a transient capacity calculation request. Inputs arrive
// untyped from JSON and are validated before any computation runs.
type Request struct {
	ComponentID     string                 `json:"component_id" binding:"required"`
	CalculationType string                 `json:"calculation_type"`
	Inputs          map[string]interface{} `json:"inputs"`
}

// Result carries the derived metrics plus the request echo, mirroring what
// the frontend renders.
type Result struct {
	ComponentID     string             `json:"component_id"`
	CalculationType string             `json:"calculation_type"`
	Inputs          map[string]float64 `json:"inputs"`
	Result          map[string]float64 `json:"result"`
	Explanation     string             `json:"explanation"`
}

// Calculator resolves components against the catalog and dispatches to the
// formula registered for the component's type. It is stateless and safe for
// concurrent use.
type Calculator struct {
	catalog *catalog.Catalog
}

func New(cat *catalog.Catalog) *Calculator {
	return &Calculator{catalog: cat}
}

// Calculate runs the capacity formula for the requested component.
//
// A registered formula computes the basic result for any calculation type;
// unknown calculation types only become an error when no formula exists,
// so the error can distinguish "type has no formula" from "calculation type
// not recognized".
func (c *Calculator) Calculate(req Request) (*Result, error) {
	comp, err := c.catalog.Get(req.ComponentID)
	if err != nil {
		return nil, err
	}

	calcType := req.CalculationType
	if calcType == "" {
		calcType = CalculationTypeBasic
	}

	f, ok := registry.Get(comp.Type)
	if !ok {
		if calcType == CalculationTypeBasic {
			return nil, apperr.New(apperr.KindUnsupportedComponentType,
				"no capacity formula registered for component type '%s'", comp.Type)
		}
		return nil, apperr.New(apperr.KindUnsupportedCalculationType,
			"calculation type '%s' is not supported for component type '%s'", calcType, comp.Type)
	}

	resolved, err := resolveInputs(f.Inputs(), req.Inputs)
	if err != nil {
		return nil, err
	}

	derived, explanation := f.Calculate(resolved)
	return &Result{
		ComponentID:     comp.ID,
		CalculationType: calcType,
		Inputs:          resolved,
		Result:          derived,
		Explanation:     explanation,
	}, nil
}

// resolveInputs validates every supplied value and fills defaults for the
// declared inputs the caller omitted. Validation happens up front so a bad
// input never produces a partial computation.
func resolveInputs(specs []formula.InputSpec, raw map[string]interface{}) (map[string]float64, error) {
	parsed := make(map[string]float64, len(raw))
	for name, value := range raw {
		n, ok := toNumber(value)
		if !ok {
			return nil, apperr.New(apperr.KindInvalidInput, "input '%s' must be a number", name)
		}
		if n <= 0 {
			return nil, apperr.New(apperr.KindInvalidInput, "input '%s' must be positive, got %v", name, n)
		}
		parsed[name] = n
	}

	resolved := make(map[string]float64, len(specs))
	for _, spec := range specs {
		if n, ok := parsed[spec.Name]; ok {
			resolved[spec.Name] = n
			continue
		}
		resolved[spec.Name] = spec.Default
	}
	return resolved, nil
}

// toNumber accepts the numeric shapes JSON decoding and direct Go callers
// produce. Anything else is rejected.
func toNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

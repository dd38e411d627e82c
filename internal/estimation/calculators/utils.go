package calculators

import (
	"fmt"

	"github.com/kubev2v/footprint/internal/estimation"
)

func getInt(p estimation.Param) (int64, error) {
	switch v := p.Value.(type) {
	case float64:
		return int64(v), nil // JSON default
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, fmt.Errorf("param %s is not a number (type: %T)", p.Key, p.Value)
	}
}

func getFloat(p estimation.Param) (float64, error) {
	switch v := p.Value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0.0, fmt.Errorf("param %s is not a number (type: %T)", p.Key, p.Value)
	}
}

// requiredFloat extracts a param that must be present.
func requiredFloat(params map[string]estimation.Param, key string) (float64, error) {
	p, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("missing %s", key)
	}
	return getFloat(p)
}

// optionalFloat extracts a param, falling back to the calculator field when absent.
func optionalFloat(params map[string]estimation.Param, key string, fallback float64) (float64, error) {
	p, ok := params[key]
	if !ok {
		return fallback, nil
	}
	return getFloat(p)
}

func positive(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%s must be > 0", name)
	}
	return nil
}

func ratio(name string, v float64) error {
	if v <= 0 || v > 1 {
		return fmt.Errorf("%s must be in (0, 1]", name)
	}
	return nil
}

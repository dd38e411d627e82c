package calculators

import (
	"fmt"

	"github.com/kubev2v/footprint/internal/estimation"
)

var _ estimation.Calculator = (*Conversion)(nil)

// Conversion republishes an earlier result multiplied by a unit factor.
type Conversion struct {
	name   string
	from   string
	to     string
	factor float64
	unit   string
}

// NewConversion creates a calculator publishing from*factor under to.
func NewConversion(name, from, to string, factor float64, unit string) *Conversion {
	return &Conversion{
		name:   name,
		from:   from,
		to:     to,
		factor: factor,
		unit:   unit,
	}
}

// Name returns the display name of the calculator.
func (c *Conversion) Name() string { return c.name }

// Key returns the key the result is published under.
func (c *Conversion) Key() string { return c.to }

// Keys lists the params that must be present before Calculate runs.
func (c *Conversion) Keys() []string { return []string{c.from} }

// Calculate multiplies the source value by the conversion factor.
func (c *Conversion) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	v, err := requiredFloat(params, c.from)
	if err != nil {
		return estimation.Estimation{}, err
	}
	return estimation.Estimation{
		Key:    c.to,
		Value:  v * c.factor,
		Unit:   c.unit,
		Reason: fmt.Sprintf("%s x %g", c.from, c.factor),
	}, nil
}

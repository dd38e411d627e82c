package calculators

import (
	"fmt"

	"github.com/kubev2v/footprint/internal/estimation"
)

const (
	DefaultDieDepthMM      = 0.8
	DefaultTransistorCount = 1.e10
)

var _ estimation.Calculator = (*TransistorVolume)(nil)

// TransistorVolume estimates the volume of silicon per transistor in mm^3,
// assuming transistors fill the whole die.
type TransistorVolume struct {
	dieDepthMM      float64
	transistorCount float64
}

// TransistorVolumeOption configuration option for the calculator
type TransistorVolumeOption func(*TransistorVolume)

// WithDieDepth sets the die depth in millimeters.
func WithDieDepth(mm float64) TransistorVolumeOption {
	return func(c *TransistorVolume) {
		c.dieDepthMM = mm
	}
}

// WithTransistorCount sets the number of transistors on the die.
func WithTransistorCount(count float64) TransistorVolumeOption {
	return func(c *TransistorVolume) {
		c.transistorCount = count
	}
}

// NewTransistorVolume creates a TransistorVolume calculator with default settings that
// can be overridden by Options
func NewTransistorVolume(opts ...TransistorVolumeOption) *TransistorVolume {
	res := TransistorVolume{
		dieDepthMM:      DefaultDieDepthMM,
		transistorCount: DefaultTransistorCount,
	}
	for _, opt := range opts {
		opt(&res)
	}
	return &res
}

// Name returns the display name of the calculator.
func (c *TransistorVolume) Name() string { return "Transistor Volume" }

// Key returns the key the result is published under.
func (c *TransistorVolume) Key() string { return KeyTransistorVolume }

// Keys lists the params that must be present before Calculate runs.
func (c *TransistorVolume) Keys() []string { return []string{KeyChipArea} }

// Calculate divides the die volume by the transistor count.
func (c *TransistorVolume) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	chipArea, err := requiredFloat(params, KeyChipArea)
	if err != nil {
		return estimation.Estimation{}, err
	}
	depth, err := optionalFloat(params, ParamDieDepthMM, c.dieDepthMM)
	if err != nil {
		return estimation.Estimation{}, err
	}
	count, err := optionalFloat(params, ParamTransistorCount, c.transistorCount)
	if err != nil {
		return estimation.Estimation{}, err
	}
	if err := positive(ParamDieDepthMM, depth); err != nil {
		return estimation.Estimation{}, err
	}
	if err := positive(ParamTransistorCount, count); err != nil {
		return estimation.Estimation{}, err
	}

	return estimation.Estimation{
		Key:    KeyTransistorVolume,
		Value:  chipArea * depth / count,
		Unit:   "mm^3",
		Reason: fmt.Sprintf("%.2f mm^2 x %g mm die / %.2e transistors", chipArea, depth, count),
	}, nil
}

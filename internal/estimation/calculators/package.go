package calculators

import (
	"fmt"

	"github.com/kubev2v/footprint/internal/estimation"
)

const (
	// DefaultPackageWidthMM and DefaultPackageHeightMM are the i9-9900K package dimensions.
	DefaultPackageWidthMM  = 37.5
	DefaultPackageHeightMM = 37.5
	// DefaultChipAreaRatio approximates the die as 25% of the package area.
	DefaultChipAreaRatio = 0.25
)

var (
	_ estimation.Calculator = (*TotalPackageArea)(nil)
	_ estimation.Calculator = (*ChipArea)(nil)
)

// TotalPackageArea computes the area of the CPU package in mm^2.
type TotalPackageArea struct {
	widthMM  float64
	heightMM float64
}

// TotalPackageAreaOption configuration option for the calculator
type TotalPackageAreaOption func(*TotalPackageArea)

// WithPackageDimensions sets the package width and height in millimeters.
func WithPackageDimensions(widthMM, heightMM float64) TotalPackageAreaOption {
	return func(c *TotalPackageArea) {
		c.widthMM = widthMM
		c.heightMM = heightMM
	}
}

// NewTotalPackageArea creates a TotalPackageArea calculator with default settings that
// can be overridden by Options
func NewTotalPackageArea(opts ...TotalPackageAreaOption) *TotalPackageArea {
	res := TotalPackageArea{
		widthMM:  DefaultPackageWidthMM,
		heightMM: DefaultPackageHeightMM,
	}
	for _, opt := range opts {
		opt(&res)
	}
	return &res
}

// Name returns the display name of the calculator.
func (c *TotalPackageArea) Name() string { return "Total Package Area" }

// Key returns the key the result is published under.
func (c *TotalPackageArea) Key() string { return KeyTotalPackageArea }

// Keys lists the params that must be present before Calculate runs.
func (c *TotalPackageArea) Keys() []string { return nil }

// Calculate multiplies the package dimensions. ParamPackageWidthMM and ParamPackageHeightMM
// are optional and fall back to the struct defaults.
func (c *TotalPackageArea) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	width, err := optionalFloat(params, ParamPackageWidthMM, c.widthMM)
	if err != nil {
		return estimation.Estimation{}, err
	}
	height, err := optionalFloat(params, ParamPackageHeightMM, c.heightMM)
	if err != nil {
		return estimation.Estimation{}, err
	}
	if err := positive(ParamPackageWidthMM, width); err != nil {
		return estimation.Estimation{}, err
	}
	if err := positive(ParamPackageHeightMM, height); err != nil {
		return estimation.Estimation{}, err
	}

	return estimation.Estimation{
		Key:    KeyTotalPackageArea,
		Value:  width * height,
		Unit:   "mm^2",
		Reason: fmt.Sprintf("%g mm x %g mm package", width, height),
	}, nil
}

// ChipArea computes the die area as a fraction of the package area.
type ChipArea struct {
	ratio float64
}

// ChipAreaOption configuration option for the calculator
type ChipAreaOption func(*ChipArea)

// WithChipAreaRatio sets the fraction of the package occupied by the die.
func WithChipAreaRatio(ratio float64) ChipAreaOption {
	return func(c *ChipArea) {
		c.ratio = ratio
	}
}

// NewChipArea creates a ChipArea calculator with default settings that can be overridden by Options
func NewChipArea(opts ...ChipAreaOption) *ChipArea {
	res := ChipArea{ratio: DefaultChipAreaRatio}
	for _, opt := range opts {
		opt(&res)
	}
	return &res
}

// Name returns the display name of the calculator.
func (c *ChipArea) Name() string { return "Chip Area" }

// Key returns the key the result is published under.
func (c *ChipArea) Key() string { return KeyChipArea }

// Keys lists the params that must be present before Calculate runs.
func (c *ChipArea) Keys() []string { return []string{KeyTotalPackageArea} }

// Calculate scales the total package area by the chip area ratio.
func (c *ChipArea) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	total, err := requiredFloat(params, KeyTotalPackageArea)
	if err != nil {
		return estimation.Estimation{}, err
	}
	r, err := optionalFloat(params, ParamChipAreaRatio, c.ratio)
	if err != nil {
		return estimation.Estimation{}, err
	}
	if err := ratio(ParamChipAreaRatio, r); err != nil {
		return estimation.Estimation{}, err
	}

	return estimation.Estimation{
		Key:    KeyChipArea,
		Value:  total * r,
		Unit:   "mm^2",
		Reason: fmt.Sprintf("%.2f mm^2 package @ %.2f die ratio", total, r),
	}, nil
}

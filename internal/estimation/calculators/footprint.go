package calculators

import (
	"fmt"
	"math"

	"github.com/kubev2v/footprint/internal/estimation"
)

// DefaultBondLengthUM is the Si-Si bond length in micrometers.
const DefaultBondLengthUM = .000236

var (
	_ estimation.Calculator = (*AreaTaken)(nil)
	_ estimation.Calculator = (*UnitCellArea)(nil)
	_ estimation.Calculator = (*UnitCellsPerByte)(nil)
	_ estimation.Calculator = (*UnitCellsTaken)(nil)
)

// AreaTaken is the cache area in um^2 occupied by the measured artifact.
type AreaTaken struct{}

// NewAreaTaken creates an AreaTaken calculator.
func NewAreaTaken() *AreaTaken { return &AreaTaken{} }

// Name returns the display name of the calculator.
func (c *AreaTaken) Name() string { return "Area Taken" }

// Key returns the key the result is published under.
func (c *AreaTaken) Key() string { return KeyAreaTaken }

// Keys lists the params that must be present before Calculate runs.
func (c *AreaTaken) Keys() []string { return []string{KeyAreaPerByteUM2, ParamArtifactBytes} }

// Calculate multiplies the per-byte area by the artifact size.
func (c *AreaTaken) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	perByte, err := requiredFloat(params, KeyAreaPerByteUM2)
	if err != nil {
		return estimation.Estimation{}, err
	}
	bytesParam, ok := params[ParamArtifactBytes]
	if !ok {
		return estimation.Estimation{}, fmt.Errorf("missing %s", ParamArtifactBytes)
	}
	size, err := getInt(bytesParam)
	if err != nil {
		return estimation.Estimation{}, err
	}
	if size < 0 {
		return estimation.Estimation{}, fmt.Errorf("%s must be non-negative", ParamArtifactBytes)
	}

	return estimation.Estimation{
		Key:    KeyAreaTaken,
		Value:  perByte * float64(size),
		Unit:   "um^2",
		Reason: fmt.Sprintf("%d bytes @ %.2f um^2 each", size, perByte),
	}, nil
}

// bondLength is shared by the unit cell calculators.
type bondLength struct {
	um float64
}

// BondLengthOption configuration option for the unit cell calculators
type BondLengthOption func(*bondLength)

// WithBondLength sets the Si-Si bond length in micrometers.
func WithBondLength(um float64) BondLengthOption {
	return func(b *bondLength) {
		b.um = um
	}
}

func newBondLength(opts []BondLengthOption) bondLength {
	res := bondLength{um: DefaultBondLengthUM}
	for _, opt := range opts {
		opt(&res)
	}
	return res
}

func (b bondLength) get(params map[string]estimation.Param) (float64, error) {
	v, err := optionalFloat(params, ParamBondLengthUM, b.um)
	if err != nil {
		return 0, err
	}
	if err := positive(ParamBondLengthUM, v); err != nil {
		return 0, err
	}
	return v, nil
}

// UnitCellArea approximates the area of one silicon unit cell as a bond length square.
type UnitCellArea struct {
	bond bondLength
}

// NewUnitCellArea creates a UnitCellArea calculator with default settings that
// can be overridden by Options
func NewUnitCellArea(opts ...BondLengthOption) *UnitCellArea {
	return &UnitCellArea{bond: newBondLength(opts)}
}

// Name returns the display name of the calculator.
func (c *UnitCellArea) Name() string { return "Unit Cell Area" }

// Key returns the key the result is published under.
func (c *UnitCellArea) Key() string { return KeyUnitCellArea }

// Keys lists the params that must be present before Calculate runs.
func (c *UnitCellArea) Keys() []string { return nil }

// Calculate squares the bond length.
func (c *UnitCellArea) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	b, err := c.bond.get(params)
	if err != nil {
		return estimation.Estimation{}, err
	}
	return estimation.Estimation{
		Key:    KeyUnitCellArea,
		Value:  b * b,
		Unit:   "um^2",
		Reason: fmt.Sprintf("(%g um)^2", b),
	}, nil
}

// UnitCellsPerByte is the number of silicon unit cells covered by one byte of cache.
type UnitCellsPerByte struct{}

// NewUnitCellsPerByte creates a UnitCellsPerByte calculator.
func NewUnitCellsPerByte() *UnitCellsPerByte { return &UnitCellsPerByte{} }

// Name returns the display name of the calculator.
func (c *UnitCellsPerByte) Name() string { return "Unit Cells Per Byte" }

// Key returns the key the result is published under.
func (c *UnitCellsPerByte) Key() string { return KeyUnitCellsPerByte }

// Keys lists the params that must be present before Calculate runs.
func (c *UnitCellsPerByte) Keys() []string { return []string{KeyAreaPerByteUM2, KeyUnitCellArea} }

// Calculate divides the per-byte area by the unit cell area.
func (c *UnitCellsPerByte) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	perByte, err := requiredFloat(params, KeyAreaPerByteUM2)
	if err != nil {
		return estimation.Estimation{}, err
	}
	cell, err := requiredFloat(params, KeyUnitCellArea)
	if err != nil {
		return estimation.Estimation{}, err
	}
	if err := positive(KeyUnitCellArea, cell); err != nil {
		return estimation.Estimation{}, err
	}

	return estimation.Estimation{
		Key:    KeyUnitCellsPerByte,
		Value:  perByte / cell,
		Reason: fmt.Sprintf("%.2f um^2 / %.2e um^2", perByte, cell),
	}, nil
}

// UnitCellsTaken counts the bond-length squares tiling the artifact's cache area:
// the side of the area in nm, divided by the bond length and brought back to
// micrometers, squared.
type UnitCellsTaken struct {
	bond bondLength
}

// NewUnitCellsTaken creates a UnitCellsTaken calculator with default settings that
// can be overridden by Options
func NewUnitCellsTaken(opts ...BondLengthOption) *UnitCellsTaken {
	return &UnitCellsTaken{bond: newBondLength(opts)}
}

// Name returns the display name of the calculator.
func (c *UnitCellsTaken) Name() string { return "Unit Cells Taken" }

// Key returns the key the result is published under.
func (c *UnitCellsTaken) Key() string { return KeyUnitCellsTaken }

// Keys lists the params that must be present before Calculate runs.
func (c *UnitCellsTaken) Keys() []string { return []string{KeyAreaTaken} }

// Calculate squares the side of the taken area measured in bond lengths.
func (c *UnitCellsTaken) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	taken, err := requiredFloat(params, KeyAreaTaken)
	if err != nil {
		return estimation.Estimation{}, err
	}
	b, err := c.bond.get(params)
	if err != nil {
		return estimation.Estimation{}, err
	}

	side := math.Sqrt(taken*SquareMicronsToNanometers) / b / NanometersPerMicron
	return estimation.Estimation{
		Key:    KeyUnitCellsTaken,
		Value:  side * side,
		Reason: fmt.Sprintf("sqrt(%.2f nm^2) / %g um, squared", taken*SquareMicronsToNanometers, b),
	}, nil
}

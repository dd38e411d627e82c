package report

import (
	"bytes"
	"fmt"

	"github.com/kubev2v/footprint/internal/estimation"
	"github.com/kubev2v/footprint/internal/estimation/calculators"
)

// TextRenderer writes the human readable report, one line per quantity.
type TextRenderer struct{}

func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

func (r *TextRenderer) SupportedFormat() Format {
	return FormatText
}

func (r *TextRenderer) Render(data *Data) ([]byte, error) {
	v := &values{state: data.State}

	chipAreaRatio := v.input(calculators.ParamChipAreaRatio)
	transistors := v.input(calculators.ParamTransistorCount)
	coreCacheRatio := v.input(calculators.ParamCoreCacheAreaRatio)
	cacheBytes := v.input(calculators.ParamCacheBytes)

	totalArea := v.get(calculators.KeyTotalPackageArea)
	chipArea := v.get(calculators.KeyChipArea)
	volume := v.get(calculators.KeyTransistorVolumeUM3)
	coreChipRatio := v.get(calculators.KeyCoreChipAreaRatio)
	cacheArea := v.get(calculators.KeyCacheArea)
	perByteMM2 := v.get(calculators.KeyAreaPerByte)
	perByteUM2 := v.get(calculators.KeyAreaPerByteUM2)
	taken := v.get(calculators.KeyAreaTaken)
	cell := v.get(calculators.KeyUnitCellArea)
	cellsPerByte := v.get(calculators.KeyUnitCellsPerByte)
	cellsTaken := v.get(calculators.KeyUnitCellsTaken)
	if v.err != nil {
		return nil, v.err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Chip area ratio: %.2f\n", chipAreaRatio)
	fmt.Fprintf(&buf, "Total chip area: %.2f mm^2\n", totalArea)
	fmt.Fprintf(&buf, "Chip area: %.2f mm^2\n", chipArea)
	fmt.Fprintf(&buf, "Number of transistors: %.2e\n", transistors)
	fmt.Fprintf(&buf, "Transistor area: %.2f um^3\n", volume)
	fmt.Fprintf(&buf, "Core cache area ratio: %.2f\n", coreCacheRatio)
	fmt.Fprintf(&buf, "Core chip area ratio: %.4f\n", coreChipRatio)
	fmt.Fprintf(&buf, "Cache area: %.2f mm^2\n", cacheArea)
	fmt.Fprintf(&buf, "Therefore %.2f mm^2 of the chip is taken up by %gMB of cache\n", cacheArea, cacheBytes/1e6)
	fmt.Fprintf(&buf, "%.9f mm^2 per byte of cache\n", perByteMM2)
	fmt.Fprintf(&buf, "%.2f um^2 per byte of cache\n", perByteUM2)
	fmt.Fprintf(&buf, "This file takes up %.2f um^2 of cache\n", taken)
	fmt.Fprintf(&buf, "or it takes up %.7f mm^2 of cache\n", taken/calculators.SquareMillimetersToMicrons)
	fmt.Fprintf(&buf, "or it takes up %.2f nm^2 of cache\n", taken*calculators.SquareMicronsToNanometers)
	fmt.Fprintf(&buf, "Unit cell area: %.2e um^2\n", cell)
	fmt.Fprintf(&buf, "Number of silicon unit cells per byte: %.2e\n", cellsPerByte)
	fmt.Fprintf(&buf, "%2e\n", cellsTaken)
	return buf.Bytes(), nil
}

// values reads from a State and keeps the first lookup failure.
type values struct {
	state *estimation.State
	err   error
}

func (v *values) get(key string) float64 {
	est, ok := v.state.Get(key)
	if !ok && v.err == nil {
		v.err = fmt.Errorf("estimation %s not computed", key)
	}
	return est.Value
}

func (v *values) input(key string) float64 {
	p, ok := v.state.Input(key)
	if !ok {
		if v.err == nil {
			v.err = fmt.Errorf("input %s not set", key)
		}
		return 0
	}
	f, err := toFloat(p.Value)
	if err != nil && v.err == nil {
		v.err = fmt.Errorf("input %s: %w", key, err)
	}
	return f
}

func toFloat(value interface{}) (float64, error) {
	switch n := value.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("not a number (type: %T)", value)
	}
}

package calculators

import (
	"fmt"

	"github.com/kubev2v/footprint/internal/estimation"
)

const (
	// DefaultCoreCacheAreaRatio assumes approximately 25% of each core is cache.
	DefaultCoreCacheAreaRatio = 0.25

	// Cores and die as measured on the i9-9900K die shot (arbitrary units).
	DefaultCoreDiagramWidth  = 4.7
	DefaultCoreDiagramHeight = 3
	DefaultDieDiagramWidth   = 24
	DefaultDieDiagramHeight  = 11

	// DefaultCacheBytes is the 2MB of L3 cache per core.
	DefaultCacheBytes = 2e6
)

var (
	_ estimation.Calculator = (*CoreChipAreaRatio)(nil)
	_ estimation.Calculator = (*CacheArea)(nil)
	_ estimation.Calculator = (*AreaPerByte)(nil)
)

// CoreChipAreaRatio computes the share of the die taken by the measured cores.
type CoreChipAreaRatio struct {
	coreWidth  float64
	coreHeight float64
	dieWidth   float64
	dieHeight  float64
}

// CoreChipAreaRatioOption configuration option for the calculator
type CoreChipAreaRatioOption func(*CoreChipAreaRatio)

// WithCoreDiagram sets the width and height of the cores on the die diagram.
func WithCoreDiagram(width, height float64) CoreChipAreaRatioOption {
	return func(c *CoreChipAreaRatio) {
		c.coreWidth = width
		c.coreHeight = height
	}
}

// WithDieDiagram sets the width and height of the die on the same diagram.
func WithDieDiagram(width, height float64) CoreChipAreaRatioOption {
	return func(c *CoreChipAreaRatio) {
		c.dieWidth = width
		c.dieHeight = height
	}
}

// NewCoreChipAreaRatio creates a CoreChipAreaRatio calculator with default settings that
// can be overridden by Options
func NewCoreChipAreaRatio(opts ...CoreChipAreaRatioOption) *CoreChipAreaRatio {
	res := CoreChipAreaRatio{
		coreWidth:  DefaultCoreDiagramWidth,
		coreHeight: DefaultCoreDiagramHeight,
		dieWidth:   DefaultDieDiagramWidth,
		dieHeight:  DefaultDieDiagramHeight,
	}
	for _, opt := range opts {
		opt(&res)
	}
	return &res
}

// Name returns the display name of the calculator.
func (c *CoreChipAreaRatio) Name() string { return "Core Chip Area Ratio" }

// Key returns the key the result is published under.
func (c *CoreChipAreaRatio) Key() string { return KeyCoreChipAreaRatio }

// Keys lists the params that must be present before Calculate runs.
func (c *CoreChipAreaRatio) Keys() []string { return nil }

// Calculate divides the core diagram area by the die diagram area.
func (c *CoreChipAreaRatio) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	dims := []struct {
		key      string
		fallback float64
	}{
		{ParamCoreDiagramWidth, c.coreWidth},
		{ParamCoreDiagramHeight, c.coreHeight},
		{ParamDieDiagramWidth, c.dieWidth},
		{ParamDieDiagramHeight, c.dieHeight},
	}
	values := make([]float64, len(dims))
	for i, d := range dims {
		v, err := optionalFloat(params, d.key, d.fallback)
		if err != nil {
			return estimation.Estimation{}, err
		}
		if err := positive(d.key, v); err != nil {
			return estimation.Estimation{}, err
		}
		values[i] = v
	}
	coreW, coreH, dieW, dieH := values[0], values[1], values[2], values[3]

	return estimation.Estimation{
		Key:    KeyCoreChipAreaRatio,
		Value:  (coreW * coreH) / (dieW * dieH),
		Reason: fmt.Sprintf("(%g x %g) cores / (%g x %g) die", coreW, coreH, dieW, dieH),
	}, nil
}

// CacheArea estimates the die area taken by the per-core cache in mm^2.
type CacheArea struct {
	coreCacheAreaRatio float64
}

// CacheAreaOption configuration option for the calculator
type CacheAreaOption func(*CacheArea)

// WithCoreCacheAreaRatio sets the fraction of a core occupied by its cache.
func WithCoreCacheAreaRatio(ratio float64) CacheAreaOption {
	return func(c *CacheArea) {
		c.coreCacheAreaRatio = ratio
	}
}

// NewCacheArea creates a CacheArea calculator with default settings that can be overridden by Options
func NewCacheArea(opts ...CacheAreaOption) *CacheArea {
	res := CacheArea{coreCacheAreaRatio: DefaultCoreCacheAreaRatio}
	for _, opt := range opts {
		opt(&res)
	}
	return &res
}

// Name returns the display name of the calculator.
func (c *CacheArea) Name() string { return "Cache Area" }

// Key returns the key the result is published under.
func (c *CacheArea) Key() string { return KeyCacheArea }

// Keys lists the params that must be present before Calculate runs.
func (c *CacheArea) Keys() []string { return []string{KeyCoreChipAreaRatio, KeyChipArea} }

// Calculate takes the cache share of one core scaled to the chip area.
func (c *CacheArea) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	coreChip, err := requiredFloat(params, KeyCoreChipAreaRatio)
	if err != nil {
		return estimation.Estimation{}, err
	}
	chipArea, err := requiredFloat(params, KeyChipArea)
	if err != nil {
		return estimation.Estimation{}, err
	}
	coreCache, err := optionalFloat(params, ParamCoreCacheAreaRatio, c.coreCacheAreaRatio)
	if err != nil {
		return estimation.Estimation{}, err
	}
	if err := ratio(ParamCoreCacheAreaRatio, coreCache); err != nil {
		return estimation.Estimation{}, err
	}

	return estimation.Estimation{
		Key:    KeyCacheArea,
		Value:  coreCache * coreChip * chipArea,
		Unit:   "mm^2",
		Reason: fmt.Sprintf("%.2f cache x %.4f core share x %.2f mm^2 die", coreCache, coreChip, chipArea),
	}, nil
}

// AreaPerByte spreads the cache area over the cache size, in mm^2 per byte.
type AreaPerByte struct {
	cacheBytes float64
}

// AreaPerByteOption configuration option for the calculator
type AreaPerByteOption func(*AreaPerByte)

// WithCacheBytes sets the cache size in bytes.
func WithCacheBytes(bytes float64) AreaPerByteOption {
	return func(c *AreaPerByte) {
		c.cacheBytes = bytes
	}
}

// NewAreaPerByte creates an AreaPerByte calculator with default settings that can be overridden by Options
func NewAreaPerByte(opts ...AreaPerByteOption) *AreaPerByte {
	res := AreaPerByte{cacheBytes: DefaultCacheBytes}
	for _, opt := range opts {
		opt(&res)
	}
	return &res
}

// Name returns the display name of the calculator.
func (c *AreaPerByte) Name() string { return "Area Per Byte" }

// Key returns the key the result is published under.
func (c *AreaPerByte) Key() string { return KeyAreaPerByte }

// Keys lists the params that must be present before Calculate runs.
func (c *AreaPerByte) Keys() []string { return []string{KeyCacheArea} }

// Calculate spreads the cache area over the cache size in bytes.
func (c *AreaPerByte) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	cacheArea, err := requiredFloat(params, KeyCacheArea)
	if err != nil {
		return estimation.Estimation{}, err
	}
	cacheBytes, err := optionalFloat(params, ParamCacheBytes, c.cacheBytes)
	if err != nil {
		return estimation.Estimation{}, err
	}
	if err := positive(ParamCacheBytes, cacheBytes); err != nil {
		return estimation.Estimation{}, err
	}

	return estimation.Estimation{
		Key:    KeyAreaPerByte,
		Value:  cacheArea / cacheBytes,
		Unit:   "mm^2",
		Reason: fmt.Sprintf("%.2f mm^2 / %g bytes", cacheArea, cacheBytes),
	}, nil
}

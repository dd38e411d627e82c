// Package profile holds the table of hardware constants the footprint chain runs on.
package profile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kubev2v/footprint/internal/estimation"
	"github.com/kubev2v/footprint/internal/estimation/calculators"
	"github.com/kubev2v/footprint/internal/validator"
	"sigs.k8s.io/yaml"
)

// DefaultName identifies the built-in table.
const DefaultName = "Intel Core i9-9900K"

// Profile is the constant table of one CPU. All values are rough approximations; the
// default table is kept as measured and is never refined.
type Profile struct {
	Name string `json:"name" validate:"required,profile_name"`

	PackageWidthMM  float64 `json:"packageWidthMM" validate:"gt=0"`
	PackageHeightMM float64 `json:"packageHeightMM" validate:"gt=0"`
	ChipAreaRatio   float64 `json:"chipAreaRatio" validate:"ratio"`
	DieDepthMM      float64 `json:"dieDepthMM" validate:"gt=0"`
	TransistorCount float64 `json:"transistorCount" validate:"gt=0"`

	CoreCacheAreaRatio float64 `json:"coreCacheAreaRatio" validate:"ratio"`
	CoreDiagramWidth   float64 `json:"coreDiagramWidth" validate:"gt=0"`
	CoreDiagramHeight  float64 `json:"coreDiagramHeight" validate:"gt=0"`
	DieDiagramWidth    float64 `json:"dieDiagramWidth" validate:"gt=0"`
	DieDiagramHeight   float64 `json:"dieDiagramHeight" validate:"gt=0"`
	CacheBytes         float64 `json:"cacheBytes" validate:"gt=0"`

	BondLengthUM float64 `json:"bondLengthUM" validate:"gt=0"`
}

// Default returns the i9-9900K table.
func Default() *Profile {
	return &Profile{
		Name:               DefaultName,
		PackageWidthMM:     calculators.DefaultPackageWidthMM,
		PackageHeightMM:    calculators.DefaultPackageHeightMM,
		ChipAreaRatio:      calculators.DefaultChipAreaRatio,
		DieDepthMM:         calculators.DefaultDieDepthMM,
		TransistorCount:    calculators.DefaultTransistorCount,
		CoreCacheAreaRatio: calculators.DefaultCoreCacheAreaRatio,
		CoreDiagramWidth:   calculators.DefaultCoreDiagramWidth,
		CoreDiagramHeight:  calculators.DefaultCoreDiagramHeight,
		DieDiagramWidth:    calculators.DefaultDieDiagramWidth,
		DieDiagramHeight:   calculators.DefaultDieDiagramHeight,
		CacheBytes:         calculators.DefaultCacheBytes,
		BondLengthUM:       calculators.DefaultBondLengthUM,
	}
}

// Load reads a YAML (or JSON) profile from path. Fields absent from the file keep
// their default value.
func Load(path string) (*Profile, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	p := Default()
	if err := yaml.UnmarshalStrict(contents, p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile file: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return p, nil
}

// LoadOrDefault loads path, or returns the default profile when path is empty.
func LoadOrDefault(path string) (*Profile, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks every constant is in range.
func (p *Profile) Validate() error {
	v := validator.NewValidator()
	v.Register(validator.NewProfileValidationRules()...)
	return v.Struct(p)
}

// Params converts the table into estimation inputs, in table order.
func (p *Profile) Params() []estimation.Param {
	return []estimation.Param{
		{Key: calculators.ParamPackageWidthMM, Value: p.PackageWidthMM},
		{Key: calculators.ParamPackageHeightMM, Value: p.PackageHeightMM},
		{Key: calculators.ParamChipAreaRatio, Value: p.ChipAreaRatio},
		{Key: calculators.ParamDieDepthMM, Value: p.DieDepthMM},
		{Key: calculators.ParamTransistorCount, Value: p.TransistorCount},
		{Key: calculators.ParamCoreCacheAreaRatio, Value: p.CoreCacheAreaRatio},
		{Key: calculators.ParamCoreDiagramWidth, Value: p.CoreDiagramWidth},
		{Key: calculators.ParamCoreDiagramHeight, Value: p.CoreDiagramHeight},
		{Key: calculators.ParamDieDiagramWidth, Value: p.DieDiagramWidth},
		{Key: calculators.ParamDieDiagramHeight, Value: p.DieDiagramHeight},
		{Key: calculators.ParamCacheBytes, Value: p.CacheBytes},
		{Key: calculators.ParamBondLengthUM, Value: p.BondLengthUM},
	}
}

func (p *Profile) String() string {
	contents, err := json.Marshal(p)
	if err != nil {
		return "<error>"
	}
	return string(contents)
}

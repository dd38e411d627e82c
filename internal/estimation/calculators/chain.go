package calculators

import "github.com/kubev2v/footprint/internal/estimation"

// NewChain returns an Engine with the full footprint chain registered in dependency order.
func NewChain() *estimation.Engine {
	engine := estimation.NewEngine()

	engine.Register(NewTotalPackageArea())
	engine.Register(NewChipArea())
	engine.Register(NewTransistorVolume())
	engine.Register(NewConversion("Transistor Volume (um^3)", KeyTransistorVolume, KeyTransistorVolumeUM3, CubicMillimetersToMicrons, "um^3"))
	engine.Register(NewCoreChipAreaRatio())
	engine.Register(NewCacheArea())
	engine.Register(NewAreaPerByte())
	engine.Register(NewConversion("Area Per Byte (um^2)", KeyAreaPerByte, KeyAreaPerByteUM2, SquareMillimetersToMicrons, "um^2"))
	engine.Register(NewAreaTaken())
	engine.Register(NewUnitCellArea())
	engine.Register(NewUnitCellsPerByte())
	engine.Register(NewUnitCellsTaken())

	return engine
}

package calculators

// Param prefix = input keys (profile constants and measured values)
// Key prefix = keys under which calculator results are published
const (
	// ParamPackageWidthMM width of the CPU package in millimeters.
	ParamPackageWidthMM = "package_width_mm"
	// ParamPackageHeightMM height of the CPU package in millimeters.
	ParamPackageHeightMM = "package_height_mm"
	// ParamChipAreaRatio fraction of the package area taken by the die.
	ParamChipAreaRatio = "chip_area_ratio"
	// ParamDieDepthMM depth of the die in millimeters.
	ParamDieDepthMM = "die_depth_mm"
	// ParamTransistorCount number of transistors on the die.
	ParamTransistorCount = "transistor_count"
	// ParamCoreCacheAreaRatio fraction of a core taken by its cache.
	ParamCoreCacheAreaRatio = "core_cache_area_ratio"
	// ParamCoreDiagramWidth width of the cores measured on the die diagram.
	ParamCoreDiagramWidth = "core_diagram_width"
	// ParamCoreDiagramHeight height of the cores measured on the die diagram.
	ParamCoreDiagramHeight = "core_diagram_height"
	// ParamDieDiagramWidth width of the die on the same diagram.
	ParamDieDiagramWidth = "die_diagram_width"
	// ParamDieDiagramHeight height of the die on the same diagram.
	ParamDieDiagramHeight = "die_diagram_height"
	// ParamCacheBytes size in bytes of the cache covered by the core cache area.
	ParamCacheBytes = "cache_bytes"
	// ParamBondLengthUM silicon to silicon bond length in micrometers.
	ParamBondLengthUM = "bond_length_um"
	// ParamArtifactBytes byte size of the measured artifact.
	ParamArtifactBytes = "artifact_bytes"

	KeyTotalPackageArea    = "total_package_area_mm2"
	KeyChipArea            = "chip_area_mm2"
	KeyTransistorVolume    = "transistor_volume_mm3"
	KeyTransistorVolumeUM3 = "transistor_volume_um3"
	KeyCoreChipAreaRatio   = "core_chip_area_ratio"
	KeyCacheArea           = "cache_area_mm2"
	KeyAreaPerByte         = "area_per_byte_mm2"
	KeyAreaPerByteUM2      = "area_per_byte_um2"
	KeyAreaTaken           = "area_taken_um2"
	KeyUnitCellArea        = "unit_cell_area_um2"
	KeyUnitCellsPerByte    = "unit_cells_per_byte"
	KeyUnitCellsTaken      = "unit_cells_taken"
)

// Unit conversion factors.
const (
	CubicMillimetersToMicrons  = 1e9 // (1e3)^3
	SquareMillimetersToMicrons = 1e6 // (1e3)^2
	SquareMicronsToNanometers  = 1e6
	NanometersPerMicron        = 1e3
)

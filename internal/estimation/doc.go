// Package estimation defines a pluggable footprint estimation calculator.
//
// Each derivation step is encapsulated in one specific Calculator. The Engine runs the
// calculators in registration order and publishes every result as a Param, so a later
// calculator can depend on the values computed before it.
package estimation

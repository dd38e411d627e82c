// Package calculators provides concrete Calculator implementations for the estimation engine.
//
// Each calculator derives one physical quantity of the cache footprint chain (package area,
// die area, transistor volume, cache area per byte, silicon unit cells). Hardware constants
// are optional params that fall back to the calculator defaults, which describe an
// Intel Core i9-9900K. Calculators are composed via the estimation.Engine; NewChain
// registers them in dependency order.
package calculators

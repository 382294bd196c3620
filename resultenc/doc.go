// Package resultenc serializes calculation results for transport and caching.
//
// Results are JSON payloads dominated by long float64 arrays (sample grids,
// curves, fitted values), which compress well. The package pairs the JSON
// codec with a pluggable compression layer: Zstandard for the best ratio, S2
// and LZ4 for cheaper round trips, or no compression at all.
//
// Encoders and decoders are pooled internally; all entry points are safe for
// concurrent use.
package resultenc

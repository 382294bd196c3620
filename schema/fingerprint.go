package schema

import (
	"math"
	"slices"
	"strconv"

	"github.com/probviz/distlab/internal/hash"
)

// Fingerprint returns a deterministic xxHash64 identifier for the request,
// independent of parameter map iteration order. The UI layer can use it as a
// cache key for recomputed curves; the engine itself caches nothing.
//
// The hash covers the normalized request, so Points=0 and Points=DefaultPoints
// produce the same fingerprint.
func (r CalculationRequest) Fingerprint() uint64 {
	n := r.Normalized()

	names := make([]string, 0, len(n.Params))
	for name := range n.Params {
		names = append(names, name)
	}
	slices.Sort(names)

	fields := make([]string, 0, 3+2*len(names))
	fields = append(fields,
		n.Type.String(),
		strconv.Itoa(n.Points),
		strconv.FormatUint(n.Seed, 10),
	)
	for _, name := range names {
		// Hash the exact bit pattern: -0.0 vs 0.0 and NaN payloads must not
		// collapse silently.
		bits := math.Float64bits(n.Params[name])
		fields = append(fields, name, strconv.FormatUint(bits, 16))
	}

	return hash.Fields(fields...)
}

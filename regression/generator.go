package regression

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/probviz/distlab/errs"
	"github.com/probviz/distlab/format"
)

const (
	// XMin and XMax bound the fixed range the explanatory variable is drawn
	// from, uniformly, before sorting.
	XMin = -5.0
	XMax = 5.0

	// QuadraticCoefficient scales the x² term added by PatternQuadratic.
	QuadraticCoefficient = 0.5

	// OutlierFraction is the share of points PatternOutlier pushes off the
	// line; the displacement magnitude is OutlierBase + 5*noise_std.
	OutlierFraction = 0.1
	OutlierBase     = 5.0
)

// GeneratorConfig describes one synthetic dataset: the true line, the noise
// level, the deviation pattern and the explicit random seed.
type GeneratorConfig struct {
	Slope     float64
	Intercept float64
	NoiseStd  float64
	Pattern   format.DataPattern
	Points    int
	Seed      uint64
}

// Dataset is a generated sample. YObserved is always YTrue plus zero-mean
// Gaussian noise scaled by the configured noise level; the pattern shapes
// YTrue only.
type Dataset struct {
	X         []float64
	YTrue     []float64
	YObserved []float64
}

// Generate produces a dataset from the config. The result is fully
// deterministic for a given config: the same seed always yields the same
// sample, which is what makes repeated parameter tweaks comparable in the UI.
func Generate(cfg GeneratorConfig) (Dataset, error) {
	if cfg.Points < 2 {
		return Dataset{}, fmt.Errorf("%w: generator needs at least 2 points, got %d", errs.ErrInvalidPointCount, cfg.Points)
	}
	if cfg.NoiseStd < 0 {
		return Dataset{}, errs.Invalid("noise_std", "noise level must be non-negative, got %g", cfg.NoiseStd)
	}
	if !cfg.Pattern.Valid() {
		return Dataset{}, errs.Invalid("pattern", "unknown data pattern %d", cfg.Pattern)
	}

	src := rand.NewPCG(cfg.Seed, cfg.Seed)
	rng := rand.New(src)

	n := cfg.Points
	xDist := distuv.Uniform{Min: XMin, Max: XMax, Src: src}
	x := make([]float64, n)
	for i := range x {
		x[i] = xDist.Rand()
	}
	slices.Sort(x)

	// Standard normal scaled by the noise level, so a zero noise level still
	// consumes the same random draws and keeps x identical across levels.
	noiseDist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	noise := make([]float64, n)
	for i := range noise {
		noise[i] = noiseDist.Rand() * cfg.NoiseStd
	}

	yTrue := make([]float64, n)
	for i, xi := range x {
		yTrue[i] = cfg.Slope*xi + cfg.Intercept
	}

	switch cfg.Pattern {
	case format.PatternQuadratic:
		for i, xi := range x {
			yTrue[i] += QuadraticCoefficient * xi * xi
		}
	case format.PatternOutlier:
		count := int(float64(n) * OutlierFraction)
		magnitude := cfg.NoiseStd*5 + OutlierBase
		for _, idx := range rng.Perm(n)[:count] {
			if rng.Float64() < 0.5 {
				yTrue[idx] -= magnitude
			} else {
				yTrue[idx] += magnitude
			}
		}
	case format.PatternLinear:
		// Pure line.
	}

	yObserved := make([]float64, n)
	for i := range yObserved {
		yObserved[i] = yTrue[i] + noise[i]
	}

	return Dataset{X: x, YTrue: yTrue, YObserved: yObserved}, nil
}

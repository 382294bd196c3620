package format

import "strings"

type (
	CalculatorType  uint8
	Category        uint8
	DataPattern     uint8
	FitMethod       uint8
	CompressionType uint8
)

const (
	TypeInvalid          CalculatorType = 0x0 // TypeInvalid represents an unregistered calculator type.
	TypeUniform          CalculatorType = 0x1 // TypeUniform represents the continuous uniform distribution.
	TypeExponential      CalculatorType = 0x2 // TypeExponential represents the exponential distribution.
	TypeNormal           CalculatorType = 0x3 // TypeNormal represents the normal (Gaussian) distribution.
	TypeLinearRegression CalculatorType = 0x4 // TypeLinearRegression represents the single-variable linear model.

	CategoryContinuous   Category = 0x1 // CategoryContinuous marks continuous probability distributions.
	CategoryDiscrete     Category = 0x2 // CategoryDiscrete marks discrete probability distributions.
	CategoryMultivariate Category = 0x3 // CategoryMultivariate marks multivariate distributions.
	CategoryRegression   Category = 0x4 // CategoryRegression marks machine-learning regression models.

	PatternLinear    DataPattern = 0x0 // PatternLinear generates data on the true line.
	PatternQuadratic DataPattern = 0x1 // PatternQuadratic adds a quadratic perturbation to the true line.
	PatternOutlier   DataPattern = 0x2 // PatternOutlier pushes a fraction of points far off the line.

	FitAnalytical FitMethod = 0x1 // FitAnalytical is the closed-form covariance/variance solution.
	FitMatrix     FitMethod = 0x2 // FitMatrix is the design-matrix least-squares solve.
	FitGradient   FitMethod = 0x3 // FitGradient is iterative gradient descent on the MSE loss.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// calculatorTypeNames holds the stable wire identifiers for each calculator type.
// These strings are part of the external contract and are never reused for
// different semantics.
var calculatorTypeNames = map[CalculatorType]string{
	TypeUniform:          "uniform",
	TypeExponential:      "exponential",
	TypeNormal:           "normal",
	TypeLinearRegression: "linear_regression",
}

var calculatorTypeFromString = map[string]CalculatorType{
	"uniform":           TypeUniform,
	"exponential":       TypeExponential,
	"normal":            TypeNormal,
	"linear_regression": TypeLinearRegression,
}

func (t CalculatorType) String() string {
	if name, exists := calculatorTypeNames[t]; exists {
		return name
	}

	return "unknown"
}

// CalculatorTypeFromString returns the CalculatorType for a given wire identifier.
// Returns TypeInvalid for unknown names.
func CalculatorTypeFromString(name string) CalculatorType {
	if t, exists := calculatorTypeFromString[strings.ToLower(name)]; exists {
		return t
	}

	return TypeInvalid
}

// MarshalText implements encoding.TextMarshaler so calculator types serialize
// as their stable string identifiers in payloads consumed by the UI layer.
func (t CalculatorType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown identifiers map
// to TypeInvalid; the dispatcher rejects those on lookup.
func (t *CalculatorType) UnmarshalText(data []byte) error {
	*t = CalculatorTypeFromString(string(data))
	return nil
}

func (c Category) String() string {
	switch c {
	case CategoryContinuous:
		return "continuous"
	case CategoryDiscrete:
		return "discrete"
	case CategoryMultivariate:
		return "multivariate"
	case CategoryRegression:
		return "ml_regression"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (p DataPattern) String() string {
	switch p {
	case PatternLinear:
		return "linear"
	case PatternQuadratic:
		return "quadratic"
	case PatternOutlier:
		return "outlier"
	default:
		return "unknown"
	}
}

// Valid reports whether p is one of the defined data patterns.
func (p DataPattern) Valid() bool {
	return p == PatternLinear || p == PatternQuadratic || p == PatternOutlier
}

func (m FitMethod) String() string {
	switch m {
	case FitAnalytical:
		return "analytical"
	case FitMatrix:
		return "matrix"
	case FitGradient:
		return "gradient_descent"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m FitMethod) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so decoded results keep
// their fit-method identifiers. Unknown identifiers map to the zero value.
func (m *FitMethod) UnmarshalText(data []byte) error {
	switch strings.ToLower(string(data)) {
	case "analytical":
		*m = FitAnalytical
	case "matrix":
		*m = FitMatrix
	case "gradient_descent":
		*m = FitGradient
	default:
		*m = 0
	}

	return nil
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

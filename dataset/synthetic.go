// Package dataset supplies synthetic training data and train/test
// splitting for the regression estimators. The estimator core never
// depends on this package; it only ever sees the pairs it is handed.
package dataset

import (
	"math/rand"

	"github.com/YuminosukeSato/ridgego/pkg/errors"
)

// Config holds generation parameters for synthetic quadratic data.
// Targets follow y = C0 + C1*x + C2*x² plus Gaussian noise, so the
// coefficient order matches the estimator's [1, x, x²] basis exactly.
type Config struct {
	N        int     // Number of samples
	C0       float64 // Intercept coefficient
	C1       float64 // Linear coefficient
	C2       float64 // Quadratic coefficient
	NoiseStd float64 // Standard deviation of additive Gaussian noise
	XMin     float64 // Lower bound of the uniform input range
	XMax     float64 // Upper bound of the uniform input range
	Seed     int64   // RNG seed; identical seeds reproduce the dataset
}

// NewDefaultConfig returns parameters generating a noisy y ≈ x² dataset.
func NewDefaultConfig() *Config {
	return &Config{
		N:        100,
		C0:       0,
		C1:       0,
		C2:       1,
		NoiseStd: 0.5,
		XMin:     -3,
		XMax:     3,
		Seed:     42,
	}
}

// GenerateQuadratic samples n input points uniformly from [XMin, XMax] and
// produces index-aligned targets from the configured quadratic plus noise.
func GenerateQuadratic(cfg *Config) (xs, ys []float64, err error) {
	if cfg.N <= 0 {
		return nil, nil, errors.NewValidationError("N", "must be positive", cfg.N)
	}
	if cfg.XMax <= cfg.XMin {
		return nil, nil, errors.NewValidationError("XMax", "must be greater than XMin", cfg.XMax)
	}
	if cfg.NoiseStd < 0 {
		return nil, nil, errors.NewValidationError("NoiseStd", "must be non-negative", cfg.NoiseStd)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	xs = make([]float64, cfg.N)
	ys = make([]float64, cfg.N)

	width := cfg.XMax - cfg.XMin
	for i := 0; i < cfg.N; i++ {
		x := cfg.XMin + width*rng.Float64()
		xs[i] = x
		ys[i] = cfg.C0 + cfg.C1*x + cfg.C2*x*x + cfg.NoiseStd*rng.NormFloat64()
	}

	return xs, ys, nil
}

// Package ridge implements closed-form L2-regularized least squares over a
// fixed quadratic basis.
//
// The estimator expands each scalar input x to [1, x, x²], builds the
// design matrix and solves the regularized normal equations
//
//	θ̂ = (XᵀX + λI)⁻¹ XᵀY
//
// in closed form via a Cholesky factorization of the symmetric
// positive-(semi)definite Gram matrix. There is no iterative solver and no
// search over λ; the regularization strength is fixed at construction.
package ridge

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/ridgego/core/model"
	"github.com/YuminosukeSato/ridgego/core/parallel"
	"github.com/YuminosukeSato/ridgego/pkg/errors"
)

// defaultCondTol is the condition-number threshold beyond which a solve is
// reported as numerically singular even when factorization succeeds.
const defaultCondTol = 1e12

// Ridge is a closed-form ridge regression estimator over the quadratic
// basis [1, x, x²].
//
// The regularization strength λ is immutable for the lifetime of the
// instance. Fit overwrites the stored coefficients on each call, so a
// single instance must not be shared by concurrent fits; independent
// instances have no shared state and may run fully in parallel.
type Ridge struct {
	model.BaseEstimator

	lambda  float64 // Regularization strength (λ ≥ 0)
	condTol float64 // Conditioning threshold for the Gram matrix

	coef *mat.VecDense // Fitted coefficients [intercept, linear, quadratic]
}

// New creates a Ridge estimator with the given regularization strength.
// A negative lambda is rejected eagerly rather than left to produce a
// degenerate system later.
func New(lambda float64, opts ...Option) (*Ridge, error) {
	if lambda < 0 {
		return nil, errors.NewValidationError("lambda", "must be non-negative", lambda)
	}

	r := &Ridge{
		lambda:  lambda,
		condTol: defaultCondTol,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// FromWeights reconstructs a fitted Ridge estimator from exported weights.
// The weights must describe a fitted Ridge model over the quadratic basis.
func FromWeights(weights *model.ModelWeights) (*Ridge, error) {
	if err := weights.Validate(); err != nil {
		return nil, errors.Wrap(err, "Ridge.FromWeights")
	}
	if weights.ModelType != "Ridge" {
		return nil, errors.NewValueError("Ridge.FromWeights",
			"model_type must be Ridge, got "+weights.ModelType)
	}
	if len(weights.Coefficients) != BasisSize {
		return nil, errors.NewDimensionError("Ridge.FromWeights",
			BasisSize, len(weights.Coefficients), 1)
	}

	r, err := New(weights.Lambda)
	if err != nil {
		return nil, err
	}

	r.coef = mat.NewVecDense(BasisSize, nil)
	for i, c := range weights.Coefficients {
		r.coef.SetVec(i, c)
	}
	r.SetFitted()

	return r, nil
}

// Lambda returns the regularization strength the estimator was constructed
// with.
func (r *Ridge) Lambda() float64 {
	return r.lambda
}

// Fit solves the regularized normal equations for the given training
// pairs and returns the fitted coefficient vector [θ̂₀, θ̂₁, θ̂₂].
//
// The returned vector is owned by the caller; the estimator keeps its own
// copy for Predict, overwritten on each re-fit. The solution minimizes
// J(θ) = Σᵢ(θᵀx̄ᵢ − yᵢ)² + λ‖θ‖² and is deterministic for identical input.
//
// Fit fails with a singular-matrix ModelError when XᵀX + λI is not
// invertible within meaningful precision, e.g. λ = 0 with fewer than three
// distinct inputs. No regularization fallback is injected.
func (r *Ridge) Fit(xs, ys []float64) (coef *mat.VecDense, err error) {
	defer errors.Recover(&err, "Ridge.Fit")

	if len(xs) == 0 {
		return nil, errors.NewModelError("Ridge.Fit", "empty data", errors.ErrEmptyData)
	}
	if len(ys) != len(xs) {
		return nil, errors.NewDimensionError("Ridge.Fit", len(xs), len(ys), 0)
	}

	n := len(xs)
	X := designMatrix(xs)
	y := mat.NewVecDense(n, ys)

	// Gram matrix XᵀX, regularized on the diagonal with λ. The identity
	// dimension matches the basis size, not the sample count.
	var gram mat.SymDense
	gram.SymOuterK(1, X.T())
	for i := 0; i < BasisSize; i++ {
		gram.SetSym(i, i, gram.At(i, i)+r.lambda)
	}

	var xty mat.VecDense
	xty.MulVec(X.T(), y)

	var chol mat.Cholesky
	if ok := chol.Factorize(&gram); !ok {
		return nil, errors.NewModelError("Ridge.Fit", "singular matrix", errors.ErrSingularMatrix)
	}
	if cond := chol.Cond(); cond > r.condTol {
		return nil, errors.NewModelError("Ridge.Fit", "ill-conditioned matrix", errors.ErrSingularMatrix)
	}

	theta := mat.NewVecDense(BasisSize, nil)
	if err := chol.SolveVecTo(theta, &xty); err != nil {
		return nil, errors.NewModelError("Ridge.Fit", "singular matrix", errors.ErrSingularMatrix)
	}

	if err := errors.CheckNumericalStability("Ridge.Fit", theta.RawVector().Data); err != nil {
		return nil, err
	}

	r.coef = mat.VecDenseCopyOf(theta)
	r.SetFitted()

	return theta, nil
}

// Predict returns θ̂₀ + θ̂₁x + θ̂₂x² for a single input.
func (r *Ridge) Predict(x float64) (float64, error) {
	if !r.IsFitted() {
		return 0, errors.NewNotFittedError("Ridge", "Predict")
	}

	return r.coef.AtVec(0) + r.coef.AtVec(1)*x + r.coef.AtVec(2)*x*x, nil
}

// PredictBatch predicts every input in xs, preserving input order.
func (r *Ridge) PredictBatch(xs []float64) ([]float64, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("Ridge", "PredictBatch")
	}

	c0, c1, c2 := r.coef.AtVec(0), r.coef.AtVec(1), r.coef.AtVec(2)
	preds := make([]float64, len(xs))

	parallel.ParallelizeWithThreshold(len(xs), parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			x := xs[i]
			preds[i] = c0 + c1*x + c2*x*x
		}
	})

	return preds, nil
}

// Coefficients returns a copy of the fitted coefficient vector, or nil if
// the model has not been fitted.
func (r *Ridge) Coefficients() []float64 {
	if r.coef == nil {
		return nil
	}

	coef := make([]float64, r.coef.Len())
	for i := range coef {
		coef[i] = r.coef.AtVec(i)
	}
	return coef
}

// Score computes the coefficient of determination R² on the given data.
func (r *Ridge) Score(xs, ys []float64) (float64, error) {
	if !r.IsFitted() {
		return 0, errors.NewNotFittedError("Ridge", "Score")
	}
	if len(ys) != len(xs) {
		return 0, errors.NewDimensionError("Ridge.Score", len(xs), len(ys), 0)
	}
	if len(xs) == 0 {
		return 0, errors.NewModelError("Ridge.Score", "empty data", errors.ErrEmptyData)
	}

	preds, err := r.PredictBatch(xs)
	if err != nil {
		return 0, err
	}

	yMean := floats.Sum(ys) / float64(len(ys))

	var tss, rss float64
	for i, y := range ys {
		tss += (y - yMean) * (y - yMean)
		rss += (y - preds[i]) * (y - preds[i])
	}

	if tss == 0 {
		return 0, errors.Newf("Ridge.Score: total sum of squares is zero")
	}

	return 1 - rss/tss, nil
}

// ExportWeights exports the fitted model in the ModelWeights interchange
// format used across ridgego.
func (r *Ridge) ExportWeights() (*model.ModelWeights, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("Ridge", "ExportWeights")
	}

	return &model.ModelWeights{
		ModelType:    "Ridge",
		Version:      "1.0",
		Coefficients: r.Coefficients(),
		Lambda:       r.lambda,
		IsFitted:     true,
	}, nil
}

package ridge

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/ridgego/core/model"
	"github.com/YuminosukeSato/ridgego/pkg/errors"
)

func TestExpand(t *testing.T) {
	for _, x := range []float64{-10.0, 0.0, 3.456, 20.2} {
		got := Expand(x)
		if len(got) != BasisSize {
			t.Fatalf("Expand(%v) returned %d elements, want %d", x, len(got), BasisSize)
		}
		if got[0] != 1 || got[1] != x || got[2] != x*x {
			t.Errorf("Expand(%v) = %v, want [1 %v %v]", x, got, x, x*x)
		}
	}
}

func TestNewNegativeLambda(t *testing.T) {
	_, err := New(-1)
	if err == nil {
		t.Fatal("Expected error for negative lambda")
	}

	var valErr *errors.ValidationError
	if !errors.As(err, &valErr) {
		t.Errorf("Expected ValidationError, got %T: %v", err, err)
	}
}

func TestFitMatchesOLS(t *testing.T) {
	// For λ = 0 the ridge solution must reproduce ordinary least squares.
	// The OLS reference is computed independently via explicit inversion.
	xs := []float64{-1, 0, 1, 2}
	ys := []float64{1.2, 0.1, 0.9, 4.2}

	r, err := New(0)
	if err != nil {
		t.Fatalf("New(0) failed: %v", err)
	}

	coef, err := r.Fit(xs, ys)
	if err != nil {
		t.Fatalf("Failed to fit: %v", err)
	}

	want := olsReference(t, xs, ys)
	for i := 0; i < BasisSize; i++ {
		if relDiff(coef.AtVec(i), want[i]) > 1e-6 {
			t.Errorf("coefficient %d = %v, want %v (OLS)", i, coef.AtVec(i), want[i])
		}
	}
}

// olsReference solves (XᵀX)⁻¹XᵀY with a plain matrix inverse.
func olsReference(t *testing.T, xs, ys []float64) []float64 {
	t.Helper()

	n := len(xs)
	X := mat.NewDense(n, BasisSize, nil)
	for i, x := range xs {
		X.Set(i, 0, 1)
		X.Set(i, 1, x)
		X.Set(i, 2, x*x)
	}
	y := mat.NewVecDense(n, ys)

	var xtx mat.Dense
	xtx.Mul(X.T(), X)

	var inv mat.Dense
	if err := inv.Inverse(&xtx); err != nil {
		t.Fatalf("reference inverse failed: %v", err)
	}

	var xty mat.VecDense
	xty.MulVec(X.T(), y)

	var theta mat.VecDense
	theta.MulVec(&inv, &xty)

	return []float64{theta.AtVec(0), theta.AtVec(1), theta.AtVec(2)}
}

func relDiff(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

func TestRidgeShrinkage(t *testing.T) {
	// Increasing λ must not increase ‖θ̂‖ on a fixed dataset.
	xs := []float64{-2, -1, 0, 1, 2, 3}
	ys := []float64{4.1, 0.9, 0.2, 1.1, 3.8, 9.2}

	lambdas := []float64{0, 0.1, 1, 10, 100}
	prevNorm := math.Inf(1)

	for _, lambda := range lambdas {
		r, err := New(lambda)
		if err != nil {
			t.Fatalf("New(%v) failed: %v", lambda, err)
		}

		coef, err := r.Fit(xs, ys)
		if err != nil {
			t.Fatalf("Fit with lambda=%v failed: %v", lambda, err)
		}

		norm := mat.Norm(coef, 2)
		if norm > prevNorm+1e-10 {
			t.Errorf("norm increased from %v to %v at lambda=%v", prevNorm, norm, lambda)
		}
		prevNorm = norm
	}
}

func TestCoefficientsVanishForHugeLambda(t *testing.T) {
	xs := []float64{-2, -1, 0, 1, 2}
	ys := []float64{4, 1, 0, 1, 4}

	r, err := New(1e9)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	coef, err := r.Fit(xs, ys)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	if norm := mat.Norm(coef, 2); norm > 1e-4 {
		t.Errorf("Expected coefficients to vanish for huge lambda, got norm %v", norm)
	}
}

func TestNoiselessRoundTrip(t *testing.T) {
	// Fitting noise-free data generated from known coefficients must
	// recover them exactly within floating-point tolerance at λ = 0.
	c0, c1, c2 := 2.5, -1.5, 0.75
	xs := []float64{-3, -2, -1, 0, 1, 2, 3, 4}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = c0 + c1*x + c2*x*x
	}

	r, err := New(0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	coef, err := r.Fit(xs, ys)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	want := []float64{c0, c1, c2}
	for i := 0; i < BasisSize; i++ {
		if relDiff(coef.AtVec(i), want[i]) > 1e-6 {
			t.Errorf("coefficient %d = %v, want %v", i, coef.AtVec(i), want[i])
		}
	}
}

func TestSinglePointWithRegularization(t *testing.T) {
	// One training pair is degenerate for OLS, but λ > 0 keeps the Gram
	// matrix positive definite and the prediction finite and deterministic.
	r, err := New(0.1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := r.Fit([]float64{2}, []float64{5}); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	pred1, err := r.Predict(2)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if math.IsNaN(pred1) || math.IsInf(pred1, 0) {
		t.Fatalf("Expected finite prediction, got %v", pred1)
	}

	// Re-fitting the same data must reproduce the same prediction.
	if _, err := r.Fit([]float64{2}, []float64{5}); err != nil {
		t.Fatalf("Re-fit failed: %v", err)
	}
	pred2, err := r.Predict(2)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if pred1 != pred2 {
		t.Errorf("Expected deterministic prediction, got %v then %v", pred1, pred2)
	}
}

func TestSingularWithoutRegularization(t *testing.T) {
	tests := []struct {
		name string
		xs   []float64
		ys   []float64
	}{
		{
			name: "fewer samples than basis terms",
			xs:   []float64{1, 2},
			ys:   []float64{1, 4},
		},
		{
			name: "all inputs identical",
			xs:   []float64{3, 3, 3, 3, 3},
			ys:   []float64{1, 2, 3, 4, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(0)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}

			_, err = r.Fit(tt.xs, tt.ys)
			if err == nil {
				t.Fatal("Expected singular matrix error")
			}
			if !errors.Is(err, errors.ErrSingularMatrix) {
				t.Errorf("Expected ErrSingularMatrix, got: %v", err)
			}
			if r.IsFitted() {
				t.Error("Failed fit must not mark the model as fitted")
			}
		})
	}
}

func TestFitShapeMismatch(t *testing.T) {
	r, err := New(0.1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = r.Fit([]float64{1, 2, 3}, []float64{1, 2})
	if err == nil {
		t.Fatal("Expected error for mismatched lengths")
	}
	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Errorf("Expected DimensionError, got %T: %v", err, err)
	}

	_, err = r.Fit(nil, nil)
	if !errors.Is(err, errors.ErrEmptyData) {
		t.Errorf("Expected ErrEmptyData for empty input, got: %v", err)
	}
}

func TestPredictBeforeFit(t *testing.T) {
	r, err := New(0.1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = r.Predict(1.5)
	if err == nil {
		t.Fatal("Expected error when predicting with unfitted model")
	}
	var notFittedErr *errors.NotFittedError
	if !errors.As(err, &notFittedErr) {
		t.Errorf("Expected NotFittedError, got %T: %v", err, err)
	}

	if _, err := r.PredictBatch([]float64{1, 2}); err == nil {
		t.Error("Expected error from PredictBatch on unfitted model")
	}
	if _, err := r.Score([]float64{1}, []float64{1}); err == nil {
		t.Error("Expected error from Score on unfitted model")
	}
	if r.Coefficients() != nil {
		t.Error("Expected nil coefficients before fit")
	}
}

func TestEndToEndQuadraticTrend(t *testing.T) {
	// Noisy samples of y ≈ x²; the prediction at 1.5 must lie within a
	// plausible band around the quadratic trend.
	xs := []float64{-1, 0, 1, 2}
	ys := []float64{1.05, -0.02, 0.98, 4.03}

	r, err := New(0.1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	coef, err := r.Fit(xs, ys)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if coef.Len() != BasisSize {
		t.Fatalf("Expected %d coefficients, got %d", BasisSize, coef.Len())
	}

	pred, err := r.Predict(1.5)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if pred < 1 || pred > 5 {
		t.Errorf("Predict(1.5) = %v, want within (1, 5)", pred)
	}
}

func TestRefitOverwrites(t *testing.T) {
	r, err := New(0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// First fit: y = x².
	xs := []float64{-2, -1, 0, 1, 2}
	ys1 := []float64{4, 1, 0, 1, 4}
	if _, err := r.Fit(xs, ys1); err != nil {
		t.Fatalf("First fit failed: %v", err)
	}

	// Second fit: y = 2x + 3. Coefficients must be replaced, not merged.
	ys2 := []float64{-1, 1, 3, 5, 7}
	if _, err := r.Fit(xs, ys2); err != nil {
		t.Fatalf("Second fit failed: %v", err)
	}

	pred, err := r.Predict(10)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if math.Abs(pred-23) > 1e-6 {
		t.Errorf("Predict(10) = %v, want 23 from the second fit", pred)
	}
}

func TestFitReturnsCallerOwnedVector(t *testing.T) {
	xs := []float64{-1, 0, 1, 2}
	ys := []float64{1, 0, 1, 4}

	r, err := New(0.1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	coef, err := r.Fit(xs, ys)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	before, err := r.Predict(1.5)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	// Mutating the returned vector must not affect the stored state.
	coef.SetVec(0, 1e6)

	after, err := r.Predict(1.5)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if before != after {
		t.Errorf("Stored coefficients changed after mutating returned vector: %v != %v", before, after)
	}
}

func TestScorePerfectFit(t *testing.T) {
	xs := []float64{-2, -1, 0, 1, 2}
	ys := []float64{4, 1, 0, 1, 4}

	r, err := New(0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := r.Fit(xs, ys); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	score, err := r.Score(xs, ys)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if score < 0.999 {
		t.Errorf("Expected score ~1.0 for noise-free fit, got %v", score)
	}
}

func TestPredictBatchMatchesPredict(t *testing.T) {
	xs := []float64{-2, -1, 0, 1, 2, 3}
	ys := []float64{3.9, 1.1, 0.1, 0.9, 4.2, 8.8}

	r, err := New(0.5)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := r.Fit(xs, ys); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	queries := []float64{-1.5, 0, 2.5, 10}
	batch, err := r.PredictBatch(queries)
	if err != nil {
		t.Fatalf("PredictBatch failed: %v", err)
	}

	for i, x := range queries {
		single, err := r.Predict(x)
		if err != nil {
			t.Fatalf("Predict failed: %v", err)
		}
		if batch[i] != single {
			t.Errorf("PredictBatch[%d] = %v, Predict = %v", i, batch[i], single)
		}
	}
}

func TestWeightsRoundTrip(t *testing.T) {
	xs := []float64{-1, 0, 1, 2}
	ys := []float64{1, 0, 1, 4}

	r, err := New(0.1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := r.Fit(xs, ys); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	weights, err := r.ExportWeights()
	if err != nil {
		t.Fatalf("ExportWeights failed: %v", err)
	}
	if weights.Lambda != 0.1 {
		t.Errorf("Exported lambda = %v, want 0.1", weights.Lambda)
	}

	restored, err := FromWeights(weights)
	if err != nil {
		t.Fatalf("FromWeights failed: %v", err)
	}

	want, err := r.Predict(1.5)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	got, err := restored.Predict(1.5)
	if err != nil {
		t.Fatalf("Predict on restored model failed: %v", err)
	}
	if got != want {
		t.Errorf("Restored model predicts %v, want %v", got, want)
	}
}

func TestFromWeightsRejectsBadInput(t *testing.T) {
	_, err := FromWeights(&model.ModelWeights{
		ModelType: "Lasso", Version: "1.0",
		Coefficients: []float64{1, 2, 3}, IsFitted: true,
	})
	if err == nil {
		t.Error("Expected error for wrong model type")
	}

	_, err = FromWeights(&model.ModelWeights{
		ModelType: "Ridge", Version: "1.0",
		Coefficients: []float64{1, 2}, IsFitted: true,
	})
	if err == nil {
		t.Error("Expected error for wrong coefficient count")
	}

	_, err = FromWeights(&model.ModelWeights{
		ModelType: "Ridge", Version: "1.0",
		Coefficients: []float64{1, 2, 3}, Lambda: -1, IsFitted: true,
	})
	if err == nil {
		t.Error("Expected error for negative lambda")
	}
}

func TestExportWeightsBeforeFit(t *testing.T) {
	r, err := New(0.1)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := r.ExportWeights(); err == nil {
		t.Error("Expected error exporting an unfitted model")
	}
}

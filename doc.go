// Package ridgego provides closed-form ridge regression over a fixed
// quadratic basis for Go backend services.
//
// The estimator expands a scalar input x to the feature vector [1, x, x²]
// and solves the regularized normal equations directly; there is no
// iterative optimization and no hyperparameter search.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/ridgego/ridge"
//	)
//
//	func main() {
//	    reg, err := ridge.New(0.1)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    xs := []float64{-1, 0, 1, 2}
//	    ys := []float64{1, 0, 1, 4}
//	    if _, err := reg.Fit(xs, ys); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    y, err := reg.Predict(1.5)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("Prediction:", y)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - ridge: the ridge regression estimator and quadratic feature expansion
//   - dataset: synthetic data generation and train/test splitting
//   - metrics: regression evaluation metrics (MSE, RMSE, MAE, R²)
//   - core/model: estimator lifecycle, interfaces and weight serialization
//   - core/parallel: CPU-parallel helpers for row-wise work
//   - pkg/errors: structured error types with stack traces
//   - pkg/log: structured logging for ridgego binaries
package ridgego

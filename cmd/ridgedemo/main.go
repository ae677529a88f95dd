// Command ridgedemo demonstrates the full ridge regression pipeline:
// synthetic quadratic data generation, train/test splitting, fitting a grid
// of regularization strengths, held-out evaluation, plotting and model
// export.
package main

import (
	"flag"
	"log/slog"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/ridgego/dataset"
	"github.com/YuminosukeSato/ridgego/metrics"
	"github.com/YuminosukeSato/ridgego/pkg/log"
	"github.com/YuminosukeSato/ridgego/ridge"
)

func main() {
	var (
		samples  = flag.Int("samples", 200, "number of synthetic samples")
		noise    = flag.Float64("noise", 0.5, "standard deviation of target noise")
		testFrac = flag.Float64("test-frac", 0.3, "fraction of samples held out for evaluation")
		seed     = flag.Int64("seed", 42, "RNG seed for generation and splitting")
		plotOut  = flag.String("plot", "ridge_fit.png", "output path for the fit plot (empty to skip)")
		modelOut = flag.String("model", "ridge_model.json", "output path for the exported model (empty to skip)")
		logLevel = flag.String("log-level", "info", "log level (debug|info|warn|error)")
	)
	flag.Parse()

	log.SetupLogger(*logLevel)

	cfg := dataset.NewDefaultConfig()
	cfg.N = *samples
	cfg.NoiseStd = *noise
	cfg.Seed = *seed

	xs, ys, err := dataset.GenerateQuadratic(cfg)
	if err != nil {
		slog.Error("data generation failed", log.ErrAttr(err))
		os.Exit(1)
	}

	trainX, trainY, testX, testY, err := dataset.TrainTestSplit(xs, ys, *testFrac, *seed)
	if err != nil {
		slog.Error("train/test split failed", log.ErrAttr(err))
		os.Exit(1)
	}

	slog.Info("dataset ready",
		"n_train", len(trainX),
		"n_test", len(testX),
		"noise_std", cfg.NoiseStd,
	)

	lambdas := []float64{0, 0.1, 1, 10, 100}

	var (
		best    *ridge.Ridge
		bestMSE = math.Inf(1)
	)

	for _, lambda := range lambdas {
		reg, err := ridge.New(lambda)
		if err != nil {
			slog.Error("estimator construction failed", log.ErrAttr(err), "lambda", lambda)
			os.Exit(1)
		}

		coef, err := reg.Fit(trainX, trainY)
		if err != nil {
			slog.Error("fit failed", log.ErrAttr(err), "lambda", lambda)
			os.Exit(1)
		}

		preds, err := reg.PredictBatch(testX)
		if err != nil {
			slog.Error("prediction failed", log.ErrAttr(err), "lambda", lambda)
			os.Exit(1)
		}

		testMSE, err := metrics.MSESlices(testY, preds)
		if err != nil {
			slog.Error("evaluation failed", log.ErrAttr(err), "lambda", lambda)
			os.Exit(1)
		}
		testR2, err := metrics.R2Slices(testY, preds)
		if err != nil {
			slog.Error("evaluation failed", log.ErrAttr(err), "lambda", lambda)
			os.Exit(1)
		}

		slog.Info("fitted",
			"lambda", lambda,
			"coefficients", reg.Coefficients(),
			"coef_norm", mat.Norm(coef, 2),
			"test_mse", testMSE,
			"test_r2", testR2,
		)

		if testMSE < bestMSE {
			bestMSE = testMSE
			best = reg
		}
	}

	slog.Info("best model selected", "lambda", best.Lambda(), "test_mse", bestMSE)

	if *plotOut != "" {
		if err := savePlot(*plotOut, trainX, trainY, testX, testY, best, cfg); err != nil {
			slog.Error("plotting failed", log.ErrAttr(err))
			os.Exit(1)
		}
		slog.Info("plot written", "path", *plotOut)
	}

	if *modelOut != "" {
		weights, err := best.ExportWeights()
		if err != nil {
			slog.Error("model export failed", log.ErrAttr(err))
			os.Exit(1)
		}
		data, err := weights.ToJSON()
		if err != nil {
			slog.Error("model serialization failed", log.ErrAttr(err))
			os.Exit(1)
		}
		if err := os.WriteFile(*modelOut, data, 0o644); err != nil {
			slog.Error("model write failed", log.ErrAttr(err))
			os.Exit(1)
		}
		slog.Info("model written", "path", *modelOut)
	}
}

// savePlot renders the training and test samples together with the fitted
// curve of the selected model.
func savePlot(path string, trainX, trainY, testX, testY []float64, reg *ridge.Ridge, cfg *dataset.Config) error {
	p := plot.New()
	p.Title.Text = "Ridge fit over quadratic basis"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	trainPts := make(plotter.XYs, len(trainX))
	for i := range trainX {
		trainPts[i].X = trainX[i]
		trainPts[i].Y = trainY[i]
	}
	testPts := make(plotter.XYs, len(testX))
	for i := range testX {
		testPts[i].X = testX[i]
		testPts[i].Y = testY[i]
	}

	trainScatter, err := plotter.NewScatter(trainPts)
	if err != nil {
		return err
	}
	testScatter, err := plotter.NewScatter(testPts)
	if err != nil {
		return err
	}

	curve := plotter.NewFunction(func(x float64) float64 {
		y, err := reg.Predict(x)
		if err != nil {
			return math.NaN()
		}
		return y
	})
	curve.XMin = cfg.XMin
	curve.XMax = cfg.XMax
	curve.Samples = 200

	p.Add(trainScatter, testScatter, curve)
	p.Legend.Add("train", trainScatter)
	p.Legend.Add("test", testScatter)
	p.Legend.Add("fit", curve)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}

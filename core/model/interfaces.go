package model

import "gonum.org/v1/gonum/mat"

// CurveFitter はスカラー入力の回帰モデルを学習させるインターフェース
type CurveFitter interface {
	// Fit は(x, y)のペアでモデルを学習させ、得られた係数ベクトルを返す
	Fit(xs, ys []float64) (*mat.VecDense, error)
}

// CurvePredictor はスカラー入力に対する予測を行うインターフェース
type CurvePredictor interface {
	// Predict は単一の入力xに対する予測値を返す
	Predict(x float64) (float64, error)

	// PredictBatch は複数の入力に対する予測値をまとめて返す
	PredictBatch(xs []float64) ([]float64, error)
}

// CurveModel は学習済み回帰モデルのインターフェース
type CurveModel interface {
	// Coefficients は学習された係数ベクトルのコピーを返す
	Coefficients() []float64

	// Score はモデルの決定係数（R²）を計算する
	Score(xs, ys []float64) (float64, error)
}

// Regressor は回帰モデルの複合インターフェース
type Regressor interface {
	CurveFitter
	CurvePredictor
	CurveModel
}

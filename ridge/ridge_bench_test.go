package ridge

import (
	"math/rand/v2"
	"testing"
)

// createBenchmarkData はベンチマーク用の二次曲線データを生成する
func createBenchmarkData(n int) (xs, ys []float64) {
	// シードを固定して再現性を確保
	rng := rand.New(rand.NewPCG(42, 42))

	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		x := rng.Float64()*6.0 - 3.0
		xs[i] = x
		// y = x² + 小さなノイズ
		ys[i] = x*x + (rng.Float64()-0.5)*0.1
	}

	return xs, ys
}

// BenchmarkRidgeFit はFitメソッドのベンチマークを実行する
func BenchmarkRidgeFit(b *testing.B) {
	sizes := []struct {
		name string
		n    int
	}{
		{"Small_100", 100},
		{"Medium_1000", 1000}, // 並列処理の閾値
		{"Large_10000", 10000},
		{"XLarge_100000", 100000},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			xs, ys := createBenchmarkData(size.n)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := New(0.1)
				if err != nil {
					b.Fatal(err)
				}
				if _, err := r.Fit(xs, ys); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkRidgePredictBatch はバッチ予測のベンチマークを実行する
func BenchmarkRidgePredictBatch(b *testing.B) {
	xs, ys := createBenchmarkData(1000)

	r, err := New(0.1)
	if err != nil {
		b.Fatal(err)
	}
	if _, err := r.Fit(xs, ys); err != nil {
		b.Fatal(err)
	}

	queries, _ := createBenchmarkData(10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := r.PredictBatch(queries); err != nil {
			b.Fatal(err)
		}
	}
}

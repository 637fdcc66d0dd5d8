package linear

import (
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// createBenchmarkData はベンチマーク用のデータを生成する
func createBenchmarkData(rows, cols int) (*mat.Dense, *mat.VecDense) {
	// シードを固定して再現性を確保
	rng := rand.New(rand.NewPCG(42, 42))

	X := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			X.Set(i, j, rng.Float64()*2.0-1.0)
		}
	}

	// y = 1 + Σ 0.5*(j+1)*x_j + 小さなノイズ
	y := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		sum := 1.0
		for j := 0; j < cols; j++ {
			sum += X.At(i, j) * float64(j+1) * 0.5
		}
		sum += (rng.Float64() - 0.5) * 0.1
		y.SetVec(i, sum)
	}

	return X, y
}

var benchSizes = []struct {
	name string
	rows int
	cols int
}{
	{"Small_100x10", 100, 10},
	{"Medium_1000x10", 1000, 10},
	{"Medium_2000x10", 2000, 10}, // 並列処理の閾値を超える
	{"Large_10000x20", 10000, 20},
	{"XLarge_50000x50", 50000, 50},
}

// BenchmarkLinearRegressionFit はFitMatrixのベンチマークを実行する
func BenchmarkLinearRegressionFit(b *testing.B) {
	for _, solver := range []Solver{SolverQR, SolverNormalEquation} {
		for _, size := range benchSizes {
			b.Run(string(solver)+"/"+size.name, func(b *testing.B) {
				X, y := createBenchmarkData(size.rows, size.cols)
				lr := NewLinearRegression(WithSolver(solver))

				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := lr.FitMatrix(X, y, nil); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkLinearRegressionPredict はPredictMatrixのベンチマークを実行する
func BenchmarkLinearRegressionPredict(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			X, y := createBenchmarkData(size.rows, size.cols)
			trained, err := NewLinearRegression().FitMatrix(X, y, nil)
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := trained.PredictMatrix(X); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

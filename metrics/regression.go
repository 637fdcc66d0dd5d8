// Package metrics computes regression evaluation scores between a ground-truth
// vector and a prediction vector.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/mlglue/pkg/errors"
)

// values は入力を検証し、両ベクトルをスライスとして返す
func values(op string, yTrue, yPred mat.Vector) ([]float64, []float64, error) {
	if isNil(yTrue) || isNil(yPred) {
		return nil, nil, errors.NewValueError(op, "nil vector")
	}

	n := yTrue.Len()
	if n == 0 {
		return nil, nil, errors.NewValueError(op, "empty vector")
	}

	if yPred.Len() != n {
		return nil, nil, errors.NewDimensionError(op, n, yPred.Len(), 0)
	}

	return mat.Col(nil, 0, yTrue), mat.Col(nil, 0, yPred), nil
}

// isNil は nil インターフェースと nil の *mat.VecDense の両方を検出する
func isNil(v mat.Vector) bool {
	if v == nil {
		return true
	}
	vd, ok := v.(*mat.VecDense)
	return ok && vd == nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する
func MAE(yTrue, yPred mat.Vector) (float64, error) {
	t, p, err := values("MAE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	return mae(t, p), nil
}

// MAE = (1/n) * Σ|yTrue - yPred|
func mae(t, p []float64) float64 {
	return floats.Distance(t, p, 1) / float64(len(t))
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred mat.Vector) (float64, error) {
	t, p, err := values("MSE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	return mse(t, p), nil
}

// MSE = (1/n) * Σ(yTrue - yPred)²
func mse(t, p []float64) float64 {
	return sumSquaredError(t, p) / float64(len(t))
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred mat.Vector) (float64, error) {
	meanSquared, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(meanSquared), nil
}

// R2Score は決定係数（R²）を計算する
//
// yTrue が定数の場合（全変動が0）、R² は定義されないため NaN を返し、
// errors.UndefinedMetricWarning を発行する。エラーにはならない。
func R2Score(yTrue, yPred mat.Vector) (float64, error) {
	t, p, err := values("R2Score", yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return r2(t, p), nil
}

func r2(t, p []float64) float64 {
	// 全変動（TSS）と残差変動（RSS）を計算
	mean := stat.Mean(t, nil)
	var tss float64
	for _, v := range t {
		tss += (v - mean) * (v - mean)
	}
	rss := sumSquaredError(t, p)

	if tss == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("R2Score", "total sum of squares is zero (constant yTrue)", math.NaN()))
		return math.NaN()
	}

	// R² = 1 - RSS/TSS
	return 1 - rss/tss
}

// MAPE は平均絶対パーセンテージ誤差を計算する。yTrue が0の要素は除外される
func MAPE(yTrue, yPred mat.Vector) (float64, error) {
	t, p, err := values("MAPE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	// MAPE = (100/n) * Σ|yTrue - yPred|/|yTrue|
	var sum float64
	validCount := 0
	for i, v := range t {
		if v != 0 { // ゼロ除算を避ける
			sum += math.Abs(v-p[i]) / math.Abs(v)
			validCount++
		}
	}

	if validCount == 0 {
		return 0, errors.NewValueError("MAPE", "all yTrue values are zero")
	}

	return (sum / float64(validCount)) * 100, nil
}

// ExplainedVarianceScore は説明分散スコア 1 - Var(yTrue - yPred) / Var(yTrue) を計算する
//
// yTrue の分散が0の場合は R2Score と同様に NaN を返す。
func ExplainedVarianceScore(yTrue, yPred mat.Vector) (float64, error) {
	t, p, err := values("ExplainedVarianceScore", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	diff := make([]float64, len(t))
	floats.SubTo(diff, t, p)

	_, varYTrue := stat.PopMeanVariance(t, nil)
	_, varDiff := stat.PopMeanVariance(diff, nil)

	if varYTrue == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("ExplainedVarianceScore", "no variance in yTrue", math.NaN()))
		return math.NaN(), nil
	}

	return 1 - varDiff/varYTrue, nil
}

func sumSquaredError(t, p []float64) float64 {
	var sum float64
	for i := range t {
		d := t[i] - p[i]
		sum += d * d
	}
	return sum
}

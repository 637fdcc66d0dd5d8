package linear

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/YuminosukeSato/mlglue/core/parallel"
	"github.com/YuminosukeSato/mlglue/pkg/errors"
)

// designMatrix は切片項のために X の先頭に 1 の列を追加する
// A = [1, X]
func designMatrix(X mat.Matrix) *mat.Dense {
	r, c := X.Dims()
	A := mat.NewDense(r, c+1, nil)

	parallel.ParallelizeWithThreshold(r, parallel.DefaultThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			A.Set(i, 0, 1.0)
			for j := 0; j < c; j++ {
				A.Set(i, j+1, X.At(i, j))
			}
		}
	})
	return A
}

// hasNaN reports whether the design matrix or the target contains NaN.
func hasNaN(A *mat.Dense, y mat.Vector) bool {
	r, c := A.Dims()
	raw := A.RawMatrix()
	for i := 0; i < r; i++ {
		if floats.HasNaN(raw.Data[i*raw.Stride : i*raw.Stride+c]) {
			return true
		}
	}
	return floats.HasNaN(mat.Col(nil, 0, y))
}

func nanCoefficients(n int) *mat.VecDense {
	beta := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		beta.SetVec(i, math.NaN())
	}
	return beta
}

func singular(op string, cause error) error {
	return errors.NewModelError(op, "singular matrix", errors.Wrap(errors.ErrSingularMatrix, cause.Error()))
}

// solveQR は A = QR と分解し、Rβ = Qᵀy を解く
func solveQR(op string, A *mat.Dense, y mat.Vector) (*mat.VecDense, error) {
	var qr mat.QR
	qr.Factorize(A)

	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, y); err != nil {
		return nil, singular(op, err)
	}
	return &beta, nil
}

// solveNormalEquation は正規方程式 β = (AᵀA)⁻¹ Aᵀy を解く
func solveNormalEquation(op string, A *mat.Dense, y mat.Vector) (*mat.VecDense, error) {
	_, c := A.Dims()

	var ATA mat.Dense
	ATA.Mul(A.T(), A)

	// 逆行列を計算
	var ATAInv mat.Dense
	if err := ATAInv.Inverse(&ATA); err != nil {
		return nil, singular(op, err)
	}

	var ATy mat.VecDense
	ATy.MulVec(A.T(), y)

	beta := mat.NewVecDense(c, nil)
	beta.MulVec(&ATAInv, &ATy)
	return beta, nil
}

type fitStats struct {
	rSquared         float64
	adjustedRSquared float64
	residualVariance float64
}

// fittedStats computes goodness of fit on the training data. NaN in the
// inputs propagates into every statistic.
func fittedStats(A *mat.Dense, beta *mat.VecDense, y mat.Vector, dof int) fitStats {
	n := y.Len()

	var yHat mat.VecDense
	yHat.MulVec(A, beta)

	estimates := make([]float64, n)
	values := make([]float64, n)
	var ssRes float64
	for i := 0; i < n; i++ {
		estimates[i] = yHat.AtVec(i)
		values[i] = y.AtVec(i)
		d := values[i] - estimates[i]
		ssRes += d * d
	}

	r2 := stat.RSquaredFrom(estimates, values, nil)
	return fitStats{
		rSquared:         r2,
		adjustedRSquared: 1 - (1-r2)*float64(n-1)/float64(dof),
		residualVariance: ssRes / float64(dof),
	}
}

// resolveNames returns c feature names, filling missing or empty ones with "x<i>".
func resolveNames(names []string, c int) []string {
	out := make([]string, c)
	for i := 0; i < c; i++ {
		if i < len(names) && names[i] != "" {
			out[i] = names[i]
			continue
		}
		out[i] = fmt.Sprintf("x%d", i)
	}
	return out
}

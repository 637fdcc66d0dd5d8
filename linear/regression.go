// Package linear implements ordinary least squares regression over data frames.
package linear

import (
	"context"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mlglue/core/model"
	"github.com/YuminosukeSato/mlglue/core/parallel"
	"github.com/YuminosukeSato/mlglue/metrics"
	"github.com/YuminosukeSato/mlglue/pkg/errors"
	"github.com/YuminosukeSato/mlglue/pkg/log"
	"github.com/YuminosukeSato/mlglue/preprocessing"
)

const modelName = "LinearRegression"

var (
	_ model.Model[*LinearRegression]       = (*LinearRegression)(nil)
	_ model.MatrixModel[*LinearRegression] = (*LinearRegression)(nil)
	_ model.Scorer                         = (*LinearRegression)(nil)
	_ model.LinearModel                    = (*LinearRegression)(nil)
	_ model.WeightExporter                 = (*LinearRegression)(nil)
)

// LinearRegression は最小二乗法による線形回帰モデル
//
// NewLinearRegression が返す値は未学習の推定器で、Fit は学習済みの新しい値を返す。
// レシーバは変更されないため、学習済みモデルは複数のゴルーチンから安全に使える。
//
// 使用例:
//
//	trained, err := linear.NewLinearRegression().Fit(X, y)
//	if err != nil {
//	    return err
//	}
//	predictions, err := trained.Predict(XTest)
type LinearRegression struct {
	state model.State

	solver         Solver
	strictFeatures bool
	logger         log.Logger

	intercept        float64
	coefficients     []float64 // 特徴量の順
	featureNames     []string
	rSquared         float64
	adjustedRSquared float64
	residualVariance float64
}

// NewLinearRegression は未学習の線形回帰モデルを作成する
func NewLinearRegression(opts ...Option) *LinearRegression {
	lr := &LinearRegression{solver: SolverQR}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// untrained returns a copy of the configuration without any fitted state.
func (lr *LinearRegression) untrained() *LinearRegression {
	return &LinearRegression{
		solver:         lr.solver,
		strictFeatures: lr.strictFeatures,
		logger:         lr.logger,
	}
}

func (lr *LinearRegression) fitLogger() log.Logger {
	logger := lr.logger
	if logger == nil {
		logger = log.GetLoggerWithName("linear")
	}
	return logger.With(log.ModelNameKey, modelName)
}

// Fit はDataFrameの全列を特徴量、yを目的変数として学習し、学習済みの新しいモデルを返す
//
// 各セルは preprocessing の規則で数値に変換される（変換できない値は NaN）。
// 特徴量名には X の列名が使われる。
func (lr *LinearRegression) Fit(X dataframe.DataFrame, y series.Series) (*LinearRegression, error) {
	const op = "LinearRegression.Fit"

	if X.Err != nil {
		return nil, errors.NewValueError(op, X.Err.Error())
	}
	if y.Err != nil {
		return nil, errors.NewValueError(op, y.Err.Error())
	}
	if X.Ncol() == 0 {
		return nil, errors.NewInsufficientDataError(op, y.Len(), 0, "no feature columns")
	}
	if X.Nrow() != y.Len() {
		return nil, errors.NewDimensionError(op, X.Nrow(), y.Len(), 0)
	}
	if X.Nrow() == 0 {
		return nil, errors.NewInsufficientDataError(op, 0, X.Ncol(), "no samples")
	}

	Xm, err := preprocessing.FromFrame(context.Background(), X)
	if err != nil {
		return nil, err
	}

	return lr.FitMatrix(Xm, preprocessing.ToVector(y), X.Names())
}

// FitMatrix は数値行列から学習する。featureNames が足りない列は "x<i>" と命名される
//
// エラー:
//   - 行数と y の長さが異なる: errors.ErrLengthMismatch
//   - 行数が列数以下、または残差の自由度 (行数 - 列数 - 1) が0以下: errors.ErrInsufficientData
//   - 特異または悪条件の行列: errors.ErrSingularMatrix
//
// X または y に NaN が含まれる場合はエラーにならず、切片・係数・統計量がすべて NaN になる。
func (lr *LinearRegression) FitMatrix(X mat.Matrix, y mat.Vector, featureNames []string) (*LinearRegression, error) {
	const op = "LinearRegression.FitMatrix"
	start := time.Now()

	if !lr.solver.valid() {
		return nil, errors.NewValidationError("solver", "unknown solver", string(lr.solver))
	}
	if X == nil || y == nil {
		return nil, errors.NewValueError(op, "X and y must not be nil")
	}

	r, c := X.Dims()
	if y.Len() != r {
		return nil, errors.NewDimensionError(op, r, y.Len(), 0)
	}
	if r <= c {
		return nil, errors.NewInsufficientDataError(op, r, c, "not enough samples for the number of features")
	}
	dof := r - c - 1
	if dof <= 0 {
		return nil, errors.NewInsufficientDataError(op, r, c, "no residual degrees of freedom")
	}

	design := designMatrix(X)

	// NaN を含む入力は解かず、切片と全係数を NaN とする
	var beta *mat.VecDense
	if hasNaN(design, y) {
		beta = nanCoefficients(c + 1)
	} else {
		var err error
		if beta, err = lr.solve(op, design, y); err != nil {
			return nil, err
		}
	}

	trained := lr.untrained()
	trained.state = model.FittedState(c, r)
	trained.intercept = beta.AtVec(0)
	trained.coefficients = make([]float64, c)
	for j := 0; j < c; j++ {
		trained.coefficients[j] = beta.AtVec(j + 1)
	}
	trained.featureNames = resolveNames(featureNames, c)

	fitted := fittedStats(design, beta, y, dof)
	trained.rSquared = fitted.rSquared
	trained.adjustedRSquared = fitted.adjustedRSquared
	trained.residualVariance = fitted.residualVariance

	trained.fitLogger().Debug("fit completed",
		log.OperationKey, log.OperationFit,
		log.SolverKey, string(lr.solver),
		log.SamplesKey, r,
		log.FeaturesKey, c,
		log.R2ScoreKey, trained.rSquared,
		log.AdjustedR2ScoreKey, trained.adjustedRSquared,
		log.ResidualVarianceKey, trained.residualVariance,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)

	return trained, nil
}

// solve は設定されたソルバーで最小二乗問題を解く。gonum 内部の panic はエラーとして返す
func (lr *LinearRegression) solve(op string, A *mat.Dense, y mat.Vector) (*mat.VecDense, error) {
	var beta *mat.VecDense
	err := errors.SafeExecute(op, func() error {
		var solveErr error
		switch lr.solver {
		case SolverNormalEquation:
			beta, solveErr = solveNormalEquation(op, A, y)
		default:
			beta, solveErr = solveQR(op, A, y)
		}
		return solveErr
	})
	if err != nil {
		return nil, err
	}
	return beta, nil
}

// Predict はDataFrameの各行に対する予測値を返す
//
// 係数は列の位置で対応付けられ、min(列数, 係数の数) 個の列だけが使われる。
// WithStrictFeatures(true) の場合、列数が係数の数と異なると errors.ErrLengthMismatch を返す。
func (lr *LinearRegression) Predict(X dataframe.DataFrame) (*mat.VecDense, error) {
	if err := lr.state.RequireFitted(modelName, "Predict"); err != nil {
		return nil, err
	}

	Xm, err := preprocessing.FromFrame(context.Background(), X)
	if err != nil {
		return nil, err
	}
	return lr.PredictMatrix(Xm)
}

// PredictMatrix は数値行列の各行に対する予測値を返す
func (lr *LinearRegression) PredictMatrix(X mat.Matrix) (*mat.VecDense, error) {
	const op = "LinearRegression.PredictMatrix"

	if err := lr.state.RequireFitted(modelName, "Predict"); err != nil {
		return nil, err
	}
	if X == nil {
		return nil, errors.NewValueError(op, "X must not be nil")
	}

	r, c := X.Dims()
	if lr.strictFeatures && c != len(lr.coefficients) {
		return nil, errors.NewDimensionError(op, len(lr.coefficients), c, 1)
	}
	if r == 0 {
		return &mat.VecDense{}, nil
	}

	k := min(c, len(lr.coefficients))
	predictions := mat.NewVecDense(r, nil)
	parallel.ParallelizeWithThreshold(r, parallel.DefaultThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			pred := lr.intercept
			for j := 0; j < k; j++ {
				pred += lr.coefficients[j] * X.At(i, j)
			}
			predictions.SetVec(i, pred)
		}
	})

	return predictions, nil
}

// Score は新しいデータに対する予測の決定係数（R²）を返す
func (lr *LinearRegression) Score(X dataframe.DataFrame, y series.Series) (float64, error) {
	const op = "LinearRegression.Score"

	if err := lr.state.RequireFitted(modelName, "Score"); err != nil {
		return 0, err
	}

	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}
	if y.Len() == 0 {
		return 0, errors.NewValueError(op, "empty target")
	}
	return metrics.R2Score(preprocessing.ToVector(y), yPred)
}

// IsFitted はモデルが学習済みかどうかを返す
func (lr *LinearRegression) IsFitted() bool { return lr.state.IsFitted() }

// Intercept は学習された切片を返す。未学習の場合は 0
func (lr *LinearRegression) Intercept() float64 { return lr.intercept }

// Coefficients は学習された係数のコピーを特徴量の順に返す
func (lr *LinearRegression) Coefficients() []float64 {
	if lr.coefficients == nil {
		return nil
	}
	out := make([]float64, len(lr.coefficients))
	copy(out, lr.coefficients)
	return out
}

// FeatureNames は学習時の特徴量名のコピーを返す
func (lr *LinearRegression) FeatureNames() []string {
	if lr.featureNames == nil {
		return nil
	}
	out := make([]string, len(lr.featureNames))
	copy(out, lr.featureNames)
	return out
}

// RSquared は学習データに対する決定係数を返す
func (lr *LinearRegression) RSquared() float64 { return lr.rSquared }

// AdjustedRSquared は自由度調整済み決定係数を返す
func (lr *LinearRegression) AdjustedRSquared() float64 { return lr.adjustedRSquared }

// ResidualVariance は残差分散 SSres / (n - k - 1) を返す
func (lr *LinearRegression) ResidualVariance() float64 { return lr.residualVariance }

// MeanSquareError is an alias of ResidualVariance.
func (lr *LinearRegression) MeanSquareError() float64 { return lr.residualVariance }

// NSamples は学習に使ったサンプル数を返す
func (lr *LinearRegression) NSamples() int { return lr.state.NSamples }

// NFeatures は学習に使った特徴量の数を返す
func (lr *LinearRegression) NFeatures() int { return lr.state.NFeatures }

// Solver は設定されたソルバーを返す
func (lr *LinearRegression) Solver() Solver { return lr.solver }

// Package ml is the one-stop entry point for notebook-style regression work:
// create a model, split a dataset, and score predictions against a target column.
//
//	X, y, err := ml.SplitTarget(df, "price")
//	parts, err := ml.TrainTestSplit(X, y, 0.2, 42)
//	model, err := ml.LinearRegression().Fit(parts.XTrain, parts.YTrain)
//	pred, err := model.Predict(parts.XTest)
//	r2, err := ml.R2(parts.YTest, pred)
package ml

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mlglue/linear"
	"github.com/YuminosukeSato/mlglue/metrics"
	"github.com/YuminosukeSato/mlglue/preprocessing"
	"github.com/YuminosukeSato/mlglue/split"
)

// LinearRegression returns an untrained ordinary least squares model.
func LinearRegression(opts ...linear.Option) *linear.LinearRegression {
	return linear.NewLinearRegression(opts...)
}

// SplitTarget separates df into features and the named target column.
func SplitTarget(df dataframe.DataFrame, target string) (dataframe.DataFrame, series.Series, error) {
	return split.Target(df, target)
}

// TrainTestSplit shuffles rows reproducibly and holds out round(testSize*n) of
// them for testing.
func TrainTestSplit(X dataframe.DataFrame, y series.Series, testSize float64, seed int64) (*split.Result, error) {
	return split.TrainTest(X, y, testSize, seed)
}

// MAE is the mean absolute error of predictions against truth.
func MAE(truth series.Series, predictions mat.Vector) (float64, error) {
	return metrics.MAE(truthVector(truth), predictions)
}

// MSE is the mean squared error of predictions against truth.
func MSE(truth series.Series, predictions mat.Vector) (float64, error) {
	return metrics.MSE(truthVector(truth), predictions)
}

// RMSE is the square root of MSE.
func RMSE(truth series.Series, predictions mat.Vector) (float64, error) {
	return metrics.RMSE(truthVector(truth), predictions)
}

// R2 is the coefficient of determination. It is NaN when truth is constant.
func R2(truth series.Series, predictions mat.Vector) (float64, error) {
	return metrics.R2Score(truthVector(truth), predictions)
}

// Evaluate computes all four scores at once.
func Evaluate(truth series.Series, predictions mat.Vector) (metrics.Report, error) {
	return metrics.Evaluate(truthVector(truth), predictions)
}

func truthVector(truth series.Series) mat.Vector {
	return preprocessing.ToVector(truth)
}

// Package model defines the contracts shared by mlglue models.
//
// Models are values: Fit returns a new trained model and never mutates the
// receiver, so a trained model can be shared across goroutines.
package model

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"
)

// Predictor は学習済みモデルによる予測のインターフェース
type Predictor interface {
	// Predict returns one prediction per row of X.
	Predict(X dataframe.DataFrame) (*mat.VecDense, error)
}

// Model is a supervised model over tabular data. M is the concrete trained
// model type returned by Fit.
type Model[M any] interface {
	Predictor

	// Fit trains on X and y and returns a new trained model.
	Fit(X dataframe.DataFrame, y series.Series) (M, error)

	// Summary returns a human-readable description of the model.
	Summary() string
}

// MatrixModel is implemented by models that can also be trained directly on
// numeric arrays.
type MatrixModel[M any] interface {
	FitMatrix(X mat.Matrix, y mat.Vector, featureNames []string) (M, error)
	PredictMatrix(X mat.Matrix) (*mat.VecDense, error)
}

// Scorer は決定係数を計算できるモデルのインターフェース
type Scorer interface {
	// Score returns the coefficient of determination R² of the predictions on X.
	Score(X dataframe.DataFrame, y series.Series) (float64, error)
}

// LinearModel は線形モデルのインターフェース
type LinearModel interface {
	// Coefficients は学習された係数を特徴量の順に返す
	Coefficients() []float64
	// Intercept は学習された切片を返す
	Intercept() float64
}

// WeightExporter is implemented by models whose parameters can be snapshotted.
type WeightExporter interface {
	ExportWeights() (*ModelWeights, error)
}

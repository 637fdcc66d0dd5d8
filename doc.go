// Package mlglue provides notebook-friendly regression tooling for Go:
// reproducible train/test splitting over gota data frames, ordinary least
// squares linear regression, and the standard regression metrics.
//
// mlglue keeps the data in the shape notebooks already use (a
// dataframe.DataFrame of features and a series.Series target) and converts to
// gonum matrices only at the numeric boundary.
//
// # Installation
//
//	go get github.com/YuminosukeSato/mlglue
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/go-gota/gota/dataframe"
//	    "github.com/YuminosukeSato/mlglue/ml"
//	)
//
//	func main() {
//	    df := dataframe.ReadCSV(file)
//
//	    X, y, err := ml.SplitTarget(df, "price")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    parts, err := ml.TrainTestSplit(X, y, 0.2, 42)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    model, err := ml.LinearRegression().Fit(parts.XTrain, parts.YTrain)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(model.Summary())
//
//	    pred, err := model.Predict(parts.XTest)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    report, _ := ml.Evaluate(parts.YTest, pred)
//	    fmt.Println(report)
//	}
//
// # Packages
//
//   - ml: Entry point mirroring the notebook API
//   - split: Target extraction, train/test split, k-fold indices
//   - linear: Ordinary least squares (QR or normal equation solver)
//   - metrics: MAE, MSE, RMSE, R², MAPE, explained variance
//   - preprocessing: Data frame and series to float64 conversion
//   - core/model: Model interfaces, fitted state, weight export
//   - core/parallel: Chunked parallel execution
//   - pkg/errors: Structured errors and warnings
//   - pkg/log: Structured logging backed by zerolog
//
// # Numeric Conversion
//
// Cells that cannot be read as numbers (NA, unparsable strings) become NaN.
// NaN is never an error: it propagates through fitting, prediction and
// scoring.
//
// # License
//
// mlglue is released under the MIT License.
package mlglue

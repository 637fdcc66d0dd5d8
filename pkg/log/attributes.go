// Package log defines standard attribute keys for fitting, splitting and
// evaluation logs.
//
// Keys follow a hierarchical naming convention ("model.name", "data.samples")
// so that JSON log lines can be filtered the same way across packages.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the model family, e.g. "LinearRegression".
	ModelNameKey = "model.name"

	// OperationKey is the operation being performed: "fit", "predict", "split", "convert", "score".
	OperationKey = "ml.operation"

	// ComponentKey names the package emitting the log, e.g. "linear", "split".
	ComponentKey = "ml.component"

	// SolverKey is the least-squares solver used by a fit.
	SolverKey = "model.solver"
)

// Data shape.
const (
	// SamplesKey is the number of rows.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of feature columns.
	FeaturesKey = "data.features"

	// TrainSamplesKey and TestSamplesKey are partition sizes after a split.
	TrainSamplesKey = "data.train_samples"
	TestSamplesKey  = "data.test_samples"

	// NaNCellsKey counts cells that degraded to NaN during numeric conversion.
	NaNCellsKey = "data.nan_cells"
)

// Fit statistics and metrics.
const (
	R2ScoreKey          = "metrics.r2_score"
	AdjustedR2ScoreKey  = "metrics.adjusted_r2_score"
	ResidualVarianceKey = "metrics.residual_variance"
	DurationMsKey       = "perf.duration_ms"
)

// Configuration.
const (
	// RandomSeedKey records the seed of a shuffle for reproducibility.
	RandomSeedKey = "config.random_seed"

	// TestSizeKey is the requested test fraction.
	TestSizeKey = "config.test_size"
)

// Error context.
const (
	ErrorCodeKey  = "error.code"
	StacktraceKey = "error.stacktrace"
)

// Standard attribute values.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationSplit   = "split"
	OperationConvert = "convert"
	OperationScore   = "score"

	ErrorNotTrained       = "NOT_TRAINED"
	ErrorLengthMismatch   = "LENGTH_MISMATCH"
	ErrorColumnNotFound   = "COLUMN_NOT_FOUND"
	ErrorInsufficientData = "INSUFFICIENT_DATA"
	ErrorInvalidArgument  = "INVALID_ARGUMENT"
	ErrorSingularMatrix   = "SINGULAR_MATRIX"
)

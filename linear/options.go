package linear

import "github.com/YuminosukeSato/mlglue/pkg/log"

// Solver selects how the least-squares system is solved.
type Solver string

const (
	// SolverQR solves the system with a QR decomposition of the design matrix.
	SolverQR Solver = "qr"
	// SolverNormalEquation solves (XᵀX)β = Xᵀy through the inverse of XᵀX.
	SolverNormalEquation Solver = "normal_equation"
)

func (s Solver) valid() bool {
	return s == SolverQR || s == SolverNormalEquation
}

// Option is a function that configures LinearRegression
type Option func(*LinearRegression)

// WithSolver sets the least-squares solver. The default is SolverQR.
func WithSolver(s Solver) Option {
	return func(lr *LinearRegression) {
		lr.solver = s
	}
}

// WithStrictFeatures makes Predict reject inputs whose column count differs
// from the number of fitted coefficients. By default extra columns are ignored
// and missing trailing columns contribute nothing.
func WithStrictFeatures(strict bool) Option {
	return func(lr *LinearRegression) {
		lr.strictFeatures = strict
	}
}

// WithLogger sets the logger used for fit diagnostics instead of the
// process-wide "linear" logger.
func WithLogger(logger log.Logger) Option {
	return func(lr *LinearRegression) {
		lr.logger = logger
	}
}

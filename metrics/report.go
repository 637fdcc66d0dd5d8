package metrics

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Report bundles the standard regression scores for one prediction run.
type Report struct {
	N    int
	MAE  float64
	MSE  float64
	RMSE float64
	R2   float64
}

// Evaluate validates the inputs once and computes MAE, MSE, RMSE and R² from them.
func Evaluate(yTrue, yPred mat.Vector) (Report, error) {
	t, p, err := values("Evaluate", yTrue, yPred)
	if err != nil {
		return Report{}, err
	}

	meanSquared := mse(t, p)
	return Report{
		N:    len(t),
		MAE:  mae(t, p),
		MSE:  meanSquared,
		RMSE: math.Sqrt(meanSquared),
		R2:   r2(t, p),
	}, nil
}

func (r Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Regression Metrics (n=%d)\n", r.N)
	fmt.Fprintf(&sb, "MAE:  %.4f\n", r.MAE)
	fmt.Fprintf(&sb, "MSE:  %.4f\n", r.MSE)
	fmt.Fprintf(&sb, "RMSE: %.4f\n", r.RMSE)
	fmt.Fprintf(&sb, "R²:   %.4f", r.R2)
	return sb.String()
}

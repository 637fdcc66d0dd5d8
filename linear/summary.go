package linear

import (
	"fmt"
	"math"
	"strings"
)

// Summary は学習済みモデルの式と統計量を文字列で返す
//
// 例:
//
//	Linear Regression Model
//	----------------------
//	Formula: y = 5.0267 + 2.0170 * x
//
//	R²: 0.9991
//	Adjusted R²: 0.9990
//	Residual Standard Error: 0.1976
func (lr *LinearRegression) Summary() string {
	if !lr.IsFitted() {
		return "Untrained Linear Regression Model"
	}

	var sb strings.Builder
	sb.WriteString("Linear Regression Model\n")
	sb.WriteString("----------------------\n")
	fmt.Fprintf(&sb, "Formula: y = %.4f", lr.intercept)

	for i, coef := range lr.coefficients {
		if coef >= 0 {
			sb.WriteString(" + ")
		} else {
			sb.WriteString(" - ")
		}
		fmt.Fprintf(&sb, "%.4f * %s", math.Abs(coef), lr.featureName(i))
	}

	fmt.Fprintf(&sb, "\n\nR²: %.4f", lr.rSquared)
	fmt.Fprintf(&sb, "\nAdjusted R²: %.4f", lr.adjustedRSquared)
	fmt.Fprintf(&sb, "\nResidual Standard Error: %.4f", math.Sqrt(lr.residualVariance))

	return sb.String()
}

func (lr *LinearRegression) featureName(i int) string {
	if i < len(lr.featureNames) && lr.featureNames[i] != "" {
		return lr.featureNames[i]
	}
	return fmt.Sprintf("x%d", i)
}

package linear

import (
	"math"

	"github.com/YuminosukeSato/mlglue/core/model"
	"github.com/YuminosukeSato/mlglue/pkg/errors"
)

// ExportWeights はモデルのパラメータをシリアライズ可能な形式で出力する
//
// 統計量は有限値の場合のみ Metadata に含まれる。
//
// 使用例:
//
//	w, err := trained.ExportWeights()
//	if err != nil {
//	    return err
//	}
//	err = w.Encode(file)
func (lr *LinearRegression) ExportWeights() (*model.ModelWeights, error) {
	if err := lr.state.RequireFitted(modelName, "ExportWeights"); err != nil {
		return nil, err
	}

	metadata := map[string]interface{}{
		"n_samples": lr.state.NSamples,
	}
	putFinite(metadata, "r_squared", lr.rSquared)
	putFinite(metadata, "adjusted_r_squared", lr.adjustedRSquared)
	putFinite(metadata, "residual_variance", lr.residualVariance)

	return &model.ModelWeights{
		ModelType:    modelName,
		Version:      model.WeightsVersion,
		Coefficients: lr.Coefficients(),
		Intercept:    lr.intercept,
		Features:     lr.FeatureNames(),
		Hyperparameters: map[string]interface{}{
			"solver":          string(lr.solver),
			"strict_features": lr.strictFeatures,
		},
		Metadata: metadata,
		IsFitted: true,
	}, nil
}

// ImportWeights は出力されたパラメータから学習済みモデルを復元する
//
// レシーバの設定（ロガーなど）を引き継ぎ、Hyperparameters に含まれる設定で上書きする。
func (lr *LinearRegression) ImportWeights(w *model.ModelWeights) (*LinearRegression, error) {
	const op = "LinearRegression.ImportWeights"

	if w == nil {
		return nil, errors.NewValueError(op, "weights must not be nil")
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if w.ModelType != modelName {
		return nil, errors.NewValidationError("model_type", "expected "+modelName, w.ModelType)
	}
	if !w.IsFitted {
		return nil, errors.NewNotFittedError(modelName, "ImportWeights")
	}

	restored := lr.untrained()
	if s, ok := w.Hyperparameters["solver"].(string); ok && Solver(s).valid() {
		restored.solver = Solver(s)
	}
	if strict, ok := w.Hyperparameters["strict_features"].(bool); ok {
		restored.strictFeatures = strict
	}

	c := len(w.Coefficients)
	restored.intercept = w.Intercept
	restored.coefficients = make([]float64, c)
	copy(restored.coefficients, w.Coefficients)
	restored.featureNames = resolveNames(w.Features, c)
	restored.rSquared = metaFloat(w.Metadata, "r_squared")
	restored.adjustedRSquared = metaFloat(w.Metadata, "adjusted_r_squared")
	restored.residualVariance = metaFloat(w.Metadata, "residual_variance")
	nSamples := 0
	if n := metaFloat(w.Metadata, "n_samples"); n > 0 {
		nSamples = int(n)
	}
	restored.state = model.FittedState(c, nSamples)

	return restored, nil
}

func putFinite(m map[string]interface{}, key string, v float64) {
	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		m[key] = v
	}
}

// metaFloat reads a numeric metadata value, accepting both in-memory ints and
// JSON-decoded float64. Missing keys read as NaN.
func metaFloat(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return math.NaN()
	}
}

package model

import "github.com/YuminosukeSato/mlglue/pkg/errors"

// EstimatorState はモデルの学習状態を表す
type EstimatorState int

const (
	// NotFitted はモデルが未学習の状態
	NotFitted EstimatorState = iota
	// Fitted はモデルが学習済みの状態
	Fitted
)

func (s EstimatorState) String() string {
	if s == Fitted {
		return "fitted"
	}
	return "not_fitted"
}

// State は学習済みモデルが保持するメタデータ。値として扱い、学習後は変更しない
type State struct {
	Status    EstimatorState
	NFeatures int
	NSamples  int
}

// FittedState returns the state of a model trained on nSamples rows of
// nFeatures columns.
func FittedState(nFeatures, nSamples int) State {
	return State{Status: Fitted, NFeatures: nFeatures, NSamples: nSamples}
}

// IsFitted はモデルが学習済みかどうかを返す
func (s State) IsFitted() bool {
	return s.Status == Fitted
}

// RequireFitted returns a NotFittedError naming modelName and method when the
// state is not fitted.
func (s State) RequireFitted(modelName, method string) error {
	if !s.IsFitted() {
		return errors.NewNotFittedError(modelName, method)
	}
	return nil
}

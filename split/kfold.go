package split

import "github.com/YuminosukeSato/mlglue/pkg/errors"

// Fold is one train/test partition of a k-fold split.
type Fold struct {
	TrainIndices []int
	TestIndices  []int
}

// KFold partitions n rows into k folds over Permutation(n, seed). Each index
// appears in exactly one test fold; the first n%k folds get one extra row.
// Train indices keep permutation order.
func KFold(n, k int, seed int64) ([]Fold, error) {
	if k < 2 || k > n {
		return nil, errors.NewValidationError("k", "must be within [2, n_samples]", k)
	}

	indices := Permutation(n, seed)
	foldSize := n / k
	remainder := n % k

	folds := make([]Fold, k)
	current := 0
	for i := 0; i < k; i++ {
		size := foldSize
		if i < remainder {
			size++
		}

		testIndices := make([]int, size)
		copy(testIndices, indices[current:current+size])

		trainIndices := make([]int, 0, n-size)
		trainIndices = append(trainIndices, indices[:current]...)
		trainIndices = append(trainIndices, indices[current+size:]...)

		folds[i] = Fold{TrainIndices: trainIndices, TestIndices: testIndices}
		current += size
	}
	return folds, nil
}

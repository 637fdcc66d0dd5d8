// Package split partitions tabular datasets into features and target, and
// into reproducible train and test subsets.
package split

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/YuminosukeSato/mlglue/pkg/errors"
	"github.com/YuminosukeSato/mlglue/pkg/log"
)

// Result holds the four partitions of a train/test split together with the
// original row indices that went into each side, in shuffle order.
type Result struct {
	XTrain dataframe.DataFrame
	XTest  dataframe.DataFrame
	YTrain series.Series
	YTest  series.Series

	TrainIndices []int
	TestIndices  []int
}

// Target separates df into the feature frame (every column except name, in
// original order) and the target column.
//
// If name is not a column of df the error matches errors.ErrColumnNotFound.
// A frame whose only column is the target yields an empty feature frame.
func Target(df dataframe.DataFrame, name string) (dataframe.DataFrame, series.Series, error) {
	if df.Err != nil {
		return dataframe.DataFrame{}, series.Series{}, errors.NewValueError("split.Target", df.Err.Error())
	}

	names := df.Names()
	if slices.Index(names, name) < 0 {
		return dataframe.DataFrame{}, series.Series{}, errors.NewColumnNotFoundError("split.Target", name, names)
	}

	features := make([]series.Series, 0, len(names)-1)
	for _, n := range names {
		if n != name {
			features = append(features, df.Col(n))
		}
	}

	y := df.Col(name)
	if len(features) == 0 {
		return dataframe.DataFrame{}, y, nil
	}
	return dataframe.New(features...), y, nil
}

// TrainTest shuffles the rows of X and y with a generator seeded by seed and
// splits them so that round(testSize*n) rows go to the test side.
//
// The same seed and row count always produce the same partition. testSize must
// lie in [0, 1]; 0 and 1 are legal and leave one side empty.
func TrainTest(X dataframe.DataFrame, y series.Series, testSize float64, seed int64) (*Result, error) {
	const op = "split.TrainTest"

	if math.IsNaN(testSize) || testSize < 0 || testSize > 1 {
		return nil, errors.NewValidationError("test_size", "must be within [0, 1]", testSize)
	}
	if X.Err != nil {
		return nil, errors.NewValueError(op, X.Err.Error())
	}
	if y.Err != nil {
		return nil, errors.NewValueError(op, y.Err.Error())
	}

	n := X.Nrow()
	if n != y.Len() {
		return nil, errors.NewDimensionError(op, n, y.Len(), 0)
	}

	testCount := int(math.Round(testSize * float64(n)))
	trainCount := n - testCount

	perm := Permutation(n, seed)
	trainIdx := slices.Clone(perm[:trainCount])
	testIdx := slices.Clone(perm[trainCount:])

	res := &Result{
		TrainIndices: trainIdx,
		TestIndices:  testIdx,
	}

	var err error
	if res.XTrain, err = takeRows(X, trainIdx); err != nil {
		return nil, err
	}
	if res.XTest, err = takeRows(X, testIdx); err != nil {
		return nil, err
	}
	if res.YTrain, err = takeElems(y, trainIdx); err != nil {
		return nil, err
	}
	if res.YTest, err = takeElems(y, testIdx); err != nil {
		return nil, err
	}

	log.GetLoggerWithName("split").Debug("train/test split completed",
		log.OperationKey, log.OperationSplit,
		log.SamplesKey, n,
		log.TrainSamplesKey, trainCount,
		log.TestSamplesKey, testCount,
		log.TestSizeKey, testSize,
		log.RandomSeedKey, seed,
	)

	return res, nil
}

// Permutation returns the indices 0..n-1 shuffled Fisher-Yates style from the
// highest index down, drawing from a PCG generator seeded with seed.
func Permutation(n int, seed int64) []int {
	if n <= 0 {
		return []int{}
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	for i := n - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}
	return indices
}

// takeRows selects rows of df by position. An empty selection keeps the
// columns with zero rows.
func takeRows(df dataframe.DataFrame, idx []int) (dataframe.DataFrame, error) {
	if df.Ncol() == 0 {
		return dataframe.DataFrame{}, nil
	}
	if len(idx) == 0 {
		names := df.Names()
		cols := make([]series.Series, len(names))
		for j, name := range names {
			cols[j] = emptyLike(df.Col(name))
		}
		return dataframe.New(cols...), nil
	}

	out := df.Subset(idx)
	if out.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(out.Err, "select rows")
	}
	return out, nil
}

func takeElems(s series.Series, idx []int) (series.Series, error) {
	if len(idx) == 0 {
		return emptyLike(s), nil
	}
	out := s.Subset(idx)
	if out.Err != nil {
		return series.Series{}, errors.Wrap(out.Err, "select elements")
	}
	return out, nil
}

func emptyLike(s series.Series) series.Series {
	return series.New([]string{}, s.Type(), s.Name)
}

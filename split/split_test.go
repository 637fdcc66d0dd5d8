package split

import (
	"math"
	"slices"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/mlglue/pkg/errors"
	"github.com/YuminosukeSato/mlglue/pkg/log"
)

func houses() dataframe.DataFrame {
	return dataframe.New(
		series.New([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, series.Float, "size"),
		series.New([]int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}, series.Int, "rooms"),
		series.New([]float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, series.Float, "price"),
	)
}

func TestTarget(t *testing.T) {
	X, y, err := Target(houses(), "price")
	require.NoError(t, err)

	assert.Equal(t, []string{"size", "rooms"}, X.Names())
	assert.Equal(t, 10, X.Nrow())
	assert.Equal(t, "price", y.Name)
	assert.Equal(t, 10, y.Len())
	assert.Equal(t, 30.0, y.Elem(2).Float())
}

func TestTarget_MiddleColumnKeepsOrder(t *testing.T) {
	X, y, err := Target(houses(), "rooms")
	require.NoError(t, err)
	assert.Equal(t, []string{"size", "price"}, X.Names())
	assert.Equal(t, "rooms", y.Name)
}

func TestTarget_ColumnNotFound(t *testing.T) {
	_, _, err := Target(houses(), "nonexistent")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrColumnNotFound))

	var cnf *errors.ColumnNotFoundError
	require.True(t, errors.As(err, &cnf))
	assert.Equal(t, "nonexistent", cnf.Column)
}

func TestTarget_OnlyTargetColumn(t *testing.T) {
	df := dataframe.New(series.New([]float64{1, 2}, series.Float, "y"))
	X, y, err := Target(df, "y")
	require.NoError(t, err)
	assert.Equal(t, 0, X.Ncol())
	assert.Equal(t, 2, y.Len())
}

func TestTrainTest_Sizes(t *testing.T) {
	X, y, err := Target(houses(), "price")
	require.NoError(t, err)

	res, err := TrainTest(X, y, 0.3, 42)
	require.NoError(t, err)

	assert.Equal(t, 7, res.XTrain.Nrow())
	assert.Equal(t, 3, res.XTest.Nrow())
	assert.Equal(t, 7, res.YTrain.Len())
	assert.Equal(t, 3, res.YTest.Len())
	assert.Equal(t, []string{"size", "rooms"}, res.XTrain.Names())
	assert.Equal(t, []string{"size", "rooms"}, res.XTest.Names())
}

func TestTrainTest_PartitionsAllRows(t *testing.T) {
	X, y, _ := Target(houses(), "price")
	res, err := TrainTest(X, y, 0.3, 7)
	require.NoError(t, err)

	all := append(slices.Clone(res.TrainIndices), res.TestIndices...)
	slices.Sort(all)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, all)

	// rows stay aligned with their targets
	for i, idx := range res.TrainIndices {
		assert.Equal(t, float64(idx+1), res.XTrain.Elem(i, 0).Float())
		assert.Equal(t, float64(idx+1)*10, res.YTrain.Elem(i).Float())
	}
	for i, idx := range res.TestIndices {
		assert.Equal(t, float64(idx+1)*10, res.YTest.Elem(i).Float())
	}
}

func TestTrainTest_Reproducible(t *testing.T) {
	X, y, _ := Target(houses(), "price")

	a, err := TrainTest(X, y, 0.3, 42)
	require.NoError(t, err)
	b, err := TrainTest(X, y, 0.3, 42)
	require.NoError(t, err)

	assert.Equal(t, a.TrainIndices, b.TrainIndices)
	assert.Equal(t, a.TestIndices, b.TestIndices)
	assert.Equal(t, a.YTest.Float(), b.YTest.Float())
}

func TestTrainTest_Bounds(t *testing.T) {
	X, y, _ := Target(houses(), "price")

	allTrain, err := TrainTest(X, y, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, allTrain.XTrain.Nrow())
	assert.Equal(t, 0, allTrain.XTest.Nrow())
	assert.Equal(t, 0, allTrain.YTest.Len())
	assert.Equal(t, []string{"size", "rooms"}, allTrain.XTest.Names())

	allTest, err := TrainTest(X, y, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, allTest.XTrain.Nrow())
	assert.Equal(t, 10, allTest.XTest.Nrow())
	assert.Equal(t, 0, allTest.YTrain.Len())
}

func TestTrainTest_RoundsHalfUp(t *testing.T) {
	X, y, _ := Target(houses(), "price")
	res, err := TrainTest(X, y, 0.25, 3)
	require.NoError(t, err)
	// 0.25 * 10 = 2.5 rounds to 3
	assert.Len(t, res.TestIndices, 3)
	assert.Len(t, res.TrainIndices, 7)
}

func TestTrainTest_InvalidArguments(t *testing.T) {
	X, y, _ := Target(houses(), "price")

	for _, size := range []float64{-0.1, 1.5, math.NaN()} {
		_, err := TrainTest(X, y, size, 42)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidArgument), "test size %v", size)
	}

	short := series.New([]float64{1, 2, 3}, series.Float, "price")
	_, err := TrainTest(X, short, 0.3, 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrLengthMismatch))
}

func TestTrainTest_LogsSplit(t *testing.T) {
	previous := log.GetLoggerProvider()
	defer log.SetLoggerProvider(previous)
	provider, _ := log.NewTestLoggerProvider(log.LevelDebug)
	log.SetLoggerProvider(provider)

	X, y, _ := Target(houses(), "price")
	_, err := TrainTest(X, y, 0.3, 42)
	require.NoError(t, err)

	logger := provider.Logger()
	assert.True(t, logger.ContainsMessage("train/test split completed"))
	assert.True(t, logger.ContainsField(log.TrainSamplesKey, 7.0))
	assert.True(t, logger.ContainsField(log.RandomSeedKey, 42.0))
}

func TestPermutation(t *testing.T) {
	p := Permutation(100, 42)
	require.Len(t, p, 100)

	sorted := slices.Clone(p)
	slices.Sort(sorted)
	for i, v := range sorted {
		assert.Equal(t, i, v)
	}

	assert.Equal(t, p, Permutation(100, 42))
	assert.NotEqual(t, p, Permutation(100, 43))
	assert.Empty(t, Permutation(0, 42))
	assert.Equal(t, []int{0}, Permutation(1, 42))
}

func TestKFold(t *testing.T) {
	folds, err := KFold(10, 3, 42)
	require.NoError(t, err)
	require.Len(t, folds, 3)

	assert.Len(t, folds[0].TestIndices, 4)
	assert.Len(t, folds[1].TestIndices, 3)
	assert.Len(t, folds[2].TestIndices, 3)

	seen := make(map[int]int)
	for _, f := range folds {
		assert.Len(t, f.TrainIndices, 10-len(f.TestIndices))
		for _, idx := range f.TestIndices {
			seen[idx]++
			assert.NotContains(t, f.TrainIndices, idx)
		}
	}
	assert.Len(t, seen, 10)
	for idx, c := range seen {
		assert.Equal(t, 1, c, "index %d", idx)
	}

	again, err := KFold(10, 3, 42)
	require.NoError(t, err)
	assert.Equal(t, folds, again)
}

func TestKFold_InvalidK(t *testing.T) {
	for _, k := range []int{0, 1, 11} {
		_, err := KFold(10, k, 42)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidArgument))
	}
}

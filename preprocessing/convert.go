// Package preprocessing converts tabular data into gonum numeric arrays.
//
// Conversion never fails on cell content: missing values, unparseable strings
// and non-numeric types become NaN (or 0 for integer conversion). Callers that
// care about silent degradation can inspect the result with CountNaN.
package preprocessing

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/mlglue/core/parallel"
	"github.com/YuminosukeSato/mlglue/pkg/errors"
	"github.com/YuminosukeSato/mlglue/pkg/log"
)

// ToFloat64 はスカラー値をfloat64に変換する
//
// 変換規則:
//   - nil: NaN
//   - 数値型（int, uint, float 各種）: そのままfloat64へ
//   - string: 10進数として解釈できればその値、できなければ NaN
//   - その他の型: NaN
//
// エラーやパニックは発生しない。
func ToFloat64(v any) float64 {
	switch x := v.(type) {
	case nil:
		return math.NaN()
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int8:
		return float64(x)
	case int16:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case uint8:
		return float64(x)
	case uint16:
		return float64(x)
	case uint32:
		return float64(x)
	case uint64:
		return float64(x)
	case string:
		return parseFloat(x)
	default:
		return math.NaN()
	}
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		var numErr *strconv.NumError
		// ParseFloat returns ±Inf together with ErrRange for overflowing input.
		if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
			return f
		}
		return math.NaN()
	}
	return f
}

// elementFloat applies the scalar rule to a single gota element.
func elementFloat(e series.Element) float64 {
	if e.IsNA() {
		return math.NaN()
	}
	switch e.Type() {
	case series.Float, series.Int:
		return e.Float()
	case series.String:
		return parseFloat(e.String())
	default:
		return math.NaN()
	}
}

// ToFloats はSeriesをfloat64スライスに変換する
//
// Float型とInt型のSeriesはgotaの一括変換を使う（欠損値はNaN）。
// String型は要素ごとに解釈し、Bool型およびその他の型は全てNaNになる。
//
// 使用例:
//
//	y := series.New([]int{1, 2, 3}, series.Int, "y")
//	values := preprocessing.ToFloats(y) // [1 2 3]
func ToFloats(s series.Series) []float64 {
	n := s.Len()
	switch s.Type() {
	case series.Float, series.Int:
		return s.Float()
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = elementFloat(s.Elem(i))
	}
	return out
}

// ToVector はSeriesをgonumのベクトルに変換する。空のSeriesは長さ0のベクトルを返す
func ToVector(s series.Series) *mat.VecDense {
	values := ToFloats(s)
	if len(values) == 0 {
		return &mat.VecDense{}
	}
	return mat.NewVecDense(len(values), values)
}

// ToInts はSeriesをintスライスに変換する
//
// 変換規則:
//   - 欠損値: 0
//   - Int型: そのまま
//   - Float型: 0方向に切り捨て。NaNと±Infは0
//   - String型: 10進整数として解釈できればその値、できなければ0
//   - Bool型およびその他の型: 0
func ToInts(s series.Series) []int {
	n := s.Len()
	out := make([]int, n)
	for i := 0; i < n; i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		switch e.Type() {
		case series.Int:
			if v, err := e.Int(); err == nil {
				out[i] = v
			}
		case series.Float:
			f := e.Float()
			if math.IsNaN(f) || math.IsInf(f, 0) {
				continue
			}
			out[i] = int(f)
		case series.String:
			if v, err := strconv.Atoi(e.String()); err == nil {
				out[i] = v
			}
		}
	}
	return out
}

// ToMatrix はDataFrameを行数×列数の行列に変換する
//
// 各セルはToFloat64と同じ規則で変換される。行または列が0のDataFrameは
// 空の mat.Dense を返す。行数が parallel.DefaultThreshold を超える場合は
// 行範囲ごとに並列で変換する。
//
// 使用例:
//
//	X, y, _ := split.Target(df, "price")
//	features := preprocessing.ToMatrix(X)
func ToMatrix(df dataframe.DataFrame) *mat.Dense {
	m, err := FromFrame(context.Background(), df)
	if err != nil {
		return &mat.Dense{}
	}
	return m
}

// FromFrame is the error-reporting form of ToMatrix. It fails when df carries
// an error from a previous gota operation or when ctx is cancelled.
func FromFrame(ctx context.Context, df dataframe.DataFrame) (*mat.Dense, error) {
	if df.Err != nil {
		return nil, errors.Wrap(errors.NewValueError("preprocessing.FromFrame", df.Err.Error()), "invalid data frame")
	}

	rows, cols := df.Nrow(), df.Ncol()
	if rows == 0 || cols == 0 {
		return &mat.Dense{}, nil
	}

	columns := make([]series.Series, cols)
	for j, name := range df.Names() {
		columns[j] = df.Col(name)
	}

	out := mat.NewDense(rows, cols, nil)
	err := parallel.ForEachChunk(ctx, rows, parallel.DefaultThreshold, func(ctx context.Context, start, end int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		for j, col := range columns {
			for i := start; i < end; i++ {
				out.Set(i, j, elementFloat(col.Elem(i)))
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	logger := log.GetLoggerWithName("preprocessing")
	if logger.Enabled(ctx, log.LevelDebug) {
		logger.Debug("data frame converted",
			log.OperationKey, log.OperationConvert,
			log.SamplesKey, rows,
			log.FeaturesKey, cols,
			log.NaNCellsKey, CountNaN(out),
		)
	}
	return out, nil
}

// CountNaN returns the number of NaN cells in m.
func CountNaN(m mat.Matrix) int {
	if m == nil {
		return 0
	}
	if d, ok := m.(*mat.Dense); ok && d.IsEmpty() {
		return 0
	}
	r, c := m.Dims()
	count := 0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if math.IsNaN(m.At(i, j)) {
				count++
			}
		}
	}
	return count
}

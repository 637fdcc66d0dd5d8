// Package errors はmlglue全体のエラーハンドリングと警告システムを提供します。
// 失敗はすべて呼び出し元へ同期的に返され、リトライ対象にはなりません。
// NaNへの数値劣化はエラーではないため、このパッケージでは扱いません。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = defaultWarningHandler
	// zerologロガー（循環importを避けるため pkg/log から注入される）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// zerolog連携が有効な場合でも、このハンドラを設定すると優先されます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
	zerologWarnFunc = nil
}

// ResetWarningHandler は警告ハンドラを標準ログへ出力する既定の動作に戻します。
func ResetWarningHandler() {
	SetWarningHandler(defaultWarningHandler)
}

func defaultWarningHandler(w error) {
	log.Printf("mlglue-Warning: %v\n", w)
}

// SetZerologWarnFunc はzerolog警告関数を設定します。nilで解除されます。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// UndefinedMetricWarning は評価指標が数学的に定義できない場合の警告です。
// 例えば、正解値がすべて同じ値でR²の分母が0になる場合など。
type UndefinedMetricWarning struct {
	Metric    string
	Condition string
	Result    float64 // この条件で返される値
}

func (w *UndefinedMetricWarning) Error() string {
	return fmt.Sprintf("'%s' is ill-defined and being set to %f due to %s.", w.Metric, w.Result, w.Condition)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *UndefinedMetricWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("metric", w.Metric).
		Str("condition", w.Condition).
		Float64("result", w.Result).
		Str("type", "UndefinedMetricWarning")
}

// NewUndefinedMetricWarning は新しいUndefinedMetricWarningを作成します。
func NewUndefinedMetricWarning(metric, condition string, result float64) *UndefinedMetricWarning {
	return &UndefinedMetricWarning{Metric: metric, Condition: condition, Result: result}
}

// ===========================================================================
//
//	分類用のセンチネルエラー
//
// ===========================================================================

var (
	// ErrColumnNotFound は指定された列名がデータセットに存在しない場合です。
	ErrColumnNotFound = New("column not found")

	// ErrInvalidArgument は引数が許容範囲外の場合です。
	ErrInvalidArgument = New("invalid argument")

	// ErrInsufficientData は行数や自由度が不足している場合です。
	ErrInsufficientData = New("insufficient data")

	// ErrNotTrained は未学習のモデルを使用した場合です。
	ErrNotTrained = New("model not trained")

	// ErrLengthMismatch は長さや次元が一致しない場合です。
	ErrLengthMismatch = New("length mismatch")

	// ErrSingularMatrix は特異行列（または悪条件）の場合のエラーです。
	ErrSingularMatrix = New("singular matrix")
)

// mark はスタックトレースを付与し、センチネルで分類します。
func mark(err error, kind error) error {
	return errors.Mark(errors.WithStack(err), kind)
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// NotFittedError はモデルが未学習の状態で Predict などを呼び出した場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("mlglue: %s: model must be trained with Fit() before calling %s()", e.ModelName, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は ErrNotTrained に分類される NotFittedError を作成します。
func NewNotFittedError(modelName, method string) error {
	return mark(&NotFittedError{ModelName: modelName, Method: method}, ErrNotTrained)
}

// DimensionError は入力データの長さや次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) axisName() string {
	if e.Axis == 0 {
		return "rows"
	}
	return "features"
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("mlglue: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, e.axisName(), e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", e.axisName()).
		Str("type", "DimensionError")
}

// NewDimensionError は ErrLengthMismatch に分類される DimensionError を作成します。
func NewDimensionError(op string, expected, got, axis int) error {
	return mark(&DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}, ErrLengthMismatch)
}

// ColumnNotFoundError は名前で指定された列が存在しない場合のエラーです。
type ColumnNotFoundError struct {
	Op        string
	Column    string
	Available []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("mlglue: %s: column %q not found (available: %v)", e.Op, e.Column, e.Available)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ColumnNotFoundError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("column", e.Column).
		Strs("available", e.Available).
		Str("type", "ColumnNotFoundError")
}

// NewColumnNotFoundError は ErrColumnNotFound に分類される ColumnNotFoundError を作成します。
func NewColumnNotFoundError(op, column string, available []string) error {
	return mark(&ColumnNotFoundError{Op: op, Column: column, Available: available}, ErrColumnNotFound)
}

// InsufficientDataError は学習に必要な行数（自由度）が足りない場合のエラーです。
// 切片付きOLSでは n - k - 1 > 0 が必要です。
type InsufficientDataError struct {
	Op       string
	Samples  int
	Features int
	Reason   string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("mlglue: %s: insufficient data: %s (samples=%d, features=%d)", e.Op, e.Reason, e.Samples, e.Features)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InsufficientDataError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("samples", e.Samples).
		Int("features", e.Features).
		Str("reason", e.Reason).
		Str("type", "InsufficientDataError")
}

// NewInsufficientDataError は ErrInsufficientData に分類される InsufficientDataError を作成します。
func NewInsufficientDataError(op string, samples, features int, reason string) error {
	return mark(&InsufficientDataError{Op: op, Samples: samples, Features: features, Reason: reason}, ErrInsufficientData)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("mlglue: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は ErrInvalidArgument に分類される ValidationError を作成します。
func NewValidationError(param, reason string, value interface{}) error {
	return mark(&ValidationError{ParamName: param, Reason: reason, Value: value}, ErrInvalidArgument)
}

// ValueError は引数の値が不適切な場合に発生するエラーです（空ベクトルなど）。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("mlglue: %s: %s", e.Op, e.Message)
}

// NewValueError は ErrInvalidArgument に分類される ValueError を作成します。
func NewValueError(op, message string) error {
	return mark(&ValueError{Op: op, Message: message}, ErrInvalidArgument)
}

// ModelError は機械学習モデルに関する一般的なエラーです。
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mlglue: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("mlglue: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError は新しいModelErrorを作成し、スタックトレースを付与します。
func NewModelError(op, kind string, err error) error {
	return errors.WithStack(&ModelError{Op: op, Kind: kind, Err: err})
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// SafeDetails はエラーチェーンを辿り、最初に見つかった安全な詳細情報
// （WithStackが記録したスタックトレースなど）を返します。
func SafeDetails(err error) []string {
	for c := err; c != nil; c = errors.UnwrapOnce(c) {
		if details := errors.GetSafeDetails(c).SafeDetails; len(details) > 0 {
			return details
		}
	}
	return nil
}

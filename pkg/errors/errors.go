// Package errors はプロジェクト全体のエラーハンドリングを提供します。
// SciPy/NumPyの例外体系にインスパイアされており、構造化されたエラー情報を提供します。
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// DimensionError は入力データの次元が期待値と異なる場合のエラーです。
type DimensionError struct {
	Op       string
	Expected int
	Got      int
	Axis     int // 0 for rows, 1 for columns/features
}

func (e *DimensionError) Error() string {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	return fmt.Sprintf("simreg: %s: dimension mismatch on axis %d (%s). Expected %d, got %d", e.Op, e.Axis, axisName, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *DimensionError) MarshalZerologObject(event *zerolog.Event) {
	axisName := "features"
	if e.Axis == 0 {
		axisName = "rows"
	}
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Int("axis", e.Axis).
		Str("axis_name", axisName).
		Str("type", "DimensionError")
}

// NewDimensionError は新しいDimensionErrorを作成し、スタックトレースを付与します。
func NewDimensionError(op string, expected, got, axis int) error {
	err := &DimensionError{Op: op, Expected: expected, Got: got, Axis: axis}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
// 例えば、`log`関数に負の数を渡した場合など。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("simreg: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	求根・数値計算特有のエラー型
//
// ===========================================================================

// BracketError は区間拡張を繰り返しても目的関数の符号が変化しなかった場合のエラーです。
// 二分法は符号の変化する区間を前提とするため、このエラーが出た場合は
// 目的関数の設定（ペナルティの重みなど）を見直す必要があります。
type BracketError struct {
	Op         string
	Low        float64 // 探索区間の下端
	High       float64 // 最後に試した上端
	FLow       float64 // f(Low)
	FHigh      float64 // f(High)
	Expansions int     // 実行した区間拡張の回数
}

func (e *BracketError) Error() string {
	return fmt.Sprintf("simreg: %s: no sign change in [%g, %g] after %d expansions (f(low)=%g, f(high)=%g)",
		e.Op, e.Low, e.High, e.Expansions, e.FLow, e.FHigh)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *BracketError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Float64("low", e.Low).
		Float64("high", e.High).
		Float64("f_low", e.FLow).
		Float64("f_high", e.FHigh).
		Int("expansions", e.Expansions).
		Str("type", "BracketError")
}

// NewBracketError は新しいBracketErrorを作成し、スタックトレースを付与します。
func NewBracketError(op string, low, high, fLow, fHigh float64, expansions int) error {
	err := &BracketError{Op: op, Low: low, High: high, FLow: fLow, FHigh: fHigh, Expansions: expansions}
	return errors.WithStack(err)
}

// ConvergenceError は反復法が規定回数内に収束しなかった場合のエラーです。
type ConvergenceError struct {
	Op         string
	Iterations int
	Width      float64 // 終了時点の区間幅
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("simreg: %s: failed to converge after %d iterations (interval width %.6g). Consider increasing maxIter or relaxing xtol",
		e.Op, e.Iterations, e.Width)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ConvergenceError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("iterations", e.Iterations).
		Float64("width", e.Width).
		Str("type", "ConvergenceError")
}

// NewConvergenceError は新しいConvergenceErrorを作成し、スタックトレースを付与します。
func NewConvergenceError(op string, iterations int, width float64) error {
	err := &ConvergenceError{Op: op, Iterations: iterations, Width: width}
	return errors.WithStack(err)
}

// NumericalInstabilityError は数値計算が不安定になった場合のエラーです。
// NaN、Inf、オーバーフロー、アンダーフローなどを検出します。
type NumericalInstabilityError struct {
	Operation string                 // 発生した操作（例: "bisect", "sample_template"）
	Values    []float64              // 問題のある値
	Context   map[string]interface{} // デバッグ用の追加コンテキスト情報
	Iteration int                    // 発生したイテレーション番号
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("simreg: numerical instability detected in %s at iteration %d. Values: [%s]",
		e.Operation, e.Iteration, valStr)
}

// NewNumericalInstabilityError は新しいNumericalInstabilityErrorを作成します。
func NewNumericalInstabilityError(operation string, values []float64, iteration int) error {
	err := &NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Iteration: iteration,
		Context:   make(map[string]interface{}),
	}
	return errors.WithStack(err)
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

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")

	// ErrSingularMatrix は特異行列（正定値でない共分散行列など）の場合のエラーです。
	ErrSingularMatrix = New("singular matrix")
)

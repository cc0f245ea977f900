// Package metrics は生成されたデータセットの品質を検証するための
// 回帰指標を提供します。
package metrics

import (
	"math"

	"github.com/YuminosukeSato/simreg/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// SNR は信号対雑音比 ||X*beta|| / ||e|| を計算する
//
// 生成されたデータセットが目標 SNR を達成しているかの検証に使う
//
// パラメータ:
//   - x: 計画行列 (n_samples × n_features)
//   - beta: 回帰係数ベクトル (n_features)
//   - residual: 残差ベクトル (n_samples)
//
// 戻り値:
//   - float64: 信号対雑音比
//   - error: 形状不一致、空データ、残差ノルムがゼロの場合のエラー
func SNR(x mat.Matrix, beta, residual mat.Vector) (float64, error) {
	n, p := x.Dims()
	if n == 0 || p == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "SNR: empty design matrix")
	}
	if beta.Len() != p {
		return 0, errors.NewDimensionError("SNR", p, beta.Len(), 1)
	}
	if residual.Len() != n {
		return 0, errors.NewDimensionError("SNR", n, residual.Len(), 0)
	}

	eNorm := mat.Norm(residual, 2)
	if eNorm == 0 {
		return 0, errors.NewValueError("SNR", "residual norm is zero")
	}

	signal := mat.NewVecDense(n, nil)
	signal.MulVec(x, beta)

	return mat.Norm(signal, 2) / eNorm, nil
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する
func MSE(yTrue, yPred mat.Vector) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "MSE: empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("MSE", n, yPred.Len(), 0)
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}

	return sum / float64(n), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する
func RMSE(yTrue, yPred mat.Vector) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// R2Score は決定係数（R²）を計算する
func R2Score(yTrue, yPred mat.Vector) (float64, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "R2Score: empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError("R2Score", n, yPred.Len(), 0)
	}

	var yMean float64
	for i := 0; i < n; i++ {
		yMean += yTrue.AtVec(i)
	}
	yMean /= float64(n)

	// 全変動（TSS）と残差変動（RSS）
	var tss, rss float64
	for i := 0; i < n; i++ {
		yTrueVal := yTrue.AtVec(i)
		yPredVal := yPred.AtVec(i)

		tss += (yTrueVal - yMean) * (yTrueVal - yMean)
		rss += (yTrueVal - yPredVal) * (yTrueVal - yPredVal)
	}

	// すべての yTrue が同じ値の場合
	if tss == 0 {
		return 0, errors.Newf("R2Score: total sum of squares is zero (no variance in yTrue)")
	}

	return 1 - rss/tss, nil
}

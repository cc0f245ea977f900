package simulate

import (
	"github.com/YuminosukeSato/simreg/core/parallel"
	"github.com/YuminosukeSato/simreg/optimize"
	"github.com/YuminosukeSato/simreg/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Dataset は既知の厳密解を持つデータセットを生成するジェネレータのインターフェース
type Dataset interface {
	// Load は beta を厳密解とするデータセットを生成する
	Load(beta mat.Vector) (*Data, error)
}

// Penalty は目的関数に加算されるペナルティ項
// 勾配は切片を除いた係数ベクトルに対して評価される
type Penalty interface {
	// Grad は beta におけるペナルティの勾配（劣勾配）を返す
	Grad(beta mat.Vector) *mat.VecDense
}

// Data は Load が生成したデータセット
type Data struct {
	X    *mat.Dense    // 計画行列 (n_samples × n_features)
	Y    *mat.VecDense // ターゲットベクトル (n_samples)
	Beta *mat.VecDense // 実際に解となる回帰係数（SNR指定時はスケール後の値）
	E    *mat.VecDense // 実際に使用された残差ベクトル
}

// LinearRegressionData はペナルティ付き線形回帰のデータセットを
// 逆算的に構築するジェネレータ
//
// テンプレート行列 X0 の各列をスケールすることで、指定した係数 beta が
// 目的関数
//
//	f(beta) = (1/2) * ||X*beta - y||^2 + Σ λ_i * P_i(beta)
//
// の一階最適性条件を厳密に満たすデータ (X, y) を生成する
type LinearRegressionData struct {
	penalties []Penalty     // ペナルティ項のリスト（空の場合は通常の最小二乗）
	x0        *mat.Dense    // 相関構造を与えるテンプレート行列
	e         *mat.VecDense // 残差ベクトル（切片使用時は中心化済み）
	snr       float64       // 目標SNR
	hasSNR    bool          // SNR目標が設定されているか
	intercept bool          // 切片項を使用するか
}

var _ Dataset = (*LinearRegressionData)(nil)

// NewLinearRegressionData は新しいジェネレータを作成する
//
// テンプレート行列と残差ベクトルは内部にコピーされるため、呼び出し後に
// 元の値を変更しても生成結果には影響しない。切片を使用する場合、
// 残差は平均 0 に中心化される（切片方向の最適性条件のため）
//
// パラメータ:
//   - penalties: 目的関数に加算するペナルティ項（nil の場合はペナルティなし）
//   - template: テンプレート行列 X0 (n_samples × n_features)
//   - residual: 残差ベクトル e (n_samples)
//   - opts: WithSNR, WithIntercept などのオプション
//
// 戻り値:
//   - *LinearRegressionData: 新しいジェネレータ
//
// 使用例:
//
//	penalties := []simulate.Penalty{penalty.NewL1(0.1)}
//	gen := simulate.NewLinearRegressionData(penalties, X0, e,
//		simulate.WithIntercept(true),
//		simulate.WithSNR(3.0))
//	data, err := gen.Load(beta)
func NewLinearRegressionData(penalties []Penalty, template mat.Matrix, residual mat.Vector, opts ...Option) *LinearRegressionData {
	d := &LinearRegressionData{
		penalties: penalties,
		x0:        mat.DenseCopyOf(template),
		e:         mat.VecDenseCopyOf(residual),
	}

	for _, opt := range opts {
		opt(d)
	}

	// 切片を使う場合は残差を中心化する
	if d.intercept {
		raw := d.e.RawVector().Data
		mean := stat.Mean(raw, nil)
		floats.AddConst(-mean, raw)
	}

	return d
}

// Load は beta を厳密解とするデータセットを生成する
//
// SNR 目標が設定されている場合、まず係数全体のスケール k を二分法で求め、
// k*beta を解とするデータを生成する。返される Beta はスケール後の値
//
// パラメータ:
//   - beta: 厳密解とする回帰係数（切片使用時は先頭要素が切片）
//
// 戻り値:
//   - *Data: 生成されたデータセット
//   - error: SNR 目標を達成するスケールが見つからない場合や、
//     形状不一致・数値破綻が発生した場合のエラー
//
// 使用例:
//
//	data, err := gen.Load(mat.NewVecDense(3, []float64{1.0, 2.0, -1.5}))
//	if err != nil {
//		return err
//	}
//	fmt.Println(mat.Formatted(data.X))
func (d *LinearRegressionData) Load(beta mat.Vector) (data *Data, err error) {
	defer errors.Recover(&err, "LinearRegressionData.Load")

	b := mat.VecDenseCopyOf(beta)

	// SNR 目標が設定されている場合、係数のスケールを根探索で決める
	if d.hasSNR {
		scale, err := d.snrScale(b)
		if err != nil {
			return nil, err
		}
		b.ScaleVec(scale, b)
	}

	x, y := d.generate(b)

	return &Data{
		X:    x,
		Y:    y,
		Beta: b,
		E:    mat.VecDenseCopyOf(d.e),
	}, nil
}

// generate は勾配バランス条件から各テンプレート列のスケールを逆算し、
// 計画行列 X とターゲット y を構築する
//
// 一階最適性条件 X^T(X*beta - y) + Σ grad(P_i) = 0 において
// X*beta - y = e であることから、列ごとのスケール alpha は
// alpha = -Σ grad(P_i) / (X0^T * e) で与えられる
func (d *LinearRegressionData) generate(beta *mat.VecDense) (*mat.Dense, *mat.VecDense) {
	n, p := d.x0.Dims()

	start := 0
	if d.intercept {
		start = 1
	}

	// ペナルティ勾配の符号反転和（切片成分はペナルティ対象外）
	betaNI := beta.SliceVec(start, beta.Len())
	grad := mat.NewVecDense(beta.Len()-start, nil)
	for _, pen := range d.penalties {
		grad.SubVec(grad, pen.Grad(betaNI))
	}

	// X0^T * e（切片使用時は先頭行を除外）
	mte := mat.NewVecDense(p, nil)
	mte.MulVec(d.x0.T(), d.e)
	var mteNI mat.Vector = mte
	if d.intercept {
		mteNI = mte.SliceVec(1, p)
	}

	// 列スケール alpha = grad / (X0^T * e)
	// ゼロ除算は IEEE 754 に従い Inf/NaN としてそのまま伝播する
	var alpha mat.VecDense
	alpha.DivElemVec(grad, mteNI)

	// X の構築: 切片列は 1、それ以外はテンプレート列に alpha を掛ける
	x := mat.NewDense(n, p, nil)

	// 並列処理の閾値（この行数以下では逐次処理を使用）
	const parallelThreshold = 1000

	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(startRow, endRow int) {
		for i := startRow; i < endRow; i++ {
			for j := 0; j < p; j++ {
				if j < start {
					x.Set(i, j, 1.0)
				} else {
					x.Set(i, j, d.x0.At(i, j)*alpha.AtVec(j-start))
				}
			}
		}
	})

	// y = X*beta - e
	y := mat.NewVecDense(n, nil)
	y.MulVec(x, beta)
	y.SubVec(y, d.e)

	return x, y
}

// snrScale は ||X(k*beta) * (k*beta)|| / ||e|| が目標 SNR に一致する
// スケール係数 k を求める
//
// 探索区間 [0, snr] から符号変化する区間へ幾何的に拡張した後、
// 二分法で根を求める
func (d *LinearRegressionData) snrScale(beta *mat.VecDense) (float64, error) {
	n, _ := d.x0.Dims()
	eNorm := mat.Norm(d.e, 2)

	// 目的関数: スケール k でのSNRと目標SNRの差
	f := func(k float64) float64 {
		scaled := mat.NewVecDense(beta.Len(), nil)
		scaled.ScaleVec(k, beta)

		x, _ := d.generate(scaled)

		xb := mat.NewVecDense(n, nil)
		xb.MulVec(x, scaled)

		return mat.Norm(xb, 2)/eNorm - d.snr
	}

	low, high, err := optimize.FindBisectInterval(f, 0, d.snr)
	if err != nil {
		return 0, err
	}

	return optimize.Bisect(f, low, high)
}

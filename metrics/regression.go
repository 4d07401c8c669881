// Package metrics はカタログに掲載された評価指標の計算実装を提供します。
// knowledgeパッケージの各Metric.IDに対応する関数がここに定義されています。
package metrics

import (
	"math"

	"github.com/YuminosukeSato/mlref/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// validatePair は回帰指標の入力ペアを検証する
func validatePair(op string, yTrue, yPred *mat.VecDense) (int, error) {
	n := yTrue.Len()
	if n == 0 {
		return 0, errors.NewValueError(op, "empty vector")
	}
	if yPred.Len() != n {
		return 0, errors.NewDimensionError(op, n, yPred.Len(), 0)
	}
	return n, nil
}

// MAE は平均絶対誤差（Mean Absolute Error）を計算する。
// カタログID "mae" に対応する。
func MAE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := validatePair("MAE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	// MAE = (1/n) * Σ|yTrue - yPred|
	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(yTrue.AtVec(i) - yPred.AtVec(i))
	}
	return sum / float64(n), nil
}

// MSE は平均二乗誤差（Mean Squared Error）を計算する。
// カタログID "mse" に対応する。
func MSE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := validatePair("MSE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	// MSE = (1/n) * Σ(yTrue - yPred)²
	var sum float64
	for i := 0; i < n; i++ {
		diff := yTrue.AtVec(i) - yPred.AtVec(i)
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE は平方根平均二乗誤差（Root Mean Squared Error）を計算する。
// カタログID "rmse" に対応する。
func RMSE(yTrue, yPred *mat.VecDense) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// RSquared は決定係数（R-squared）を計算する。
// カタログID "r2" に対応する。
//
// yTrueが定数の場合、指標は定義できないため、UndefinedMetricWarningを
// 発行して0を返す。
func RSquared(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := validatePair("RSquared", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var mean float64
	for i := 0; i < n; i++ {
		mean += yTrue.AtVec(i)
	}
	mean /= float64(n)

	// R² = 1 - SS_res / SS_tot
	var ssRes, ssTot float64
	for i := 0; i < n; i++ {
		res := yTrue.AtVec(i) - yPred.AtVec(i)
		tot := yTrue.AtVec(i) - mean
		ssRes += res * res
		ssTot += tot * tot
	}

	if ssTot == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("R-squared", "constant y_true", 0.0))
		return 0, nil
	}
	return 1 - ssRes/ssTot, nil
}

// MAPE は平均絶対パーセント誤差（Mean Absolute Percentage Error）を計算する。
// カタログID "mape" に対応する。結果は比率（0.10 = 10%）で返す。
//
// yTrueに0が含まれる場合はパーセント誤差が定義できないため、ValueErrorを返す。
func MAPE(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := validatePair("MAPE", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var sum float64
	for i := 0; i < n; i++ {
		actual := yTrue.AtVec(i)
		if actual == 0 {
			return 0, errors.NewValueError("MAPE", "y_true contains zero values")
		}
		sum += math.Abs((actual - yPred.AtVec(i)) / actual)
	}
	return sum / float64(n), nil
}

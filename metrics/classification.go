package metrics

import (
	"sort"

	"github.com/YuminosukeSato/mlref/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ConfusionMatrix は二値分類の混同行列。カタログID "confusion_matrix" に
// 対応し、分類指標の計算の基礎となる。
type ConfusionMatrix struct {
	TP int // 真陽性
	TN int // 真陰性
	FP int // 偽陽性
	FN int // 偽陰性
}

// Total は全サンプル数を返す。
func (c ConfusionMatrix) Total() int {
	return c.TP + c.TN + c.FP + c.FN
}

// Accuracy は正解率を計算する: (TP + TN) / (TP + TN + FP + FN)。
// カタログID "accuracy" に対応する。
// サンプルが存在しない場合はUndefinedMetricWarningを発行して0を返す。
func (c ConfusionMatrix) Accuracy() float64 {
	total := c.Total()
	if total == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("Accuracy", "no samples", 0.0))
		return 0
	}
	return float64(c.TP+c.TN) / float64(total)
}

// Precision は適合率を計算する: TP / (TP + FP)。
// カタログID "precision" に対応する。
// 陽性と予測されたサンプルがない場合はUndefinedMetricWarningを発行して0を返す。
func (c ConfusionMatrix) Precision() float64 {
	if c.TP+c.FP == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("Precision", "no predicted positives", 0.0))
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FP)
}

// Recall は再現率（感度）を計算する: TP / (TP + FN)。
// カタログID "recall" に対応する。
// 実際に陽性のサンプルがない場合はUndefinedMetricWarningを発行して0を返す。
func (c ConfusionMatrix) Recall() float64 {
	if c.TP+c.FN == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("Recall", "no actual positives", 0.0))
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FN)
}

// F1Score はF1スコアを計算する: 2 * (Precision * Recall) / (Precision + Recall)。
// カタログID "f1" に対応する。
// PrecisionとRecallがともに0の場合はUndefinedMetricWarningを発行して0を返す。
func (c ConfusionMatrix) F1Score() float64 {
	p := c.Precision()
	r := c.Recall()
	if p+r == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("F1-Score", "precision and recall are both zero", 0.0))
		return 0
	}
	return 2 * p * r / (p + r)
}

// MatrixFromLabels は二値ラベルのペアから混同行列を構築する。
// ラベルは0または1でなければならない。
func MatrixFromLabels(yTrue, yPred *mat.VecDense) (ConfusionMatrix, error) {
	n, err := validatePair("MatrixFromLabels", yTrue, yPred)
	if err != nil {
		return ConfusionMatrix{}, err
	}

	var c ConfusionMatrix
	for i := 0; i < n; i++ {
		actual := yTrue.AtVec(i)
		predicted := yPred.AtVec(i)
		if (actual != 0 && actual != 1) || (predicted != 0 && predicted != 1) {
			return ConfusionMatrix{}, errors.NewValueError("MatrixFromLabels", "labels must be binary (0 or 1)")
		}
		switch {
		case actual == 1 && predicted == 1:
			c.TP++
		case actual == 0 && predicted == 0:
			c.TN++
		case actual == 0 && predicted == 1:
			c.FP++
		default:
			c.FN++
		}
	}
	return c, nil
}

// Accuracy は二値ラベルのペアから正解率を計算する。
func Accuracy(yTrue, yPred *mat.VecDense) (float64, error) {
	c, err := MatrixFromLabels(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return c.Accuracy(), nil
}

// Precision は二値ラベルのペアから適合率を計算する。
func Precision(yTrue, yPred *mat.VecDense) (float64, error) {
	c, err := MatrixFromLabels(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return c.Precision(), nil
}

// Recall は二値ラベルのペアから再現率を計算する。
func Recall(yTrue, yPred *mat.VecDense) (float64, error) {
	c, err := MatrixFromLabels(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return c.Recall(), nil
}

// F1Score は二値ラベルのペアからF1スコアを計算する。
func F1Score(yTrue, yPred *mat.VecDense) (float64, error) {
	c, err := MatrixFromLabels(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return c.F1Score(), nil
}

// AUC はROC曲線下面積を計算する。カタログID "roc_auc" に対応する。
// yTrueは二値ラベル（0または1）、yPredは任意の実数スコア。
//
// 同点スコアには平均順位を与える（Mann-Whitney U統計量と等価）。
// ラベルが片方のクラスしか含まない場合は指標が定義できないため、
// UndefinedMetricWarningを発行して0.5を返す。
func AUC(yTrue, yPred *mat.VecDense) (float64, error) {
	n, err := validatePair("AUC", yTrue, yPred)
	if err != nil {
		return 0, err
	}

	var nPos, nNeg int
	for i := 0; i < n; i++ {
		switch yTrue.AtVec(i) {
		case 1:
			nPos++
		case 0:
			nNeg++
		default:
			return 0, errors.NewValueError("AUC", "labels must be binary (0 or 1)")
		}
	}

	if nPos == 0 || nNeg == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("ROC-AUC", "only one class present", 0.5))
		return 0.5, nil
	}

	// スコア昇順に並べ、同点には平均順位を割り当てる
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return yPred.AtVec(idx[a]) < yPred.AtVec(idx[b])
	})

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j < n && yPred.AtVec(idx[j]) == yPred.AtVec(idx[i]) {
			j++
		}
		// i..j-1 は同点グループ: 平均順位 (1始まり)
		avgRank := float64(i+j+1) / 2.0
		for k := i; k < j; k++ {
			ranks[idx[k]] = avgRank
		}
		i = j
	}

	var sumRanksPos float64
	for i := 0; i < n; i++ {
		if yTrue.AtVec(i) == 1 {
			sumRanksPos += ranks[i]
		}
	}

	// AUC = (Σranks⁺ - nPos(nPos+1)/2) / (nPos * nNeg)
	u := sumRanksPos - float64(nPos)*float64(nPos+1)/2.0
	return u / (float64(nPos) * float64(nNeg)), nil
}

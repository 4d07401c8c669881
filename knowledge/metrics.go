package knowledge

import (
	"github.com/YuminosukeSato/mlref/pkg/errors"
)

// Metric is one entry in the evaluation metric catalog. Formula is the
// human-readable definition; ID links the entry to its computable
// counterpart in the metrics package (for example ID "rmse" is computed by
// metrics.RMSE).
type Metric struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Formula string `json:"formula"`
}

// String renders the entry as the canonical catalog line, "Name: Formula".
func (m Metric) String() string {
	return m.Name + ": " + m.Formula
}

var classificationMetrics = []Metric{
	{ID: "accuracy", Name: "Accuracy", Formula: "(TP + TN) / (TP + TN + FP + FN)"},
	{ID: "precision", Name: "Precision", Formula: "TP / (TP + FP)"},
	{ID: "recall", Name: "Recall (Sensitivity)", Formula: "TP / (TP + FN)"},
	{ID: "f1", Name: "F1-Score", Formula: "2 * (Precision * Recall) / (Precision + Recall)"},
	{ID: "roc_auc", Name: "ROC-AUC", Formula: "Area under the ROC curve"},
	{ID: "confusion_matrix", Name: "Confusion Matrix", Formula: "Table showing actual vs predicted classifications"},
}

var regressionMetrics = []Metric{
	{ID: "mae", Name: "Mean Absolute Error (MAE)", Formula: "Average of absolute differences"},
	{ID: "mse", Name: "Mean Squared Error (MSE)", Formula: "Average of squared differences"},
	{ID: "rmse", Name: "Root Mean Squared Error (RMSE)", Formula: "Square root of MSE"},
	{ID: "r2", Name: "R-squared", Formula: "Proportion of variance explained by the model"},
	{ID: "mape", Name: "Mean Absolute Percentage Error (MAPE)", Formula: "Percentage-based error metric"},
}

// ClassificationMetrics returns the classification metric entries in
// catalog order.
func ClassificationMetrics() []Metric {
	out := make([]Metric, len(classificationMetrics))
	copy(out, classificationMetrics)
	return out
}

// RegressionMetrics returns the regression metric entries in catalog order.
func RegressionMetrics() []Metric {
	out := make([]Metric, len(regressionMetrics))
	copy(out, regressionMetrics)
	return out
}

// MetricByID looks up a metric entry by its ID, for example "rmse".
// Classification and regression metrics share one ID namespace.
func MetricByID(id string) (Metric, error) {
	for _, m := range classificationMetrics {
		if m.ID == id {
			return m, nil
		}
	}
	for _, m := range regressionMetrics {
		if m.ID == id {
			return m, nil
		}
	}
	return Metric{}, errors.NewNotFoundError("metric", id)
}

package knowledge

import (
	"github.com/YuminosukeSato/mlref/pkg/errors"
)

// Concept is one key ML concept explanation, carried as retrievable data
// so that downstream indexers can reach the text without parsing Go
// source. The same explanations are attached to the Explain* functions as
// documentation.
type Concept struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Points []string `json:"points"`
}

var concepts = []Concept{
	{
		ID:   "bias_variance_tradeoff",
		Name: "Bias-Variance Tradeoff",
		Points: []string{
			"High Bias: Model is too simple, underfits the data",
			"High Variance: Model is too complex, overfits the data",
			"Goal: Find the sweet spot that minimizes total error",
		},
	},
	{
		ID:   "cross_validation",
		Name: "Cross-Validation",
		Points: []string{
			"Technique to assess model performance and generalization",
			"K-fold CV: Split data into k folds, train on k-1, test on 1",
			"Helps detect overfitting and select hyperparameters",
			"Common values: 5-fold or 10-fold cross-validation",
		},
	},
	{
		ID:   "feature_engineering",
		Name: "Feature Engineering",
		Points: []string{
			"Process of selecting and transforming variables for ML models",
			"Techniques: normalization, encoding categorical variables, creating interaction terms, polynomial features",
			"Often more important than algorithm choice for performance",
			"Domain knowledge is crucial for effective feature engineering",
		},
	},
}

// Concepts returns the key concept explanations in catalog order.
func Concepts() []Concept {
	out := make([]Concept, len(concepts))
	for i, c := range concepts {
		out[i] = c
		out[i].Points = cloneStrings(c.Points)
	}
	return out
}

// ConceptByID looks up a concept by its ID, for example "cross_validation".
func ConceptByID(id string) (Concept, error) {
	for _, c := range concepts {
		if c.ID == id {
			c.Points = cloneStrings(c.Points)
			return c, nil
		}
	}
	return Concept{}, errors.NewNotFoundError("concept", id)
}

// ExplainBiasVarianceTradeoff is a documentation-only placeholder.
//
// Bias-Variance Tradeoff:
//   - High Bias: Model is too simple, underfits the data
//   - High Variance: Model is too complex, overfits the data
//   - Goal: Find the sweet spot that minimizes total error
//
// Calling it has no effect; the same text is available as data through
// ConceptByID("bias_variance_tradeoff").
func ExplainBiasVarianceTradeoff() {}

// ExplainCrossValidation is a documentation-only placeholder.
//
// Cross-Validation:
//   - Technique to assess model performance and generalization
//   - K-fold CV: Split data into k folds, train on k-1, test on 1
//   - Helps detect overfitting and select hyperparameters
//   - Common values: 5-fold or 10-fold cross-validation
//
// Calling it has no effect; the same text is available as data through
// ConceptByID("cross_validation"). The validation package implements the
// splits this concept describes.
func ExplainCrossValidation() {}

// ExplainFeatureEngineering is a documentation-only placeholder.
//
// Feature Engineering:
//   - Process of selecting and transforming variables for ML models
//   - Techniques: normalization, encoding categorical variables,
//     creating interaction terms, polynomial features
//   - Often more important than algorithm choice for performance
//   - Domain knowledge is crucial for effective feature engineering
//
// Calling it has no effect; the same text is available as data through
// ConceptByID("feature_engineering").
func ExplainFeatureEngineering() {}

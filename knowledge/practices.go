package knowledge

var bestPractices = []string{
	"Start with simple models before trying complex ones",
	"Always split data into train/validation/test sets",
	"Use cross-validation for model selection",
	"Monitor for data leakage and overfitting",
	"Document your experiments and results",
	"Consider ethical implications and bias in your models",
	"Plan for model deployment and monitoring in production",
	"Continuously retrain models as new data becomes available",
}

// BestPractices returns the cataloged recommendations for ML projects,
// in order of priority.
func BestPractices() []string {
	return cloneStrings(bestPractices)
}

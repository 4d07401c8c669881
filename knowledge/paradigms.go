// Package knowledge holds the machine learning reference catalog: learning
// paradigms, the Python ML ecosystem, evaluation metrics, project best
// practices, and key concept explanations.
//
// All content is fixed at build time. Accessors return deep copies, so the
// catalog behaves as read-only data: any number of concurrent readers may
// use it without coordination, and mutating a returned value never affects
// later calls.
package knowledge

import (
	"github.com/YuminosukeSato/mlref/pkg/errors"
)

// Paradigm describes one machine learning paradigm: what it is, which
// algorithms belong to it, and where it is applied.
//
// Not every list is populated for every paradigm. Supervised and
// unsupervised learning carry Algorithms and UseCases; reinforcement
// learning carries KeyConcepts and Applications instead of UseCases.
// Empty lists stay nil.
type Paradigm struct {
	Name         string   `json:"name"`
	Definition   string   `json:"definition"`
	KeyConcepts  []string `json:"key_concepts,omitempty"`
	Algorithms   []string `json:"algorithms,omitempty"`
	UseCases     []string `json:"use_cases,omitempty"`
	Applications []string `json:"applications,omitempty"`
}

var supervisedLearning = Paradigm{
	Name:       "Supervised Learning",
	Definition: "Learning with labeled training data",
	Algorithms: []string{
		"Linear Regression",
		"Logistic Regression",
		"Decision Trees",
		"Random Forest",
		"Support Vector Machines (SVM)",
		"Neural Networks",
	},
	UseCases: []string{
		"Image classification",
		"Spam detection",
		"Price prediction",
		"Medical diagnosis",
	},
}

var unsupervisedLearning = Paradigm{
	Name:       "Unsupervised Learning",
	Definition: "Finding patterns in data without labels",
	Algorithms: []string{
		"K-means Clustering",
		"Hierarchical Clustering",
		"Principal Component Analysis (PCA)",
		"DBSCAN",
		"Gaussian Mixture Models",
	},
	UseCases: []string{
		"Customer segmentation",
		"Anomaly detection",
		"Market basket analysis",
		"Dimensionality reduction",
	},
}

var reinforcementLearning = Paradigm{
	Name:       "Reinforcement Learning",
	Definition: "Learning through interaction with environment",
	KeyConcepts: []string{
		"Agent and Environment",
		"States, Actions, and Rewards",
		"Policy and Value Functions",
		"Exploration vs Exploitation",
	},
	Algorithms: []string{
		"Q-Learning",
		"Deep Q-Networks (DQN)",
		"Policy Gradient Methods",
		"Actor-Critic Methods",
	},
	Applications: []string{
		"Game playing (Chess, Go)",
		"Autonomous vehicles",
		"Robot control",
		"Trading strategies",
	},
}

// SupervisedLearning returns the supervised learning paradigm entry.
func SupervisedLearning() Paradigm {
	return supervisedLearning.clone()
}

// UnsupervisedLearning returns the unsupervised learning paradigm entry.
func UnsupervisedLearning() Paradigm {
	return unsupervisedLearning.clone()
}

// ReinforcementLearning returns the reinforcement learning paradigm entry.
func ReinforcementLearning() Paradigm {
	return reinforcementLearning.clone()
}

// Paradigms returns all paradigm entries in catalog order:
// supervised, unsupervised, reinforcement.
func Paradigms() []Paradigm {
	return []Paradigm{
		supervisedLearning.clone(),
		unsupervisedLearning.clone(),
		reinforcementLearning.clone(),
	}
}

// ParadigmByName looks up a paradigm by its display name, for example
// "Supervised Learning". The match is exact.
func ParadigmByName(name string) (Paradigm, error) {
	for _, p := range []*Paradigm{&supervisedLearning, &unsupervisedLearning, &reinforcementLearning} {
		if p.Name == name {
			return p.clone(), nil
		}
	}
	return Paradigm{}, errors.NewNotFoundError("paradigm", name)
}

func (p Paradigm) clone() Paradigm {
	c := p
	c.KeyConcepts = cloneStrings(p.KeyConcepts)
	c.Algorithms = cloneStrings(p.Algorithms)
	c.UseCases = cloneStrings(p.UseCases)
	c.Applications = cloneStrings(p.Applications)
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

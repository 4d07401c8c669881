package knowledge

import (
	"github.com/YuminosukeSato/mlref/pkg/errors"
)

// Library is one entry in the Python ML ecosystem catalog.
type Library struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalog order matters: downstream renderings list the ecosystem in this
// exact sequence.
var pythonMLEcosystem = []Library{
	{Name: "scikit-learn", Description: "General-purpose ML library with many algorithms"},
	{Name: "pandas", Description: "Data manipulation and analysis"},
	{Name: "numpy", Description: "Numerical computing with arrays"},
	{Name: "matplotlib/seaborn", Description: "Data visualization"},
	{Name: "tensorflow", Description: "Deep learning framework by Google"},
	{Name: "pytorch", Description: "Deep learning framework by Meta"},
	{Name: "xgboost", Description: "Gradient boosting framework"},
	{Name: "lightgbm", Description: "Fast gradient boosting by Microsoft"},
}

// PythonMLEcosystem returns the cataloged Python ML libraries in order.
func PythonMLEcosystem() []Library {
	out := make([]Library, len(pythonMLEcosystem))
	copy(out, pythonMLEcosystem)
	return out
}

// LibraryByName looks up an ecosystem entry by library name, for example
// "scikit-learn". The match is exact.
func LibraryByName(name string) (Library, error) {
	for _, l := range pythonMLEcosystem {
		if l.Name == name {
			return l, nil
		}
	}
	return Library{}, errors.NewNotFoundError("library", name)
}

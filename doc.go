// Package mlref provides a machine learning reference catalog for Go,
// designed as fixed, read-only content for documentation tooling and
// retrieval pipelines.
//
// The catalog covers learning paradigms (supervised, unsupervised,
// reinforcement) with their algorithms and applications, the Python ML
// ecosystem, classification and regression evaluation metrics, and best
// practices for ML projects. Every metric formula the catalog states has
// a computable counterpart, so the reference text and the math stay in
// agreement.
//
// # Features
//
// - Immutable Content: accessors return copies, safe for concurrent readers
// - Canonical Text: deterministic document rendering with round-trip parsing
// - Computable Metrics: every cataloged formula backed by an implementation
// - Robust Error Handling: structured errors with stack traces
//
// # Installation
//
// Install mlref using go get:
//
//	go get github.com/YuminosukeSato/mlref
//
// # Quick Start
//
// Here's a simple example of rendering the catalog and computing one of
// its metrics:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/mlref/knowledge"
//	    "github.com/YuminosukeSato/mlref/metrics"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    // Render the canonical reference document
//	    doc := knowledge.BuildDocument()
//	    fmt.Println(doc.Render())
//
//	    // Compute a cataloged metric
//	    yTrue := mat.NewVecDense(4, []float64{1, 1, 0, 0})
//	    yPred := mat.NewVecDense(4, []float64{1, 0, 0, 1})
//	    acc, err := metrics.Accuracy(yTrue, yPred)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("Accuracy:", acc)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - knowledge: the reference catalog and its canonical document form
//   - metrics: computable counterparts of the cataloged evaluation metrics
//   - validation: train/test splitting and k-fold cross-validation
//   - pkg/errors: structured error types and warnings
//   - pkg/log: structured logging built on log/slog
package mlref

// Package log defines standard attribute keys for catalog operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in mlref. Using these standard keys enables better
// log analysis, monitoring, and debugging of catalog consumers.
//
// The attributes are organized into categories:
//   - Catalog and Operation Context
//   - Document Characteristics
//   - Metric Context
//
// These keys follow a hierarchical naming convention (e.g., "catalog.section",
// "doc.bytes") to enable structured log analysis and filtering.

package log

// Catalog and Operation Context
// These attributes identify the catalog area and operation being performed.
const (
	// ComponentKey identifies which package is performing the operation.
	// Examples: "knowledge", "metrics", "validation"
	ComponentKey = "catalog.component"

	// OperationKey specifies the catalog operation being performed.
	// Standard values: "render", "parse", "lookup", "marshal"
	OperationKey = "catalog.operation"

	// SectionKey names the document section involved in the operation.
	// Examples: "Machine Learning Types", "Model Evaluation Metrics"
	SectionKey = "catalog.section"

	// KeyKey holds the lookup key on catalog queries.
	// Examples: "Supervised Learning", "scikit-learn", "rmse"
	KeyKey = "catalog.key"
)

// Document Characteristics
// These attributes describe the rendered or parsed document.
const (
	// DocumentBytesKey is the size of the rendered document in bytes.
	DocumentBytesKey = "doc.bytes"

	// SectionCountKey is the number of sections in the document.
	SectionCountKey = "doc.sections"

	// LineKey is a 1-based line number within the document text.
	// Used when reporting parse progress or failures.
	LineKey = "doc.line"
)

// Metric Context
// These attributes describe metric computations backing the catalog entries.
const (
	// MetricKey identifies the metric being computed.
	// Examples: "accuracy", "precision", "rmse", "mape"
	MetricKey = "metric.name"

	// SamplesKey is the number of samples in the metric input.
	SamplesKey = "metric.samples"

	// FoldsKey is the number of folds in a cross-validation split.
	FoldsKey = "cv.folds"
)

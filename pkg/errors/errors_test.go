package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewNotFoundError(t *testing.T) {
	tests := []struct {
		name    string
		catalog string
		key     string
		wantMsg string
	}{
		{
			name:    "unknown paradigm",
			catalog: "paradigm",
			key:     "Quantum Learning",
			wantMsg: `mlref: no paradigm named "Quantum Learning" in the catalog`,
		},
		{
			name:    "unknown metric",
			catalog: "metric",
			key:     "brier",
			wantMsg: `mlref: no metric named "brier" in the catalog`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotFoundError(tt.catalog, tt.key)
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}

			var nfe *NotFoundError
			if !As(err, &nfe) {
				t.Fatal("error should unwrap to *NotFoundError")
			}
			if nfe.Catalog != tt.catalog || nfe.Key != tt.key {
				t.Errorf("unwrapped fields = (%q, %q), want (%q, %q)", nfe.Catalog, nfe.Key, tt.catalog, tt.key)
			}

			// WithStackによりスタックトレースが付与されていること
			if !strings.Contains(fmt.Sprintf("%+v", err), "errors_test.go") {
				t.Error("expected a stack trace referencing this test file")
			}
		})
	}
}

func TestNewFormatError(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		line    int
		reason  string
		wantMsg string
	}{
		{
			name:    "with line number",
			op:      "Parse",
			line:    12,
			reason:  "unexpected list item outside a section",
			wantMsg: "mlref: Parse: line 12: unexpected list item outside a section",
		},
		{
			name:    "without line number",
			op:      "Parse",
			line:    0,
			reason:  "missing document title",
			wantMsg: "mlref: Parse: missing document title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewFormatError(tt.op, tt.line, tt.reason)
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("MAE", 5, 3, 0)
	want := "mlref: MAE: dimension mismatch on axis 0 (rows). Expected 5, got 3"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var de *DimensionError
	if !As(err, &de) {
		t.Fatal("error should unwrap to *DimensionError")
	}
	if de.Expected != 5 || de.Got != 3 {
		t.Errorf("unwrapped fields = (%d, %d), want (5, 3)", de.Expected, de.Got)
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("TrainTestSplit", "testFraction must be in (0, 1)")
	want := "mlref: TrainTestSplit: testFraction must be in (0, 1)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestUndefinedMetricWarning(t *testing.T) {
	w := NewUndefinedMetricWarning("Precision", "no predicted positives", 0.0)
	msg := w.Error()
	if !strings.Contains(msg, "Precision") || !strings.Contains(msg, "ill-defined") {
		t.Errorf("unexpected warning message: %q", msg)
	}
}

func TestWarnHandler(t *testing.T) {
	var captured []error
	SetWarningHandler(func(w error) {
		captured = append(captured, w)
	})
	defer SetWarningHandler(nil)

	w := NewUndefinedMetricWarning("Recall", "no actual positives", 0.0)
	Warn(w)
	Warn(w)

	if len(captured) != 2 {
		t.Fatalf("captured %d warnings, want 2", len(captured))
	}
	if captured[0] != w {
		t.Error("handler received a different warning value")
	}
}

func TestWrapPreservesType(t *testing.T) {
	base := NewNotFoundError("library", "keras")
	wrapped := Wrap(base, "loading ecosystem entry")

	var nfe *NotFoundError
	if !As(wrapped, &nfe) {
		t.Fatal("wrapping should preserve the concrete error type")
	}
	if !Is(wrapped, base) {
		t.Error("wrapped error should match the base error with Is")
	}
}

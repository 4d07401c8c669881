package knowledge

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/YuminosukeSato/mlref/pkg/errors"
)

func TestRenderMatchesGolden(t *testing.T) {
	golden, err := os.ReadFile(filepath.Join("testdata", "machine_learning_basics.md"))
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}

	got := BuildDocument().Render()
	if got != string(golden) {
		t.Errorf("Render() does not match the golden document.\ngot:\n%s\nwant:\n%s", got, golden)
	}
}

// Renderは呼び出しごとにバイト単位で同一の出力を返すこと
func TestRenderIsByteStable(t *testing.T) {
	first := BuildDocument().Render()
	for i := 0; i < 5; i++ {
		if got := BuildDocument().Render(); got != first {
			t.Fatalf("Render() output changed on call %d", i+2)
		}
	}
}

func TestRenderParseRoundTrip(t *testing.T) {
	doc := BuildDocument()

	parsed, err := Parse(doc.Render())
	if err != nil {
		t.Fatalf("Parse failed on canonical output: %v", err)
	}
	if !reflect.DeepEqual(parsed, doc) {
		t.Errorf("round trip mismatch:\nparsed: %+v\nbuilt:  %+v", parsed, doc)
	}

	// 再レンダリングもバイト単位で一致すること
	if parsed.Render() != doc.Render() {
		t.Error("re-rendering the parsed document changed the bytes")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	doc := BuildDocument()

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var back Document
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(back, doc) {
		t.Errorf("JSON round trip mismatch:\nback: %+v\ndoc:  %+v", back, doc)
	}
}

func TestDocumentStructure(t *testing.T) {
	doc := BuildDocument()

	if doc.Title != DocumentTitle {
		t.Errorf("Title = %q, want %q", doc.Title, DocumentTitle)
	}

	wantHeadings := []string{
		"Machine Learning Types",
		"Key ML Concepts",
		"Python ML Ecosystem",
		"Model Evaluation Metrics",
		"Best Practices for ML Projects",
	}
	if len(doc.Sections) != len(wantHeadings) {
		t.Fatalf("len(Sections) = %d, want %d", len(doc.Sections), len(wantHeadings))
	}
	for i, want := range wantHeadings {
		if doc.Sections[i].Heading != want {
			t.Errorf("Sections[%d].Heading = %q, want %q", i, doc.Sections[i].Heading, want)
		}
	}

	types := doc.Sections[0]
	if len(types.Subsections) != 3 {
		t.Fatalf("Machine Learning Types has %d subsections, want 3", len(types.Subsections))
	}
	if types.Subsections[2].Lists[0].Label != "Key Concepts" {
		t.Errorf("reinforcement learning first list label = %q, want %q",
			types.Subsections[2].Lists[0].Label, "Key Concepts")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{
			name:     "item before any section",
			input:    "# Title\n\n- stray item\n",
			wantLine: 3,
		},
		{
			name:     "subsection before section",
			input:    "# Title\n\n### Sub\n",
			wantLine: 3,
		},
		{
			name:     "content before title",
			input:    "some text\n# Title\n",
			wantLine: 1,
		},
		{
			name:     "duplicate title",
			input:    "# One\n\n# Two\n",
			wantLine: 3,
		},
		{
			name:     "labeled list outside a section",
			input:    "# Title\n\nAlgorithms:\n",
			wantLine: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatal("expected a parse error")
			}

			var fe *errors.FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("error type = %T, want *errors.FormatError", err)
			}
			if fe.Line != tt.wantLine {
				t.Errorf("FormatError.Line = %d, want %d", fe.Line, tt.wantLine)
			}
		})
	}
}

func TestParseEmptyDocument(t *testing.T) {
	for _, input := range []string{"", "   \n\n  "} {
		_, err := Parse(input)
		if !errors.Is(err, errors.ErrEmptyDocument) {
			t.Errorf("Parse(%q) error = %v, want ErrEmptyDocument", input, err)
		}
	}
}

func TestParseMissingTitle(t *testing.T) {
	_, err := Parse("## Section Without Title\n\n- item\n")
	var fe *errors.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("error type = %T, want *errors.FormatError", err)
	}
	if fe.Line != 0 {
		t.Errorf("FormatError.Line = %d, want 0", fe.Line)
	}
	if !strings.Contains(fe.Reason, "missing document title") {
		t.Errorf("Reason = %q", fe.Reason)
	}
}

func BenchmarkRender(b *testing.B) {
	doc := BuildDocument()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = doc.Render()
	}
}

func BenchmarkParse(b *testing.B) {
	text := BuildDocument().Render()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(text); err != nil {
			b.Fatal(err)
		}
	}
}

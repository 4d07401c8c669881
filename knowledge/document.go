package knowledge

import (
	"strings"

	"github.com/YuminosukeSato/mlref/pkg/errors"
)

// Document is the whole catalog assembled as one ordered document. It is
// the unit a downstream retrieval system indexes: Render produces the
// canonical text, Parse reads it back, and the JSON tags give a
// structured export with the same shape.
type Document struct {
	Title    string    `json:"title"`
	Preamble string    `json:"preamble,omitempty"`
	Sections []Section `json:"sections"`
}

// Section is one document section. Content blocks render in a fixed
// order: paragraphs, then labeled lists, then plain items, then
// subsections. Subsections never nest further.
type Section struct {
	Heading     string        `json:"heading"`
	Paragraphs  []string      `json:"paragraphs,omitempty"`
	Lists       []LabeledList `json:"lists,omitempty"`
	Items       []string      `json:"items,omitempty"`
	Subsections []Section     `json:"subsections,omitempty"`
}

// LabeledList is a list block introduced by a label line, such as
// "Algorithms:" followed by its entries.
type LabeledList struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

// DocumentTitle is the canonical document title.
const DocumentTitle = "Machine Learning Fundamentals and Common Algorithms"

const documentPreamble = "This document covers the basics of machine learning, including key concepts, algorithms, and practical applications."

// BuildDocument assembles the full catalog into its canonical document
// form. The result is freshly built on every call and safe to modify.
func BuildDocument() Document {
	doc := Document{
		Title:    DocumentTitle,
		Preamble: documentPreamble,
	}

	types := Section{Heading: "Machine Learning Types"}
	for _, p := range Paradigms() {
		sub := Section{
			Heading:    p.Name,
			Paragraphs: []string{"Definition: " + p.Definition},
		}
		for _, l := range []LabeledList{
			{Label: "Key Concepts", Items: p.KeyConcepts},
			{Label: "Algorithms", Items: p.Algorithms},
			{Label: "Use Cases", Items: p.UseCases},
			{Label: "Applications", Items: p.Applications},
		} {
			if len(l.Items) > 0 {
				sub.Lists = append(sub.Lists, l)
			}
		}
		types.Subsections = append(types.Subsections, sub)
	}
	doc.Sections = append(doc.Sections, types)

	conceptsSec := Section{Heading: "Key ML Concepts"}
	for _, c := range Concepts() {
		conceptsSec.Subsections = append(conceptsSec.Subsections, Section{
			Heading: c.Name,
			Items:   c.Points,
		})
	}
	doc.Sections = append(doc.Sections, conceptsSec)

	eco := Section{Heading: "Python ML Ecosystem"}
	for _, l := range PythonMLEcosystem() {
		eco.Items = append(eco.Items, l.Name+": "+l.Description)
	}
	doc.Sections = append(doc.Sections, eco)

	metricsSec := Section{Heading: "Model Evaluation Metrics"}
	classification := Section{Heading: "Classification Metrics"}
	for _, m := range ClassificationMetrics() {
		classification.Items = append(classification.Items, m.String())
	}
	regression := Section{Heading: "Regression Metrics"}
	for _, m := range RegressionMetrics() {
		regression.Items = append(regression.Items, m.String())
	}
	metricsSec.Subsections = []Section{classification, regression}
	doc.Sections = append(doc.Sections, metricsSec)

	doc.Sections = append(doc.Sections, Section{
		Heading: "Best Practices for ML Projects",
		Items:   BestPractices(),
	})

	return doc
}

// Render produces the canonical markdown text for the document. The
// output is deterministic: the same document always renders to the same
// bytes, so downstream indexers can treat the text as a stable artifact.
func (d Document) Render() string {
	var b strings.Builder
	b.WriteString("# " + d.Title + "\n")
	if d.Preamble != "" {
		b.WriteString("\n" + d.Preamble + "\n")
	}
	for _, s := range d.Sections {
		b.WriteString("\n## " + s.Heading + "\n")
		renderBody(&b, s)
		for _, sub := range s.Subsections {
			b.WriteString("\n### " + sub.Heading + "\n")
			renderBody(&b, sub)
		}
	}
	return b.String()
}

func renderBody(b *strings.Builder, s Section) {
	for _, p := range s.Paragraphs {
		b.WriteString("\n" + p + "\n")
	}
	for _, l := range s.Lists {
		b.WriteString("\n" + l.Label + ":\n")
		for _, it := range l.Items {
			b.WriteString("- " + it + "\n")
		}
	}
	if len(s.Items) > 0 {
		b.WriteString("\n")
		for _, it := range s.Items {
			b.WriteString("- " + it + "\n")
		}
	}
}

// Parse reads canonical document text back into a Document. It is the
// inverse of Render: for any document d, Parse(d.Render()) returns a
// value equal to d. Malformed input yields a FormatError carrying the
// offending line number.
func Parse(text string) (Document, error) {
	if strings.TrimSpace(text) == "" {
		return Document{}, errors.ErrEmptyDocument
	}

	var doc Document
	var cur *Section        // current ## section
	var target *Section     // section or subsection receiving content
	var openList *LabeledList

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		n := i + 1
		switch {
		case line == "":
			openList = nil

		case strings.HasPrefix(line, "### "):
			if cur == nil {
				return Document{}, errors.NewFormatError("Parse", n, "subsection before any section")
			}
			cur.Subsections = append(cur.Subsections, Section{Heading: strings.TrimPrefix(line, "### ")})
			target = &cur.Subsections[len(cur.Subsections)-1]
			openList = nil

		case strings.HasPrefix(line, "## "):
			doc.Sections = append(doc.Sections, Section{Heading: strings.TrimPrefix(line, "## ")})
			cur = &doc.Sections[len(doc.Sections)-1]
			target = cur
			openList = nil

		case strings.HasPrefix(line, "# "):
			if doc.Title != "" {
				return Document{}, errors.NewFormatError("Parse", n, "duplicate document title")
			}
			doc.Title = strings.TrimPrefix(line, "# ")

		case strings.HasPrefix(line, "- "):
			item := strings.TrimPrefix(line, "- ")
			switch {
			case openList != nil:
				openList.Items = append(openList.Items, item)
			case target != nil:
				target.Items = append(target.Items, item)
			default:
				return Document{}, errors.NewFormatError("Parse", n, "unexpected list item outside a section")
			}

		case strings.HasSuffix(line, ":"):
			if target == nil {
				return Document{}, errors.NewFormatError("Parse", n, "labeled list outside a section")
			}
			target.Lists = append(target.Lists, LabeledList{Label: strings.TrimSuffix(line, ":")})
			openList = &target.Lists[len(target.Lists)-1]

		default:
			if doc.Title == "" {
				return Document{}, errors.NewFormatError("Parse", n, "missing document title")
			}
			if target == nil {
				if doc.Preamble == "" {
					doc.Preamble = line
				} else {
					doc.Preamble += " " + line
				}
			} else {
				target.Paragraphs = append(target.Paragraphs, line)
			}
		}
	}

	if doc.Title == "" {
		return Document{}, errors.NewFormatError("Parse", 0, "missing document title")
	}
	return doc, nil
}

// Package renderer composes analytics reports into a structured document
// model and renders it to Markdown or HTML. All rendering is a pure,
// stateless function of the document: the two output formats share the same
// intermediate representation and never recompute a metric.
package renderer

// Document is the structured intermediate representation of a report:
// a title, metadata lines, and a list of sections.
type Document struct {
	Title    string
	Meta     []string // free metadata lines rendered under the title
	Sections []Section
	Footer   string
}

// Section is a titled group of blocks.
type Section struct {
	Heading string
	Blocks  []Block
}

// Block is one renderable element of a section.
type Block interface{ isBlock() }

// Paragraph is a plain narrative block.
type Paragraph string

// Table is a header plus rows of pre-formatted cells.
type Table struct {
	Header []string
	Rows   [][]string
}

// Bullets is an unordered list.
type Bullets []string

func (Paragraph) isBlock() {}
func (Table) isBlock()     {}
func (Bullets) isBlock()   {}

// section is a small helper to build a section from blocks, skipping nils.
func section(heading string, blocks ...Block) Section {
	s := Section{Heading: heading}
	for _, b := range blocks {
		if b != nil {
			s.Blocks = append(s.Blocks, b)
		}
	}
	return s
}

package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
)

// Markdown renders the document to plain structured markup.
func Markdown(d *Document) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(d.Title)
	for _, m := range d.Meta {
		doc.PlainText(fmt.Sprintf("_%s_", m))
	}
	for _, s := range d.Sections {
		doc.H2(s.Heading)
		for _, b := range s.Blocks {
			switch v := b.(type) {
			case Paragraph:
				doc.PlainText(string(v))
			case Table:
				doc.Table(md.TableSet{Header: v.Header, Rows: v.Rows})
			case Bullets:
				doc.BulletList(v...)
			}
		}
	}
	if d.Footer != "" {
		doc.HorizontalRule()
		doc.PlainText(fmt.Sprintf("_%s_", d.Footer))
	}
	return doc.String()
}

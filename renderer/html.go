package renderer

import (
	"fmt"
	"html"
	"strings"
)

// htmlStyle is the embedded stylesheet of the hypertext form, kept minimal
// for browser-based viewing of published reports.
const htmlStyle = `body {
  font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
  max-width: 900px;
  margin: 2rem auto;
  padding: 0 1rem;
  line-height: 1.6;
  color: #333;
}
table { border-collapse: collapse; width: 100%; margin: 1rem 0; }
th, td { border: 1px solid #ddd; padding: 0.5rem; text-align: left; }
th { background: #f0f0f0; }
.meta { color: #777; font-style: italic; }
footer { margin-top: 2rem; border-top: 1px solid #ddd; color: #777; font-style: italic; }`

// HTML renders the document to a styled standalone hypertext page. It is an
// independent adapter over the same document model as Markdown: the two
// never share formatting logic, only the computed content.
func HTML(d *Document) string {
	var b strings.Builder
	esc := html.EscapeString

	fmt.Fprintf(&b, "<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	fmt.Fprintf(&b, "<meta charset=\"UTF-8\">\n")
	fmt.Fprintf(&b, "<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n<style>\n%s\n</style>\n</head>\n<body>\n", esc(d.Title), htmlStyle)

	fmt.Fprintf(&b, "<h1>%s</h1>\n", esc(d.Title))
	for _, m := range d.Meta {
		fmt.Fprintf(&b, "<p class=\"meta\">%s</p>\n", esc(m))
	}
	for _, s := range d.Sections {
		fmt.Fprintf(&b, "<h2>%s</h2>\n", esc(s.Heading))
		for _, blk := range s.Blocks {
			switch v := blk.(type) {
			case Paragraph:
				fmt.Fprintf(&b, "<p>%s</p>\n", esc(string(v)))
			case Table:
				b.WriteString("<table>\n<tr>")
				for _, h := range v.Header {
					fmt.Fprintf(&b, "<th>%s</th>", esc(h))
				}
				b.WriteString("</tr>\n")
				for _, row := range v.Rows {
					b.WriteString("<tr>")
					for _, cell := range row {
						fmt.Fprintf(&b, "<td>%s</td>", esc(cell))
					}
					b.WriteString("</tr>\n")
				}
				b.WriteString("</table>\n")
			case Bullets:
				b.WriteString("<ul>\n")
				for _, item := range v {
					fmt.Fprintf(&b, "<li>%s</li>\n", esc(item))
				}
				b.WriteString("</ul>\n")
			}
		}
	}
	if d.Footer != "" {
		fmt.Fprintf(&b, "<footer>%s</footer>\n", esc(d.Footer))
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

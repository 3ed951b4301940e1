package render

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// WriteHTML encodes the document tree as a self-contained HTML page with
// inline styling derived from the variant theme. Markup stays flat and
// table-light so automated resume screeners can read it. All user content is
// escaped.
func WriteHTML(w io.Writer, doc *Document) error {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + html.EscapeString(doc.Header.Name) + "</title>\n")
	b.WriteString("<style>\n" + themeCSS(doc.Theme) + "</style>\n</head>\n<body>\n")
	b.WriteString("<div class=\"resume\">\n")

	b.WriteString("<header>\n<h1>" + html.EscapeString(doc.Header.Name) + "</h1>\n")
	if doc.Header.ContactLine != "" {
		b.WriteString("<p class=\"contact\">" + html.EscapeString(doc.Header.ContactLine) + "</p>\n")
	}
	b.WriteString("</header>\n")

	for _, section := range doc.Sections {
		writeSection(&b, doc.Theme, section)
	}

	b.WriteString("</div>\n</body>\n</html>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// HTML returns the encoded page as a string.
func (d *Document) HTML() string {
	var b strings.Builder
	// strings.Builder writes never fail.
	_ = WriteHTML(&b, d)
	return b.String()
}

func writeSection(b *strings.Builder, theme Theme, section Section) {
	title := section.Title
	if theme.UppercaseHeadings {
		title = strings.ToUpper(title)
	}
	b.WriteString("<section>\n<h2>" + html.EscapeString(title) + "</h2>\n")

	if section.Columns == 2 {
		writeGrid(b, section.Entries)
		b.WriteString("</section>\n")
		return
	}

	for _, entry := range section.Entries {
		writeEntry(b, entry)
	}
	b.WriteString("</section>\n")
}

func writeEntry(b *strings.Builder, entry Entry) {
	b.WriteString("<div class=\"entry\">\n")
	if entry.Heading != "" || entry.Dates != "" {
		b.WriteString("<div class=\"entry-head\">")
		if entry.Heading != "" {
			b.WriteString("<span class=\"heading\">" + html.EscapeString(entry.Heading) + "</span>")
		}
		if entry.Dates != "" {
			b.WriteString("<span class=\"dates\">" + html.EscapeString(entry.Dates) + "</span>")
		}
		b.WriteString("</div>\n")
	}
	if entry.Subheading != "" {
		b.WriteString("<div class=\"subheading\">" + html.EscapeString(entry.Subheading) + "</div>\n")
	}
	for _, line := range entry.Lines {
		b.WriteString("<p>" + html.EscapeString(line) + "</p>\n")
	}
	b.WriteString("</div>\n")
}

// writeGrid lays entries out two per row, category label leading each cell.
func writeGrid(b *strings.Builder, entries []Entry) {
	b.WriteString("<table class=\"grid\">\n")
	for i := 0; i < len(entries); i += 2 {
		b.WriteString("<tr>")
		writeGridCell(b, entries[i])
		if i+1 < len(entries) {
			writeGridCell(b, entries[i+1])
		} else {
			b.WriteString("<td></td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")
}

func writeGridCell(b *strings.Builder, entry Entry) {
	b.WriteString("<td><strong>" + html.EscapeString(entry.Heading) + ":</strong> ")
	b.WriteString(html.EscapeString(strings.Join(entry.Lines, " ")))
	b.WriteString("</td>")
}

func themeCSS(theme Theme) string {
	headingColor := theme.TextColor
	if theme.AccentColor != "" {
		headingColor = theme.AccentColor
	}

	var b strings.Builder
	fmt.Fprintf(&b, "body { font-family: %s; font-size: %dpt; color: %s; margin: 0; }\n",
		theme.FontFamily, theme.BaseSizePt, theme.TextColor)
	b.WriteString(".resume { max-width: 7.5in; margin: 0 auto; padding: 0.5in; }\n")
	fmt.Fprintf(&b, "header { text-align: %s; margin-bottom: 14pt; }\n", theme.HeaderAlign)
	fmt.Fprintf(&b, "h1 { font-size: %dpt; margin: 0; }\n", theme.BaseSizePt+10)
	b.WriteString(".contact { margin: 2pt 0 0 0; }\n")
	fmt.Fprintf(&b, "h2 { font-size: %dpt; color: %s; margin: 10pt 0 4pt 0;", theme.BaseSizePt+2, headingColor)
	if theme.HeadingRule {
		fmt.Fprintf(&b, " border-bottom: 1px solid %s; padding-bottom: 2pt;", headingColor)
	}
	b.WriteString(" }\n")
	b.WriteString(".entry { margin-bottom: 6pt; }\n")
	b.WriteString(".entry-head { display: flex; justify-content: space-between; }\n")
	b.WriteString(".heading { font-weight: bold; }\n")
	b.WriteString(".dates { white-space: nowrap; }\n")
	b.WriteString(".subheading { font-style: italic; }\n")
	b.WriteString("p { margin: 2pt 0; }\n")
	b.WriteString(".grid { width: 100%; border-collapse: collapse; }\n")
	b.WriteString(".grid td { width: 50%; vertical-align: top; padding: 2pt 4pt 2pt 0; }\n")
	return b.String()
}

package render

// Document is the rendered output tree: a header plus zero or more named
// sections of entries, with variant-wide styling captured in Theme. It is
// consumed by the HTML encoder and by downstream export pipelines.
type Document struct {
	Variant  Variant
	Theme    Theme
	Header   Header
	Sections []Section
}

// Theme carries the visual rules a variant applies to the whole document.
type Theme struct {
	FontFamily        string
	BaseSizePt        int
	TextColor         string
	AccentColor       string // empty means monochrome headings
	HeaderAlign       string // "left" or "center"
	UppercaseHeadings bool
	HeadingRule       bool
	Separator         string // glyph joining contact fields
}

// Header is the top block: display name and the joined contact line.
type Header struct {
	Name        string
	ContactLine string
}

// Section is a named block of entries. Columns is 2 for the skills grid,
// otherwise 1.
type Section struct {
	Title   string
	Columns int
	Entries []Entry
}

// Entry is one item within a section. Absent parts are empty strings and are
// skipped by encoders.
type Entry struct {
	Heading    string
	Subheading string
	Dates      string
	Lines      []string
}

// Section returns the section with the given title, or nil.
func (d *Document) Section(title string) *Section {
	for i := range d.Sections {
		if d.Sections[i].Title == title {
			return &d.Sections[i]
		}
	}
	return nil
}

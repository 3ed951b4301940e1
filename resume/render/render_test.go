package render

import (
	"reflect"
	"strings"
	"testing"

	"resume-studio/resume/model"
)

func fullDocument() model.ResumeDocument {
	return model.ResumeDocument{
		ID:         "doc-1",
		Status:     model.StatusParsed,
		TemplateID: "modern",
		Contact: &model.ContactInfo{
			Name:     "Ada Lovelace",
			Email:    "ada@example.com",
			Phone:    "555-555-5555",
			Location: "London",
			LinkedIn: "linkedin.com/in/ada",
		},
		Summary: "Analytical engine programmer.\nSecond line should not appear.",
		Experience: []model.ExperienceEntry{
			{
				Title:       "Engineer",
				Company:     "Analytical Engines Ltd",
				Location:    "London",
				Start:       "2022-01",
				End:         "present",
				Description: "Wrote the first program.",
			},
		},
		Education: []model.EducationEntry{
			{
				Degree: "BSc",
				Field:  "Mathematics",
				School: "University of London",
				Start:  "2018-09",
				End:    "2021-06",
				GPA:    "3.9",
			},
		},
		Projects: []model.ProjectEntry{
			{
				Name:         "Difference Engine",
				Technologies: model.StringList{"Brass", "Steam"},
				Description:  "Mechanical computation.",
				Start:        "2023-02",
			},
		},
		Skills: model.SkillGroups{
			{Category: "Languages", Skills: model.StringList{"Go", "Python"}},
			{Category: "Tools", Skills: model.StringList{"Docker"}},
			{Category: "Databases", Skills: model.StringList{"PostgreSQL"}},
		},
	}
}

func sectionTitles(doc *Document) []string {
	titles := make([]string, 0, len(doc.Sections))
	for _, section := range doc.Sections {
		titles = append(titles, section.Title)
	}
	return titles
}

func TestRenderFullDocumentAllVariants(t *testing.T) {
	source := fullDocument()

	for _, variant := range []Variant{Modern, Classic, Minimalist} {
		t.Run(variant.String(), func(t *testing.T) {
			doc := variant.Render(source)

			if doc.Header.Name != "Ada Lovelace" {
				t.Fatalf("header name = %q", doc.Header.Name)
			}
			if !strings.Contains(doc.Header.ContactLine, "ada@example.com") {
				t.Fatalf("contact line missing email: %q", doc.Header.ContactLine)
			}
			if !strings.Contains(doc.Header.ContactLine, doc.Theme.Separator) {
				t.Fatalf("contact line missing separator %q: %q", doc.Theme.Separator, doc.Header.ContactLine)
			}

			if len(doc.Sections) != 5 {
				t.Fatalf("got sections %v, want 5", sectionTitles(doc))
			}

			experience := doc.Section("Experience")
			if experience == nil || len(experience.Entries) != 1 {
				t.Fatalf("experience section missing: %v", sectionTitles(doc))
			}
			if experience.Entries[0].Dates != "Jan 2022 - Present" {
				t.Fatalf("experience dates = %q", experience.Entries[0].Dates)
			}

			education := doc.Section("Education")
			if education == nil || len(education.Entries) != 1 {
				t.Fatalf("education section missing: %v", sectionTitles(doc))
			}
			if len(education.Entries[0].Lines) == 0 || education.Entries[0].Lines[0] != "GPA: 3.9" {
				t.Fatalf("education lines = %v", education.Entries[0].Lines)
			}

			skills := doc.Section("Skills")
			if skills == nil || skills.Columns != 2 {
				t.Fatalf("skills should be a two-column section")
			}
			wantOrder := []string{"Languages", "Tools", "Databases"}
			for i, entry := range skills.Entries {
				if entry.Heading != wantOrder[i] {
					t.Fatalf("skills order = %v, want %v", skills.Entries, wantOrder)
				}
			}
		})
	}
}

func TestRenderSummaryUsesFirstLineOnly(t *testing.T) {
	doc := Modern.Render(fullDocument())

	summary := doc.Section("Professional Summary")
	if summary == nil {
		t.Fatalf("summary section missing: %v", sectionTitles(doc))
	}
	line := summary.Entries[0].Lines[0]
	if line != "Analytical engine programmer." {
		t.Fatalf("summary line = %q", line)
	}
	if strings.Contains(line, "Second line") {
		t.Fatalf("summary leaked past first line: %q", line)
	}
}

func TestRenderOmitsEmptySections(t *testing.T) {
	source := model.ResumeDocument{
		ID:     "doc-2",
		Status: model.StatusParsed,
		Contact: &model.ContactInfo{
			Name: "A. Smith",
		},
		Experience: []model.ExperienceEntry{},
		Education:  []model.EducationEntry{},
		Projects:   []model.ProjectEntry{},
		Skills:     model.SkillGroups{},
	}
	source.TemplateID = "minimalist"

	doc := Render(source)
	if doc.Variant != Minimalist {
		t.Fatalf("variant = %v, want Minimalist", doc.Variant)
	}
	if doc.Header.Name != "A. Smith" {
		t.Fatalf("header name = %q", doc.Header.Name)
	}
	if len(doc.Sections) != 0 {
		t.Fatalf("expected no sections, got %v", sectionTitles(doc))
	}
}

func TestRenderEmptyDocumentNeverFails(t *testing.T) {
	for _, variant := range []Variant{Modern, Classic, Minimalist} {
		doc := variant.Render(model.ResumeDocument{})
		if doc.Header.Name != "Your Name" {
			t.Fatalf("%v: header name = %q, want placeholder", variant, doc.Header.Name)
		}
		if doc.Header.ContactLine != "" {
			t.Fatalf("%v: contact line = %q, want empty", variant, doc.Header.ContactLine)
		}
		if len(doc.Sections) != 0 {
			t.Fatalf("%v: expected no sections, got %v", variant, sectionTitles(doc))
		}
	}
}

func TestRenderEntryFallbacks(t *testing.T) {
	source := model.ResumeDocument{
		Experience: []model.ExperienceEntry{{Description: "Did things."}},
		Education:  []model.EducationEntry{{GPA: "4.0"}},
		Projects:   []model.ProjectEntry{{Description: "A project."}},
	}

	doc := Modern.Render(source)

	experience := doc.Section("Experience")
	if experience.Entries[0].Heading != "Position" {
		t.Fatalf("experience heading = %q, want Position", experience.Entries[0].Heading)
	}
	if experience.Entries[0].Subheading != "Company" {
		t.Fatalf("experience subheading = %q, want Company", experience.Entries[0].Subheading)
	}

	education := doc.Section("Education")
	if education.Entries[0].Heading != "Degree" {
		t.Fatalf("education heading = %q, want Degree", education.Entries[0].Heading)
	}
	if education.Entries[0].Subheading != "School" {
		t.Fatalf("education subheading = %q, want School", education.Entries[0].Subheading)
	}

	projects := doc.Section("Projects")
	if projects.Entries[0].Heading != "Project" {
		t.Fatalf("project heading = %q, want Project", projects.Entries[0].Heading)
	}
}

func TestRenderNoDanglingSeparators(t *testing.T) {
	source := model.ResumeDocument{
		Contact: &model.ContactInfo{
			Name:  "B. Jones",
			Email: "b@example.com",
			// phone and location absent
			LinkedIn: "linkedin.com/in/bjones",
		},
	}

	for _, variant := range []Variant{Modern, Classic, Minimalist} {
		doc := variant.Render(source)
		sep := strings.TrimSpace(doc.Theme.Separator)
		line := doc.Header.ContactLine
		if strings.HasPrefix(line, sep) || strings.HasSuffix(line, sep) {
			t.Fatalf("%v: dangling separator in %q", variant, line)
		}
		if strings.Contains(line, doc.Theme.Separator+doc.Theme.Separator) {
			t.Fatalf("%v: doubled separator in %q", variant, line)
		}
		if line != "b@example.com"+doc.Theme.Separator+"linkedin.com/in/bjones" {
			t.Fatalf("%v: contact line = %q", variant, line)
		}
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	source := fullDocument()

	for _, variant := range []Variant{Modern, Classic, Minimalist} {
		first := variant.Render(source)
		second := variant.Render(source)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("%v: repeated render differs", variant)
		}
	}
}

func TestRenderDoesNotMutateSource(t *testing.T) {
	source := fullDocument()
	contactBefore := *source.Contact
	experienceBefore := source.Experience[0]

	for _, variant := range []Variant{Modern, Classic, Minimalist} {
		variant.Render(source)
	}

	if *source.Contact != contactBefore {
		t.Fatalf("contact mutated: %+v", source.Contact)
	}
	if source.Experience[0] != experienceBefore {
		t.Fatalf("experience mutated: %+v", source.Experience[0])
	}
}

func TestVariantLayoutsDiffer(t *testing.T) {
	source := fullDocument()

	modern := Modern.Render(source)
	classic := Classic.Render(source)
	minimalist := Minimalist.Render(source)

	if modern.Theme.Separator == classic.Theme.Separator {
		t.Fatal("modern and classic share a separator glyph")
	}
	if classic.Theme.HeaderAlign != "center" || modern.Theme.HeaderAlign != "left" {
		t.Fatalf("header alignment: classic=%q modern=%q", classic.Theme.HeaderAlign, modern.Theme.HeaderAlign)
	}
	if minimalist.Theme.AccentColor != "" {
		t.Fatalf("minimalist should be monochrome, got accent %q", minimalist.Theme.AccentColor)
	}
	if modern.Theme.AccentColor == "" {
		t.Fatal("modern should carry an accent color")
	}

	// Experience composition differs: classic leads with the company.
	if classic.Section("Experience").Entries[0].Heading != "Analytical Engines Ltd" {
		t.Fatalf("classic experience heading = %q", classic.Section("Experience").Entries[0].Heading)
	}
	if modern.Section("Experience").Entries[0].Heading != "Engineer" {
		t.Fatalf("modern experience heading = %q", modern.Section("Experience").Entries[0].Heading)
	}

	if minimalist.Section("Summary") == nil || modern.Section("Professional Summary") == nil {
		t.Fatal("summary titles should differ between minimalist and modern")
	}
}

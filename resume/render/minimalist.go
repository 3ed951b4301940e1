package render

import (
	"strings"

	"resume-studio/resume/model"
)

// Minimalist: compact sans-serif, no accent color, no rules, middot-separated
// contact line, terse section titles.

func renderMinimalist(doc model.ResumeDocument) *Document {
	theme := Theme{
		FontFamily:  "'Helvetica Neue', Arial, sans-serif",
		BaseSizePt:  9,
		TextColor:   "#333333",
		HeaderAlign: "left",
		Separator:   " · ",
	}

	contact := contactOf(doc)
	out := &Document{
		Variant: Minimalist,
		Theme:   theme,
		Header: Header{
			Name:        displayName(contact),
			ContactLine: joinPresent(theme.Separator, contact.Email, contact.Phone, contact.Location, contact.LinkedIn),
		},
	}

	if line := summaryLine(doc); line != "" {
		out.Sections = append(out.Sections, Section{
			Title:   "Summary",
			Columns: 1,
			Entries: []Entry{{Lines: []string{line}}},
		})
	}

	if experience := experienceOf(doc); len(experience) > 0 {
		section := Section{Title: "Experience", Columns: 1}
		for _, item := range experience {
			entry := Entry{
				Heading:    joinPresent(" · ", fallback(item.Title, "Position"), fallback(item.Company, "Company")),
				Subheading: strings.TrimSpace(item.Location),
				Dates:      FormatDateRange(item.Start, item.End),
			}
			if desc := strings.TrimSpace(item.Description); desc != "" {
				entry.Lines = append(entry.Lines, desc)
			}
			section.Entries = append(section.Entries, entry)
		}
		out.Sections = append(out.Sections, section)
	}

	if education := educationOf(doc); len(education) > 0 {
		section := Section{Title: "Education", Columns: 1}
		for _, item := range education {
			degree := fallback(item.Degree, "Degree")
			if field := strings.TrimSpace(item.Field); field != "" {
				degree += " in " + field
			}
			entry := Entry{
				Heading:    joinPresent(" · ", degree, fallback(item.School, "School")),
				Subheading: strings.TrimSpace(item.Location),
				Dates:      FormatDateRange(item.Start, item.End),
			}
			if gpa := strings.TrimSpace(item.GPA); gpa != "" {
				entry.Lines = append(entry.Lines, "GPA: "+gpa)
			}
			section.Entries = append(section.Entries, entry)
		}
		out.Sections = append(out.Sections, section)
	}

	if projects := projectsOf(doc); len(projects) > 0 {
		section := Section{Title: "Projects", Columns: 1}
		for _, item := range projects {
			entry := Entry{
				Heading: fallback(item.Name, "Project"),
				Dates:   FormatDateRange(item.Start, item.End),
			}
			if tech := joinList(item.Technologies); tech != "" {
				entry.Subheading = tech
			}
			if desc := strings.TrimSpace(item.Description); desc != "" {
				entry.Lines = append(entry.Lines, desc)
			}
			section.Entries = append(section.Entries, entry)
		}
		out.Sections = append(out.Sections, section)
	}

	if skills := skillsOf(doc); len(skills) > 0 {
		section := Section{Title: "Skills", Columns: 2}
		for _, group := range skills {
			section.Entries = append(section.Entries, Entry{
				Heading: group.Category,
				Lines:   []string{joinList(group.Skills)},
			})
		}
		out.Sections = append(out.Sections, section)
	}

	return out
}

package render

import (
	"strings"

	"resume-studio/resume/model"
)

// The extractors below centralize the "use if present, else default" access
// the three variants share, so sparse documents degrade identically no matter
// which variant renders them. They never fail.

const nameFallback = "Your Name"

func contactOf(doc model.ResumeDocument) model.ContactInfo {
	if doc.Contact == nil {
		return model.ContactInfo{}
	}
	return *doc.Contact
}

func experienceOf(doc model.ResumeDocument) []model.ExperienceEntry {
	if doc.Experience == nil {
		return []model.ExperienceEntry{}
	}
	return doc.Experience
}

func educationOf(doc model.ResumeDocument) []model.EducationEntry {
	if doc.Education == nil {
		return []model.EducationEntry{}
	}
	return doc.Education
}

func projectsOf(doc model.ResumeDocument) []model.ProjectEntry {
	if doc.Projects == nil {
		return []model.ProjectEntry{}
	}
	return doc.Projects
}

func skillsOf(doc model.ResumeDocument) model.SkillGroups {
	if doc.Skills == nil {
		return model.SkillGroups{}
	}
	return doc.Skills
}

// summaryLine returns the first line of the summary text, or "".
func summaryLine(doc model.ResumeDocument) string {
	text := strings.TrimSpace(doc.Summary)
	if text == "" {
		return ""
	}
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = strings.TrimSpace(text[:idx])
	}
	return text
}

func displayName(contact model.ContactInfo) string {
	if name := strings.TrimSpace(contact.Name); name != "" {
		return name
	}
	return nameFallback
}

// joinPresent joins non-empty parts with sep, never producing a dangling
// separator next to an absent field.
func joinPresent(sep string, parts ...string) string {
	present := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			present = append(present, trimmed)
		}
	}
	return strings.Join(present, sep)
}

func fallback(value, def string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return def
}

func joinList(values model.StringList) string {
	return joinPresent(", ", values...)
}

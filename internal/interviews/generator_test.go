package interviews

import (
	"reflect"
	"strings"
	"testing"

	"resume-studio/resume/model"
)

func sampleDocument() model.ResumeDocument {
	return model.ResumeDocument{
		Summary: "Backend engineer focused on data plumbing.",
		Experience: []model.ExperienceEntry{
			{Title: "Senior Engineer", Company: "Acme"},
			{Company: "Initech"},
		},
		Projects: []model.ProjectEntry{
			{Name: "Pipeline", Technologies: model.StringList{"Go", "Postgres"}},
		},
		Skills: model.SkillGroups{
			{Category: "Languages", Skills: []string{"Go", "SQL"}},
		},
		Education: []model.EducationEntry{
			{Degree: "BSc", School: "State University"},
		},
	}
}

func TestGenerateCoversSections(t *testing.T) {
	questions := Generate(sampleDocument())

	categories := map[string]int{}
	for _, q := range questions {
		categories[q.Category]++
	}
	for _, want := range []string{"background", "experience", "projects", "skills", "education"} {
		if categories[want] == 0 {
			t.Fatalf("expected at least one %s question, got %v", want, categories)
		}
	}
	if categories["experience"] != 2 {
		t.Fatalf("expected one question per experience entry, got %d", categories["experience"])
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(sampleDocument())
	b := Generate(sampleDocument())
	if !reflect.DeepEqual(a, b) {
		t.Fatal("expected identical output for identical input")
	}
}

func TestGenerateUsesEntryDetails(t *testing.T) {
	questions := Generate(sampleDocument())

	var found bool
	for _, q := range questions {
		if strings.Contains(q.Prompt, "Senior Engineer") && strings.Contains(q.Prompt, "Acme") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected title and company in prompt, got %v", questions)
	}
}

func TestGenerateEmptyDocumentFallback(t *testing.T) {
	questions := Generate(model.ResumeDocument{})
	if len(questions) != 1 {
		t.Fatalf("expected single fallback question, got %d", len(questions))
	}
	if questions[0].Category != "background" {
		t.Fatalf("unexpected category %q", questions[0].Category)
	}
}

func TestGenerateCapped(t *testing.T) {
	doc := model.ResumeDocument{}
	for i := 0; i < 30; i++ {
		doc.Experience = append(doc.Experience, model.ExperienceEntry{Title: "Engineer", Company: "Co"})
	}
	if got := len(Generate(doc)); got > maxQuestions {
		t.Fatalf("expected at most %d questions, got %d", maxQuestions, got)
	}
}

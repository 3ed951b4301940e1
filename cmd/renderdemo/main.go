package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-studio/resume/model"
	"resume-studio/resume/render"
)

func main() {
	outDir := flag.String("out", "./out", "output directory for rendered previews")
	flag.Parse()

	doc := sampleDocument()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir failed: %v\n", err)
		os.Exit(1)
	}

	for _, templateID := range []string{render.TemplateIDModern, render.TemplateIDClassic, render.TemplateIDMinimalist} {
		doc.TemplateID = templateID
		rendered := render.Render(doc)
		html := rendered.HTML()

		if err := validateRendered(templateID, html, doc); err != nil {
			fmt.Fprintf(os.Stderr, "render validation failed: %v\n", err)
			os.Exit(1)
		}

		outPath := filepath.Join(*outDir, fmt.Sprintf("sample_resume_%s.html", templateID))
		if err := os.WriteFile(outPath, []byte(html), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("OK: wrote %s\n", outPath)
	}

	modelPath := filepath.Join(*outDir, "sample_resume_document.json")
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal failed: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(modelPath, payload, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: wrote %s\n", modelPath)
}

func sampleDocument() model.ResumeDocument {
	return model.ResumeDocument{
		ID:     "demo",
		Status: model.StatusParsed,
		Contact: &model.ContactInfo{
			Name:     "Jordan Lee",
			Email:    "jordan.lee@example.com",
			Phone:    "+1-555-0102",
			Location: "Austin, TX",
			LinkedIn: "https://www.linkedin.com/in/jordanlee",
		},
		Summary: "Backend engineer with 8+ years of experience building resilient APIs and data services.",
		Experience: []model.ExperienceEntry{
			{
				Title:       "Senior Backend Engineer",
				Company:     "Acme Logistics",
				Location:    "Austin, TX",
				Start:       "2021-04",
				End:         "Present",
				Description: "Designed a routing service that reduced shipment latency by 18%.",
			},
			{
				Title:       "Backend Engineer",
				Company:     "Blue Harbor Systems",
				Location:    "Seattle, WA",
				Start:       "2018-01",
				End:         "2021-03",
				Description: "Built event-driven ingestion pipelines for compliance data feeds.",
			},
		},
		Education: []model.EducationEntry{
			{
				Degree: "BSc",
				Field:  "Computer Science",
				School: "State University",
				Start:  "2013-09",
				End:    "2017-06",
			},
		},
		Projects: []model.ProjectEntry{
			{
				Name:         "Pipeline",
				Technologies: model.StringList{"Go", "PostgreSQL"},
				Description:  "Streaming ingestion pipeline with replayable checkpoints.",
			},
		},
		Skills: model.SkillGroups{
			{Category: "Languages", Skills: model.StringList{"Go", "SQL"}},
			{Category: "Infrastructure", Skills: model.StringList{"AWS", "Docker", "Kubernetes"}},
		},
	}
}

func validateRendered(templateID, html string, doc model.ResumeDocument) error {
	if doc.Contact != nil && doc.Contact.Name != "" && !strings.Contains(html, doc.Contact.Name) {
		return fmt.Errorf("%s: contact name missing from output", templateID)
	}
	if strings.Contains(html, "{{") || strings.Contains(html, "}}") {
		return fmt.Errorf("%s: unresolved template tokens in output", templateID)
	}
	return nil
}

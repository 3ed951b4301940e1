package interviews

import (
	"fmt"
	"strings"

	"resume-studio/resume/model"
)

// Question is one generated interview prompt.
type Question struct {
	Category string `json:"category"`
	Prompt   string `json:"prompt"`
}

const maxQuestions = 12

// Generate builds interview questions from the resume content. Output is
// deterministic for a given document: same sections in, same questions out.
func Generate(doc model.ResumeDocument) []Question {
	var out []Question

	if summary := strings.TrimSpace(doc.Summary); summary != "" {
		out = append(out, Question{
			Category: "background",
			Prompt:   "Walk me through your background and what you are looking for in your next role.",
		})
	}

	for _, exp := range doc.Experience {
		title := strings.TrimSpace(exp.Title)
		company := strings.TrimSpace(exp.Company)
		switch {
		case title != "" && company != "":
			out = append(out, Question{
				Category: "experience",
				Prompt:   fmt.Sprintf("Tell me about your work as %s at %s. What was the hardest problem you solved there?", title, company),
			})
		case company != "":
			out = append(out, Question{
				Category: "experience",
				Prompt:   fmt.Sprintf("What did you work on at %s, and what was your biggest contribution?", company),
			})
		case title != "":
			out = append(out, Question{
				Category: "experience",
				Prompt:   fmt.Sprintf("Describe a challenge you faced as %s and how you handled it.", title),
			})
		}
	}

	for _, proj := range doc.Projects {
		name := strings.TrimSpace(proj.Name)
		if name == "" {
			continue
		}
		if len(proj.Technologies) > 0 {
			out = append(out, Question{
				Category: "projects",
				Prompt:   fmt.Sprintf("On %s you used %s. Why that stack, and what would you change today?", name, strings.Join(proj.Technologies, ", ")),
			})
		} else {
			out = append(out, Question{
				Category: "projects",
				Prompt:   fmt.Sprintf("What motivated %s, and what did you learn building it?", name),
			})
		}
	}

	for _, group := range doc.Skills {
		category := strings.TrimSpace(group.Category)
		if category == "" || len(group.Skills) == 0 {
			continue
		}
		out = append(out, Question{
			Category: "skills",
			Prompt:   fmt.Sprintf("Your resume lists %s under %s. Which of these are you strongest in, and how have you applied it?", strings.Join(group.Skills, ", "), category),
		})
	}

	for _, edu := range doc.Education {
		school := strings.TrimSpace(edu.School)
		degree := strings.TrimSpace(edu.Degree)
		if school == "" && degree == "" {
			continue
		}
		out = append(out, Question{
			Category: "education",
			Prompt:   "How has your education shaped the way you approach engineering problems?",
		})
		break
	}

	if len(out) == 0 {
		out = append(out, Question{
			Category: "background",
			Prompt:   "Tell me about yourself and the kind of work you enjoy.",
		})
	}

	if len(out) > maxQuestions {
		out = out[:maxQuestions]
	}
	return out
}

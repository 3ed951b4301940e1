package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Status enumerates the processing states a resume document moves through.
type Status string

const (
	StatusUploaded Status = "uploaded"
	StatusParsing  Status = "parsing"
	StatusParsed   Status = "parsed"
	StatusScored   Status = "scored"
	StatusError    Status = "error"
)

// Valid reports whether s is a known processing status.
func (s Status) Valid() bool {
	switch s {
	case StatusUploaded, StatusParsing, StatusParsed, StatusScored, StatusError:
		return true
	}
	return false
}

// CanTransition reports whether moving from s to next is a legal lifecycle step.
// Error is reachable from any non-terminal state and is terminal itself.
func (s Status) CanTransition(next Status) bool {
	if !next.Valid() || s == next {
		return false
	}
	if s == StatusError {
		return false
	}
	if next == StatusError {
		return true
	}
	switch s {
	case StatusUploaded:
		return next == StatusParsing || next == StatusParsed
	case StatusParsing:
		return next == StatusParsed
	case StatusParsed:
		return next == StatusScored
	}
	return false
}

// ResumeDocument is the canonical resume payload consumed by the renderer.
// The renderer treats it as a read-only snapshot.
type ResumeDocument struct {
	ID         string            `json:"id"`
	Status     Status            `json:"status"`
	TemplateID string            `json:"templateId,omitempty"`
	Contact    *ContactInfo      `json:"contactInfo,omitempty"`
	Summary    string            `json:"summary,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Education  []EducationEntry  `json:"education,omitempty"`
	Projects   []ProjectEntry    `json:"projects,omitempty"`
	Skills     SkillGroups       `json:"skills,omitempty"`
}

// ContactInfo captures top-of-resume identity details. All fields optional.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// ExperienceEntry represents a work history entry. Order is caller-defined.
type ExperienceEntry struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
	Start       string `json:"startDate,omitempty"`
	End         string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry represents an education entry.
type EducationEntry struct {
	Degree   string `json:"degree,omitempty"`
	Field    string `json:"field,omitempty"`
	School   string `json:"school,omitempty"`
	Location string `json:"location,omitempty"`
	Start    string `json:"startDate,omitempty"`
	End      string `json:"endDate,omitempty"`
	GPA      string `json:"gpa,omitempty"`
}

// ProjectEntry represents a notable project.
type ProjectEntry struct {
	Name         string     `json:"name,omitempty"`
	Technologies StringList `json:"technologies,omitempty"`
	Description  string     `json:"description,omitempty"`
	Start        string     `json:"startDate,omitempty"`
	End          string     `json:"endDate,omitempty"`
}

// StringList decodes from either a JSON array of strings or a single string,
// since upstream parsers emit both shapes.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}
	if trimmed[0] == '"' {
		var single string
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		if strings.TrimSpace(single) == "" {
			*l = nil
			return nil
		}
		*l = StringList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(trimmed, &many); err != nil {
		return err
	}
	*l = StringList(many)
	return nil
}

// SkillGroup pairs a category label with its skill names.
type SkillGroup struct {
	Category string
	Skills   StringList
}

// SkillGroups is an order-preserving category -> skills mapping. JSON objects
// lose key order under map decoding, so it decodes token-by-token.
type SkillGroups []SkillGroup

// Get returns the skills for a category and whether it exists.
func (g SkillGroups) Get(category string) (StringList, bool) {
	for _, group := range g {
		if group.Category == category {
			return group.Skills, true
		}
	}
	return nil, false
}

// UnmarshalJSON implements json.Unmarshaler preserving object key order.
func (g *SkillGroups) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*g = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return fmt.Errorf("skills: expected JSON object, got %v", tok)
	}

	var out SkillGroups
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("skills: expected string key, got %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		var skills StringList
		if err := skills.UnmarshalJSON(raw); err != nil {
			return err
		}
		out = append(out, SkillGroup{Category: key, Skills: skills})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*g = out
	return nil
}

// MarshalJSON implements json.Marshaler emitting categories in stored order.
func (g SkillGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(group.Category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		values, err := json.Marshal([]string(group.Skills))
		if err != nil {
			return nil, err
		}
		buf.Write(values)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

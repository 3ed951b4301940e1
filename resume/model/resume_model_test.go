package model

import (
	"encoding/json"
	"testing"
)

func TestStringListAcceptsArrayAndSingleString(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"array", `["Go","Python"]`, []string{"Go", "Python"}},
		{"single string", `"Go"`, []string{"Go"}},
		{"empty string", `""`, nil},
		{"null", `null`, nil},
		{"empty array", `[]`, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got StringList
			if err := json.Unmarshal([]byte(tc.raw), &got); err != nil {
				t.Fatalf("unmarshal %q: %v", tc.raw, err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestStringListRejectsMalformed(t *testing.T) {
	var got StringList
	if err := json.Unmarshal([]byte(`{"not":"a list"}`), &got); err == nil {
		t.Fatal("expected error for object input")
	}
}

func TestSkillGroupsPreservesInsertionOrder(t *testing.T) {
	raw := `{"Languages":["Go","Python"],"Frameworks":"Gin","Tools":["Docker"]}`

	var groups SkillGroups
	if err := json.Unmarshal([]byte(raw), &groups); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	wantOrder := []string{"Languages", "Frameworks", "Tools"}
	if len(groups) != len(wantOrder) {
		t.Fatalf("got %d groups, want %d", len(groups), len(wantOrder))
	}
	for i, category := range wantOrder {
		if groups[i].Category != category {
			t.Fatalf("group %d = %q, want %q", i, groups[i].Category, category)
		}
	}

	if skills, ok := groups.Get("Frameworks"); !ok || len(skills) != 1 || skills[0] != "Gin" {
		t.Fatalf("Frameworks = %v, want [Gin]", skills)
	}
	if _, ok := groups.Get("Missing"); ok {
		t.Fatal("Get should report missing category")
	}
}

func TestSkillGroupsRoundTrip(t *testing.T) {
	groups := SkillGroups{
		{Category: "Backend", Skills: StringList{"Go", "PostgreSQL"}},
		{Category: "Cloud", Skills: StringList{"AWS"}},
	}

	data, err := json.Marshal(groups)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded SkillGroups
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Category != "Backend" || decoded[1].Category != "Cloud" {
		t.Fatalf("round trip lost order: %v", decoded)
	}
}

func TestSkillGroupsNull(t *testing.T) {
	var groups SkillGroups
	if err := json.Unmarshal([]byte(`null`), &groups); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if groups != nil {
		t.Fatalf("got %v, want nil", groups)
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusUploaded, StatusParsing, StatusParsed, StatusScored, StatusError} {
		if !s.Valid() {
			t.Fatalf("%s should be valid", s)
		}
	}
	if Status("draft").Valid() {
		t.Fatal("unknown status should be invalid")
	}
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from Status
		to   Status
		ok   bool
	}{
		{StatusUploaded, StatusParsing, true},
		{StatusUploaded, StatusParsed, true},
		{StatusParsing, StatusParsed, true},
		{StatusParsed, StatusScored, true},
		{StatusParsing, StatusError, true},
		{StatusScored, StatusError, true},
		{StatusError, StatusParsed, false},
		{StatusParsed, StatusUploaded, false},
		{StatusScored, StatusScored, false},
		{StatusUploaded, Status("draft"), false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.ok {
			t.Fatalf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.ok)
		}
	}
}

func TestResumeDocumentDecodesSparsePayload(t *testing.T) {
	raw := `{"id":"doc-1","status":"parsed","contactInfo":{"name":"A. Smith"}}`

	var doc ResumeDocument
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.ID != "doc-1" || doc.Status != StatusParsed {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if doc.Contact == nil || doc.Contact.Name != "A. Smith" {
		t.Fatalf("contact not decoded: %+v", doc.Contact)
	}
	if doc.Experience != nil || doc.Skills != nil {
		t.Fatalf("absent sections should stay nil: %+v", doc)
	}
}

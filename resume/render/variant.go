package render

import "resume-studio/resume/model"

// Variant identifies one of the fixed layout strategies.
type Variant int

const (
	Modern Variant = iota
	Classic
	Minimalist
)

const (
	TemplateIDModern     = "modern"
	TemplateIDClassic    = "classic"
	TemplateIDMinimalist = "minimalist"
)

// ParseVariant maps a template identifier to a variant. It is total: unset,
// unrecognized, and "modern" inputs all resolve to Modern.
func ParseVariant(templateID string) Variant {
	switch templateID {
	case TemplateIDClassic:
		return Classic
	case TemplateIDMinimalist:
		return Minimalist
	default:
		return Modern
	}
}

// String returns the template identifier for the variant.
func (v Variant) String() string {
	switch v {
	case Classic:
		return TemplateIDClassic
	case Minimalist:
		return TemplateIDMinimalist
	default:
		return TemplateIDModern
	}
}

// Render builds the output tree for the document using this variant's layout.
// It is a pure function of the snapshot and never fails, however sparse the
// document.
func (v Variant) Render(doc model.ResumeDocument) *Document {
	switch v {
	case Classic:
		return renderClassic(doc)
	case Minimalist:
		return renderMinimalist(doc)
	default:
		return renderModern(doc)
	}
}

// Render renders the document with the variant selected by its TemplateID.
func Render(doc model.ResumeDocument) *Document {
	return ParseVariant(doc.TemplateID).Render(doc)
}

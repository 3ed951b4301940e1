package templates

import (
	"context"
	"errors"
	"sync"

	"resume-studio/resume/render"
)

var ErrNotFound = errors.New("template not found")

// Template describes one style variant offered to clients.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

// Catalog holds the available templates. The three built-in variants are
// always present; admins can only toggle availability, not add new ones.
type Catalog struct {
	mu    sync.RWMutex
	items map[string]Template
	order []string
}

// NewCatalog seeds the catalog with the built-in variants.
func NewCatalog() *Catalog {
	c := &Catalog{items: make(map[string]Template)}
	for _, tpl := range []Template{
		{
			ID:          render.TemplateIDModern,
			Name:        "Modern",
			Description: "Sans-serif, left-aligned, blue accent headings.",
			Enabled:     true,
		},
		{
			ID:          render.TemplateIDClassic,
			Name:        "Classic",
			Description: "Serif, centered header, uppercase section headings.",
			Enabled:     true,
		},
		{
			ID:          render.TemplateIDMinimalist,
			Name:        "Minimalist",
			Description: "Compact monochrome layout with minimal ornament.",
			Enabled:     true,
		},
	} {
		c.items[tpl.ID] = tpl
		c.order = append(c.order, tpl.ID)
	}
	return c
}

// List returns all templates in catalog order.
func (c *Catalog) List(ctx context.Context) ([]Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Template, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out, nil
}

// ListEnabled returns only the templates currently offered.
func (c *Catalog) ListEnabled(ctx context.Context) ([]Template, error) {
	all, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0:0]
	for _, tpl := range all {
		if tpl.Enabled {
			out = append(out, tpl)
		}
	}
	return out, nil
}

// Get returns a template by ID.
func (c *Catalog) Get(ctx context.Context, id string) (Template, error) {
	if err := ctx.Err(); err != nil {
		return Template{}, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	tpl, ok := c.items[id]
	if !ok {
		return Template{}, ErrNotFound
	}
	return tpl, nil
}

// SetEnabled toggles template availability.
func (c *Catalog) SetEnabled(ctx context.Context, id string, enabled bool) (Template, error) {
	if err := ctx.Err(); err != nil {
		return Template{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	tpl, ok := c.items[id]
	if !ok {
		return Template{}, ErrNotFound
	}
	tpl.Enabled = enabled
	c.items[id] = tpl
	return tpl, nil
}

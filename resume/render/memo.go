package render

import (
	"sync"

	"resume-studio/resume/model"
)

// Memo suppresses redundant re-rendering. The key is (ID, Status) only:
// content fields are assumed immutable once status stabilizes, so a document
// whose other fields changed in place without a status bump is served from
// cache. That staleness window is deliberate; callers that mutate content
// without a status change must call Invalidate.
type Memo struct {
	mu   sync.Mutex
	key  memoKey
	doc  *Document
	held bool
}

type memoKey struct {
	id     string
	status model.Status
}

// Render returns the cached tree when the document identity and status are
// unchanged since the previous call, otherwise renders and stores. Safe for
// concurrent use.
func (m *Memo) Render(doc model.ResumeDocument) *Document {
	rendered, _ := m.RenderCached(doc)
	return rendered
}

// RenderCached behaves like Render and also reports whether the cached tree
// was reused.
func (m *Memo) RenderCached(doc model.ResumeDocument) (*Document, bool) {
	key := memoKey{id: doc.ID, status: doc.Status}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.held && m.key == key {
		return m.doc, true
	}

	rendered := Render(doc)
	m.key = key
	m.doc = rendered
	m.held = true
	return rendered, false
}

// Invalidate drops the cached tree so the next Render recomputes.
func (m *Memo) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc = nil
	m.held = false
}

package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
)

const docxBody = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Ada Lovelace</w:t></w:r></w:p>
<w:p><w:r><w:t>Software Engineer</w:t></w:r></w:p>
</w:body>
</w:document>`

func buildDocx(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entries := map[string]string{
		"[Content_Types].xml":          `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/></Types>`,
		"word/document.xml":            docxBody,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
	}
	for name, body := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry: %v", err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("write zip entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextFromBytes_DocxFromZipMime(t *testing.T) {
	data := buildDocx(t)

	got, err := TextFromBytes(context.Background(), data, "application/zip", "resume.docx")
	if err != nil {
		t.Fatalf("expected docx to extract from zip mime, got error: %v", err)
	}
	if !strings.Contains(got, "Ada Lovelace") {
		t.Fatalf("expected extracted text to contain name, got %q", got)
	}
	if !strings.Contains(got, "\n") {
		t.Fatalf("expected paragraph boundary newline, got %q", got)
	}
}

func TestTextFromBytes_RealZipRejected(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = TextFromBytes(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected unsupported mime error for zip")
	}
	if !strings.Contains(err.Error(), "unsupported mime type: application/zip") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStripDocxXML(t *testing.T) {
	got := stripDocxXML(docxBody)
	want := "Ada Lovelace\nSoftware Engineer"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

type memStore struct {
	objects map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}}
}

func (m *memStore) Save(ctx context.Context, ownerID string, fileName string, r io.Reader) (string, int64, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, "", err
	}
	key := ownerID + "/" + fileName
	m.objects[key] = data
	return key, int64(len(data)), "application/octet-stream", nil
}

func (m *memStore) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	data, ok := m.objects[storageKey]
	if !ok {
		return nil, fmt.Errorf("not found: %s", storageKey)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memStore) SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	m.objects[storageKey] = data
	return int64(len(data)), nil
}

func TestText_PersistsExtractedCopy(t *testing.T) {
	store := newMemStore()
	store.objects["u/resume.docx"] = buildDocx(t)

	text, err := Text(context.Background(), store, "u/resume.docx", mimeDOCX, "resume.docx")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(text, "Software Engineer") {
		t.Fatalf("unexpected text: %q", text)
	}

	derived, ok := store.objects["u/resume.docx.extracted.txt"]
	if !ok {
		t.Fatal("expected derived .extracted.txt object")
	}
	if string(derived) != text {
		t.Fatalf("derived copy mismatch: %q vs %q", derived, text)
	}
}

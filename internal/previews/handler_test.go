package previews

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newHandlerRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userId", "u1")
		c.Next()
	})
	NewHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func TestPreviewHandlerReturnsHTML(t *testing.T) {
	svc, repo, _ := newTestPreviewService(10)
	seedResume(t, repo, "r1")
	r := newHandlerRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/r1/preview", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected text/html, got %q", ct)
	}
	if !strings.Contains(w.Body.String(), "Ada Lovelace") {
		t.Fatalf("expected rendered name, got %s", w.Body.String())
	}
}

func TestPreviewHandlerTemplateQuery(t *testing.T) {
	svc, repo, _ := newTestPreviewService(10)
	seedResume(t, repo, "r1")
	r := newHandlerRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/r1/preview?template=classic", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "PROFESSIONAL SUMMARY") {
		t.Fatalf("expected classic render, got %s", w.Body.String())
	}
}

func TestPreviewHandlerNotFound(t *testing.T) {
	svc, _, _ := newTestPreviewService(10)
	r := newHandlerRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/missing/preview", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestExportHandlerSetsDisposition(t *testing.T) {
	svc, repo, _ := newTestPreviewService(10)
	seedResume(t, repo, "r1")
	r := newHandlerRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/r1/export", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, `attachment; filename="resume_modern.html"`) {
		t.Fatalf("unexpected disposition %q", cd)
	}
}

func TestExportHandlerOutOfCredits(t *testing.T) {
	svc, repo, _ := newTestPreviewService(0)
	seedResume(t, repo, "r1")
	r := newHandlerRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes/r1/export", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"code":"no_credits"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

package home

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mjkconsultancy/site/internal/content"
	"github.com/mjkconsultancy/site/internal/services/site/module"
)

func mountHome(t *testing.T) http.Handler {
	t.Helper()
	registry, err := content.Default()
	if err != nil {
		t.Fatalf("content.Default() error = %v", err)
	}
	mount, err := New(module.Dependencies{Content: registry}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != "/" {
		t.Fatalf("Prefix = %q, want /", mount.Prefix)
	}
	return mount.Handler
}

func TestMountRequiresContent(t *testing.T) {
	t.Parallel()

	if _, err := New(module.Dependencies{}).Mount(); err == nil {
		t.Fatal("expected error without content registry")
	}
}

func TestHomeRendersSectionsWithHomeActive(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHome(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{
		`class="hero"`,
		`id="services"`,
		"Comprehensive Financial Services",
		"Ready to Secure Your Financial Future?",
		`href="/" class="nav-link is-active" aria-current="page"`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("home body missing %q", marker)
		}
	}
}

func TestHomeHTMXReturnsFragmentOnly(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	mountHome(t).ServeHTTP(rr, req)
	body := rr.Body.String()
	if strings.Contains(body, "<html") {
		t.Fatal("htmx response should not include the layout")
	}
	if !strings.HasPrefix(body, `<div class="page page-home">`) {
		t.Fatalf("unexpected fragment start %q", body[:40])
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHome(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/up", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("health = %d %q", rr.Code, rr.Body.String())
	}
}

func TestHomeRejectsOtherMethods(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountHome(t).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != http.MethodGet {
		t.Fatalf("Allow = %q, want %q", got, http.MethodGet)
	}
}

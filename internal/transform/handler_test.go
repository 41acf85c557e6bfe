package transform

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/structedit/structedit/action/upper"
	"github.com/structedit/structedit/internal/cache"
	"github.com/structedit/structedit/pipeline"
	"github.com/structedit/structedit/scope/regexscope"
)

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func newTestPresets(t *testing.T) map[string]*pipeline.Pipeline {
	t.Helper()
	scoper, err := regexscope.New("hello")
	if err != nil {
		t.Fatalf("build scoper: %v", err)
	}
	return map[string]*pipeline.Pipeline{
		"shout": pipeline.New(scoper, upper.New()),
	}
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(NewRouter(newTestPresets(t)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestListPresets(t *testing.T) {
	srv := httptest.NewServer(NewRouter(newTestPresets(t)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/presets")
	if err != nil {
		t.Fatalf("GET /presets: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestTransformPlainText(t *testing.T) {
	srv := httptest.NewServer(NewRouter(newTestPresets(t)))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/transform/shout", "text/plain", strings.NewReader("hello world"))
	if err != nil {
		t.Fatalf("POST /transform/shout: %v", err)
	}
	defer resp.Body.Close()

	body := make([]byte, 1024)
	n, _ := resp.Body.Read(body)
	got := string(body[:n])

	if got != "HELLO world" {
		t.Errorf("expected %q, got %q", "HELLO world", got)
	}
}

func TestTransformJSON(t *testing.T) {
	srv := httptest.NewServer(NewRouter(newTestPresets(t)))
	defer srv.Close()

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/transform/shout", strings.NewReader(`{"input":"hello world"}`))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST /transform/shout: %v", err)
	}
	defer resp.Body.Close()

	body := make([]byte, 1024)
	n, _ := resp.Body.Read(body)
	got := string(body[:n])

	if !strings.Contains(got, `"HELLO world"`) {
		t.Errorf("expected JSON response to contain rendered output, got %q", got)
	}
}

func TestTransformUnknownPreset(t *testing.T) {
	srv := httptest.NewServer(NewRouter(newTestPresets(t)))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/transform/missing", "text/plain", strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("POST /transform/missing: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestTransformUsesCache(t *testing.T) {
	c := cache.NewMemoryCache()
	router := NewRouterWithOptions(newTestPresets(t), RouterOptions{Cache: c})
	srv := httptest.NewServer(router)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/transform/shout", "text/plain", strings.NewReader("hello world"))
	if err != nil {
		t.Fatalf("POST /transform/shout: %v", err)
	}
	resp.Body.Close()

	exists, err := c.Exists(context.Background(), "transform:shout:"+sha256Hex("hello world"))
	if err != nil {
		t.Fatalf("cache lookup: %v", err)
	}
	if !exists {
		t.Error("expected the rendered result to be cached after the first request")
	}
}

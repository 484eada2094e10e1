package github

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetLatestRelease(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/BurntSushi/ripgrep/releases/latest" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tag_name":"14.1.1","name":"14.1.1","published_at":"2024-09-08T00:00:00Z"}`))
	}))
	defer srv.Close()

	c := &Client{httpClient: &http.Client{Timeout: 5 * time.Second}, baseURL: srv.URL}
	rel, err := c.GetLatestRelease("BurntSushi/ripgrep")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if rel.TagName != "14.1.1" {
		t.Fatalf("tag = %q", rel.TagName)
	}
}

func TestGetLatestRelease_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := &Client{httpClient: &http.Client{Timeout: 5 * time.Second}, baseURL: srv.URL}
	if _, err := c.GetLatestRelease("nobody/nothing"); err == nil {
		t.Fatal("expected API error")
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"14.1.0", "14.1.0", 0},
		{"14.1.0", "14.1.1", -1},
		{"14.1.1", "14.1.0", 1},
		{"v14.1.0", "14.1.0", 0},
		{"ripgrep 14.1.0 (rev e50df40a19)", "14.1.0", 0},
		{"14.1", "14.1.0", 0},
		{"13.0.0", "14.1.1", -1},
		{"", "1.0", -1},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			if got := CompareVersions(tt.a, tt.b); got != tt.want {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNormalizeVersion(t *testing.T) {
	tests := []struct{ in, want string }{
		{"v14.1.1", "14.1.1"},
		{"ripgrep 14.1.0 (rev e50df40a19)", "14.1.0"},
		{"  1.2.3  ", "1.2.3"},
		{"no digits", ""},
	}
	for _, tt := range tests {
		if got := NormalizeVersion(tt.in); got != tt.want {
			t.Errorf("NormalizeVersion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

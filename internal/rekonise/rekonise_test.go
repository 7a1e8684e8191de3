package rekonise

import (
	"context"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/handiism/rekonise-unlocker/internal/http"
	"github.com/handiism/rekonise-unlocker/internal/model"
)

func newTestClient() *http.Client {
	return http.NewClient("test", 5*time.Second)
}

func TestPlugID(t *testing.T) {
	tests := []struct {
		name        string
		resolvedURL string
		linkDomain  string
		want        string
	}{
		{
			name:        "domain prefix stripped",
			resolvedURL: "https://rekonise.com/my-pack-abc12",
			linkDomain:  "https://rekonise.com/",
			want:        "my-pack-abc12",
		},
		{
			name:        "url without domain unchanged",
			resolvedURL: "https://other.example/my-pack-abc12",
			linkDomain:  "https://rekonise.com/",
			want:        "https://other.example/my-pack-abc12",
		},
		{
			name:        "domain only leaves empty id",
			resolvedURL: "https://rekonise.com/",
			linkDomain:  "https://rekonise.com/",
			want:        "",
		},
		{
			name:        "domain appearing later is not stripped",
			resolvedURL: "https://mirror.example/https://rekonise.com/my-pack",
			linkDomain:  "https://rekonise.com/",
			want:        "https://mirror.example/https://rekonise.com/my-pack",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlugID(tt.resolvedURL, tt.linkDomain); got != tt.want {
				t.Errorf("PlugID(%q, %q) = %q, want %q", tt.resolvedURL, tt.linkDomain, got, tt.want)
			}
		})
	}
}

func TestUnlocker_DownloadURL(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"url":"https://files.example.test/pack.zip"}`))
	}))
	defer ts.Close()

	unlocker := NewUnlocker(newTestClient(), ts.URL)
	got, err := unlocker.DownloadURL(context.Background(), "my-pack-abc12")
	if err != nil {
		t.Fatalf("DownloadURL failed: %v", err)
	}

	if want := "https://files.example.test/pack.zip"; got != want {
		t.Errorf("download URL = %q, want %q", got, want)
	}
	if want := "/social-unlocks/my-pack-abc12/unlock"; gotPath != want {
		t.Errorf("request path = %q, want %q", gotPath, want)
	}
}

func TestUnlocker_DownloadURL_TrailingSlashBase(t *testing.T) {
	ts := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path != "/social-unlocks/abc/unlock" {
			nethttp.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"url":"https://files.example.test/x.zip"}`))
	}))
	defer ts.Close()

	unlocker := NewUnlocker(newTestClient(), ts.URL+"/")
	if _, err := unlocker.DownloadURL(context.Background(), "abc"); err != nil {
		t.Errorf("trailing slash on base URL should not break the path: %v", err)
	}
}

func TestUnlocker_DownloadURL_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantErr   bool
		wantErrIs error
	}{
		{
			name:    "http error status",
			status:  nethttp.StatusNotFound,
			body:    "not found",
			wantErr: true,
		},
		{
			name:    "malformed payload",
			status:  nethttp.StatusOK,
			body:    "{not json",
			wantErr: true,
		},
		{
			name:      "payload without url",
			status:    nethttp.StatusOK,
			body:      `{"message":"ok"}`,
			wantErr:   true,
			wantErrIs: ErrMissingDownloadURL,
		},
		{
			name:      "payload with empty url",
			status:    nethttp.StatusOK,
			body:      `{"url":""}`,
			wantErr:   true,
			wantErrIs: ErrMissingDownloadURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			unlocker := NewUnlocker(newTestClient(), ts.URL)
			_, err := unlocker.DownloadURL(context.Background(), "abc")

			if tt.wantErr && err == nil {
				t.Fatal("expected error but got none")
			}
			if tt.wantErrIs != nil && !errors.Is(err, tt.wantErrIs) {
				t.Errorf("error = %v, want %v", err, tt.wantErrIs)
			}
		})
	}
}

// newUnlockServer serves a short link redirect chain plus the unlock
// endpoint for plug "my-pack-abc12".
func newUnlockServer() *httptest.Server {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/s/abc12", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		nethttp.Redirect(w, r, "/my-pack-abc12", nethttp.StatusFound)
	})
	mux.HandleFunc("/my-pack-abc12", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
	})
	mux.HandleFunc("/social-unlocks/my-pack-abc12/unlock", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte(`{"url":"https://files.example.test/pack.zip"}`))
	})
	return httptest.NewServer(mux)
}

func TestResolver_Resolve(t *testing.T) {
	ts := newUnlockServer()
	defer ts.Close()

	client := newTestClient()
	resolver := NewResolver(client, NewUnlocker(client, ts.URL), ts.URL+"/")

	record := model.NewLinkRecord("Drum Kit", ts.URL+"/s/abc12")
	if err := resolver.Resolve(context.Background(), record); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if want := "https://files.example.test/pack.zip"; record.DownloadURL != want {
		t.Errorf("DownloadURL = %q, want %q", record.DownloadURL, want)
	}
	if !record.Resolved() {
		t.Error("record should report resolved")
	}
}

func TestResolver_Resolve_UnlockFailure(t *testing.T) {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		nethttp.NotFound(w, r)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := newTestClient()
	resolver := NewResolver(client, NewUnlocker(client, ts.URL), ts.URL+"/")

	record := model.NewLinkRecord("Broken", ts.URL+"/s/missing")
	if err := resolver.Resolve(context.Background(), record); err == nil {
		t.Fatal("expected error for failed unlock")
	}

	if record.Resolved() {
		t.Error("record should stay unresolved after failure")
	}
	if record.DownloadURL != "" {
		t.Errorf("DownloadURL = %q, want empty", record.DownloadURL)
	}
}

func TestResolver_Resolve_MissingURLSentinel(t *testing.T) {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/my-pack", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
	})
	mux.HandleFunc("/social-unlocks/my-pack/unlock", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Write([]byte(`{}`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := newTestClient()
	resolver := NewResolver(client, NewUnlocker(client, ts.URL), ts.URL+"/")

	record := model.NewLinkRecord("Empty", ts.URL+"/my-pack")
	err := resolver.Resolve(context.Background(), record)
	if !errors.Is(err, ErrMissingDownloadURL) {
		t.Errorf("error = %v, want ErrMissingDownloadURL", err)
	}
}

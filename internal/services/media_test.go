package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/THE-GOOD-NEWS/tgnDashboard/internal/apperrors"
)

func TestInspectHead(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Header().Set("Content-Length", "1234")
		if r.Method != http.MethodHead {
			t.Errorf("expected HEAD, got %s", r.Method)
		}
	}))
	defer srv.Close()

	info, err := NewMediaService().Inspect(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if info.ContentType != "image/jpeg" {
		t.Errorf("contentType = %q", info.ContentType)
	}
	if info.ContentLength != "1234" {
		t.Errorf("contentLength = %q", info.ContentLength)
	}
	if info.FinalURL != srv.URL {
		t.Errorf("finalUrl = %q, want %q", info.FinalURL, srv.URL)
	}
}

func TestInspectGetFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "video/mp4")
		_, _ = w.Write([]byte("data"))
	}))
	defer srv.Close()

	info, err := NewMediaService().Inspect(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if info.ContentType != "video/mp4" {
		t.Errorf("contentType = %q, want the GET fallback result", info.ContentType)
	}
}

func TestInspectFollowsRedirects(t *testing.T) {
	final := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
	}))
	defer final.Close()

	redirecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, final.URL, http.StatusMovedPermanently)
	}))
	defer redirecting.Close()

	info, err := NewMediaService().Inspect(context.Background(), redirecting.URL)
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	if info.FinalURL != final.URL {
		t.Errorf("finalUrl = %q, want the redirect target %q", info.FinalURL, final.URL)
	}
}

func TestInspectRejectsBadURLs(t *testing.T) {
	svc := NewMediaService()

	for _, raw := range []string{"", "not a url", "ftp://example.com/file", "/relative/path"} {
		if _, err := svc.Inspect(context.Background(), raw); !apperrors.IsValidation(err) {
			t.Errorf("Inspect(%q) should fail validation, got %v", raw, err)
		}
	}
}

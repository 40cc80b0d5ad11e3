package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const articlePage = `<!DOCTYPE html>
<html>
<head><title>Breach</title><style>body { color: red; }</style></head>
<body>
	<header><h1>Site Header</h1></header>
	<nav><a href="/">Home</a> <a href="/news">News</a></nav>
	<article>
		<h2>Attackers   breach
		vendor</h2>
		<p>The intrusion exposed customer records.</p>
		<script>trackVisitor();</script>
	</article>
	<div class="sidebar">Popular posts</div>
	<div class="related-posts">You may also like</div>
	<div class="comments">First!</div>
	<form><input name="q"> Subscribe</form>
	<footer>Copyright</footer>
</body>
</html>`

func TestExtract_RemovesDenylistedElements(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(articlePage))
	}))
	defer server.Close()

	got := NewExtractor().Extract(context.Background(), server.URL)
	want := "Attackers breach vendor The intrusion exposed customer records."
	if got != want {
		t.Errorf("Extract = %q, want %q", got, want)
	}
}

func TestExtract_Truncates(t *testing.T) {
	body := "<html><body><p>" + strings.Repeat("ñ", 50) + "</p></body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer server.Close()

	got := NewExtractor(WithMaxChars(10)).Extract(context.Background(), server.URL)
	if got != strings.Repeat("ñ", 10) {
		t.Errorf("Extract = %q, want 10 runes", got)
	}
}

func TestExtract_HTTPErrorReturnsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	if got := NewExtractor().Extract(context.Background(), server.URL); got != "" {
		t.Errorf("Extract = %q, want empty", got)
	}
}

func TestExtract_TimeoutReturnsEmpty(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	got := NewExtractor(WithTimeout(50*time.Millisecond)).Extract(context.Background(), server.URL)
	if got != "" {
		t.Errorf("Extract = %q, want empty", got)
	}
}

func TestExtract_UnreachableReturnsEmpty(t *testing.T) {
	if got := NewExtractor().Extract(context.Background(), "http://127.0.0.1:1/nothing"); got != "" {
		t.Errorf("Extract = %q, want empty", got)
	}
}

func TestExtract_CustomExclusions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div class="ad">Buy now</div><p>Real story</p></body></html>`))
	}))
	defer server.Close()

	got := NewExtractor(WithExclusions([]string{".ad"})).Extract(context.Background(), server.URL)
	if got != "Real story" {
		t.Errorf("Extract = %q, want %q", got, "Real story")
	}
}

func TestExtract_LimitsBodySize(t *testing.T) {
	page := "<html><body><p>Visible intro.</p>" + strings.Repeat("<p>padding</p>", 100) + "<p>BEYOND-CAP</p></body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer server.Close()

	got := NewExtractor(WithMaxBodyBytes(200)).Extract(context.Background(), server.URL)
	if !strings.HasPrefix(got, "Visible intro.") {
		t.Errorf("Extract = %q, want text from the start of the page", got)
	}
	if strings.Contains(got, "BEYOND-CAP") {
		t.Errorf("text past the body cap was parsed: %q", got)
	}
}

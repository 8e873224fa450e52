package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><p>hello</p></body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "hello")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestURL_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)

	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.Message, "404")
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestURL_Invalid(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "invalid URL", fetchErr.Message)
}

func TestURL_UserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer server.Close()

	_, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestExtractArticleText_PrefersArticle(t *testing.T) {
	html := `<html><body>
		<nav>menu items</nav>
		<article><p>The real   story.</p><p>More text.</p></article>
		<footer>copyright</footer>
	</body></html>`

	text, err := ExtractArticleText(html)
	require.NoError(t, err)
	assert.Equal(t, "The real story. More text.", text)
}

func TestExtractArticleText_FallsBackToBody(t *testing.T) {
	html := `<html><body><div>just a div</div><script>var x = 1;</script></body></html>`

	text, err := ExtractArticleText(html)
	require.NoError(t, err)
	assert.Equal(t, "just a div", text)
}

func TestExtractArticleText_Empty(t *testing.T) {
	_, err := ExtractArticleText("<html><body><script>x()</script></body></html>")
	assert.Error(t, err)
}

func TestArticle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><article>full text here</article></body></html>"))
	}))
	defer server.Close()

	text, err := Article(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, "full text here", text)
}

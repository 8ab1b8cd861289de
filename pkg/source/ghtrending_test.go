package source_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hunter/pkg/source"

	"github.com/stretchr/testify/require"
)

const trendingPage = `<html><body>
<article><h2><a href="/openai/codex">openai / codex</a></h2></article>
<article><h2><a href="/ggerganov/llama.cpp">ggerganov / llama.cpp</a></h2></article>
<article><h2><a href="/x/y">x / y</a></h2></article>
<article><h2><a href="/openai/codex">dup</a></h2></article>
<h2><a href="/about">not a repo</a></h2>
</body></html>`

func TestGHTrending_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(trendingPage))
	}))
	defer srv.Close()

	src := source.NewGHTrending(srv.Client(), nil, srv.URL)

	names, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"codex", "llama.cpp"}, names)
}

func TestStatic_Fetch(t *testing.T) {
	src := source.NewStatic("buzzwords", []string{"Grok", "Sora"})
	require.Equal(t, "buzzwords", src.Name())

	names, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Grok", "Sora"}, names)

	// returned slice is a copy
	names[0] = "mutated"
	again, _ := src.Fetch(context.Background())
	require.Equal(t, "Grok", again[0])
}

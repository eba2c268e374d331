package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	bearpage "bearpage/bearpage-lib"
	"bearpage/core/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResponse struct {
	status int
	body   string
}

func (r *stubResponse) StatusCode() int          { return r.status }
func (r *stubResponse) Body() io.ReadCloser      { return io.NopCloser(strings.NewReader(r.body)) }
func (r *stubResponse) Header(key string) string { return "" }

// stubWiki serves one species row, or fails every request when down is set
type stubWiki struct {
	down bool
}

func (s *stubWiki) Get(ctx context.Context, rawURL string) (interfaces.Response, error) {
	if s.down {
		return &stubResponse{status: 503}, nil
	}
	u, _ := url.Parse(rawURL)
	if u.Query().Get("action") == "query" {
		return &stubResponse{status: 200, body: `{"query":{"pages":{"1":{"imageinfo":[{"url":"https://img.example.org/sloth.jpg"}]}}}}`}, nil
	}
	body, _ := json.Marshal(map[string]interface{}{
		"parse": map[string]interface{}{"wikitext": map[string]string{
			"*": "{{Species table/row\n|name=[[Sloth bear]]\n|binomial=Melursus ursinus\n|image=Sloth.jpg\n}}",
		}},
	})
	return &stubResponse{status: 200, body: string(body)}, nil
}

func (s *stubWiki) Head(ctx context.Context, rawURL string) (interfaces.Response, error) {
	return &stubResponse{status: 200}, nil
}

// run executes the root command against a stubbed encyclopedia
func run(t *testing.T, wiki *stubWiki, args ...string) (string, error) {
	t.Helper()

	original := newClient
	newClient = func(opts ...bearpage.Option) (*bearpage.Client, error) {
		return bearpage.NewClient(append(opts, bearpage.WithHTTPClient(wiki))...)
	}
	t.Cleanup(func() { newClient = original })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "absent.yml")}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, &stubWiki{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "bearpage dev\n", out)
}

func TestSpeciesCommand(t *testing.T) {
	out, err := run(t, &stubWiki{}, "species", "--live=false")
	require.NoError(t, err)

	var list []bearpage.Species
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Sloth bear", list[0].CommonName)
	assert.Equal(t, "https://img.example.org/sloth.jpg", list[0].Image)
}

func TestSpeciesCommand_Fallback(t *testing.T) {
	out, err := run(t, &stubWiki{down: true}, "species", "--live=false")
	require.NoError(t, err)

	var list []bearpage.Species
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Len(t, list, 2)
}

func TestSpeciesCommand_LiveFails(t *testing.T) {
	_, err := run(t, &stubWiki{down: true}, "species", "--live")
	require.Error(t, err)
	assert.True(t, bearpage.IsNetworkError(err))
}

func TestEnhanceCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "index.html")
	outPath := filepath.Join(dir, "out.html")
	page := `<html><body><article><p>The sloth bear eats termites.</p></article><div class="more_bears"></div></body></html>`
	require.NoError(t, os.WriteFile(in, []byte(page), 0644))

	_, err := run(t, &stubWiki{}, "enhance", in, "-o", outPath, "--search", "sloth", "--page", "")
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	result := string(data)

	assert.Contains(t, result, `<h2><mark class="highlight">Sloth</mark> bear</h2>`)
	assert.Contains(t, result, `The <mark class="highlight">sloth</mark> bear eats termites.`)
	assert.Contains(t, result, `<em>Melursus ursinus</em>`)
}

func TestEnhanceCommand_MissingContainer(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(in, []byte(`<article>no cards here</article>`), 0644))

	_, err := run(t, &stubWiki{}, "enhance", in, "-o", filepath.Join(dir, "out.html"), "--search", "")
	require.Error(t, err)
	assert.True(t, bearpage.IsNotFoundError(err))
}

func TestEnhanceCommand_MissingFile(t *testing.T) {
	_, err := run(t, &stubWiki{}, "enhance", filepath.Join(t.TempDir(), "nope.html"), "--search", "")
	require.Error(t, err)
}

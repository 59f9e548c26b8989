package profilecache

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cattint/cattint/internal/signature"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestContentHashIgnoresCosmeticChurn(t *testing.T) {
	base := `<html> <body> <h1>Hello World</h1> </body> </html>`
	variants := []string{
		"<html>\n\t<body>\n\t\t<h1>Hello   World</h1>\n\t</body>\n</html>",
		`<html> <!-- build 1234 --> <body> <h1>Hello World</h1> </body> </html>`,
		`<html> <script>var t = Date.now()</script> <body> <h1>Hello World</h1> </body> </html>`,
	}

	want := ContentHash(base)
	for _, v := range variants {
		require.Equal(t, want, ContentHash(v), "variant: %q", v)
	}

	require.NotEqual(t, want, ContentHash(`<html> <body> <h1>Goodbye World</h1> </body> </html>`))
}

func TestContentHashShape(t *testing.T) {
	h := ContentHash("anything")
	require.Len(t, h, 16)
	require.Equal(t, h, ContentHash("anything"))
}

func TestKeyFormat(t *testing.T) {
	k := Key("https://example.com", "<html></html>")
	require.Contains(t, k, "https://example.com:")
}

func TestStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)

	b := signature.NewBuilder(nil, nil)
	sig := b.Build(`.brand{background:#58a6ff}`, "example.com", "css")

	key := Key("https://example.com", "<html></html>")
	require.NoError(t, s.Put(key, sig))

	got, err := s.Get(key)
	require.NoError(t, err)
	require.Equal(t, sig.Domain, got.Domain)
	require.Equal(t, sig.SuggestedAccent, got.SuggestedAccent)
	require.Equal(t, sig.ColorProfile.DominantHue, got.ColorProfile.DominantHue)
}

func TestStoreMiss(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get("no-such-key")
	require.True(t, errors.Is(err, ErrMiss))
}

func TestStorePutReplaces(t *testing.T) {
	s := openTestStore(t)
	b := signature.NewBuilder(nil, nil)

	key := "https://example.com:abc"
	require.NoError(t, s.Put(key, b.Build(`.brand{background:#58a6ff}`, "v1", "css")))
	require.NoError(t, s.Put(key, b.Build(`.brand{background:#635bff}`, "v2", "css")))

	got, err := s.Get(key)
	require.NoError(t, err)
	require.Equal(t, "v2", got.Domain)
}

func TestGetOrBuildFillsOnce(t *testing.T) {
	s := openTestStore(t)
	b := signature.NewBuilder(nil, nil)

	builds := 0
	build := func() (*signature.SiteSignature, error) {
		builds++
		return b.Build(`.brand{background:#58a6ff}`, "example.com", "html"), nil
	}

	html := `<html><body></body></html>`
	first, err := s.GetOrBuild("https://example.com", html, build)
	require.NoError(t, err)
	second, err := s.GetOrBuild("https://example.com", html, build)
	require.NoError(t, err)

	require.Equal(t, 1, builds)
	require.Equal(t, first.SuggestedAccent, second.SuggestedAccent)
}

func TestGetOrBuildPropagatesBuildError(t *testing.T) {
	s := openTestStore(t)

	wantErr := errors.New("fetch failed")
	_, err := s.GetOrBuild("https://example.com", "<html></html>", func() (*signature.SiteSignature, error) {
		return nil, wantErr
	})
	require.ErrorIs(t, err, wantErr)

	// A failed build must not poison the cache.
	_, err = s.Get(Key("https://example.com", "<html></html>"))
	require.ErrorIs(t, err, ErrMiss)
}

// Package profilecache persists site signatures keyed by URL plus a
// content hash, so repeat analyses of unchanged pages skip the
// pipeline entirely.
package profilecache

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
)

var (
	scriptRe      = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	htmlCommentRe = regexp.MustCompile(`(?s)<!--.*?-->`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// ContentHash fingerprints HTML for cache-key stability: scripts and
// comments are stripped and whitespace collapsed before hashing, so
// cosmetic churn does not invalidate the cache. FNV-1a is fast and
// non-cryptographic; never use this for integrity checks.
func ContentHash(html string) string {
	canonical := scriptRe.ReplaceAllString(html, "")
	canonical = htmlCommentRe.ReplaceAllString(canonical, "")
	canonical = whitespaceRe.ReplaceAllString(canonical, " ")
	canonical = strings.TrimSpace(canonical)

	h := fnv.New64a()
	h.Write([]byte(canonical))
	return fmt.Sprintf("%016x", h.Sum64())
}

// Key builds the cache key for one (url, html) pair.
func Key(url, html string) string {
	return url + ":" + ContentHash(html)
}

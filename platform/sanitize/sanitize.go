// Package sanitize neutralizes executable markup in user-provided text
// before it reaches the store. This is a defense-in-depth measure; the
// frontend must still escape output.
package sanitize

import "regexp"

var (
	// Dangerous elements are removed together with their content.
	elementRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script[^>]*>`),
		regexp.MustCompile(`(?is)<iframe\b[^>]*>.*?</iframe[^>]*>`),
		regexp.MustCompile(`(?is)<object\b[^>]*>.*?</object[^>]*>`),
		regexp.MustCompile(`(?is)<embed\b[^>]*>.*?</embed[^>]*>`),
	}

	// Orphan open or close tags of the same elements, left behind when a
	// payload is split across fields or unterminated.
	orphanTagRegex = regexp.MustCompile(`(?i)</?(?:script|iframe|object|embed)\b[^>]*>`)

	// javascript: URI scheme, with optional whitespace smuggled in.
	jsURIRegex = regexp.MustCompile(`(?i)j\s*a\s*v\s*a\s*s\s*c\s*r\s*i\s*p\s*t\s*:`)

	// Inline event handler attributes: onload=, onclick="...", etc.
	eventAttrRegex = regexp.MustCompile(`(?i)\bon\w+\s*=\s*(?:"[^"]*"|'[^']*'|[^\s>]+)`)
)

// maxPasses bounds the fixpoint loop. Nested payloads collapse within a
// couple of passes; anything deeper is pathological input.
const maxPasses = 10

// Text removes script/iframe/object/embed elements, javascript: URI
// prefixes, and inline event-handler attributes from s. It only removes
// characters, so field length limits validated beforehand still hold.
// Text runs to a fixpoint and is therefore idempotent.
func Text(s string) string {
	for i := 0; i < maxPasses; i++ {
		next := stripOnce(s)
		if next == s {
			return s
		}
		s = next
	}
	return s
}

func stripOnce(s string) string {
	for _, re := range elementRegexes {
		s = re.ReplaceAllString(s, "")
	}
	s = orphanTagRegex.ReplaceAllString(s, "")
	s = jsURIRegex.ReplaceAllString(s, "")
	s = eventAttrRegex.ReplaceAllString(s, "")
	return s
}

// TextPtr sanitizes an optional string in place of nil handling at call sites.
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	result := Text(*s)
	return &result
}

// Slice sanitizes every element of a string slice, returning a new slice.
func Slice(values []string) []string {
	if values == nil {
		return nil
	}
	results := make([]string, len(values))
	for i, v := range values {
		results[i] = Text(v)
	}
	return results
}

package export

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// defaultFilename is used when sanitizing leaves nothing usable.
const defaultFilename = "card"

var (
	nonFilenameRuns = regexp.MustCompile(`[^A-Za-z0-9-_]+`)
	hyphenRuns      = regexp.MustCompile(`-{2,}`)

	// NFD splits letters from their combining marks so the marks can be
	// dropped, turning "é" into "e" instead of "-".
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// SanitizeFilename turns an arbitrary template name into a safe lowercase
// filename and appends ext (with leading dot) when not already present.
func SanitizeFilename(name, ext string) string {
	s, _, err := transform.String(stripMarks, name)
	if err != nil {
		s = name
	}
	s = nonFilenameRuns.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	s = strings.ToLower(s)
	if s == "" {
		s = defaultFilename
	}
	if !strings.HasSuffix(s, ext) {
		s += ext
	}
	return s
}

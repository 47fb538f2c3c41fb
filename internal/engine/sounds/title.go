package sounds

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// musicPathMarker is the URL shape the store accepts for sounds.
const musicPathMarker = "tiktok.com/music/"

// trailingID matches the numeric ID suffix TikTok appends to sound slugs.
var trailingID = regexp.MustCompile(`\s+\d+$`)

// ValidSoundURL reports whether raw looks like a TikTok sound URL.
// Heuristic shape check (marker plus at least one hyphen), not a full
// URL grammar.
func ValidSoundURL(raw string) bool {
	return strings.Contains(raw, musicPathMarker) && strings.Contains(raw, "-")
}

// DeriveTitle extracts a human-readable title from a sound URL: the path
// segment after /music/ up to any query string, percent-decoded, hyphens
// replaced with spaces, the numeric ID suffix stripped, and each word
// capitalized.
func DeriveTitle(raw string) string {
	idx := strings.Index(raw, "/music/")
	if idx < 0 {
		return "Unknown Sound"
	}
	seg := raw[idx+len("/music/"):]
	if q := strings.IndexByte(seg, '?'); q >= 0 {
		seg = seg[:q]
	}
	if dec, err := url.PathUnescape(seg); err == nil {
		seg = dec
	}
	title := strings.ReplaceAll(seg, "-", " ")
	title = trailingID.ReplaceAllString(title, "")
	title = strings.TrimSpace(capitalizeWords(title))
	if title == "" {
		return "Unknown Sound"
	}
	return title
}

func capitalizeWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	boundary := true
	for _, r := range s {
		if boundary && unicode.IsLetter(r) {
			r = unicode.ToUpper(r)
		}
		boundary = !unicode.IsLetter(r) && !unicode.IsDigit(r)
		b.WriteRune(r)
	}
	return b.String()
}

package engine

import (
	"github.com/anatolykoptev/go-kit/strutil"
)

// UserAgentBot identifies this tool to the Last.fm API.
const UserAgentBot = "SoundAnalysis/1.0"

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Safe for UTF-8 (sound titles carry arbitrary user text).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

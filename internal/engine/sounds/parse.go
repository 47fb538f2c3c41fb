package sounds

import (
	"regexp"
	"strconv"
	"strings"
)

// HashtagCount is one (hashtag, usage count) pair attached to a sound.
type HashtagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Block is the structured fragment produced by ParseBlock.
type Block struct {
	Song     string         `json:"song"`
	Artist   string         `json:"artist"`
	Creators []string       `json:"creators"`
	Hashtags []HashtagCount `json:"hashtags"`
}

// Section markers recognized by ParseBlock. Matched case-insensitively,
// each on its own line; SONG: carries its value inline.
const (
	markerSong     = "SONG:"
	markerCreators = "CREATORS:"
	markerHashtags = "HASHTAGS:"
)

// hashtagLine matches "#tag:count" with an optional count.
var hashtagLine = regexp.MustCompile(`^#([^:]+?)(?::(\d+))?$`)

// ParseBlock converts pasted collector output into a structured fragment.
// The format is three optional sections introduced by SONG:, CREATORS:
// and HASHTAGS: lines. A bare @handle line before any marker is accepted
// as a creator (older collector builds emitted those).
//
// ParseBlock is total: empty or malformed input yields the default-valued
// fragment, never an error.
func ParseBlock(text string) Block {
	out := Block{Song: "Unknown Song", Artist: "Unknown Artist"}
	section := ""
	sawMarker := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, markerSong):
			if val := strings.TrimSpace(line[len(markerSong):]); val != "" {
				out.Song = val
				if artist, track, ok := SplitArtistTrack(val); ok {
					out.Artist, out.Song = artist, track
				}
			}
			section = ""
			sawMarker = true
		case upper == markerCreators:
			section = "creators"
			sawMarker = true
		case upper == markerHashtags:
			section = "hashtags"
			sawMarker = true
		case section == "creators":
			if handle := strings.TrimPrefix(line, "@"); handle != "" {
				out.Creators = append(out.Creators, handle)
			}
		case section == "hashtags":
			if hc, ok := ParseHashtagLine(line); ok {
				out.Hashtags = append(out.Hashtags, hc)
			}
		case !sawMarker && strings.HasPrefix(line, "@") && len(line) > 1:
			out.Creators = append(out.Creators, line[1:])
		}
	}
	return out
}

// ParseHashtagLine parses a single "#tag:count" line. The count is
// optional and defaults to 1; lines not starting with # don't parse.
func ParseHashtagLine(line string) (HashtagCount, bool) {
	m := hashtagLine.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return HashtagCount{}, false
	}
	count := 1
	if m[2] != "" {
		count, _ = strconv.Atoi(m[2])
	}
	return HashtagCount{Tag: m[1], Count: count}, true
}

// SplitArtistTrack splits an "Artist - Track" title on the first " - ".
// ok is false when the title has no separator; track then holds the
// whole input.
func SplitArtistTrack(title string) (artist, track string, ok bool) {
	i := strings.Index(title, " - ")
	if i < 0 {
		return "", strings.TrimSpace(title), false
	}
	return strings.TrimSpace(title[:i]), strings.TrimSpace(title[i+len(" - "):]), true
}

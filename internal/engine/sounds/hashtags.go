package sounds

import (
	"sort"
	"strings"
)

// HashtagRank is one entry in the ranked global hashtag list.
type HashtagRank struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// HashtagResult aggregates hashtag usage across all sounds.
//
// Keys are the exact hashtag text: aggregation is case-sensitive, so
// #Dance and #dance stay separate entries. That reproduces the observed
// collector behavior; normalization would change result cardinality.
type HashtagResult struct {
	Totals      map[string]int
	SoundTitles map[string][]string       // distinct contributing titles per tag
	Ranked      []HashtagRank             // count desc, first-seen order on ties
	PerSound    map[string][]HashtagCount // title -> its hashtag pairs
}

// AggregateHashtags sums per-sound hashtag counts into a global ranking.
// Unlike creator-sound tracking, the per-tag title list is deduplicated.
func AggregateHashtags(all []*Sound) HashtagResult {
	res := HashtagResult{
		Totals:      make(map[string]int),
		SoundTitles: make(map[string][]string),
		PerSound:    make(map[string][]HashtagCount),
	}

	var firstSeen []string
	seenTitle := make(map[string]map[string]bool)

	for _, snd := range all {
		if len(snd.Hashtags) == 0 {
			continue
		}
		res.PerSound[snd.Title] = append([]HashtagCount(nil), snd.Hashtags...)
		for _, hc := range snd.Hashtags {
			if _, ok := res.Totals[hc.Tag]; !ok {
				firstSeen = append(firstSeen, hc.Tag)
				seenTitle[hc.Tag] = make(map[string]bool)
			}
			res.Totals[hc.Tag] += hc.Count
			if !seenTitle[hc.Tag][snd.Title] {
				seenTitle[hc.Tag][snd.Title] = true
				res.SoundTitles[hc.Tag] = append(res.SoundTitles[hc.Tag], snd.Title)
			}
		}
	}

	ranked := make([]HashtagRank, 0, len(firstSeen))
	for _, tag := range firstSeen {
		ranked = append(ranked, HashtagRank{Tag: tag, Count: res.Totals[tag]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	res.Ranked = ranked
	return res
}

// TopN returns the display window of the ranking. The full map stays
// available for export.
func (r HashtagResult) TopN(n int) []HashtagRank {
	if n <= 0 || n >= len(r.Ranked) {
		return r.Ranked
	}
	return r.Ranked[:n]
}

// CategoryScore is one insight bucket with its accumulated score.
type CategoryScore struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

// categoryKeywords is the fixed insight taxonomy. Matching is heuristic;
// the only guarantee is determinism for a fixed input.
var categoryKeywords = []struct {
	label    string
	keywords []string
}{
	{"Dance/Movement", []string{"dance", "dancing", "choreo", "choreography", "moves", "footwork"}},
	{"Comedy/Entertainment", []string{"funny", "comedy", "humor", "joke", "prank", "meme"}},
	{"Music/Audio", []string{"music", "song", "audio", "sound", "remix", "beat"}},
	{"Viral/Trending", []string{"viral", "trending", "trend", "fyp", "foryou", "challenge"}},
	{"Lifestyle", []string{"life", "daily", "routine", "vlog", "aesthetic"}},
	{"Fitness/Sports", []string{"gym", "fitness", "workout", "sport", "training"}},
	{"Food/Cooking", []string{"food", "cooking", "recipe", "baking", "chef"}},
	{"Fashion/Beauty", []string{"fashion", "makeup", "beauty", "outfit", "style", "skincare"}},
}

// ScoreCategories buckets ranked hashtags into descriptive categories.
// A keyword matches when either string contains the other, ignoring case;
// each hashtag contributes its aggregate count once per matching keyword.
func ScoreCategories(ranked []HashtagRank) []CategoryScore {
	scores := make(map[string]int)
	for _, hr := range ranked {
		tag := strings.ToLower(hr.Tag)
		for _, cat := range categoryKeywords {
			matches := 0
			for _, kw := range cat.keywords {
				if strings.Contains(tag, kw) || strings.Contains(kw, tag) {
					matches++
				}
			}
			if matches > 0 {
				scores[cat.label] += hr.Count * matches
			}
		}
	}

	out := make([]CategoryScore, 0, len(scores))
	for label, score := range scores {
		out = append(out, CategoryScore{Label: label, Score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Label < out[j].Label
	})
	return out
}

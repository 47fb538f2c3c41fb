package sounds

import "sort"

// CreatorRank is one entry in the ranked overlap list.
type CreatorRank struct {
	Handle string `json:"handle"`
	Count  int    `json:"count"`
}

// OverlapResult is the output of AnalyzeOverlap. It is recomputed from
// the store snapshot on every run and never persisted.
type OverlapResult struct {
	CreatorCounts       map[string]int
	CreatorSounds       map[string][]string
	Ranked              []CreatorRank // count >= 2, count desc then handle asc
	TotalSoundsAnalyzed int
}

// AnalyzeOverlap counts creator appearances across all sounds that carry
// data. This is appearance counting, not set membership: a handle listed
// twice under one sound counts twice, and the sound's title is appended
// to its list once per occurrence. Single pass, no I/O, deterministic.
func AnalyzeOverlap(all []*Sound) OverlapResult {
	res := OverlapResult{
		CreatorCounts: make(map[string]int),
		CreatorSounds: make(map[string][]string),
	}

	for _, snd := range all {
		if len(snd.Creators) == 0 {
			continue
		}
		res.TotalSoundsAnalyzed++
		for _, handle := range snd.Creators {
			res.CreatorCounts[handle]++
			res.CreatorSounds[handle] = append(res.CreatorSounds[handle], snd.Title)
		}
	}

	ranked := make([]CreatorRank, 0, len(res.CreatorCounts))
	for handle, count := range res.CreatorCounts {
		if count >= 2 {
			ranked = append(ranked, CreatorRank{Handle: handle, Count: count})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Handle < ranked[j].Handle
	})
	res.Ranked = ranked
	return res
}

// RankedAtLeast filters the ranked list to creators appearing in at least
// min sounds. The floor stays at 2: single-sound creators are excluded
// from rankings by contract.
func (r OverlapResult) RankedAtLeast(min int) []CreatorRank {
	if min < 2 {
		min = 2
	}
	out := make([]CreatorRank, 0, len(r.Ranked))
	for _, cr := range r.Ranked {
		if cr.Count >= min {
			out = append(out, cr)
		}
	}
	return out
}

// UniqueCreators reports the number of distinct handles seen, including
// single-sound creators that the ranked list excludes.
func (r OverlapResult) UniqueCreators() int {
	return len(r.CreatorCounts)
}

package sounds

import (
	"reflect"
	"testing"
)

func soundWith(title string, creators ...string) *Sound {
	return &Sound{URL: "https://www.tiktok.com/music/" + title + "-1", Title: title, Creators: creators}
}

func TestAnalyzeOverlap(t *testing.T) {
	all := []*Sound{
		soundWith("One", "alice", "bob", "carol"),
		soundWith("Two", "alice", "bob"),
		soundWith("Three", "alice", "dave"),
		{URL: "https://www.tiktok.com/music/empty-1", Title: "Empty"},
	}

	res := AnalyzeOverlap(all)

	if res.TotalSoundsAnalyzed != 3 {
		t.Errorf("TotalSoundsAnalyzed = %d, want 3", res.TotalSoundsAnalyzed)
	}
	if res.UniqueCreators() != 4 {
		t.Errorf("UniqueCreators = %d, want 4", res.UniqueCreators())
	}

	want := []CreatorRank{{"alice", 3}, {"bob", 2}}
	if !reflect.DeepEqual(res.Ranked, want) {
		t.Errorf("Ranked = %v, want %v", res.Ranked, want)
	}
	if got := res.CreatorSounds["alice"]; !reflect.DeepEqual(got, []string{"One", "Two", "Three"}) {
		t.Errorf("CreatorSounds[alice] = %v", got)
	}

	// Same snapshot, same result, order included.
	again := AnalyzeOverlap(all)
	if !reflect.DeepEqual(res, again) {
		t.Error("repeated analysis of the same snapshot differs")
	}
}

func TestAnalyzeOverlapCountsAppearances(t *testing.T) {
	// A handle listed twice under one sound counts twice.
	all := []*Sound{
		soundWith("One", "alice", "alice"),
		soundWith("Two", "bob"),
	}
	res := AnalyzeOverlap(all)
	if res.CreatorCounts["alice"] != 2 {
		t.Errorf("CreatorCounts[alice] = %d, want 2", res.CreatorCounts["alice"])
	}
	if got := res.CreatorSounds["alice"]; !reflect.DeepEqual(got, []string{"One", "One"}) {
		t.Errorf("CreatorSounds[alice] = %v", got)
	}
	if len(res.Ranked) != 1 || res.Ranked[0].Handle != "alice" {
		t.Errorf("Ranked = %v", res.Ranked)
	}
}

func TestAnalyzeOverlapTieOrder(t *testing.T) {
	all := []*Sound{
		soundWith("One", "zed", "ann"),
		soundWith("Two", "zed", "ann"),
	}
	res := AnalyzeOverlap(all)
	want := []CreatorRank{{"ann", 2}, {"zed", 2}}
	if !reflect.DeepEqual(res.Ranked, want) {
		t.Errorf("Ranked = %v, want %v (ties break by handle)", res.Ranked, want)
	}
}

func TestAnalyzeOverlapEmpty(t *testing.T) {
	res := AnalyzeOverlap(nil)
	if res.TotalSoundsAnalyzed != 0 || len(res.Ranked) != 0 || res.UniqueCreators() != 0 {
		t.Errorf("empty input: %+v", res)
	}
}

func TestRankedAtLeast(t *testing.T) {
	all := []*Sound{
		soundWith("One", "a", "b", "c"),
		soundWith("Two", "a", "b"),
		soundWith("Three", "a"),
	}
	res := AnalyzeOverlap(all)

	if got := res.RankedAtLeast(3); len(got) != 1 || got[0].Handle != "a" {
		t.Errorf("RankedAtLeast(3) = %v", got)
	}
	// Floor clamps to 2: single-sound creators never rank.
	if got := res.RankedAtLeast(0); len(got) != 2 {
		t.Errorf("RankedAtLeast(0) = %v, want 2 entries", got)
	}
	if got := res.RankedAtLeast(10); len(got) != 0 {
		t.Errorf("RankedAtLeast(10) = %v, want empty", got)
	}
}

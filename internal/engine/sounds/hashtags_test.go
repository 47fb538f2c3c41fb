package sounds

import (
	"reflect"
	"testing"
)

func soundWithTags(title string, tags ...HashtagCount) *Sound {
	return &Sound{URL: "https://www.tiktok.com/music/" + title + "-1", Title: title, Hashtags: tags}
}

func TestAggregateHashtags(t *testing.T) {
	all := []*Sound{
		soundWithTags("One", HashtagCount{"dance", 5}, HashtagCount{"fyp", 2}),
		soundWithTags("Two", HashtagCount{"dance", 3}, HashtagCount{"viral", 7}),
		{URL: "https://www.tiktok.com/music/bare-1", Title: "Bare"},
	}

	res := AggregateHashtags(all)

	if res.Totals["dance"] != 8 || res.Totals["fyp"] != 2 || res.Totals["viral"] != 7 {
		t.Errorf("Totals = %v", res.Totals)
	}
	want := []HashtagRank{{"dance", 8}, {"viral", 7}, {"fyp", 2}}
	if !reflect.DeepEqual(res.Ranked, want) {
		t.Errorf("Ranked = %v, want %v", res.Ranked, want)
	}
	if got := res.SoundTitles["dance"]; !reflect.DeepEqual(got, []string{"One", "Two"}) {
		t.Errorf("SoundTitles[dance] = %v", got)
	}
	if len(res.PerSound) != 2 {
		t.Errorf("PerSound has %d entries, want 2", len(res.PerSound))
	}
}

func TestAggregateHashtagsCaseSensitive(t *testing.T) {
	all := []*Sound{
		soundWithTags("One", HashtagCount{"Dance", 5}),
		soundWithTags("Two", HashtagCount{"dance", 3}),
	}
	res := AggregateHashtags(all)
	if res.Totals["Dance"] != 5 || res.Totals["dance"] != 3 {
		t.Errorf("Totals = %v, want Dance and dance kept separate", res.Totals)
	}
}

func TestAggregateHashtagsTitleDedup(t *testing.T) {
	// Same tag twice under one sound: count sums, title listed once.
	all := []*Sound{
		soundWithTags("One", HashtagCount{"fyp", 1}, HashtagCount{"fyp", 4}),
	}
	res := AggregateHashtags(all)
	if res.Totals["fyp"] != 5 {
		t.Errorf("Totals[fyp] = %d, want 5", res.Totals["fyp"])
	}
	if got := res.SoundTitles["fyp"]; !reflect.DeepEqual(got, []string{"One"}) {
		t.Errorf("SoundTitles[fyp] = %v, want [One]", got)
	}
}

func TestAggregateHashtagsTieOrder(t *testing.T) {
	all := []*Sound{
		soundWithTags("One", HashtagCount{"zeta", 4}, HashtagCount{"alpha", 4}),
	}
	res := AggregateHashtags(all)
	want := []HashtagRank{{"zeta", 4}, {"alpha", 4}}
	if !reflect.DeepEqual(res.Ranked, want) {
		t.Errorf("Ranked = %v, want first-seen order on ties", res.Ranked)
	}
}

func TestTopN(t *testing.T) {
	res := HashtagResult{Ranked: []HashtagRank{{"a", 3}, {"b", 2}, {"c", 1}}}
	if got := res.TopN(2); len(got) != 2 || got[1].Tag != "b" {
		t.Errorf("TopN(2) = %v", got)
	}
	if got := res.TopN(0); len(got) != 3 {
		t.Errorf("TopN(0) = %v, want full list", got)
	}
	if got := res.TopN(10); len(got) != 3 {
		t.Errorf("TopN(10) = %v, want full list", got)
	}
}

func TestScoreCategories(t *testing.T) {
	ranked := []HashtagRank{
		{"dancechallenge", 10}, // dance + challenge
		{"gym", 4},
		{"unrelatable", 1},
	}
	got := ScoreCategories(ranked)

	scores := make(map[string]int, len(got))
	for _, cs := range got {
		scores[cs.Label] = cs.Score
	}
	if scores["Dance/Movement"] != 10 {
		t.Errorf("Dance/Movement = %d, want 10", scores["Dance/Movement"])
	}
	if scores["Viral/Trending"] != 10 {
		t.Errorf("Viral/Trending = %d, want 10", scores["Viral/Trending"])
	}
	if scores["Fitness/Sports"] != 4 {
		t.Errorf("Fitness/Sports = %d, want 4", scores["Fitness/Sports"])
	}
	if _, ok := scores["Food/Cooking"]; ok {
		t.Error("Food/Cooking scored with no matching hashtags")
	}

	// Deterministic order: score desc, label asc on ties.
	for i := 1; i < len(got); i++ {
		if got[i-1].Score < got[i].Score {
			t.Errorf("order violated at %d: %v", i, got)
		}
		if got[i-1].Score == got[i].Score && got[i-1].Label > got[i].Label {
			t.Errorf("tie order violated at %d: %v", i, got)
		}
	}
}

func TestScoreCategoriesSubstringBothWays(t *testing.T) {
	// Short tags match when contained in a keyword too.
	got := ScoreCategories([]HashtagRank{{"chore", 2}})
	if len(got) != 1 || got[0].Label != "Dance/Movement" {
		t.Fatalf("ScoreCategories = %v", got)
	}
	// "chore" is a substring of both choreo and choreography.
	if got[0].Score != 4 {
		t.Errorf("Score = %d, want 4", got[0].Score)
	}
}

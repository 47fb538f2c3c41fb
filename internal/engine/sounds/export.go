package sounds

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// profileURLPrefix is the template for creator profile links.
const profileURLPrefix = "https://www.tiktok.com/@"

// ProfileLink returns the public profile URL for a creator handle.
func ProfileLink(handle string) string {
	return profileURLPrefix + handle
}

// OverlapPercent is the rounded share of analyzed sounds a creator
// appeared in.
func OverlapPercent(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(count) / float64(total)))
}

// ReliabilityScore labels a creator's overlap share. Thresholds apply to
// the unrounded percentage.
func ReliabilityScore(count, total int) string {
	if total <= 0 {
		return "Low"
	}
	score := 100 * float64(count) / float64(total)
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Very Good"
	case score >= 40:
		return "Good"
	case score >= 25:
		return "Fair"
	default:
		return "Low"
	}
}

// OverlappingCreatorsCSV renders the ranked creator list as CSV, one row
// per creator appearing in at least minSounds sounds.
func OverlappingCreatorsCSV(res OverlapResult, minSounds int) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := []string{"Rank", "Username", "TikTok Link", "Sound Count", "Overlap Percentage", "Sounds Appeared In"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for i, cr := range res.RankedAtLeast(minSounds) {
		row := []string{
			strconv.Itoa(i + 1),
			cr.Handle,
			ProfileLink(cr.Handle),
			strconv.Itoa(cr.Count),
			fmt.Sprintf("%d%%", OverlapPercent(cr.Count, res.TotalSoundsAnalyzed)),
			strings.Join(res.CreatorSounds[cr.Handle], ", "),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// AllCreatorsCSV renders one row per creator appearance across all sounds
// with data, regardless of overlap.
func AllCreatorsCSV(all []*Sound) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"Username", "TikTok Link", "Sound Title", "Sound URL"}); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, snd := range all {
		for _, handle := range snd.Creators {
			row := []string{handle, ProfileLink(handle), snd.Title, snd.URL}
			if err := w.Write(row); err != nil {
				return "", fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ExportMetadata describes an export document.
type ExportMetadata struct {
	ExportDate          string `json:"exportDate"`
	Description         string `json:"description"`
	TotalSoundsAnalyzed int    `json:"totalSoundsAnalyzed"`
	TotalUniqueCreators int    `json:"totalUniqueCreators"`
	OverlappingCreators int    `json:"overlappingCreators"`
	GeneratedBy         string `json:"generatedBy"`
	LastFmAPIUsed       bool   `json:"lastFmApiUsed"`
}

// ExportSound is a sound entry in the export document.
type ExportSound struct {
	URL           string         `json:"url"`
	Title         string         `json:"title"`
	OriginalTitle string         `json:"originalTitle"`
	Genre         string         `json:"genre"`
	CreatorCount  int            `json:"creatorCount"`
	HashtagCount  int            `json:"hashtagCount"`
	Creators      []string       `json:"creators"`
	Hashtags      []HashtagCount `json:"hashtags"`
}

// ExportCreator is an overlapping creator with its derived fields.
type ExportCreator struct {
	Username          string   `json:"username"`
	TikTokLink        string   `json:"tiktokLink"`
	SoundCount        int      `json:"soundCount"`
	OverlapPercentage int      `json:"overlapPercentage"`
	SoundsAppearedIn  []string `json:"soundsAppearedIn"`
	ReliabilityScore  string   `json:"reliabilityScore"`
}

// ExportDocument is the nested JSON export shape.
type ExportDocument struct {
	Metadata        ExportMetadata `json:"metadata"`
	Sounds          []ExportSound  `json:"sounds"`
	CreatorAnalysis struct {
		OverlappingCreators []ExportCreator `json:"overlappingCreators"`
	} `json:"creatorAnalysis"`
	HashtagAnalysis struct {
		GlobalHashtags        []HashtagRank             `json:"globalHashtags"`
		TopCategories         []CategoryScore           `json:"topCategories,omitempty"`
		SoundSpecificHashtags map[string][]HashtagCount `json:"soundSpecificHashtags"`
	} `json:"hashtagAnalysis"`
}

// ExportCreators derives the per-creator export entries from an overlap
// result, filtered to at least minSounds.
func ExportCreators(res OverlapResult, minSounds int) []ExportCreator {
	ranked := res.RankedAtLeast(minSounds)
	out := make([]ExportCreator, 0, len(ranked))
	for _, cr := range ranked {
		out = append(out, ExportCreator{
			Username:          cr.Handle,
			TikTokLink:        ProfileLink(cr.Handle),
			SoundCount:        cr.Count,
			OverlapPercentage: OverlapPercent(cr.Count, res.TotalSoundsAnalyzed),
			SoundsAppearedIn:  res.CreatorSounds[cr.Handle],
			ReliabilityScore:  ReliabilityScore(cr.Count, res.TotalSoundsAnalyzed),
		})
	}
	return out
}

// BuildExport assembles the full export document from a store snapshot
// and the analysis results computed over it.
func BuildExport(all []*Sound, ov OverlapResult, ht HashtagResult, cats []CategoryScore, lastFmUsed bool, now time.Time) ExportDocument {
	doc := ExportDocument{
		Metadata: ExportMetadata{
			ExportDate:          now.UTC().Format(time.RFC3339),
			Description:         "Sound analysis with creator overlaps, hashtags and genres",
			TotalSoundsAnalyzed: ov.TotalSoundsAnalyzed,
			TotalUniqueCreators: ov.UniqueCreators(),
			OverlappingCreators: len(ov.Ranked),
			GeneratedBy:         "Sound Analysis Tool",
			LastFmAPIUsed:       lastFmUsed,
		},
	}
	for _, snd := range all {
		genre := snd.Genre
		if genre == "" {
			genre = "Unknown"
		}
		doc.Sounds = append(doc.Sounds, ExportSound{
			URL:           snd.URL,
			Title:         snd.Title,
			OriginalTitle: snd.OriginalTitle,
			Genre:         genre,
			CreatorCount:  len(snd.Creators),
			HashtagCount:  len(snd.Hashtags),
			Creators:      snd.Creators,
			Hashtags:      snd.Hashtags,
		})
	}
	doc.CreatorAnalysis.OverlappingCreators = ExportCreators(ov, 2)
	doc.HashtagAnalysis.GlobalHashtags = ht.Ranked
	doc.HashtagAnalysis.TopCategories = cats
	doc.HashtagAnalysis.SoundSpecificHashtags = ht.PerSound
	return doc
}

// AnalysisJSON pretty-prints the export document.
func AnalysisJSON(doc ExportDocument) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal export: %w", err)
	}
	return string(data), nil
}

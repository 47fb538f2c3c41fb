package soundserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/SalmonTech123/Sound-Analysis/internal/engine"
	"github.com/SalmonTech123/Sound-Analysis/internal/engine/sounds"
	"github.com/SalmonTech123/Sound-Analysis/internal/engine/sources"
)

// SoundAnalyzeInput is the input for sound_analyze.
type SoundAnalyzeInput struct {
	MinSounds   int  `json:"minSounds,omitempty"`   // ranked-list floor; 2 is the minimum and the default
	FetchGenres bool `json:"fetchGenres,omitempty"` // enrich sounds via Last.fm before reporting
}

// SoundAnalyzeOutput is the output for sound_analyze.
type SoundAnalyzeOutput struct {
	TotalSounds         int                    `json:"totalSounds"`
	SoundsAnalyzed      int                    `json:"soundsAnalyzed"`
	UniqueCreators      int                    `json:"uniqueCreators"`
	OverlappingCreators []sounds.ExportCreator `json:"overlappingCreators"`
	TopHashtags         []sounds.HashtagRank   `json:"topHashtags"`
	TopCategories       []sounds.CategoryScore `json:"topCategories,omitempty"`
	Summary             string                 `json:"summary"`
}

func registerSoundAnalyze(server *mcp.Server, store *sounds.Store, genres *sources.GenreResolver) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "sound_analyze",
		Description: "Run the creator overlap and hashtag analysis over all sounds with data. Returns creators ranked by how many sounds they appear under (minimum 2), aggregate hashtag counts, and insight categories. Optionally fetches genres from Last.fm first (rate-limited, best-effort).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input SoundAnalyzeInput) (*mcp.CallToolResult, *SoundAnalyzeOutput, error) {
		snapshot := store.Sounds()
		withData := 0
		for _, snd := range snapshot {
			if len(snd.Creators) > 0 {
				withData++
			}
		}
		if withData == 0 {
			return nil, nil, errors.New("no sounds with creator data; add data with sound_set_data first")
		}

		if input.FetchGenres {
			if !genres.Enabled() {
				slog.Warn("sound_analyze: genre fetch requested but no API key configured")
			} else {
				for _, snd := range snapshot {
					if len(snd.Creators) == 0 || snd.Genre != "" {
						continue
					}
					if g := genres.Resolve(ctx, snd.Title); g != "" {
						if err := store.SetGenre(snd.URL, g); err == nil {
							snd.Genre = g
						}
						slog.Info("genre resolved", slog.String("title", snd.Title), slog.String("genre", g))
					}
				}
			}
		}

		ov := sounds.AnalyzeOverlap(snapshot)
		ht := sounds.AggregateHashtags(snapshot)
		cats := sounds.ScoreCategories(ht.Ranked)
		engine.IncrAnalysesRun()

		out := &SoundAnalyzeOutput{
			TotalSounds:         store.Len(),
			SoundsAnalyzed:      ov.TotalSoundsAnalyzed,
			UniqueCreators:      ov.UniqueCreators(),
			OverlappingCreators: sounds.ExportCreators(ov, input.MinSounds),
			TopHashtags:         ht.TopN(engine.Cfg.TopHashtagLimit),
			TopCategories:       cats,
			Summary: fmt.Sprintf("Analyzed %d sounds: %d unique creators, %d appearing across multiple sounds.",
				ov.TotalSoundsAnalyzed, ov.UniqueCreators(), len(ov.Ranked)),
		}
		return nil, out, nil
	})
}

package soundserver

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/SalmonTech123/Sound-Analysis/internal/engine"
	"github.com/SalmonTech123/Sound-Analysis/internal/engine/sounds"
	"github.com/SalmonTech123/Sound-Analysis/internal/engine/sources"
)

// ExportInput is the input for the CSV export tools.
type ExportInput struct {
	MinSounds int `json:"minSounds,omitempty"` // ranked-list floor; 2 is the minimum and the default
}

// ExportResult carries a rendered export document.
type ExportResult struct {
	Filename string `json:"filename"`
	Format   string `json:"format"`
	Rows     int    `json:"rows,omitempty"`
	Content  string `json:"content"`
}

func registerExportOverlapping(server *mcp.Server, store *sounds.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "sound_export_overlapping",
		Description: "Export the ranked overlapping creators as CSV: rank, handle, profile link, sound count, overlap percentage, and the sounds each creator appeared in.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, *ExportResult, error) {
		ov := sounds.AnalyzeOverlap(store.Sounds())
		ranked := ov.RankedAtLeast(input.MinSounds)
		if len(ranked) == 0 {
			return nil, nil, errors.New("no overlapping creators to export; add data and retry")
		}
		content, err := sounds.OverlappingCreatorsCSV(ov, input.MinSounds)
		if err != nil {
			return nil, nil, err
		}
		engine.IncrExportsGenerated()
		return nil, &ExportResult{
			Filename: "overlapping-creators.csv",
			Format:   "csv",
			Rows:     len(ranked),
			Content:  content,
		}, nil
	})
}

// ExportAllInput is the (empty) input for sound_export_all_creators.
type ExportAllInput struct{}

func registerExportAllCreators(server *mcp.Server, store *sounds.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "sound_export_all_creators",
		Description: "Export every creator appearance as CSV, one row per (creator, sound) pair, including single-sound creators.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ ExportAllInput) (*mcp.CallToolResult, *ExportResult, error) {
		snapshot := store.Sounds()
		rows := 0
		for _, snd := range snapshot {
			rows += len(snd.Creators)
		}
		if rows == 0 {
			return nil, nil, errors.New("no creators to export; add data and retry")
		}
		content, err := sounds.AllCreatorsCSV(snapshot)
		if err != nil {
			return nil, nil, err
		}
		engine.IncrExportsGenerated()
		return nil, &ExportResult{
			Filename: "all-creators.csv",
			Format:   "csv",
			Rows:     rows,
			Content:  content,
		}, nil
	})
}

// ExportJSONInput is the (empty) input for sound_export_json.
type ExportJSONInput struct{}

func registerExportJSON(server *mcp.Server, store *sounds.Store, genres *sources.GenreResolver) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "sound_export_json",
		Description: "Export the full analysis as pretty-printed JSON: metadata, per-sound data with genres, overlapping creators with reliability scores, and the hashtag aggregation.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ ExportJSONInput) (*mcp.CallToolResult, *ExportResult, error) {
		snapshot := store.Sounds()
		ov := sounds.AnalyzeOverlap(snapshot)
		if ov.TotalSoundsAnalyzed == 0 {
			return nil, nil, errors.New("no analyzed sounds to export; add data and retry")
		}
		ht := sounds.AggregateHashtags(snapshot)
		cats := sounds.ScoreCategories(ht.Ranked)

		doc := sounds.BuildExport(snapshot, ov, ht, cats, genres.Enabled(), time.Now())
		content, err := sounds.AnalysisJSON(doc)
		if err != nil {
			return nil, nil, err
		}
		engine.IncrExportsGenerated()
		return nil, &ExportResult{
			Filename: "sound-analysis.json",
			Format:   "json",
			Rows:     len(doc.CreatorAnalysis.OverlappingCreators),
			Content:  content,
		}, nil
	})
}

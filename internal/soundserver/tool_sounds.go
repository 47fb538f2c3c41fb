package soundserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/SalmonTech123/Sound-Analysis/internal/engine"
	"github.com/SalmonTech123/Sound-Analysis/internal/engine/sounds"
	"github.com/SalmonTech123/Sound-Analysis/internal/toolutil"
)

// SoundAddInput is the input for sound_add.
type SoundAddInput struct {
	URLs string `json:"urls"` // newline-separated TikTok sound URLs
}

// SoundAddResult is the output for sound_add.
type SoundAddResult struct {
	Added      int    `json:"added"`
	Duplicates int    `json:"duplicates"`
	Invalid    int    `json:"invalid"`
	Total      int    `json:"total"`
	Message    string `json:"message"`
}

func registerSoundAdd(server *mcp.Server, store *sounds.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "sound_add",
		Description: "Add TikTok sound URLs (one per line) to the analysis set. Titles are derived from the URL slug. Invalid and duplicate URLs are counted and skipped; the rest of the batch still goes in.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input SoundAddInput) (*mcp.CallToolResult, *SoundAddResult, error) {
		urls := toolutil.SplitLines(input.URLs)
		if len(urls) == 0 {
			return nil, nil, errors.New("at least one sound URL is required")
		}

		batch := store.AddBatch(urls)

		msg := fmt.Sprintf("Added %s", toolutil.Plural(batch.Added, "new sound"))
		if batch.Duplicates > 0 {
			msg += fmt.Sprintf(", %d duplicate(s) skipped", batch.Duplicates)
		}
		if batch.Invalid > 0 {
			msg += fmt.Sprintf(", %d invalid URL(s) skipped", batch.Invalid)
		}
		slog.Info("sound_add",
			slog.Int("added", batch.Added),
			slog.Int("duplicates", batch.Duplicates),
			slog.Int("invalid", batch.Invalid),
		)

		return nil, &SoundAddResult{
			Added:      batch.Added,
			Duplicates: batch.Duplicates,
			Invalid:    batch.Invalid,
			Total:      store.Len(),
			Message:    msg,
		}, nil
	})
}

// SoundSummary is one sound in a sound_list result.
type SoundSummary struct {
	URL          string `json:"url"`
	Title        string `json:"title"`
	Genre        string `json:"genre,omitempty"`
	DisplayCount string `json:"displayCount,omitempty"`
	CreatorCount int    `json:"creatorCount"`
	HashtagCount int    `json:"hashtagCount"`
	HasData      bool   `json:"hasData"`
}

// SoundListInput is the (empty) input for sound_list.
type SoundListInput struct{}

// SoundListResult is the output for sound_list.
type SoundListResult struct {
	Sounds   []SoundSummary `json:"sounds"`
	Total    int            `json:"total"`
	WithData int            `json:"withData"`
}

func registerSoundList(server *mcp.Server, store *sounds.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "sound_list",
		Description: "List the tracked sounds in insertion order, with per-sound creator/hashtag counts and data status.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ SoundListInput) (*mcp.CallToolResult, *SoundListResult, error) {
		snapshot := store.Sounds()
		out := &SoundListResult{Total: len(snapshot)}
		for _, snd := range snapshot {
			out.Sounds = append(out.Sounds, SoundSummary{
				URL:          snd.URL,
				Title:        snd.Title,
				Genre:        snd.Genre,
				DisplayCount: snd.DisplayCount,
				CreatorCount: len(snd.Creators),
				HashtagCount: len(snd.Hashtags),
				HasData:      len(snd.Creators) > 0,
			})
			if len(snd.Creators) > 0 {
				out.WithData++
			}
		}
		return nil, out, nil
	})
}

// SoundSetDataInput supplies creators and hashtags for one sound, either
// as a pasted collector block or as explicit lists.
type SoundSetDataInput struct {
	URL          string   `json:"url"`
	Block        string   `json:"block,omitempty"`        // pasted SONG:/CREATORS:/HASHTAGS: text
	Creators     []string `json:"creators,omitempty"`     // explicit handles, leading @ optional
	Hashtags     []string `json:"hashtags,omitempty"`     // explicit "#tag:count" lines, count optional
	DisplayCount string   `json:"displayCount,omitempty"` // platform usage string, e.g. "1.2M videos"
}

// SoundSetDataResult is the output for sound_set_data.
type SoundSetDataResult struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Creators int    `json:"creators"`
	Hashtags int    `json:"hashtags"`
	Message  string `json:"message"`
}

func registerSoundSetData(server *mcp.Server, store *sounds.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "sound_set_data",
		Description: "Replace the creator and hashtag lists of one sound. Accepts pasted collector output (SONG:/CREATORS:/HASHTAGS: sections) in `block`, or explicit `creators` and `hashtags` lists. A SONG: section also updates the title.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input SoundSetDataInput) (*mcp.CallToolResult, *SoundSetDataResult, error) {
		if input.URL == "" {
			return nil, nil, errors.New("url is required")
		}

		var creators []string
		var hashtags []sounds.HashtagCount
		newTitle := ""

		if input.Block != "" {
			blk := sounds.ParseBlock(input.Block)
			creators = blk.Creators
			hashtags = blk.Hashtags
			if blk.Song != "Unknown Song" {
				newTitle = blk.Song
				if blk.Artist != "Unknown Artist" {
					newTitle = blk.Artist + " - " + blk.Song
				}
			}
		} else {
			for _, c := range input.Creators {
				c = strings.TrimPrefix(strings.TrimSpace(c), "@")
				if c != "" {
					creators = append(creators, c)
				}
			}
			for _, h := range input.Hashtags {
				if hc, ok := sounds.ParseHashtagLine(h); ok {
					hashtags = append(hashtags, hc)
				}
			}
		}

		if err := store.SetData(input.URL, creators, hashtags); err != nil {
			return nil, nil, err
		}
		if newTitle != "" {
			if err := store.SetTitle(input.URL, newTitle); err != nil {
				return nil, nil, err
			}
		}
		if input.DisplayCount != "" {
			if err := store.SetDisplayCount(input.URL, input.DisplayCount); err != nil {
				return nil, nil, err
			}
		}

		snd, _ := store.Get(input.URL)
		shortTitle := engine.TruncateRunes(snd.Title, 60, "…")
		msg := fmt.Sprintf("Saved %s and %s for %q",
			toolutil.Plural(len(creators), "creator"),
			toolutil.Plural(len(hashtags), "hashtag"),
			shortTitle,
		)
		if len(creators) == 0 && len(hashtags) == 0 {
			msg = fmt.Sprintf("Cleared data for %q", shortTitle)
		}

		return nil, &SoundSetDataResult{
			URL:      input.URL,
			Title:    snd.Title,
			Creators: len(creators),
			Hashtags: len(hashtags),
			Message:  msg,
		}, nil
	})
}

// SoundSetTitleInput is the input for sound_set_title.
type SoundSetTitleInput struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// SoundSetTitleResult is the output for sound_set_title.
type SoundSetTitleResult struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

func registerSoundSetTitle(server *mcp.Server, store *sounds.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "sound_set_title",
		Description: "Override the display title of one sound, for manual correction. The URL-derived title is kept for exports.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input SoundSetTitleInput) (*mcp.CallToolResult, *SoundSetTitleResult, error) {
		if input.URL == "" {
			return nil, nil, errors.New("url is required")
		}
		if err := store.SetTitle(input.URL, input.Title); err != nil {
			return nil, nil, err
		}
		snd, _ := store.Get(input.URL)
		return nil, &SoundSetTitleResult{
			URL:     input.URL,
			Title:   snd.Title,
			Message: "Sound title updated",
		}, nil
	})
}

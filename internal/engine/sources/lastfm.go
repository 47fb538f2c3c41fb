package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/SalmonTech123/Sound-Analysis/internal/engine"
)

// nonGenreTags are Last.fm tags that describe listeners, not music.
var nonGenreTags = map[string]bool{
	"seen live":  true,
	"favorite":   true,
	"favourite":  true,
	"favourites": true,
	"awesome":    true,
	"love":       true,
}

type lastFmTag struct {
	Name string `json:"name"`
}

type topTagsResponse struct {
	TopTags struct {
		Tag []lastFmTag `json:"tag"`
	} `json:"toptags"`
	Code    int    `json:"error"`
	Message string `json:"message"`
}

type trackSearchResponse struct {
	Results struct {
		TrackMatches struct {
			Track []struct {
				Name   string `json:"name"`
				Artist string `json:"artist"`
			} `json:"track"`
		} `json:"trackmatches"`
	} `json:"results"`
	Code    int    `json:"error"`
	Message string `json:"message"`
}

// GenreResolver resolves sound titles to best-effort genre strings via
// the Last.fm tag API. Every outbound call goes through the rate-limited
// gate, so queued lookups run one at a time with the configured spacing.
// Absence of genre data is expected and never surfaces as an error.
type GenreResolver struct {
	gate *engine.Gate
}

// NewGenreResolver wraps the given gate.
func NewGenreResolver(gate *engine.Gate) *GenreResolver {
	return &GenreResolver{gate: gate}
}

// Enabled reports whether an API key is configured.
func (r *GenreResolver) Enabled() bool {
	return engine.Cfg.LastFmAPIKey != ""
}

// Resolve looks up a genre for a sound title. Titles shaped like
// "Artist - Track" are split; the track is searched first, then track
// tags, then artist tags. Returns "" when nothing usable is found, for
// any reason.
func (r *GenreResolver) Resolve(ctx context.Context, title string) string {
	if title == "" || !r.Enabled() {
		return ""
	}
	if genre, ok := cachedGenre(title); ok {
		engine.IncrGenreCacheHit()
		return genre
	}
	engine.IncrGenreCacheMiss()

	artist, track, _ := splitArtistTrack(title)

	name, foundArtist, found := r.searchTrack(ctx, track, artist)
	var genre string
	switch {
	case found:
		genre = r.topTags(ctx, "track.getTopTags", url.Values{
			"track":  {name},
			"artist": {foundArtist},
		})
		if genre == "" {
			genre = r.topTags(ctx, "artist.getTopTags", url.Values{
				"artist": {foundArtist},
			})
		}
	case artist != "":
		genre = r.topTags(ctx, "artist.getTopTags", url.Values{
			"artist": {artist},
		})
	}

	if genre != "" {
		storeGenre(title, genre)
	}
	return genre
}

// searchTrack resolves a (track, artist) guess to Last.fm's canonical
// naming via track.search. Not-found and failure look the same to the
// caller.
func (r *GenreResolver) searchTrack(ctx context.Context, track, artist string) (name, foundArtist string, found bool) {
	engine.IncrLastFmSearchRequests()

	params := url.Values{"track": {track}}
	if artist != "" {
		params.Set("artist", artist)
	}
	var resp trackSearchResponse
	if err := r.apiGet(ctx, "track.search", params, &resp); err != nil {
		engine.IncrLastFmErrors()
		slog.Warn("lastfm: track search failed", slog.String("track", track), slog.Any("error", err))
		return "", "", false
	}
	if resp.Code != 0 {
		engine.IncrLastFmErrors()
		slog.Warn("lastfm: track search error", slog.Int("code", resp.Code), slog.String("message", resp.Message))
		return "", "", false
	}
	matches := resp.Results.TrackMatches.Track
	if len(matches) == 0 {
		return "", "", false
	}
	return matches[0].Name, matches[0].Artist, true
}

// topTags fetches track.getTopTags or artist.getTopTags and reduces the
// tag list to a genre string. "" means no usable tags.
func (r *GenreResolver) topTags(ctx context.Context, method string, params url.Values) string {
	engine.IncrLastFmTagRequests()

	var resp topTagsResponse
	if err := r.apiGet(ctx, method, params, &resp); err != nil {
		engine.IncrLastFmErrors()
		slog.Warn("lastfm: tag lookup failed", slog.String("method", method), slog.Any("error", err))
		return ""
	}
	if resp.Code != 0 {
		engine.IncrLastFmErrors()
		slog.Warn("lastfm: tag lookup error", slog.Int("code", resp.Code), slog.String("message", resp.Message))
		return ""
	}
	return genreFromTags(resp.TopTags.Tag)
}

// apiGet performs one gated, retried GET against the Last.fm API and
// decodes the JSON payload into out.
func (r *GenreResolver) apiGet(ctx context.Context, method string, params url.Values, out any) error {
	q := url.Values{}
	for k, vs := range params {
		q[k] = vs
	}
	q.Set("method", method)
	q.Set("api_key", engine.Cfg.LastFmAPIKey)
	q.Set("format", "json")
	reqURL := engine.Cfg.LastFmBaseURL + "?" + q.Encode()

	return r.gate.Do(ctx, func(ctx context.Context) error {
		if engine.Cfg.LookupTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, engine.Cfg.LookupTimeout)
			defer cancel()
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("User-Agent", engine.UserAgentBot)

		resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
			return engine.Cfg.HTTPClient.Do(req)
		})
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("lastfm status %d", resp.StatusCode)
		}
		body, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	})
}

// genreFromTags filters listener tags and joins the top names.
func genreFromTags(tags []lastFmTag) string {
	limit := engine.Cfg.TopTagCount
	if limit <= 0 {
		limit = 3
	}
	var names []string
	for _, t := range tags {
		if t.Name == "" || nonGenreTags[strings.ToLower(t.Name)] {
			continue
		}
		names = append(names, t.Name)
		if len(names) == limit {
			break
		}
	}
	return strings.Join(names, ", ")
}

func splitArtistTrack(title string) (artist, track string, ok bool) {
	i := strings.Index(title, " - ")
	if i < 0 {
		return "", strings.TrimSpace(title), false
	}
	return strings.TrimSpace(title[:i]), strings.TrimSpace(title[i+len(" - "):]), true
}

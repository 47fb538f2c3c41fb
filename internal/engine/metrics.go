package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	SoundsAdded          atomic.Int64
	DuplicateSounds      atomic.Int64
	InvalidSounds        atomic.Int64
	AnalysesRun          atomic.Int64
	ExportsGenerated     atomic.Int64
	LastFmSearchRequests atomic.Int64
	LastFmTagRequests    atomic.Int64
	LastFmErrors         atomic.Int64
	GenreCacheHits       atomic.Int64
	GenreCacheMisses     atomic.Int64
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"sounds_added":           metrics.SoundsAdded.Load(),
		"duplicate_sounds":       metrics.DuplicateSounds.Load(),
		"invalid_sounds":         metrics.InvalidSounds.Load(),
		"analyses_run":           metrics.AnalysesRun.Load(),
		"exports_generated":      metrics.ExportsGenerated.Load(),
		"lastfm_search_requests": metrics.LastFmSearchRequests.Load(),
		"lastfm_tag_requests":    metrics.LastFmTagRequests.Load(),
		"lastfm_errors":          metrics.LastFmErrors.Load(),
		"genre_cache_hits":       metrics.GenreCacheHits.Load(),
		"genre_cache_misses":     metrics.GenreCacheMisses.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"sounds_added", "duplicate_sounds", "invalid_sounds",
		"analyses_run", "exports_generated",
		"lastfm_search_requests", "lastfm_tag_requests", "lastfm_errors",
		"genre_cache_hits", "genre_cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the sounds/ sub-package.
func IncrSoundsAdded(n int)      { metrics.SoundsAdded.Add(int64(n)) }
func IncrDuplicateSounds(n int)  { metrics.DuplicateSounds.Add(int64(n)) }
func IncrInvalidSounds(n int)    { metrics.InvalidSounds.Add(int64(n)) }
func IncrAnalysesRun()           { metrics.AnalysesRun.Add(1) }
func IncrExportsGenerated()      { metrics.ExportsGenerated.Add(1) }
func IncrGenreCacheHit()         { metrics.GenreCacheHits.Add(1) }
func IncrGenreCacheMiss()        { metrics.GenreCacheMisses.Add(1) }

// Incrementors for the sources/ sub-package.
func IncrLastFmSearchRequests() { metrics.LastFmSearchRequests.Add(1) }
func IncrLastFmTagRequests()    { metrics.LastFmTagRequests.Add(1) }
func IncrLastFmErrors()         { metrics.LastFmErrors.Add(1) }

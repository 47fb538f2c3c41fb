// Sound-Analysis — creator/hashtag overlap analysis MCP server.
//
// Collects TikTok sound URLs, cross-references the creators and hashtags
// supplied for each sound, and exports overlap rankings as CSV or JSON.
// Genre enrichment is fetched from Last.fm through a rate-limited gate.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/SalmonTech123/Sound-Analysis/internal/engine"
	"github.com/SalmonTech123/Sound-Analysis/internal/engine/sounds"
	"github.com/SalmonTech123/Sound-Analysis/internal/engine/sources"
	"github.com/SalmonTech123/Sound-Analysis/internal/soundserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	// .env is optional; real env vars win either way.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", slog.Any("error", err))
	}

	initEngine()

	slog.Info("starting sound-analysis",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "sound-analysis",
		Version: version,
	}, nil)

	store := sounds.NewStore()
	resolver := sources.NewGenreResolver(engine.NewGate(engine.Cfg.LookupInterval, 64))

	soundserver.RegisterTools(server, store, resolver)
	slog.Info("tools registered", slog.Int("count", 8))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "sound-analysis",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		LastFmAPIKey:    env.Str("LASTFM_API_KEY", ""),
		LastFmBaseURL:   env.Str("LASTFM_BASE_URL", "https://ws.audioscrobbler.com/2.0/"),
		LookupInterval:  env.Duration("LOOKUP_INTERVAL", 250*time.Millisecond),
		LookupTimeout:   env.Duration("LOOKUP_TIMEOUT", 10*time.Second),
		TopTagCount:     env.Int("TOP_TAG_COUNT", 3),
		TopHashtagLimit: env.Int("TOP_HASHTAG_LIMIT", 30),
		GenreCachePath:  env.Str("GENRE_CACHE_PATH", ""),
		GenreCacheOff:   env.Str("GENRE_CACHE", "on") == "off",
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	if c.LastFmAPIKey == "" {
		slog.Warn("LASTFM_API_KEY not set, genre detection disabled")
	}

	engine.Init(c)
}

package engine

import (
	"net/http"
	"time"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	LastFmAPIKey    string // empty = genre detection disabled
	LastFmBaseURL   string
	LookupInterval  time.Duration // minimum gap between outbound Last.fm call starts
	LookupTimeout   time.Duration
	TopTagCount     int // tags joined into a genre string
	TopHashtagLimit int // display window for ranked hashtags
	GenreCachePath  string // empty = $HOME/.sound-analysis/genres.db
	GenreCacheOff   bool
	HTTPClient      *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (sounds, sources).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}

package sources

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/SalmonTech123/Sound-Analysis/internal/engine"
)

// resetGenreCache points the cache at a fresh temp database and resets
// the singleton so each test opens its own file.
func resetGenreCache(t *testing.T) {
	t.Helper()

	old := *engine.Cfg
	engine.Cfg.GenreCachePath = filepath.Join(t.TempDir(), "genres.db")
	engine.Cfg.GenreCacheOff = false

	genreDBOnce = sync.Once{}
	genreDB = nil
	genreDBErr = nil

	t.Cleanup(func() {
		if genreDB != nil {
			genreDB.Close()
		}
		genreDBOnce = sync.Once{}
		genreDB = nil
		genreDBErr = nil
		engine.Init(old)
	})
}

func TestGenreCacheRoundtrip(t *testing.T) {
	resetGenreCache(t)

	if _, ok := cachedGenre("Dua Lipa - Levitating"); ok {
		t.Fatal("cachedGenre hit on empty cache")
	}

	storeGenre("Dua Lipa - Levitating", "pop, dance")
	genre, ok := cachedGenre("Dua Lipa - Levitating")
	if !ok || genre != "pop, dance" {
		t.Errorf("cachedGenre = %q, %v; want pop, dance", genre, ok)
	}

	// Different title stays a miss.
	if _, ok := cachedGenre("Other - Song"); ok {
		t.Error("cachedGenre hit for unstored title")
	}
}

func TestGenreCacheOverwrite(t *testing.T) {
	resetGenreCache(t)

	storeGenre("Artist - Song", "rock")
	storeGenre("Artist - Song", "pop")
	genre, ok := cachedGenre("Artist - Song")
	if !ok || genre != "pop" {
		t.Errorf("cachedGenre = %q, %v; want latest value", genre, ok)
	}
}

func TestGenreCacheDisabled(t *testing.T) {
	resetGenreCache(t)
	engine.Cfg.GenreCacheOff = true

	storeGenre("Artist - Song", "rock")
	if _, ok := cachedGenre("Artist - Song"); ok {
		t.Error("cachedGenre hit with cache disabled")
	}
	if genreDB != nil {
		t.Error("disabled cache opened the database")
	}
}

package sources

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/SalmonTech123/Sound-Analysis/internal/engine"
)

var (
	genreDB     *sql.DB
	genreDBOnce sync.Once
	genreDBErr  error
)

// openGenreDB opens (or creates) the SQLite genre cache. Resolved genres
// survive across sessions so repeat lookups skip the API; session state
// itself is never persisted.
func openGenreDB() (*sql.DB, error) {
	genreDBOnce.Do(func() {
		path := engine.Cfg.GenreCachePath
		if path == "" {
			dir := filepath.Join(os.Getenv("HOME"), ".sound-analysis")
			if err := os.MkdirAll(dir, 0750); err != nil {
				genreDBErr = fmt.Errorf("genre cache: mkdir %s: %w", dir, err)
				return
			}
			path = filepath.Join(dir, "genres.db")
		}
		db, err := sql.Open("sqlite", path)
		if err != nil {
			genreDBErr = fmt.Errorf("genre cache: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS genres (
			title       TEXT PRIMARY KEY,
			genre       TEXT NOT NULL,
			resolved_at TEXT NOT NULL
		)`); err != nil {
			genreDBErr = fmt.Errorf("genre cache: init schema: %w", err)
			return
		}
		genreDB = db
	})
	return genreDB, genreDBErr
}

// cachedGenre looks up a previously resolved genre. Cache trouble is
// logged and treated as a miss.
func cachedGenre(title string) (string, bool) {
	if engine.Cfg.GenreCacheOff {
		return "", false
	}
	db, err := openGenreDB()
	if err != nil {
		slog.Debug("genre cache unavailable", slog.Any("error", err))
		return "", false
	}
	var genre string
	err = db.QueryRow(`SELECT genre FROM genres WHERE title = ?`, title).Scan(&genre)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		slog.Debug("genre cache read failed", slog.Any("error", err))
		return "", false
	}
	return genre, true
}

// storeGenre records a resolved genre for future sessions.
func storeGenre(title, genre string) {
	if engine.Cfg.GenreCacheOff {
		return
	}
	db, err := openGenreDB()
	if err != nil {
		return
	}
	_, err = db.Exec(`INSERT INTO genres (title, genre, resolved_at) VALUES (?, ?, ?)
		ON CONFLICT(title) DO UPDATE SET genre = excluded.genre, resolved_at = excluded.resolved_at`,
		title, genre, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		slog.Debug("genre cache write failed", slog.Any("error", err))
	}
}

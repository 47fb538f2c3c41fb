package sounds

import (
	"errors"
	"strings"
	"sync"

	"github.com/SalmonTech123/Sound-Analysis/internal/engine"
)

// ErrNotFound is returned when an operation references an unknown sound URL.
var ErrNotFound = errors.New("sound not found")

// Sound is a single tracked sound, keyed by its source URL.
type Sound struct {
	URL           string         `json:"url"`
	Title         string         `json:"title"`
	OriginalTitle string         `json:"originalTitle"`
	Creators      []string       `json:"creators"`
	Hashtags      []HashtagCount `json:"hashtags"`
	Genre         string         `json:"genre,omitempty"`
	DisplayCount  string         `json:"displayCount,omitempty"` // platform usage string, e.g. "1.2M videos"
}

// Store holds the session's sounds keyed by URL, in insertion order.
// Sounds are never deleted and never persisted beyond the session;
// duplicate inserts are counted, not applied.
type Store struct {
	mu         sync.RWMutex
	order      []string
	sounds     map[string]*Sound
	duplicates int
	invalid    int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{sounds: make(map[string]*Sound)}
}

// AddOutcome classifies a single Add call.
type AddOutcome int

const (
	Created AddOutcome = iota
	Duplicate
	Invalid
)

// Add validates url and inserts a new sound with a title derived from the
// URL slug. A duplicate URL is a counted no-op, never an overwrite.
func (s *Store) Add(url string) AddOutcome {
	url = strings.TrimSpace(url)
	if !ValidSoundURL(url) {
		s.mu.Lock()
		s.invalid++
		s.mu.Unlock()
		engine.IncrInvalidSounds(1)
		return Invalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sounds[url]; ok {
		s.duplicates++
		engine.IncrDuplicateSounds(1)
		return Duplicate
	}
	title := DeriveTitle(url)
	s.sounds[url] = &Sound{URL: url, Title: title, OriginalTitle: title}
	s.order = append(s.order, url)
	engine.IncrSoundsAdded(1)
	return Created
}

// BatchResult summarises an AddBatch call.
type BatchResult struct {
	Added      int `json:"added"`
	Duplicates int `json:"duplicates"`
	Invalid    int `json:"invalid"`
}

// AddBatch adds every URL in the list. Invalid and duplicate entries are
// counted and skipped; the batch continues for the valid remainder.
func (s *Store) AddBatch(urls []string) BatchResult {
	var res BatchResult
	for _, u := range urls {
		if strings.TrimSpace(u) == "" {
			continue
		}
		switch s.Add(u) {
		case Created:
			res.Added++
		case Duplicate:
			res.Duplicates++
		case Invalid:
			res.Invalid++
		}
	}
	return res
}

// SetData atomically replaces the creator and hashtag lists of one sound.
// Other sounds are unaffected.
func (s *Store) SetData(url string, creators []string, hashtags []HashtagCount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snd, ok := s.sounds[url]
	if !ok {
		return ErrNotFound
	}
	snd.Creators = append([]string(nil), creators...)
	snd.Hashtags = append([]HashtagCount(nil), hashtags...)
	return nil
}

// SetTitle overrides a sound's display title. OriginalTitle keeps the
// URL-derived value for exports.
func (s *Store) SetTitle(url, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errors.New("title is empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	snd, ok := s.sounds[url]
	if !ok {
		return ErrNotFound
	}
	snd.Title = title
	return nil
}

// SetGenre records the external provider's genre string for a sound.
func (s *Store) SetGenre(url, genre string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snd, ok := s.sounds[url]
	if !ok {
		return ErrNotFound
	}
	snd.Genre = genre
	return nil
}

// SetDisplayCount records the platform's usage counter string for a sound.
func (s *Store) SetDisplayCount(url, count string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snd, ok := s.sounds[url]
	if !ok {
		return ErrNotFound
	}
	snd.DisplayCount = count
	return nil
}

// Get returns a copy of one sound.
func (s *Store) Get(url string) (Sound, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snd, ok := s.sounds[url]
	if !ok {
		return Sound{}, false
	}
	return copySound(snd), true
}

// Sounds returns a snapshot of all sounds in insertion order. The copies
// are safe for the analyzers to read without holding the lock.
func (s *Store) Sounds() []*Sound {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Sound, 0, len(s.order))
	for _, url := range s.order {
		c := copySound(s.sounds[url])
		out = append(out, &c)
	}
	return out
}

// Len reports the number of tracked sounds.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// WithData reports how many sounds have at least one creator.
func (s *Store) WithData() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, snd := range s.sounds {
		if len(snd.Creators) > 0 {
			n++
		}
	}
	return n
}

// Duplicates reports the cumulative count of rejected duplicate inserts.
func (s *Store) Duplicates() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.duplicates
}

// InvalidCount reports the cumulative count of rejected invalid inserts.
func (s *Store) InvalidCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.invalid
}

func copySound(snd *Sound) Sound {
	c := *snd
	c.Creators = append([]string(nil), snd.Creators...)
	c.Hashtags = append([]HashtagCount(nil), snd.Hashtags...)
	return c
}

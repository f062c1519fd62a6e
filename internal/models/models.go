// package models defines the data model for the songbook catalog
package models

import (
	"strings"

	"github.com/tmajor/songbook/internal/shared"
)

// Song represents one track in the catalog.
//
// Duration is measured in seconds and never negative. "Update" of a song
// is a full replace through [SongRepository.Save] keyed by the unchanged ID.
type Song struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album"`
	Duration int    `json:"duration"`
}

// NewSong creates a Song with a freshly generated id.
func NewSong(title, artist, album string, duration int) Song {
	return Song{
		ID:       shared.GenerateID(),
		Title:    title,
		Artist:   artist,
		Album:    album,
		Duration: duration,
	}
}

// Validate checks that the song carries a title and a sane duration.
func (s Song) Validate() error {
	if s.Title == "" {
		return shared.ErrMissingTitle
	}
	if s.Duration < 0 {
		return shared.ErrNegativeDuration
	}
	return nil
}

// Playlist represents a named, insertion-ordered collection of song references.
type Playlist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewPlaylist creates a Playlist with a freshly generated id.
func NewPlaylist(name string) Playlist {
	return Playlist{ID: shared.GenerateID(), Name: name}
}

// Validate checks that the playlist carries a non-blank name.
func (p Playlist) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return shared.ErrMissingName
	}
	return nil
}

// PlaylistExport bundles a playlist with its resolved songs for the
// export formatters.
type PlaylistExport struct {
	Playlist Playlist `json:"playlist"`
	Songs    []Song   `json:"songs"`
}

// LibraryStats is a point-in-time aggregate snapshot of the catalog.
// Durations are in seconds.
type LibraryStats struct {
	TotalSongs      int            `json:"total_songs"`
	TotalDuration   int            `json:"total_duration"`
	AverageDuration int            `json:"average_duration"`
	TotalFavorites  int            `json:"total_favorites"`
	SongsPerArtist  map[string]int `json:"songs_per_artist"`
}

// SongRepository defines persistence for the song catalog.
//
// Save has upsert semantics: saving a song whose id already exists
// replaces the whole row. FindByID reports a missing song via
// [shared.ErrSongNotFound].
type SongRepository interface {
	Save(song Song) error                        // Save inserts or fully replaces a song by id
	FindAll() ([]Song, error)                    // FindAll returns every song in the catalog
	FindByID(id string) (Song, error)            // FindByID returns one song or shared.ErrSongNotFound
	FindByArtist(pattern string) ([]Song, error) // FindByArtist matches artists by case-insensitive substring
	DeleteByID(id string) error                  // DeleteByID removes a song; unknown ids are not an error
	DeleteInvalid() (int, error)                 // DeleteInvalid purges rows with a blank title or artist
}

// PlaylistRepository defines persistence for playlists and their memberships.
//
// A song appears at most once in a given playlist; AddSong is idempotent
// at the storage layer (insert or ignore) and Contains lets callers
// distinguish "added" from "already present".
type PlaylistRepository interface {
	Create(playlist Playlist) error
	FindAll() ([]Playlist, error)
	Update(playlist Playlist) error           // Update renames by full replace keyed by id
	Delete(id string) error                   // Delete also removes all membership rows
	AddSong(playlistID, songID string) error  // AddSong is a no-op for an existing pair
	RemoveSong(playlistID, songID string) error
	Songs(playlistID string) ([]Song, error)  // Songs resolves memberships to full Song rows
	Contains(playlistID, songID string) (bool, error)
}

// FavoritesRepository defines persistence for the favorites set.
// Membership only; both Add and Remove are idempotent.
type FavoritesRepository interface {
	Add(songID string) error
	Remove(songID string) error
	IsFavorite(songID string) (bool, error)
	AllIDs() ([]string, error)
}

package ui

import (
	"github.com/tmajor/songbook/internal/models"
)

// libraryLoadedMsg carries the full catalog with favorite flags resolved.
type libraryLoadedMsg struct {
	songs     []models.Song
	favorites map[string]bool
}

// playlistsLoadedMsg carries every playlist with its resolved song count.
type playlistsLoadedMsg struct {
	playlists []models.Playlist
	counts    map[string]int
}

// playlistSongsLoadedMsg carries the songs of one selected playlist.
type playlistSongsLoadedMsg struct {
	playlist models.Playlist
	songs    []models.Song
}

// favoritesLoadedMsg carries the resolved favorite songs.
type favoritesLoadedMsg struct {
	songs []models.Song
}

// statsLoadedMsg carries an aggregate snapshot of the library.
type statsLoadedMsg struct {
	stats models.LibraryStats
}

// favoriteToggledMsg reports the outcome of a favorite toggle.
type favoriteToggledMsg struct {
	songID   string
	favorite bool
	err      error
}

package repositories

import (
	"fmt"
	"strings"

	"github.com/tmajor/songbook/internal/models"
	"github.com/tmajor/songbook/internal/shared"
)

// MemorySongRepository implements [models.SongRepository] on plain slices.
// It honors the same contracts as the SQLite repository and backs the
// service-layer tests.
type MemorySongRepository struct {
	songs []models.Song
}

// NewMemorySongRepository creates an empty in-memory song repository.
func NewMemorySongRepository() *MemorySongRepository {
	return &MemorySongRepository{}
}

func (r *MemorySongRepository) Save(song models.Song) error {
	if song.ID == "" {
		return shared.ErrMissingID
	}

	for i, existing := range r.songs {
		if existing.ID == song.ID {
			r.songs[i] = song
			return nil
		}
	}

	r.songs = append(r.songs, song)
	return nil
}

func (r *MemorySongRepository) FindAll() ([]models.Song, error) {
	out := make([]models.Song, len(r.songs))
	copy(out, r.songs)
	return out, nil
}

func (r *MemorySongRepository) FindByID(id string) (models.Song, error) {
	for _, song := range r.songs {
		if song.ID == id {
			return song, nil
		}
	}
	return models.Song{}, fmt.Errorf("%w: %s", shared.ErrSongNotFound, id)
}

func (r *MemorySongRepository) FindByArtist(pattern string) ([]models.Song, error) {
	needle := strings.ToLower(pattern)

	var out []models.Song
	for _, song := range r.songs {
		if strings.Contains(strings.ToLower(song.Artist), needle) {
			out = append(out, song)
		}
	}
	return out, nil
}

func (r *MemorySongRepository) DeleteByID(id string) error {
	for i, song := range r.songs {
		if song.ID == id {
			r.songs = append(r.songs[:i], r.songs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemorySongRepository) DeleteInvalid() (int, error) {
	var kept []models.Song
	removed := 0
	for _, song := range r.songs {
		if strings.TrimSpace(song.Title) == "" || strings.TrimSpace(song.Artist) == "" {
			removed++
			continue
		}
		kept = append(kept, song)
	}
	r.songs = kept
	return removed, nil
}

// MemoryPlaylistRepository implements [models.PlaylistRepository] in memory.
//
// Membership order follows insertion order, matching the SQLite layout.
// Songs are resolved against the paired song repository, so dangling
// references drop out the same way they drop out of the SQL join.
type MemoryPlaylistRepository struct {
	playlists  []models.Playlist
	membership []memberPair
	songs      models.SongRepository
}

type memberPair struct {
	playlistID string
	songID     string
}

// NewMemoryPlaylistRepository creates an in-memory playlist repository
// resolving songs against the given song repository.
func NewMemoryPlaylistRepository(songs models.SongRepository) *MemoryPlaylistRepository {
	return &MemoryPlaylistRepository{songs: songs}
}

func (r *MemoryPlaylistRepository) Create(playlist models.Playlist) error {
	if playlist.ID == "" {
		return shared.ErrMissingID
	}
	for _, existing := range r.playlists {
		if existing.ID == playlist.ID {
			return fmt.Errorf("playlist already exists: %s", playlist.ID)
		}
	}
	r.playlists = append(r.playlists, playlist)
	return nil
}

func (r *MemoryPlaylistRepository) FindAll() ([]models.Playlist, error) {
	out := make([]models.Playlist, len(r.playlists))
	copy(out, r.playlists)
	return out, nil
}

func (r *MemoryPlaylistRepository) Update(playlist models.Playlist) error {
	if playlist.ID == "" {
		return shared.ErrMissingID
	}
	for i, existing := range r.playlists {
		if existing.ID == playlist.ID {
			r.playlists[i] = playlist
			return nil
		}
	}
	r.playlists = append(r.playlists, playlist)
	return nil
}

func (r *MemoryPlaylistRepository) Delete(id string) error {
	for i, playlist := range r.playlists {
		if playlist.ID == id {
			r.playlists = append(r.playlists[:i], r.playlists[i+1:]...)
			break
		}
	}

	var kept []memberPair
	for _, pair := range r.membership {
		if pair.playlistID != id {
			kept = append(kept, pair)
		}
	}
	r.membership = kept
	return nil
}

func (r *MemoryPlaylistRepository) AddSong(playlistID, songID string) error {
	present, err := r.Contains(playlistID, songID)
	if err != nil {
		return err
	}
	if present {
		return nil
	}
	r.membership = append(r.membership, memberPair{playlistID: playlistID, songID: songID})
	return nil
}

func (r *MemoryPlaylistRepository) RemoveSong(playlistID, songID string) error {
	for i, pair := range r.membership {
		if pair.playlistID == playlistID && pair.songID == songID {
			r.membership = append(r.membership[:i], r.membership[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemoryPlaylistRepository) Songs(playlistID string) ([]models.Song, error) {
	var out []models.Song
	for _, pair := range r.membership {
		if pair.playlistID != playlistID {
			continue
		}
		song, err := r.songs.FindByID(pair.songID)
		if err != nil {
			continue // dangling reference
		}
		out = append(out, song)
	}
	return out, nil
}

func (r *MemoryPlaylistRepository) Contains(playlistID, songID string) (bool, error) {
	for _, pair := range r.membership {
		if pair.playlistID == playlistID && pair.songID == songID {
			return true, nil
		}
	}
	return false, nil
}

// MemoryFavoritesRepository implements [models.FavoritesRepository] in memory.
type MemoryFavoritesRepository struct {
	ids []string
}

// NewMemoryFavoritesRepository creates an empty in-memory favorites repository.
func NewMemoryFavoritesRepository() *MemoryFavoritesRepository {
	return &MemoryFavoritesRepository{}
}

func (r *MemoryFavoritesRepository) Add(songID string) error {
	for _, id := range r.ids {
		if id == songID {
			return nil
		}
	}
	r.ids = append(r.ids, songID)
	return nil
}

func (r *MemoryFavoritesRepository) Remove(songID string) error {
	for i, id := range r.ids {
		if id == songID {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemoryFavoritesRepository) IsFavorite(songID string) (bool, error) {
	for _, id := range r.ids {
		if id == songID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryFavoritesRepository) AllIDs() ([]string, error) {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out, nil
}

var (
	_ models.SongRepository      = (*MemorySongRepository)(nil)
	_ models.PlaylistRepository  = (*MemoryPlaylistRepository)(nil)
	_ models.FavoritesRepository = (*MemoryFavoritesRepository)(nil)
	_ models.SongRepository      = (*SongRepository)(nil)
	_ models.PlaylistRepository  = (*PlaylistRepository)(nil)
	_ models.FavoritesRepository = (*FavoritesRepository)(nil)
)

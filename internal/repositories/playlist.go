package repositories

import (
	"database/sql"
	"fmt"

	"github.com/tmajor/songbook/internal/models"
	"github.com/tmajor/songbook/internal/shared"
)

// PlaylistRepository implements [models.PlaylistRepository] against SQLite.
//
// Membership rows live in playlist_song with a composite primary key, so
// AddSong can rely on INSERT OR IGNORE for its at-most-once invariant.
type PlaylistRepository struct {
	db *sql.DB
}

// NewPlaylistRepository creates a new PlaylistRepository with the given database connection
func NewPlaylistRepository(db *sql.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

// Create inserts a new playlist row.
func (r *PlaylistRepository) Create(playlist models.Playlist) error {
	if playlist.ID == "" {
		return shared.ErrMissingID
	}

	query := `INSERT INTO playlist (id, name) VALUES (?, ?)`

	if _, err := r.db.Exec(query, playlist.ID, playlist.Name); err != nil {
		return fmt.Errorf("failed to create playlist: %w", err)
	}

	return nil
}

// FindAll retrieves every playlist.
func (r *PlaylistRepository) FindAll() ([]models.Playlist, error) {
	query := `SELECT id, name FROM playlist`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlists: %w", err)
	}
	defer rows.Close()

	var playlists []models.Playlist
	for rows.Next() {
		var (
			playlist models.Playlist
			name     sql.NullString
		)
		if err := rows.Scan(&playlist.ID, &name); err != nil {
			return nil, fmt.Errorf("failed to scan playlist: %w", err)
		}
		playlist.Name = name.String
		playlists = append(playlists, playlist)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return playlists, nil
}

// Update renames a playlist via full replace keyed by id.
func (r *PlaylistRepository) Update(playlist models.Playlist) error {
	if playlist.ID == "" {
		return shared.ErrMissingID
	}

	query := `INSERT OR REPLACE INTO playlist (id, name) VALUES (?, ?)`

	if _, err := r.db.Exec(query, playlist.ID, playlist.Name); err != nil {
		return fmt.Errorf("failed to update playlist: %w", err)
	}

	return nil
}

// Delete removes a playlist and all of its membership rows in one transaction,
// so no orphaned membership rows can remain.
func (r *PlaylistRepository) Delete(id string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM playlist_song WHERE playlist_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete playlist memberships: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM playlist WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit playlist deletion: %w", err)
	}

	return nil
}

// AddSong records a (playlist, song) membership. Re-adding an existing
// pair is a no-op rather than an error.
func (r *PlaylistRepository) AddSong(playlistID, songID string) error {
	query := `INSERT OR IGNORE INTO playlist_song (playlist_id, song_id) VALUES (?, ?)`

	if _, err := r.db.Exec(query, playlistID, songID); err != nil {
		return fmt.Errorf("failed to add song to playlist: %w", err)
	}

	return nil
}

// RemoveSong removes a (playlist, song) membership.
func (r *PlaylistRepository) RemoveSong(playlistID, songID string) error {
	query := `DELETE FROM playlist_song WHERE playlist_id = ? AND song_id = ?`

	if _, err := r.db.Exec(query, playlistID, songID); err != nil {
		return fmt.Errorf("failed to remove song from playlist: %w", err)
	}

	return nil
}

// Songs resolves a playlist's membership rows to full song entities.
// Dangling song references simply drop out of the join.
func (r *PlaylistRepository) Songs(playlistID string) ([]models.Song, error) {
	query := `
		SELECT s.id, s.title, s.artist, s.album, s.duration
		FROM songs s
		JOIN playlist_song ps ON s.id = ps.song_id
		WHERE ps.playlist_id = ?
	`

	rows, err := r.db.Query(query, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist songs: %w", err)
	}

	return collectSongs(rows)
}

// Contains reports whether the song is already a member of the playlist.
func (r *PlaylistRepository) Contains(playlistID, songID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM playlist_song WHERE playlist_id = ? AND song_id = ?)`

	var exists bool
	if err := r.db.QueryRow(query, playlistID, songID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check playlist membership: %w", err)
	}

	return exists, nil
}

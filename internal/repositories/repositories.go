// package repositories provides persistence layer implementations for all model types.
package repositories

import (
	"database/sql"
	"fmt"

	"github.com/tmajor/songbook/internal/models"
)

// scanSong scans a single [sql.Row] holding the canonical song column set
// (id, title, artist, album, duration) into a [models.Song].
func scanSong(row *sql.Row) (models.Song, error) {
	var (
		song  models.Song
		album sql.NullString
	)

	err := row.Scan(&song.ID, &song.Title, &song.Artist, &album, &song.Duration)
	if err != nil {
		return models.Song{}, err
	}

	song.Album = album.String
	return song, nil
}

// collectSongs drains [sql.Rows] holding the canonical song column set
// into a slice of [models.Song].
func collectSongs(rows *sql.Rows) ([]models.Song, error) {
	defer rows.Close()

	var songs []models.Song
	for rows.Next() {
		var (
			song  models.Song
			album sql.NullString
		)
		if err := rows.Scan(&song.ID, &song.Title, &song.Artist, &album, &song.Duration); err != nil {
			return nil, fmt.Errorf("failed to scan song: %w", err)
		}
		song.Album = album.String
		songs = append(songs, song)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return songs, nil
}

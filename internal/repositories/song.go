package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/tmajor/songbook/internal/models"
	"github.com/tmajor/songbook/internal/shared"
)

// SongRepository implements [models.SongRepository] against SQLite.
//
// Save is a full-row upsert keyed by id; there is no partial-field update.
type SongRepository struct {
	db *sql.DB
}

// NewSongRepository creates a new SongRepository with the given database connection
func NewSongRepository(db *sql.DB) *SongRepository {
	return &SongRepository{db: db}
}

// Save inserts or fully replaces a song by id.
func (r *SongRepository) Save(song models.Song) error {
	if song.ID == "" {
		return shared.ErrMissingID
	}

	query := `
		INSERT OR REPLACE INTO songs (id, title, artist, album, duration)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query, song.ID, song.Title, song.Artist, song.Album, song.Duration)
	if err != nil {
		return fmt.Errorf("failed to save song: %w", err)
	}

	return nil
}

// FindAll retrieves every song in the catalog.
func (r *SongRepository) FindAll() ([]models.Song, error) {
	query := `
		SELECT id, title, artist, album, duration
		FROM songs
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query songs: %w", err)
	}

	return collectSongs(rows)
}

// FindByID retrieves a song by id, returning [shared.ErrSongNotFound] when absent.
func (r *SongRepository) FindByID(id string) (models.Song, error) {
	query := `
		SELECT id, title, artist, album, duration
		FROM songs
		WHERE id = ?
	`

	song, err := scanSong(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Song{}, fmt.Errorf("%w: %s", shared.ErrSongNotFound, id)
	}
	if err != nil {
		return models.Song{}, fmt.Errorf("failed to scan song: %w", err)
	}

	return song, nil
}

// FindByArtist retrieves songs whose artist contains the pattern, case-insensitively.
func (r *SongRepository) FindByArtist(pattern string) ([]models.Song, error) {
	query := `
		SELECT id, title, artist, album, duration
		FROM songs
		WHERE LOWER(artist) LIKE LOWER(?)
	`

	rows, err := r.db.Query(query, "%"+pattern+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to query songs by artist: %w", err)
	}

	return collectSongs(rows)
}

// DeleteByID removes a song. Deleting an unknown id is not an error.
func (r *SongRepository) DeleteByID(id string) error {
	query := `DELETE FROM songs WHERE id = ?`

	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to delete song: %w", err)
	}

	return nil
}

// DeleteInvalid purges rows lacking a usable title or artist and reports
// how many were removed. Run once at startup as a data-hygiene pass.
func (r *SongRepository) DeleteInvalid() (int, error) {
	query := `
		DELETE FROM songs
		WHERE title IS NULL OR TRIM(title) = ''
		   OR artist IS NULL OR TRIM(artist) = ''
	`

	result, err := r.db.Exec(query)
	if err != nil {
		return 0, fmt.Errorf("failed to delete invalid songs: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return int(rows), nil
}

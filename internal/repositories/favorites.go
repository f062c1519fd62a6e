package repositories

import (
	"database/sql"
	"fmt"
)

// FavoritesRepository implements [models.FavoritesRepository] against SQLite.
//
// Favorites are membership only: a single-column table of song ids with
// uniqueness enforced by the primary key, so Add can use INSERT OR IGNORE.
type FavoritesRepository struct {
	db *sql.DB
}

// NewFavoritesRepository creates a new FavoritesRepository with the given database connection
func NewFavoritesRepository(db *sql.DB) *FavoritesRepository {
	return &FavoritesRepository{db: db}
}

// Add marks a song id as favorite. Adding an existing favorite is a no-op.
func (r *FavoritesRepository) Add(songID string) error {
	query := `INSERT OR IGNORE INTO favorites (song_id) VALUES (?)`

	if _, err := r.db.Exec(query, songID); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	return nil
}

// Remove unmarks a song id. Removing a non-favorite is a no-op.
func (r *FavoritesRepository) Remove(songID string) error {
	query := `DELETE FROM favorites WHERE song_id = ?`

	if _, err := r.db.Exec(query, songID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}

	return nil
}

// IsFavorite reports whether the song id is in the favorites set.
func (r *FavoritesRepository) IsFavorite(songID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM favorites WHERE song_id = ?)`

	var exists bool
	if err := r.db.QueryRow(query, songID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}

	return exists, nil
}

// AllIDs retrieves every favorite song id. Ids may dangle if the song has
// since been deleted from the catalog; callers filter at read time.
func (r *FavoritesRepository) AllIDs() ([]string, error) {
	query := `SELECT song_id FROM favorites`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return ids, nil
}

package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/tmajor/songbook/internal/models"
	"github.com/tmajor/songbook/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func TestSongRepository(t *testing.T) {
	t.Run("Save And FindByID", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSongRepository(db)
		song := models.NewSong("Style", "Taylor Swift", "1989", 231)

		if err := repo.Save(song); err != nil {
			t.Fatalf("failed to save song: %v", err)
		}

		fetched, err := repo.FindByID(song.ID)
		if err != nil {
			t.Fatalf("failed to fetch song: %v", err)
		}

		if fetched != song {
			t.Errorf("fetched song %+v does not match saved %+v", fetched, song)
		}
	})

	t.Run("Save Replaces All Fields", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSongRepository(db)
		song := models.NewSong("Style", "Taylor Swift", "1989", 231)

		if err := repo.Save(song); err != nil {
			t.Fatalf("failed to save song: %v", err)
		}

		song.Title = "Style (Taylor's Version)"
		song.Album = "1989 (Taylor's Version)"
		song.Duration = 235

		if err := repo.Save(song); err != nil {
			t.Fatalf("failed to re-save song: %v", err)
		}

		fetched, err := repo.FindByID(song.ID)
		if err != nil {
			t.Fatalf("failed to fetch song: %v", err)
		}
		if fetched != song {
			t.Errorf("expected full replace, got %+v", fetched)
		}

		all, err := repo.FindAll()
		if err != nil {
			t.Fatalf("failed to list songs: %v", err)
		}
		if len(all) != 1 {
			t.Errorf("expected 1 song after upsert, got %d", len(all))
		}
	})

	t.Run("Save Without ID", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSongRepository(db)
		if err := repo.Save(models.Song{Title: "No ID"}); !errors.Is(err, shared.ErrMissingID) {
			t.Errorf("expected ErrMissingID, got %v", err)
		}
	})

	t.Run("FindByID NotFound", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSongRepository(db)
		_, err := repo.FindByID("nonexistent-id")
		if !errors.Is(err, shared.ErrSongNotFound) {
			t.Errorf("expected ErrSongNotFound, got %v", err)
		}
	})

	t.Run("FindByArtist", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSongRepository(db)
		for _, song := range []models.Song{
			models.NewSong("Style", "Taylor Swift", "1989", 231),
			models.NewSong("Anti-Hero", "Taylor Swift", "Midnights", 200),
			models.NewSong("Halo", "Beyoncé", "I Am... Sasha Fierce", 261),
		} {
			if err := repo.Save(song); err != nil {
				t.Fatalf("failed to save song: %v", err)
			}
		}

		matches, err := repo.FindByArtist("taylor")
		if err != nil {
			t.Fatalf("failed to search by artist: %v", err)
		}
		if len(matches) != 2 {
			t.Errorf("expected 2 case-insensitive substring matches, got %d", len(matches))
		}
	})

	t.Run("DeleteByID", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSongRepository(db)
		song := models.NewSong("Style", "Taylor Swift", "1989", 231)

		if err := repo.Save(song); err != nil {
			t.Fatalf("failed to save song: %v", err)
		}

		if err := repo.DeleteByID(song.ID); err != nil {
			t.Fatalf("failed to delete song: %v", err)
		}

		if _, err := repo.FindByID(song.ID); !errors.Is(err, shared.ErrSongNotFound) {
			t.Errorf("expected not-found after delete, got %v", err)
		}

		all, err := repo.FindAll()
		if err != nil {
			t.Fatalf("failed to list songs: %v", err)
		}
		for _, s := range all {
			if s.ID == song.ID {
				t.Error("deleted song still present in FindAll")
			}
		}

		// Unknown ids delete cleanly.
		if err := repo.DeleteByID("nonexistent-id"); err != nil {
			t.Errorf("deleting unknown id should not error: %v", err)
		}
	})

	t.Run("DeleteInvalid", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewSongRepository(db)
		if err := repo.Save(models.NewSong("Style", "Taylor Swift", "1989", 231)); err != nil {
			t.Fatalf("failed to save song: %v", err)
		}

		// Blank-title and blank-artist rows bypass the service gate in
		// older data files; insert them directly.
		if _, err := db.Exec(`INSERT INTO songs (id, title, artist, album, duration) VALUES (?, ?, ?, ?, ?)`,
			shared.GenerateID(), "   ", "Somebody", "", 100); err != nil {
			t.Fatalf("failed to insert invalid row: %v", err)
		}
		if _, err := db.Exec(`INSERT INTO songs (id, title, artist, album, duration) VALUES (?, ?, ?, ?, ?)`,
			shared.GenerateID(), "Orphan", "", "", 100); err != nil {
			t.Fatalf("failed to insert invalid row: %v", err)
		}

		removed, err := repo.DeleteInvalid()
		if err != nil {
			t.Fatalf("failed to delete invalid songs: %v", err)
		}
		if removed != 2 {
			t.Errorf("expected 2 invalid rows removed, got %d", removed)
		}

		all, err := repo.FindAll()
		if err != nil {
			t.Fatalf("failed to list songs: %v", err)
		}
		if len(all) != 1 {
			t.Errorf("expected 1 valid song to survive, got %d", len(all))
		}
	})
}

func TestPlaylistRepository(t *testing.T) {
	t.Run("Create And FindAll", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		playlist := models.NewPlaylist("Road Trip")

		if err := repo.Create(playlist); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		all, err := repo.FindAll()
		if err != nil {
			t.Fatalf("failed to list playlists: %v", err)
		}
		if len(all) != 1 || all[0] != playlist {
			t.Errorf("expected created playlist in FindAll, got %+v", all)
		}
	})

	t.Run("Update Renames", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		playlist := models.NewPlaylist("Road Trip")

		if err := repo.Create(playlist); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		playlist.Name = "Summer Road Trip"
		if err := repo.Update(playlist); err != nil {
			t.Fatalf("failed to update playlist: %v", err)
		}

		all, err := repo.FindAll()
		if err != nil {
			t.Fatalf("failed to list playlists: %v", err)
		}
		if len(all) != 1 || all[0].Name != "Summer Road Trip" {
			t.Errorf("expected renamed playlist, got %+v", all)
		}
	})

	t.Run("AddSong Is Idempotent", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		songs := NewSongRepository(db)
		repo := NewPlaylistRepository(db)

		song := models.NewSong("Style", "Taylor Swift", "1989", 231)
		playlist := models.NewPlaylist("Road Trip")

		if err := songs.Save(song); err != nil {
			t.Fatalf("failed to save song: %v", err)
		}
		if err := repo.Create(playlist); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}

		if err := repo.AddSong(playlist.ID, song.ID); err != nil {
			t.Fatalf("failed to add song: %v", err)
		}
		if err := repo.AddSong(playlist.ID, song.ID); err != nil {
			t.Fatalf("re-adding the pair should be a no-op: %v", err)
		}

		var count int
		if err := db.QueryRow(`SELECT COUNT(*) FROM playlist_song WHERE playlist_id = ?`, playlist.ID).Scan(&count); err != nil {
			t.Fatalf("failed to count memberships: %v", err)
		}
		if count != 1 {
			t.Errorf("expected exactly 1 membership row, got %d", count)
		}

		present, err := repo.Contains(playlist.ID, song.ID)
		if err != nil {
			t.Fatalf("failed to check membership: %v", err)
		}
		if !present {
			t.Error("expected membership to hold after add")
		}
	})

	t.Run("Songs Joins Catalog", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		songs := NewSongRepository(db)
		repo := NewPlaylistRepository(db)

		song := models.NewSong("Style", "Taylor Swift", "1989", 231)
		playlist := models.NewPlaylist("Road Trip")

		if err := songs.Save(song); err != nil {
			t.Fatalf("failed to save song: %v", err)
		}
		if err := repo.Create(playlist); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		if err := repo.AddSong(playlist.ID, song.ID); err != nil {
			t.Fatalf("failed to add song: %v", err)
		}

		resolved, err := repo.Songs(playlist.ID)
		if err != nil {
			t.Fatalf("failed to resolve playlist songs: %v", err)
		}
		if len(resolved) != 1 || resolved[0] != song {
			t.Errorf("expected full song entity from join, got %+v", resolved)
		}

		// A deleted song leaves a dangling membership row that the join filters.
		if err := songs.DeleteByID(song.ID); err != nil {
			t.Fatalf("failed to delete song: %v", err)
		}

		resolved, err = repo.Songs(playlist.ID)
		if err != nil {
			t.Fatalf("failed to resolve playlist songs: %v", err)
		}
		if len(resolved) != 0 {
			t.Errorf("expected dangling reference to drop out of join, got %+v", resolved)
		}
	})

	t.Run("Delete Cascades Membership", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		songs := NewSongRepository(db)
		repo := NewPlaylistRepository(db)

		song := models.NewSong("Style", "Taylor Swift", "1989", 231)
		playlist := models.NewPlaylist("Road Trip")

		if err := songs.Save(song); err != nil {
			t.Fatalf("failed to save song: %v", err)
		}
		if err := repo.Create(playlist); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		if err := repo.AddSong(playlist.ID, song.ID); err != nil {
			t.Fatalf("failed to add song: %v", err)
		}

		if err := repo.Delete(playlist.ID); err != nil {
			t.Fatalf("failed to delete playlist: %v", err)
		}

		all, err := repo.FindAll()
		if err != nil {
			t.Fatalf("failed to list playlists: %v", err)
		}
		if len(all) != 0 {
			t.Errorf("expected no playlists after delete, got %+v", all)
		}

		var count int
		if err := db.QueryRow(`SELECT COUNT(*) FROM playlist_song WHERE playlist_id = ?`, playlist.ID).Scan(&count); err != nil {
			t.Fatalf("failed to count memberships: %v", err)
		}
		if count != 0 {
			t.Errorf("expected no orphaned membership rows, got %d", count)
		}

		resolved, err := repo.Songs(playlist.ID)
		if err != nil {
			t.Fatalf("failed to resolve playlist songs: %v", err)
		}
		if len(resolved) != 0 {
			t.Errorf("expected empty song list for deleted playlist, got %+v", resolved)
		}
	})

	t.Run("RemoveSong", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewPlaylistRepository(db)
		playlist := models.NewPlaylist("Road Trip")

		if err := repo.Create(playlist); err != nil {
			t.Fatalf("failed to create playlist: %v", err)
		}
		if err := repo.AddSong(playlist.ID, "song-1"); err != nil {
			t.Fatalf("failed to add song: %v", err)
		}

		if err := repo.RemoveSong(playlist.ID, "song-1"); err != nil {
			t.Fatalf("failed to remove song: %v", err)
		}

		present, err := repo.Contains(playlist.ID, "song-1")
		if err != nil {
			t.Fatalf("failed to check membership: %v", err)
		}
		if present {
			t.Error("expected membership to be gone after remove")
		}
	})
}

func TestFavoritesRepository(t *testing.T) {
	t.Run("Add Remove IsFavorite", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		repo := NewFavoritesRepository(db)

		if err := repo.Add("song-1"); err != nil {
			t.Fatalf("failed to add favorite: %v", err)
		}
		if err := repo.Add("song-1"); err != nil {
			t.Fatalf("re-adding a favorite should be a no-op: %v", err)
		}

		fav, err := repo.IsFavorite("song-1")
		if err != nil {
			t.Fatalf("failed to check favorite: %v", err)
		}
		if !fav {
			t.Error("expected song-1 to be favorite")
		}

		ids, err := repo.AllIDs()
		if err != nil {
			t.Fatalf("failed to list favorites: %v", err)
		}
		if len(ids) != 1 {
			t.Errorf("expected exactly 1 favorite row, got %d", len(ids))
		}

		if err := repo.Remove("song-1"); err != nil {
			t.Fatalf("failed to remove favorite: %v", err)
		}
		if err := repo.Remove("song-1"); err != nil {
			t.Fatalf("removing a non-favorite should be a no-op: %v", err)
		}

		fav, err = repo.IsFavorite("song-1")
		if err != nil {
			t.Fatalf("failed to check favorite: %v", err)
		}
		if fav {
			t.Error("expected song-1 to no longer be favorite")
		}
	})
}

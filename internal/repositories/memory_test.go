package repositories

import (
	"errors"
	"testing"

	"github.com/tmajor/songbook/internal/models"
	"github.com/tmajor/songbook/internal/shared"
)

// TestRepositoryContract runs the same behavioral checks against the
// in-memory and SQLite implementations so the two stay interchangeable.
func TestRepositoryContract(t *testing.T) {
	type fixture struct {
		songs     models.SongRepository
		playlists models.PlaylistRepository
		favorites models.FavoritesRepository
	}

	impls := map[string]func(t *testing.T) fixture{
		"Memory": func(t *testing.T) fixture {
			songs := NewMemorySongRepository()
			return fixture{
				songs:     songs,
				playlists: NewMemoryPlaylistRepository(songs),
				favorites: NewMemoryFavoritesRepository(),
			}
		},
		"SQLite": func(t *testing.T) fixture {
			db := setupTestDB(t)
			t.Cleanup(func() { db.Close() })
			return fixture{
				songs:     NewSongRepository(db),
				playlists: NewPlaylistRepository(db),
				favorites: NewFavoritesRepository(db),
			}
		},
	}

	for name, setup := range impls {
		t.Run(name, func(t *testing.T) {
			t.Run("Song Upsert Round Trip", func(t *testing.T) {
				f := setup(t)

				song := models.NewSong("Wildest Dreams", "Taylor Swift", "1989", 220)
				if err := f.songs.Save(song); err != nil {
					t.Fatalf("failed to save: %v", err)
				}

				song.Duration = 221
				if err := f.songs.Save(song); err != nil {
					t.Fatalf("failed to upsert: %v", err)
				}

				fetched, err := f.songs.FindByID(song.ID)
				if err != nil {
					t.Fatalf("failed to fetch: %v", err)
				}
				if fetched != song {
					t.Errorf("fetched %+v, want %+v", fetched, song)
				}

				all, err := f.songs.FindAll()
				if err != nil {
					t.Fatalf("failed to list: %v", err)
				}
				if len(all) != 1 {
					t.Errorf("expected 1 song, got %d", len(all))
				}
			})

			t.Run("Song NotFound", func(t *testing.T) {
				f := setup(t)
				if _, err := f.songs.FindByID("missing"); !errors.Is(err, shared.ErrSongNotFound) {
					t.Errorf("expected ErrSongNotFound, got %v", err)
				}
			})

			t.Run("Membership At Most Once", func(t *testing.T) {
				f := setup(t)

				song := models.NewSong("Style", "Taylor Swift", "1989", 231)
				playlist := models.NewPlaylist("Mix")

				if err := f.songs.Save(song); err != nil {
					t.Fatalf("failed to save song: %v", err)
				}
				if err := f.playlists.Create(playlist); err != nil {
					t.Fatalf("failed to create playlist: %v", err)
				}

				if err := f.playlists.AddSong(playlist.ID, song.ID); err != nil {
					t.Fatalf("failed to add: %v", err)
				}
				if err := f.playlists.AddSong(playlist.ID, song.ID); err != nil {
					t.Fatalf("duplicate add should be ignored: %v", err)
				}

				resolved, err := f.playlists.Songs(playlist.ID)
				if err != nil {
					t.Fatalf("failed to resolve: %v", err)
				}
				if len(resolved) != 1 {
					t.Errorf("expected 1 membership, got %d", len(resolved))
				}
			})

			t.Run("Dangling Membership Filtered", func(t *testing.T) {
				f := setup(t)

				song := models.NewSong("Style", "Taylor Swift", "1989", 231)
				playlist := models.NewPlaylist("Mix")

				if err := f.songs.Save(song); err != nil {
					t.Fatalf("failed to save song: %v", err)
				}
				if err := f.playlists.Create(playlist); err != nil {
					t.Fatalf("failed to create playlist: %v", err)
				}
				if err := f.playlists.AddSong(playlist.ID, song.ID); err != nil {
					t.Fatalf("failed to add: %v", err)
				}
				if err := f.songs.DeleteByID(song.ID); err != nil {
					t.Fatalf("failed to delete song: %v", err)
				}

				resolved, err := f.playlists.Songs(playlist.ID)
				if err != nil {
					t.Fatalf("failed to resolve: %v", err)
				}
				if len(resolved) != 0 {
					t.Errorf("expected dangling reference filtered, got %+v", resolved)
				}
			})

			t.Run("Favorites Idempotent", func(t *testing.T) {
				f := setup(t)

				if err := f.favorites.Add("id-1"); err != nil {
					t.Fatalf("failed to add: %v", err)
				}
				if err := f.favorites.Add("id-1"); err != nil {
					t.Fatalf("duplicate add should be ignored: %v", err)
				}

				ids, err := f.favorites.AllIDs()
				if err != nil {
					t.Fatalf("failed to list: %v", err)
				}
				if len(ids) != 1 {
					t.Errorf("expected 1 favorite, got %d", len(ids))
				}

				if err := f.favorites.Remove("id-1"); err != nil {
					t.Fatalf("failed to remove: %v", err)
				}

				fav, err := f.favorites.IsFavorite("id-1")
				if err != nil {
					t.Fatalf("failed to check: %v", err)
				}
				if fav {
					t.Error("expected favorite removed")
				}
			})
		})
	}
}

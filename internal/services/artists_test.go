package services

import (
	"errors"
	"testing"

	"github.com/tmajor/songbook/internal/models"
	"github.com/tmajor/songbook/internal/repositories"
	"github.com/tmajor/songbook/internal/shared"
)

func newArtists(t *testing.T) (*ArtistService, *DiscographyService) {
	t.Helper()

	songs := repositories.NewMemorySongRepository()
	logger := shared.NewLogger(nil)
	return NewArtistService(songs, logger), NewDiscographyService(songs, logger)
}

func TestArtistService(t *testing.T) {
	seed := func(t *testing.T, disco *DiscographyService) {
		t.Helper()
		songs := []models.Song{
			models.NewSong("Style", "Taylor Swift", "1989", 231),
			models.NewSong("Wildest Dreams", "taylor swift", "1989", 220),
			models.NewSong("Believer", "Imagine Dragons", "Evolve", 204),
		}
		for _, song := range songs {
			if err := disco.AddSong(song); err != nil {
				t.Fatalf("AddSong(%q) failed: %v", song.Title, err)
			}
		}
	}

	t.Run("delete removes exact matches regardless of case", func(t *testing.T) {
		svc, disco := newArtists(t)
		seed(t, disco)

		removed, err := svc.Delete("Taylor Swift")
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if removed != 2 {
			t.Errorf("expected 2 songs removed, got %d", removed)
		}

		remaining := disco.All()
		if len(remaining) != 1 || remaining[0].Artist != "Imagine Dragons" {
			t.Errorf("unexpected remaining catalog: %+v", remaining)
		}
	})

	t.Run("delete skips substring matches", func(t *testing.T) {
		svc, disco := newArtists(t)
		seed(t, disco)

		removed, err := svc.Delete("Swift")
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if removed != 0 {
			t.Errorf("expected no songs removed on partial name, got %d", removed)
		}
		if got := len(disco.All()); got != 3 {
			t.Errorf("catalog changed: %d songs", got)
		}
	})

	t.Run("delete rejects blank name", func(t *testing.T) {
		svc, _ := newArtists(t)

		if _, err := svc.Delete("  "); !errors.Is(err, shared.ErrMissingName) {
			t.Errorf("expected ErrMissingName, got %v", err)
		}
	})

	t.Run("rename preserves song ids", func(t *testing.T) {
		svc, disco := newArtists(t)
		seed(t, disco)

		before := disco.SongsByArtist("taylor")
		updated, err := svc.Rename("Taylor Swift", "Taylor Swift (Taylor's Version)")
		if err != nil {
			t.Fatalf("Rename failed: %v", err)
		}
		if updated != 2 {
			t.Errorf("expected 2 songs updated, got %d", updated)
		}

		for _, old := range before {
			song, ok := disco.SongByID(old.ID)
			if !ok {
				t.Fatalf("song %q lost its id during rename", old.Title)
			}
			if song.Artist != "Taylor Swift (Taylor's Version)" {
				t.Errorf("song %q not renamed: %q", song.Title, song.Artist)
			}
		}
	})

	t.Run("rename rejects blank names", func(t *testing.T) {
		svc, _ := newArtists(t)

		if _, err := svc.Rename("", "New Name"); !errors.Is(err, shared.ErrMissingName) {
			t.Errorf("expected ErrMissingName for blank old name, got %v", err)
		}
		if _, err := svc.Rename("Old Name", "  "); !errors.Is(err, shared.ErrMissingName) {
			t.Errorf("expected ErrMissingName for blank new name, got %v", err)
		}
	})
}

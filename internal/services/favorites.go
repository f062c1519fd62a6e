package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tmajor/songbook/internal/models"
	"github.com/tmajor/songbook/internal/shared"
)

// FavoritesService manages the set of favorite songs, resolving ids
// against the discography for display.
type FavoritesService struct {
	repo   models.FavoritesRepository
	disco  *DiscographyService
	logger *log.Logger
}

// NewFavoritesService creates a FavoritesService over the given
// repository and discography.
func NewFavoritesService(repo models.FavoritesRepository, disco *DiscographyService, logger *log.Logger) *FavoritesService {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &FavoritesService{repo: repo, disco: disco, logger: logger}
}

// SetLogger swaps the service's logger.
func (s *FavoritesService) SetLogger(l *log.Logger) {
	s.logger = l
}

// Add marks a song as favorite, reporting whether the state changed.
// Adding an already-favorite song is a logged no-op returning false.
func (s *FavoritesService) Add(songID string) (bool, error) {
	if songID == "" {
		s.logger.Warn("cannot add favorite: song id missing")
		return false, shared.ErrMissingID
	}

	fav, err := s.repo.IsFavorite(songID)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	if fav {
		s.logger.Info("song already marked as favorite", "title", s.disco.TitleByID(songID))
		return false, nil
	}

	if err := s.repo.Add(songID); err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}

	s.logger.Info("song added to favorites", "title", s.disco.TitleByID(songID))
	return true, nil
}

// Remove unmarks a favorite, reporting whether the state changed.
func (s *FavoritesService) Remove(songID string) (bool, error) {
	if songID == "" {
		s.logger.Warn("cannot remove favorite: song id missing")
		return false, shared.ErrMissingID
	}

	fav, err := s.repo.IsFavorite(songID)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	if !fav {
		s.logger.Info("song is not marked as favorite", "title", s.disco.TitleByID(songID))
		return false, nil
	}

	if err := s.repo.Remove(songID); err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}

	s.logger.Info("song removed from favorites", "title", s.disco.TitleByID(songID))
	return true, nil
}

// Toggle flips a song's favorite state and reports the new state.
func (s *FavoritesService) Toggle(songID string) (bool, error) {
	if s.IsFavorite(songID) {
		if _, err := s.Remove(songID); err != nil {
			return true, err
		}
		return false, nil
	}

	if _, err := s.Add(songID); err != nil {
		return false, err
	}
	return true, nil
}

// IsFavorite reports whether the song id is currently a favorite.
// Storage errors degrade to false.
func (s *FavoritesService) IsFavorite(songID string) bool {
	if songID == "" {
		return false
	}

	fav, err := s.repo.IsFavorite(songID)
	if err != nil {
		s.logger.Error("failed to check favorite", "id", songID, "error", err)
		return false
	}
	return fav
}

// AllIDs returns every favorite song id, dangling ones included.
func (s *FavoritesService) AllIDs() []string {
	ids, err := s.repo.AllIDs()
	if err != nil {
		s.logger.Error("failed to load favorites", "error", err)
		return nil
	}
	return ids
}

// All resolves the favorite ids to full song entities, silently dropping
// ids whose song no longer exists in the catalog.
func (s *FavoritesService) All() []models.Song {
	var out []models.Song
	for _, id := range s.AllIDs() {
		if song, ok := s.disco.SongByID(id); ok {
			out = append(out, song)
		}
	}
	return out
}

// SortedAlphabetically returns the favorites ordered by title, case-insensitively.
func (s *FavoritesService) SortedAlphabetically() []models.Song {
	songs := s.All()
	sort.SliceStable(songs, func(i, j int) bool {
		return strings.ToLower(songs[i].Title) < strings.ToLower(songs[j].Title)
	})
	return songs
}

// SortedByArtist returns the favorites ordered by artist, case-insensitively.
func (s *FavoritesService) SortedByArtist() []models.Song {
	songs := s.All()
	sort.SliceStable(songs, func(i, j int) bool {
		return strings.ToLower(songs[i].Artist) < strings.ToLower(songs[j].Artist)
	})
	return songs
}

// SortedByDuration returns the favorites ordered by ascending duration.
func (s *FavoritesService) SortedByDuration() []models.Song {
	songs := s.All()
	sort.SliceStable(songs, func(i, j int) bool {
		return songs[i].Duration < songs[j].Duration
	})
	return songs
}

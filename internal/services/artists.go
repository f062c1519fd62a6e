package services

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tmajor/songbook/internal/models"
	"github.com/tmajor/songbook/internal/shared"
)

// ArtistService performs catalog-wide operations keyed on artist name.
type ArtistService struct {
	repo   models.SongRepository
	logger *log.Logger
}

// NewArtistService creates an ArtistService over the given repository.
func NewArtistService(repo models.SongRepository, logger *log.Logger) *ArtistService {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &ArtistService{repo: repo, logger: logger}
}

// SetLogger swaps the service's logger.
func (s *ArtistService) SetLogger(l *log.Logger) {
	s.logger = l
}

// Delete removes every song whose artist matches name exactly,
// ignoring case. It returns the number of songs removed.
func (s *ArtistService) Delete(name string) (int, error) {
	if strings.TrimSpace(name) == "" {
		s.logger.Warn("cannot delete artist: name missing")
		return 0, shared.ErrMissingName
	}

	songs, err := s.repo.FindByArtist(name)
	if err != nil {
		return 0, fmt.Errorf("failed to find songs by artist: %w", err)
	}

	removed := 0
	for _, song := range songs {
		if !strings.EqualFold(song.Artist, name) {
			continue
		}
		if err := s.repo.DeleteByID(song.ID); err != nil {
			return removed, fmt.Errorf("failed to delete song %q: %w", song.Title, err)
		}
		removed++
	}

	s.logger.Info("artist deleted from catalog", "artist", name, "songs", removed)
	return removed, nil
}

// Rename re-attributes every song by oldName to newName, preserving
// song ids. It returns the number of songs updated.
func (s *ArtistService) Rename(oldName, newName string) (int, error) {
	if strings.TrimSpace(oldName) == "" || strings.TrimSpace(newName) == "" {
		s.logger.Warn("cannot rename artist: name missing")
		return 0, shared.ErrMissingName
	}

	songs, err := s.repo.FindByArtist(oldName)
	if err != nil {
		return 0, fmt.Errorf("failed to find songs by artist: %w", err)
	}

	updated := 0
	for _, song := range songs {
		if !strings.EqualFold(song.Artist, oldName) {
			continue
		}
		song.Artist = newName
		if err := s.repo.Save(song); err != nil {
			return updated, fmt.Errorf("failed to update song %q: %w", song.Title, err)
		}
		updated++
	}

	s.logger.Info("artist renamed", "from", oldName, "to", newName, "songs", updated)
	return updated, nil
}

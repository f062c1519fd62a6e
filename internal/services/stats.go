package services

import (
	"github.com/charmbracelet/log"
	"github.com/tmajor/songbook/internal/models"
	"github.com/tmajor/songbook/internal/shared"
)

// StatsService derives aggregate figures from the catalog and the
// favorites set. All reads degrade to zero values on storage errors.
type StatsService struct {
	disco  *DiscographyService
	favs   *FavoritesService
	logger *log.Logger
}

// NewStatsService creates a StatsService over the given services.
func NewStatsService(disco *DiscographyService, favs *FavoritesService, logger *log.Logger) *StatsService {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &StatsService{disco: disco, favs: favs, logger: logger}
}

// SetLogger swaps the service's logger.
func (s *StatsService) SetLogger(l *log.Logger) {
	s.logger = l
}

// AllSongs returns the full catalog.
func (s *StatsService) AllSongs() []models.Song {
	return s.disco.All()
}

// TotalSongs returns the number of songs in the catalog.
func (s *StatsService) TotalSongs() int {
	return len(s.disco.All())
}

// TotalDuration returns the summed duration of the catalog in seconds.
func (s *StatsService) TotalDuration() int {
	total := 0
	for _, song := range s.disco.All() {
		total += song.Duration
	}
	return total
}

// AverageDuration returns the mean song duration in seconds, rounded
// down. An empty catalog averages to zero.
func (s *StatsService) AverageDuration() int {
	songs := s.disco.All()
	if len(songs) == 0 {
		return 0
	}

	total := 0
	for _, song := range songs {
		total += song.Duration
	}
	return total / len(songs)
}

// SongsPerArtist returns a song count per artist name. Counting is
// case-sensitive on the stored artist value.
func (s *StatsService) SongsPerArtist() map[string]int {
	counts := make(map[string]int)
	for _, song := range s.disco.All() {
		counts[song.Artist]++
	}
	return counts
}

// TotalFavorites returns the number of favorite entries, resolved
// against the catalog so dangling ids are not counted.
func (s *StatsService) TotalFavorites() int {
	return len(s.favs.All())
}

// Report captures every aggregate in one snapshot for display.
func (s *StatsService) Report() models.LibraryStats {
	return models.LibraryStats{
		TotalSongs:      s.TotalSongs(),
		TotalDuration:   s.TotalDuration(),
		AverageDuration: s.AverageDuration(),
		TotalFavorites:  s.TotalFavorites(),
		SongsPerArtist:  s.SongsPerArtist(),
	}
}
